package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"

	"golang.org/x/image/draw"
)

// MaxDimension is the maximum width or height of a stored listing photo.
const MaxDimension = 800

// JPEGQuality is the re-encode quality for stored photos.
const JPEGQuality = 80

// MaxSourceSize is the largest accepted source file (5 MB).
const MaxSourceSize = 5 << 20

// ErrUnsupportedMedia is returned for payloads that are not JPEG or PNG.
var ErrUnsupportedMedia = errors.New("unsupported media type (only JPEG and PNG accepted)")

// ErrTooLarge is returned for source files over MaxSourceSize.
var ErrTooLarge = fmt.Errorf("source file exceeds %d bytes", MaxSourceSize)

// Compressed is the result of compressing a source photo.
type Compressed struct {
	Data []byte
	MIME string
}

// Compress reads a source photo, validates its format by sniffing bytes,
// downscales so the longest edge is at most MaxDimension, and re-encodes as
// lossy JPEG. This is a one-way transform; callers discard the original.
func Compress(r io.Reader) (*Compressed, error) {
	// Read one byte past the cap so oversized sources are detected without
	// buffering arbitrarily large files.
	data, err := io.ReadAll(io.LimitReader(r, MaxSourceSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading photo data: %w", err)
	}
	if len(data) > MaxSourceSize {
		return nil, ErrTooLarge
	}

	// Sniff the actual MIME type, not the client-supplied one.
	switch http.DetectContentType(data) {
	case "image/jpeg", "image/png":
	default:
		return nil, ErrUnsupportedMedia
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding photo: %w", err)
	}

	img = downscale(img, MaxDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}

	return &Compressed{Data: buf.Bytes(), MIME: "image/jpeg"}, nil
}

// downscale resizes the image so its longest edge is at most maxDim,
// preserving aspect ratio. Images already within bounds are returned
// unchanged; photos are never upscaled.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = int(float64(h) * float64(maxDim) / float64(w))
	} else {
		newH = maxDim
		newW = int(float64(w) * float64(maxDim) / float64(h))
	}

	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func init() {
	// Register decoders (jpeg is registered by default, but be explicit).
	image.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "\x89PNG", png.Decode, png.DecodeConfig)
}
