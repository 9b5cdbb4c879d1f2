package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func createTestJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func createTestPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func TestCompressJPEG(t *testing.T) {
	data := createTestJPEG(100, 100)
	result, err := Compress(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Compress JPEG: %v", err)
	}
	if result.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", result.MIME)
	}
	if len(result.Data) == 0 {
		t.Error("expected non-empty data")
	}
}

func TestCompressPNGBecomesJPEG(t *testing.T) {
	data := createTestPNG(100, 100)
	result, err := Compress(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Compress PNG: %v", err)
	}
	if result.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg (always re-encodes), got %s", result.MIME)
	}
}

func TestCompressDownscalesLongestEdge(t *testing.T) {
	// 2000x1000 must come out 800x400.
	data := createTestJPEG(2000, 1000)
	result, err := Compress(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Compress large image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 800 || bounds.Dy() != 400 {
		t.Errorf("expected 800x400, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestCompressSmallImageNotUpscaled(t *testing.T) {
	data := createTestJPEG(50, 50)
	result, err := Compress(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Compress small image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Errorf("small image should not be resized: got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestCompressRejectsNonImage(t *testing.T) {
	_, err := Compress(bytes.NewReader([]byte("not an image")))
	if !errors.Is(err, ErrUnsupportedMedia) {
		t.Errorf("expected ErrUnsupportedMedia, got %v", err)
	}
}

func TestCompressRejectsGIF(t *testing.T) {
	_, err := Compress(bytes.NewReader([]byte("GIF89a...")))
	if !errors.Is(err, ErrUnsupportedMedia) {
		t.Errorf("expected ErrUnsupportedMedia for GIF, got %v", err)
	}
}

func TestCompressRejectsOversizedSource(t *testing.T) {
	data := make([]byte, MaxSourceSize+1)
	// Valid JPEG magic so the failure is clearly about size.
	copy(data, []byte{0xff, 0xd8, 0xff, 0xe0})
	_, err := Compress(bytes.NewReader(data))
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
}
