package api

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/Lucas1201-cloud/New-Vinted/internal/imaging"
	"github.com/Lucas1201-cloud/New-Vinted/internal/model"
	"github.com/Lucas1201-cloud/New-Vinted/internal/store"
)

// PhotosHandler handles the photo subresource of items.
type PhotosHandler struct {
	DB *sql.DB
}

type photoUploadError struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

type photoUploadResponse struct {
	Uploaded int                `json:"uploaded"`
	Errors   []photoUploadError `json:"errors"`
	Photos   []model.Photo      `json:"photos"`
}

// loadSet fetches the item's current photo set, writing a 404 if the item
// does not exist. The bool reports whether the caller may proceed.
func (h *PhotosHandler) loadSet(w http.ResponseWriter, r *http.Request) (string, model.PhotoSet, bool) {
	itemID := r.PathValue("id")
	item, err := store.GetItem(r.Context(), h.DB, itemID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return "", nil, false
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return "", nil, false
	}
	return itemID, model.PhotoSet(item.Photos), true
}

// Upload handles POST /api/items/{id}/photos. Accepts multiple files in the
// "photos" multipart field; each file is compressed and appended. Failures
// are reported per file and do not abort the rest of the batch.
func (h *PhotosHandler) Upload(w http.ResponseWriter, r *http.Request) {
	itemID, set, ok := h.loadSet(w, r)
	if !ok {
		return
	}

	// Generous outer bound: up to a full batch of max-size sources.
	r.Body = http.MaxBytesReader(w, r.Body, int64(model.MaxPhotos)*(imaging.MaxSourceSize+1))
	if err := r.ParseMultipartForm(imaging.MaxSourceSize); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	files := r.MultipartForm.File["photos"]
	if len(files) == 0 {
		jsonError(w, http.StatusBadRequest, "at least one photo file required")
		return
	}

	resp := photoUploadResponse{Errors: []photoUploadError{}}
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			resp.Errors = append(resp.Errors, photoUploadError{Name: header.Filename, Error: "failed to open file"})
			continue
		}
		compressed, err := imaging.Compress(file)
		file.Close()
		if err != nil {
			resp.Errors = append(resp.Errors, photoUploadError{Name: header.Filename, Error: uploadErrorMessage(err)})
			continue
		}

		set, err = set.Add(model.Photo{
			ID:   uuid.NewString(),
			Name: header.Filename,
			Data: compressed.Data,
			MIME: compressed.MIME,
		})
		if err != nil {
			resp.Errors = append(resp.Errors, photoUploadError{Name: header.Filename, Error: uploadErrorMessage(err)})
			continue
		}
		resp.Uploaded++
	}

	if resp.Uploaded > 0 {
		if err := store.SavePhotos(r.Context(), h.DB, itemID, set); err != nil {
			jsonError(w, http.StatusInternalServerError, "failed to save photos")
			return
		}
	}

	resp.Photos = photoMetadata(set)
	status := http.StatusOK
	if resp.Uploaded == 0 {
		status = http.StatusUnprocessableEntity
	}
	jsonResponse(w, status, resp)
}

func uploadErrorMessage(err error) string {
	var lerr *model.LimitError
	switch {
	case errors.Is(err, imaging.ErrUnsupportedMedia):
		return "unsupported media type"
	case errors.Is(err, imaging.ErrTooLarge):
		return "file too large"
	case errors.As(err, &lerr):
		return lerr.Error()
	default:
		return "failed to process image"
	}
}

// photoMetadata strips the image bytes so list responses stay small.
func photoMetadata(set model.PhotoSet) []model.Photo {
	out := make([]model.Photo, len(set))
	for i, p := range set {
		p.Data = nil
		out[i] = p
	}
	return out
}

// Remove handles DELETE /api/items/{id}/photos/{index}.
func (h *PhotosHandler) Remove(w http.ResponseWriter, r *http.Request) {
	itemID, set, ok := h.loadSet(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 || index >= len(set) {
		jsonError(w, http.StatusNotFound, "no photo at index")
		return
	}

	set = set.Remove(index)
	if err := store.SavePhotos(r.Context(), h.DB, itemID, set); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save photos")
		return
	}
	jsonResponse(w, http.StatusOK, photoMetadata(set))
}

// SetMain handles PUT /api/items/{id}/photos/{index}/main.
func (h *PhotosHandler) SetMain(w http.ResponseWriter, r *http.Request) {
	itemID, set, ok := h.loadSet(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 || index >= len(set) {
		jsonError(w, http.StatusNotFound, "no photo at index")
		return
	}

	set = set.SetMain(index)
	if err := store.SavePhotos(r.Context(), h.DB, itemID, set); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save photos")
		return
	}
	jsonResponse(w, http.StatusOK, photoMetadata(set))
}

type reorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Reorder handles PUT /api/items/{id}/photos/reorder.
func (h *PhotosHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	itemID, set, ok := h.loadSet(w, r)
	if !ok {
		return
	}

	var req reorderRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.From < 0 || req.From >= len(set) || req.To < 0 || req.To >= len(set) {
		jsonError(w, http.StatusBadRequest, "position out of range")
		return
	}

	set = set.Reorder(req.From, req.To)
	if err := store.SavePhotos(r.Context(), h.DB, itemID, set); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save photos")
		return
	}
	jsonResponse(w, http.StatusOK, photoMetadata(set))
}

// Serve handles GET /api/items/{id}/photos/{index}, returning the
// compressed image bytes.
func (h *PhotosHandler) Serve(w http.ResponseWriter, r *http.Request) {
	_, set, ok := h.loadSet(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 || index >= len(set) {
		jsonError(w, http.StatusNotFound, "no photo at index")
		return
	}

	w.Header().Set("Content-Type", set[index].MIME)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(set[index].Data)
}
