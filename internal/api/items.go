package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Lucas1201-cloud/New-Vinted/internal/model"
	"github.com/Lucas1201-cloud/New-Vinted/internal/store"
)

// ItemsHandler handles item CRUD endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

// itemResponse is an item with its derived financial figures attached.
type itemResponse struct {
	model.Item
	model.Metrics
}

func newItemResponse(item *model.Item) itemResponse {
	if item.Tags == nil {
		item.Tags = []string{}
	}
	if item.Photos == nil {
		item.Photos = []model.Photo{}
	}
	return itemResponse{Item: *item, Metrics: model.ComputeMetrics(item)}
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.ItemFilter{
		Status:   q.Get("status"),
		Category: q.Get("category"),
		Brand:    q.Get("brand"),
		SortBy:   q.Get("sort_by"),
	}

	items, err := store.ListItems(r.Context(), h.DB, filter)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}

	out := make([]itemResponse, 0, len(items))
	for i := range items {
		out = append(out, newItemResponse(&items[i]))
	}
	jsonResponse(w, http.StatusOK, out)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item model.Item
	if err := decodeJSON(r, &item); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	now := time.Now().UTC()
	item.ID = uuid.NewString()
	item.Photos = nil
	item.Tags = model.NormalizeTags(item.Tags)
	item.CreatedAt = now
	item.UpdatedAt = now
	item.ListedAt = nil
	item.SoldAt = nil
	if item.Status == "" {
		item.Status = model.StatusDraft
	}
	if item.Status == model.StatusActive {
		item.ListedAt = &now
	}
	if item.SoldPrice != nil {
		item.SoldAt = &now
	}

	if err := item.Validate(); err != nil {
		jsonModelError(w, err, "invalid item")
		return
	}

	if err := store.CreateItem(r.Context(), h.DB, &item); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	jsonResponse(w, http.StatusCreated, newItemResponse(&item))
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := store.GetItem(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, newItemResponse(item))
}

// Update handles PUT /api/items/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	item, err := store.GetItem(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	var upd model.ItemUpdate
	if err := decodeJSON(r, &upd); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item.ApplyUpdate(upd, time.Now().UTC())

	if err := item.Validate(); err != nil {
		jsonModelError(w, err, "invalid item")
		return
	}

	if err := store.UpdateItem(r.Context(), h.DB, item); err != nil {
		jsonModelError(w, err, "failed to update item")
		return
	}

	jsonResponse(w, http.StatusOK, newItemResponse(item))
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := store.DeleteItem(r.Context(), h.DB, r.PathValue("id")); err != nil {
		jsonModelError(w, err, "failed to delete item")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}
