package api

import (
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Lucas1201-cloud/New-Vinted/internal/csvio"
	"github.com/Lucas1201-cloud/New-Vinted/internal/model"
	"github.com/Lucas1201-cloud/New-Vinted/internal/store"
)

// BulkHandler handles CSV import and export.
type BulkHandler struct {
	DB *sql.DB
}

type importResponse struct {
	Accepted      []model.Item `json:"accepted"`
	RejectedCount int          `json:"rejected_count"`
}

// Import handles POST /api/items/import with a text/csv body.
func (h *BulkHandler) Import(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, 10<<20))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	if len(body) == 0 {
		jsonError(w, http.StatusBadRequest, "csv body required")
		return
	}

	items, rejected := csvio.Parse(string(body))

	now := time.Now().UTC()
	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].Status = model.StatusDraft
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
	}

	stored, err := store.CreateItems(r.Context(), h.DB, items)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to import items")
		return
	}
	// Rows the store could not insert count as rejected too.
	rejected += len(items) - len(stored)
	if stored == nil {
		stored = []model.Item{}
	}

	slog.Info("csv import finished", "accepted", len(stored), "rejected", rejected)
	jsonResponse(w, http.StatusOK, importResponse{Accepted: stored, RejectedCount: rejected})
}

// Export handles GET /api/items/export, returning the whole inventory as
// CSV.
func (h *BulkHandler) Export(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListItems(r.Context(), h.DB, store.ItemFilter{})
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}

	out, err := csvio.Serialize(items)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to serialize items")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="vinted_items.csv"`)
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, out)
}
