package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/Lucas1201-cloud/New-Vinted/internal/stats"
	"github.com/Lucas1201-cloud/New-Vinted/internal/store"
)

// DashboardHandler handles the dashboard and analytics endpoints.
type DashboardHandler struct {
	DB *sql.DB
}

// Stats handles GET /api/dashboard/stats.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListItems(r.Context(), h.DB, store.ItemFilter{})
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	jsonResponse(w, http.StatusOK, stats.Compute(items, time.Now().UTC()))
}

// Performance handles GET /api/analytics/performance/{id}.
func (h *DashboardHandler) Performance(w http.ResponseWriter, r *http.Request) {
	item, err := store.GetItem(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, stats.ItemPerformance(item, time.Now().UTC()))
}

type marketTrend struct {
	Brand           string  `json:"brand"`
	TrendPercentage float64 `json:"trend_percentage"`
	Message         string  `json:"message"`
}

// Trends handles GET /api/analytics/trends. There is no external market
// data feed yet, so this returns sample trend data.
func (h *DashboardHandler) Trends(w http.ResponseWriter, r *http.Request) {
	trends := []marketTrend{
		{
			Brand:           "Stone Island",
			TrendPercentage: 35.0,
			Message:         "Stone Island is trending up +35% - consider stocking more",
		},
		{
			Brand:           "Armani",
			TrendPercentage: 25.0,
			Message:         "Armani is trending up +25% - consider stocking more",
		},
	}
	jsonResponse(w, http.StatusOK, trends)
}
