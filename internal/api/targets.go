package api

import (
	"database/sql"
	"net/http"

	"github.com/Lucas1201-cloud/New-Vinted/internal/alerts"
	"github.com/Lucas1201-cloud/New-Vinted/internal/store"
)

// TargetsHandler handles the ROI target setting.
type TargetsHandler struct {
	DB *sql.DB
}

type roiTargetPayload struct {
	TargetROI float64 `json:"target_roi"`
}

// Get handles GET /api/roi-target.
func (h *TargetsHandler) Get(w http.ResponseWriter, r *http.Request) {
	target, err := store.GetROITarget(r.Context(), h.DB, alerts.DefaultROITarget)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get roi target")
		return
	}
	jsonResponse(w, http.StatusOK, roiTargetPayload{TargetROI: target})
}

// Set handles PUT /api/roi-target.
func (h *TargetsHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req roiTargetPayload
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TargetROI < 0 {
		jsonError(w, http.StatusBadRequest, "target must not be negative")
		return
	}

	if err := store.SetROITarget(r.Context(), h.DB, req.TargetROI); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to set roi target")
		return
	}
	jsonResponse(w, http.StatusOK, roiTargetPayload{TargetROI: req.TargetROI})
}
