package api

import (
	"net/http"
	"time"

	"github.com/Lucas1201-cloud/New-Vinted/internal/alerts"
)

// TasksHandler exposes on-demand alert sweeps.
type TasksHandler struct {
	Engine *alerts.Engine
}

type sweepResponse struct {
	Created int `json:"created"`
}

// CheckRenewals handles POST /api/tasks/check-renewals.
func (h *TasksHandler) CheckRenewals(w http.ResponseWriter, r *http.Request) {
	created, err := h.Engine.EvaluateRenewals(r.Context(), time.Now().UTC())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to check renewals")
		return
	}
	jsonResponse(w, http.StatusOK, sweepResponse{Created: created})
}

// CheckROIAlerts handles POST /api/tasks/check-roi-alerts.
func (h *TasksHandler) CheckROIAlerts(w http.ResponseWriter, r *http.Request) {
	created, err := h.Engine.EvaluateProfitAlerts(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to check roi alerts")
		return
	}
	jsonResponse(w, http.StatusOK, sweepResponse{Created: created})
}
