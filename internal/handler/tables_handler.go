package handlers

import (
	"net/http"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// TablesHandler returns models.StoreStats.
func (h *Handlers) TablesHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.TablesService.GetStoreStats(r.Context())
	if err != nil {
		h.Logger.Error("store stats failed", "error", err)
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, stats, http.StatusOK)
}

// HealthHandler reports degraded when the database is unreachable. Public
// reads still work without it.
func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if h.DB == nil {
		writeJSON(w, HealthResponse{Status: "degraded", Database: "not configured"}, http.StatusServiceUnavailable)
		return
	}

	if err := h.DB.HealthCheck(); err != nil {
		h.Logger.Warn("health check failed", "error", err)
		writeJSON(w, HealthResponse{Status: "degraded", Database: "unreachable"}, http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, HealthResponse{Status: "ok", Database: "ok"}, http.StatusOK)
}
