package handlers

import "net/http"

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// Health returns a 200 for liveness/readiness probes.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: isoTimestamp(h.Now()),
		Service:   ServiceName,
	})
}
