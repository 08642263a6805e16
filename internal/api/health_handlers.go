package api

import (
	"net/http"
)

// HealthResponse is the body returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health handles GET /health. The core has no external dependencies to
// probe, so a running process is a healthy one.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}
