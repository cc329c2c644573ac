package handlers

import (
	"net/http"

	"github.com/Hop-Syder/nexus-connect-t4/internal/services"
)

// GetStats serves the landing-page aggregate counters.
func GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := services.GetStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Root serves the API banner.
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Nexus Connect API",
		"version": "1.0.0",
		"status":  "operational",
	})
}
