package handlers

import (
	"encoding/json"
	"net/http"
)

// errorResponse carries a failure message. "detail" is what browser clients
// surface to the user.
type errorResponse struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Success: false, Detail: detail})
}
