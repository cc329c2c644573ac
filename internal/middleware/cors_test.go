package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func corsHandler() http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return CORS([]string{"http://localhost:3000", " https://Nexus-Connect.app "})(next)
}

func TestCORSEchoesAllowedOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("Origin", "https://nexus-connect.app")
	rec := httptest.NewRecorder()

	corsHandler().ServeHTTP(rec, req)

	assert.Equal(t, "https://nexus-connect.app", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCORSIgnoresUnknownOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()

	corsHandler().ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusNoContent, rec.Code, "request itself still runs")
}

func TestCORSAnswersPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/entrepreneurs", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	corsHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, "preflight never reaches later middleware")
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PUT")
}
