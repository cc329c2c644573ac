package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Hop-Syder/nexus-connect-t4/internal/models"
	"github.com/Hop-Syder/nexus-connect-t4/internal/services"
)

type contextKey string

const userContextKey contextKey = "currentUser"

// RequireAuth validates the bearer token, loads the user, and stores it in the
// request context. Requests without a valid credential get 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			unauthorized(w)
			return
		}

		userID, err := services.ParseAccessToken(token)
		if err != nil {
			unauthorized(w)
			return
		}

		user, err := services.FindUserByID(r.Context(), userID)
		if err != nil {
			unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentUser returns the authenticated user placed by RequireAuth, or nil.
func CurrentUser(r *http.Request) *models.User {
	user, _ := r.Context().Value(userContextKey).(*models.User)
	return user
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"success":false,"detail":"Could not validate credentials"}`))
}
