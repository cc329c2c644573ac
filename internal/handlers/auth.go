package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/mail"

	"github.com/Hop-Syder/nexus-connect-t4/internal/middleware"
	"github.com/Hop-Syder/nexus-connect-t4/internal/models"
	"github.com/Hop-Syder/nexus-connect-t4/internal/services"
	"github.com/Hop-Syder/nexus-connect-t4/pkg/utils"
)

// RegisterRequest is the email+password registration payload.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// LoginRequest is the email+password login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FirebaseLoginRequest carries a provider ID token to exchange for an
// application session credential.
type FirebaseLoginRequest struct {
	IDToken string `json:"idToken"`
}

// Register handles direct email+password registration.
func Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		writeError(w, http.StatusBadRequest, "A valid email is required")
		return
	}
	if len(req.Password) < 6 {
		writeError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	if _, err := services.FindUserByEmail(r.Context(), req.Email); err == nil {
		writeError(w, http.StatusBadRequest, "Email already registered")
		return
	} else if err != services.ErrUserNotFound {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user, err := services.CreateUser(r.Context(), req.Email, hashed, req.FirstName, req.LastName, "")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	respondWithToken(w, user)
}

// Login handles direct email+password login.
func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := services.FindUserByEmail(r.Context(), req.Email)
	if err == services.ErrUserNotFound {
		writeError(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	valid, err := utils.VerifyPassword(req.Password, user.Password)
	if err != nil || !valid {
		writeError(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}

	respondWithToken(w, user)
}

// FirebaseLogin exchanges a verified provider ID token for an application
// session credential, creating the account on first sign-in.
func FirebaseLogin(w http.ResponseWriter, r *http.Request) {
	var req FirebaseLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	identity, err := services.VerifyFirebaseToken(r.Context(), req.IDToken)
	if err != nil {
		log.Printf("Firebase auth error: %v", err)
		writeError(w, http.StatusUnauthorized, "Firebase authentication failed")
		return
	}

	user, err := services.FindUserByEmail(r.Context(), identity.Email)
	switch {
	case err == services.ErrUserNotFound:
		first, last := services.SplitName(identity.Name)
		user, err = services.CreateUser(r.Context(), identity.Email, "", first, last, identity.UID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to create user")
			return
		}
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	default:
		if user.GoogleID == "" {
			if err := services.SetGoogleID(r.Context(), user.ID, identity.UID); err != nil {
				writeError(w, http.StatusInternalServerError, "Database error")
				return
			}
			user.GoogleID = identity.UID
		}
	}

	respondWithToken(w, user)
}

// GetMe resolves the current user from the stored session credential.
func GetMe(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	writeJSON(w, http.StatusOK, user.Public())
}

func respondWithToken(w http.ResponseWriter, user *models.User) {
	token, err := services.CreateAccessToken(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create session credential")
		return
	}
	writeJSON(w, http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.Public(),
	})
}
