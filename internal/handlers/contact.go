package handlers

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/Hop-Syder/nexus-connect-t4/internal/database"
	"github.com/Hop-Syder/nexus-connect-t4/internal/services"
)

// SubmitContactRequest is a general inquiry from the public contact form.
type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContactResponse acknowledges a stored inquiry.
type SubmitContactResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
}

// SubmitContact stores a contact-form inquiry.
func SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req SubmitContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		writeError(w, http.StatusBadRequest, "A valid email is required")
		return
	}
	if req.Subject == "" {
		writeError(w, http.StatusBadRequest, "Subject is required")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	id := uuid.New()
	ipAddress := services.GetIPAddress(r)

	_, err := database.PostgresDB.Exec(`
		INSERT INTO contact_messages (id, created_at, name, email, subject, message, status, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6, 'new', $7)
	`, id, time.Now(), req.Name, req.Email, req.Subject, req.Message, ipAddress)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}

	writeJSON(w, http.StatusCreated, SubmitContactResponse{
		Success: true,
		ID:      id.String(),
		Message: "Contact form submitted successfully. We'll get back to you soon!",
	})
}
