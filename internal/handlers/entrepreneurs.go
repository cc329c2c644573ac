package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Hop-Syder/nexus-connect-t4/internal/database"
	"github.com/Hop-Syder/nexus-connect-t4/internal/middleware"
	"github.com/Hop-Syder/nexus-connect-t4/internal/models"
	"github.com/Hop-Syder/nexus-connect-t4/internal/services"
)

// CreateEntrepreneur publishes a completed wizard draft for the current user.
func CreateEntrepreneur(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r)

	var req models.EntrepreneurCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ent, err := services.CreateEntrepreneur(r.Context(), user.ID, &req)
	if err == services.ErrAlreadyHasProfile {
		writeError(w, http.StatusBadRequest, "User already has a profile")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ent)
}

// ListEntrepreneurs serves the directory query. Contact fields are never part
// of the payload.
func ListEntrepreneurs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := services.ListParams{
		Search:      q.Get("search"),
		Location:    q.Get("location"),
		City:        q.Get("city"),
		ProfileType: q.Get("profileType"),
		Sort:        q.Get("sort"),
	}
	if tags := q.Get("tags"); tags != "" {
		for _, t := range strings.Split(tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				params.Tags = append(params.Tags, t)
			}
		}
	}
	if v := q.Get("minRating"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.MinRating = f
		}
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			params.Limit = n
		}
	}
	if v := q.Get("skip"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			params.Skip = n
		}
	}

	results, err := services.ListEntrepreneurs(r.Context(), params)
	if err != nil {
		log.Printf("ERROR: entrepreneur list query failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch entrepreneurs")
		return
	}

	writeJSON(w, http.StatusOK, results)
}

// GetEntrepreneur serves one public profile.
func GetEntrepreneur(w http.ResponseWriter, r *http.Request) {
	ent, err := services.GetEntrepreneur(r.Context(), chi.URLParam(r, "id"))
	if err == services.ErrNotFound {
		writeError(w, http.StatusNotFound, "Entrepreneur not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch entrepreneur")
		return
	}
	writeJSON(w, http.StatusOK, ent)
}

// GetEntrepreneurContact reveals one listing's contact fields on demand. Each
// reveal is recorded for abuse review.
func GetEntrepreneurContact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	info, err := services.GetContactInfo(r.Context(), id)
	if err == services.ErrNotFound {
		writeError(w, http.StatusNotFound, "Entrepreneur not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch contact info")
		return
	}

	// Audit trail; reveal must not fail if the insert does
	if _, err := database.PostgresDB.Exec(`
		INSERT INTO contact_reveals (id, created_at, entrepreneur_id, ip_address)
		VALUES ($1, $2, $3, $4)
	`, uuid.New(), time.Now(), id, services.GetIPAddress(r)); err != nil {
		log.Printf("WARNING: failed to record contact reveal: %v", err)
	}

	writeJSON(w, http.StatusOK, info)
}

// GetMyProfile returns the current user's own published profile.
func GetMyProfile(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r)

	ent, err := services.GetEntrepreneurByUser(r.Context(), user.ID)
	if err == services.ErrNotFound {
		writeError(w, http.StatusNotFound, "Profile not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	writeJSON(w, http.StatusOK, ent)
}

// UpdateEntrepreneur replaces an existing profile. Owner only.
func UpdateEntrepreneur(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r)

	var req models.EntrepreneurCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ent, err := services.UpdateEntrepreneur(r.Context(), chi.URLParam(r, "id"), user.ID, &req)
	if err == services.ErrNotFound {
		writeError(w, http.StatusForbidden, "Not authorized to update this profile")
		return
	}
	if err != nil {
		if err.Error() == "not authorized to update this profile" {
			writeError(w, http.StatusForbidden, "Not authorized to update this profile")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ent)
}
