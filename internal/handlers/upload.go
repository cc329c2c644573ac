package handlers

import (
	"net/http"

	"github.com/Hop-Syder/nexus-connect-t4/internal/config"
	"github.com/Hop-Syder/nexus-connect-t4/internal/models"
	"github.com/Hop-Syder/nexus-connect-t4/internal/services"
)

var cloudinaryService *services.CloudinaryService

func InitCloudinaryService(cfg *config.Config) error {
	service, err := services.NewCloudinaryService(
		cfg.CloudinaryName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return err
	}
	cloudinaryService = service
	return nil
}

type UploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
}

// UploadLogo uploads a profile logo to Cloudinary. Same 2 MB cap as the
// inline-blob path.
func UploadLogo(w http.ResponseWriter, r *http.Request) {
	if cloudinaryService == nil {
		writeError(w, http.StatusInternalServerError, "File upload service not available")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, models.MaxLogoBytes+(512<<10))
	if err := r.ParseMultipartForm(models.MaxLogoBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to parse form: "+err.Error())
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	if fileHeader.Size > models.MaxLogoBytes {
		writeError(w, http.StatusBadRequest, "Le fichier est trop volumineux (max 2MB)")
		return
	}

	url, err := cloudinaryService.UploadImageFromHeader(r.Context(), fileHeader, "nexus-connect/logos")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{
		Success: true,
		Message: "File uploaded successfully",
		URL:     url,
	})
}
