package handlers

import (
	"log"
	"net/http"
	"path/filepath"

	"campus-server/shared"

	"github.com/google/uuid"
)

const maxUploadBytes = 10 << 20 // 10 MB

// UploadImageHandler stores a multipart image and returns the URL to use as a
// post's image_url.
func (a *ApiHandler) UploadImageHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for UploadImageHandler")

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Printf("Error parsing multipart form: %v\n", err)
		http.Error(w, "Error parsing multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeApiError(w, shared.ApiError{
			Type:   shared.ApiErrorTypeValidation,
			Status: http.StatusBadRequest,
			Msg:    "Image file required",
		})
		return
	}
	defer file.Close()

	name := uuid.NewString() + filepath.Ext(header.Filename)

	url, err := a.Images.Store(r.Context(), name, file)
	if err != nil {
		log.Printf("Error storing image: %v\n", err)
		http.Error(w, "Error storing image: "+err.Error(), http.StatusInternalServerError)
		return
	}

	log.Println("Successfully processed request for UploadImageHandler")

	writeJson(w, shared.UploadImageResponse{Url: url})
}
