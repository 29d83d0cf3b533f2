package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"portfolio/internal/service"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type ImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	MimeType string `json:"mimeType"`
}

type DeleteImageRequest struct {
	URL string `json:"url" validate:"required,url"`
}

func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	// size limit from config
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, fmt.Sprintf("file too large (max %d MB)", h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "failed to read upload", http.StatusBadRequest)
		}
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// check format
	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		WriteError(w, "unsupported file type, allowed: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}

	url, err := h.Images.Upload(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		if errors.Is(err, service.ErrNoStorage) {
			WriteError(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		h.Logger.Error("image upload failed", "error", err)
		WriteError(w, "failed to upload image", http.StatusInternalServerError)
		return
	}

	writeJSON(w, ImageResponse{
		URL:      url,
		FileName: header.Filename,
		FileSize: header.Size,
		MimeType: contentType,
	}, http.StatusCreated)
}

func (h *Handlers) DeleteImage(w http.ResponseWriter, r *http.Request) {
	var req DeleteImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "url is required", http.StatusBadRequest)
		return
	}

	if err := h.Images.Delete(r.Context(), req.URL); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			WriteError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrNoStorage):
			WriteError(w, err.Error(), http.StatusServiceUnavailable)
		default:
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, MessageResponse{Message: "image deleted"}, http.StatusOK)
}
