package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"portfolio/internal/repository"
	"portfolio/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError sends {"error": message} with the given status.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, ErrorResponse{Error: message}, statusCode)
}

func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data) //nolint:errcheck
}

// writeMutationError passes the store's message through to the admin.
func writeMutationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, repository.ErrSlugTaken):
		WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrInvalidInput):
		WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
