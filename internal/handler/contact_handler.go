package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"portfolio/internal/service"
)

type ContactResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (h *Handlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req service.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	submission, err := h.Contact.Submit(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.Logger.Error("contact submission failed", "error", err)
		WriteError(w, "failed to submit contact form", http.StatusInternalServerError)
		return
	}

	writeJSON(w, ContactResponse{ID: submission.ID, Status: submission.Status}, http.StatusCreated)
}
