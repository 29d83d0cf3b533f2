package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"portfolio/internal/models"
	"portfolio/internal/service"
)

type LoginRequest struct {
	Secret string `json:"secret" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// MutationResponse returns the changed post together with the refreshed
// admin list.
type MutationResponse struct {
	Post  *models.Post  `json:"post,omitempty"`
	Posts []models.Post `json:"posts"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "secret is required", http.StatusBadRequest)
		return
	}

	token, expiresAt, err := h.AuthGate.Login(req.Secret)
	if err != nil {
		if errors.Is(err, service.ErrAuthFailed) {
			WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}
		h.Logger.Error("admin login failed", "error", err)
		WriteError(w, "login unavailable", http.StatusInternalServerError)
		return
	}

	writeJSON(w, LoginResponse{Token: token, ExpiresAt: expiresAt}, http.StatusOK)
}

func (h *Handlers) ListAdminPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	published, err := parseBoolParam(query.Get("published"))
	if err != nil {
		WriteError(w, "published must be a boolean", http.StatusBadRequest)
		return
	}
	featured, err := parseBoolParam(query.Get("featured"))
	if err != nil {
		WriteError(w, "featured must be a boolean", http.StatusBadRequest)
		return
	}
	limit, err := parseLimit(query.Get("limit"))
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	posts, err := h.PostService.ListAdminPosts(r.Context(), service.AdminPostFilter{
		Published: published,
		Featured:  featured,
		Limit:     limit,
	})
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, PostsResponse{Posts: posts}, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req service.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.PostService.Create(r.Context(), req)
	if err != nil {
		writeMutationError(w, err)
		return
	}

	h.writeMutation(w, r, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	var req service.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.PostService.Update(r.Context(), postID, req)
	if err != nil {
		writeMutationError(w, err)
		return
	}

	h.writeMutation(w, r, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	if err := h.PostService.Delete(r.Context(), postID); err != nil {
		writeMutationError(w, err)
		return
	}

	h.writeMutation(w, r, nil, http.StatusOK)
}

func (h *Handlers) TogglePublished(w http.ResponseWriter, r *http.Request) {
	post, err := h.PostService.TogglePublished(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeMutationError(w, err)
		return
	}

	h.writeMutation(w, r, post, http.StatusOK)
}

func (h *Handlers) ToggleFeatured(w http.ResponseWriter, r *http.Request) {
	post, err := h.PostService.ToggleFeatured(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeMutationError(w, err)
		return
	}

	h.writeMutation(w, r, post, http.StatusOK)
}

// writeMutation re-reads the admin list so the caller sees the store's view
// after the write.
func (h *Handlers) writeMutation(w http.ResponseWriter, r *http.Request, post *models.Post, statusCode int) {
	posts, err := h.PostService.ListAdminPosts(r.Context(), service.AdminPostFilter{})
	if err != nil {
		h.Logger.Warn("admin list refresh failed", "error", err)
		posts = nil
	}

	writeJSON(w, MutationResponse{Post: post, Posts: posts}, statusCode)
}

func (h *Handlers) ListAdminProjects(w http.ResponseWriter, r *http.Request) {
	featured, err := parseBoolParam(r.URL.Query().Get("featured"))
	if err != nil {
		WriteError(w, "featured must be a boolean", http.StatusBadRequest)
		return
	}

	projects, err := h.Projects.ListProjects(r.Context(), featured)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, ProjectsResponse{Projects: projects}, http.StatusOK)
}
