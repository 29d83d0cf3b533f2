package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"portfolio/internal/models"
	"portfolio/internal/service"
)

const maxListLimit = 100

type PostsResponse struct {
	Posts []models.Post `json:"posts"`
}

type ThoughtsResponse struct {
	Thoughts []models.Thought `json:"thoughts"`
}

type ProjectsResponse struct {
	Projects []models.Project `json:"projects"`
}

type SettingsResponse struct {
	Settings *models.SiteSettings `json:"settings"`
}

type CategoriesResponse struct {
	Categories []models.Category `json:"categories"`
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

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

	posts := h.Resolver.ResolvePublicPosts(r.Context(), service.PostQuery{
		Category:     query.Get("category"),
		Tag:          query.Get("tag"),
		FeaturedOnly: featured != nil && *featured,
		Limit:        limit,
	})

	writeJSON(w, PostsResponse{Posts: posts}, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	post, err := h.Resolver.ResolvePublicPost(r.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			WriteError(w, "post not found", http.StatusNotFound)
			return
		}
		WriteError(w, "failed to load post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, post, http.StatusOK)
}

func (h *Handlers) GetThoughts(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	thoughts := h.Resolver.ResolveThoughts(r.Context(), limit)
	writeJSON(w, ThoughtsResponse{Thoughts: thoughts}, http.StatusOK)
}

func (h *Handlers) GetProjects(w http.ResponseWriter, r *http.Request) {
	featured, err := parseBoolParam(r.URL.Query().Get("featured"))
	if err != nil {
		WriteError(w, "featured must be a boolean", http.StatusBadRequest)
		return
	}

	projects := h.Resolver.ResolveProjects(r.Context(), featured != nil && *featured)
	writeJSON(w, ProjectsResponse{Projects: projects}, http.StatusOK)
}

func (h *Handlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings := h.Resolver.ResolveSiteSettings(r.Context())
	writeJSON(w, SettingsResponse{Settings: settings}, http.StatusOK)
}

func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.Resolver.ResolveCategories(r.Context())
	writeJSON(w, CategoriesResponse{Categories: categories}, http.StatusOK)
}

// parseBoolParam returns nil for an absent parameter.
func parseBoolParam(value string) (*bool, error) {
	if value == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func parseLimit(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(value)
	if err != nil || limit < 0 {
		return 0, errors.New("limit must be a non-negative integer")
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return limit, nil
}
