package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"portfolio/internal/config"
	"portfolio/internal/service"
)

// HealthChecker reports whether the relational store is reachable.
type HealthChecker interface {
	HealthCheck() error
}

type Handlers struct {
	Resolver      service.ContentResolver
	AuthGate      service.AuthGate
	PostService   service.AdminPostService
	Projects      service.ProjectService
	Contact       service.ContactService
	Images        service.ImageService
	TablesService service.TablesService
	DB            HealthChecker
	Cfg           *config.Config
	Validate      *validator.Validate
	Logger        *slog.Logger
}

func NewHandlers(svc *service.Service, db HealthChecker, config *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		Resolver:      svc.Resolver,
		AuthGate:      svc.Auth,
		PostService:   svc.Posts,
		Projects:      svc.Projects,
		Contact:       svc.Contact,
		Images:        svc.Images,
		TablesService: svc.Tables,
		DB:            db,
		Cfg:           config,
		Validate:      service.NewValidator(),
		Logger:        logger,
	}
}

// Routes registers every endpoint. adminOnly wraps the admin subrouter,
// except for login.
func (h *Handlers) Routes(adminOnly mux.MiddlewareFunc) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/tables", h.TablesHandler).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/posts", h.GetPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/{slug}", h.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/thoughts", h.GetThoughts).Methods(http.MethodGet)
	api.HandleFunc("/projects", h.GetProjects).Methods(http.MethodGet)
	api.HandleFunc("/settings", h.GetSettings).Methods(http.MethodGet)
	api.HandleFunc("/categories", h.GetCategories).Methods(http.MethodGet)
	api.HandleFunc("/contact", h.SubmitContact).Methods(http.MethodPost)

	api.HandleFunc("/admin/login", h.Login).Methods(http.MethodPost)

	admin := api.PathPrefix("/admin").Subrouter()
	if adminOnly != nil {
		admin.Use(adminOnly)
	}
	admin.HandleFunc("/posts", h.ListAdminPosts).Methods(http.MethodGet)
	admin.HandleFunc("/posts", h.CreatePost).Methods(http.MethodPost)
	admin.HandleFunc("/posts/{id}", h.UpdatePost).Methods(http.MethodPut)
	admin.HandleFunc("/posts/{id}", h.DeletePost).Methods(http.MethodDelete)
	admin.HandleFunc("/posts/{id}/published", h.TogglePublished).Methods(http.MethodPatch)
	admin.HandleFunc("/posts/{id}/featured", h.ToggleFeatured).Methods(http.MethodPatch)
	admin.HandleFunc("/images", h.UploadImage).Methods(http.MethodPost)
	admin.HandleFunc("/images", h.DeleteImage).Methods(http.MethodDelete)
	admin.HandleFunc("/projects", h.ListAdminProjects).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "not found", http.StatusNotFound)
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	return router
}
