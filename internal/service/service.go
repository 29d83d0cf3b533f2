package service

import (
	"log/slog"

	"portfolio/internal/config"
	"portfolio/internal/repository"
	"portfolio/internal/storage"
)

type Service struct {
	Resolver ContentResolver
	Auth     AuthGate
	Posts    AdminPostService
	Projects ProjectService
	Contact  ContactService
	Images   ImageService
	Tables   TablesService
}

// NewService wires every service. storage and pub may be nil when the
// corresponding backend is not configured.
func NewService(
	rep *repository.Repository,
	source ContentSource,
	static StaticPosts,
	storage storage.Storage,
	pub EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) *Service {
	return &Service{
		Resolver: NewContentResolver(source, static, logger),
		Auth:     NewAuthGate(cfg.Admin),
		Posts:    NewAdminPostService(rep.Post, pub, cfg.Admin.DefaultAuthor, logger),
		Projects: NewProjectService(rep.Project),
		Contact:  NewContactService(rep.Contact, pub, logger),
		Images:   NewImageService(storage, logger),
		Tables:   NewTablesService(rep.Tables),
	}
}
