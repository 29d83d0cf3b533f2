package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"portfolio/internal/models"
	"portfolio/internal/publisher"
	"portfolio/internal/repository"
)

type ContactRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Email       string  `json:"email" validate:"required,email,max=254"`
	Company     *string `json:"company" validate:"omitempty,max=200"`
	ProjectType *string `json:"projectType" validate:"omitempty,max=100"`
	Budget      *string `json:"budget" validate:"omitempty,max=100"`
	Message     string  `json:"message" validate:"required,max=5000"`
}

// ContactService stores inbound contact form submissions. Nothing in this
// service reads them back.
type ContactService interface {
	Submit(ctx context.Context, req ContactRequest) (*models.ContactSubmission, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
	publisher   EventPublisher
	validate    *validator.Validate
	logger      *slog.Logger
}

func NewContactService(contactRepo repository.ContactRepository, pub EventPublisher, logger *slog.Logger) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		publisher:   pub,
		validate:    NewValidator(),
		logger:      logger,
	}
}

func (s *contactService) Submit(ctx context.Context, req ContactRequest) (*models.ContactSubmission, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	submission := &models.ContactSubmission{
		Name:        req.Name,
		Email:       req.Email,
		Company:     blankToNil(req.Company),
		ProjectType: blankToNil(req.ProjectType),
		Budget:      blankToNil(req.Budget),
		Message:     req.Message,
		Status:      models.ContactStatusNew,
	}

	if err := s.contactRepo.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("submit contact: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, publisher.NewEvent(publisher.EventContactSubmitted, submission)); err != nil {
			s.logger.Warn("failed to publish contact event", "id", submission.ID, "error", err)
		}
	}

	return submission, nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
