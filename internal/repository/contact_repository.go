package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"portfolio/internal/models"
)

type ContactRepositoryImpl struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) *ContactRepositoryImpl {
	return &ContactRepositoryImpl{db: db}
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, submission *models.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions
		(id, name, email, company, project_type, budget, message, status, created_at, responded_at)
		VALUES
		(:id, :name, :email, :company, :project_type, :budget, :message, :status, :created_at, :responded_at)
	`

	if submission.ID == "" {
		submission.ID = uuid.New().String()
	}
	if submission.Status == "" {
		submission.Status = models.ContactStatusNew
	}
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now()
	}

	if _, err := r.db.NamedExecContext(ctx, query, submission); err != nil {
		return fmt.Errorf("error saving contact submission: %w", err)
	}

	return nil
}
