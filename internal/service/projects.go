package service

import (
	"context"
	"fmt"

	"portfolio/internal/models"
	"portfolio/internal/repository"
)

// ProjectService lists the relational projects table for the admin view.
type ProjectService interface {
	ListProjects(ctx context.Context, featured *bool) ([]models.Project, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
}

func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

func (s *projectService) ListProjects(ctx context.Context, featured *bool) ([]models.Project, error) {
	q := repository.Query{Filter: map[string]any{}, OrderBy: "sort_order"}
	if featured != nil {
		q.Filter["featured"] = *featured
	}

	projects, err := s.projectRepo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}
