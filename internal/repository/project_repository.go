package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"portfolio/internal/models"
)

const projectColumns = `id, title, description, image, technologies, github_url, demo_url, featured, sort_order`

var projectFilterColumns = map[string]bool{
	"id":         true,
	"featured":   true,
	"sort_order": true,
	"title":      true,
}

type projectRow struct {
	models.Project
	Technologies pq.StringArray `db:"technologies"`
}

type ProjectRepositoryImpl struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) *ProjectRepositoryImpl {
	return &ProjectRepositoryImpl{db: db}
}

func (r *ProjectRepositoryImpl) List(ctx context.Context, q Query) ([]models.Project, error) {
	query, args, err := buildSelect("projects", projectColumns, projectFilterColumns, q)
	if err != nil {
		return nil, err
	}

	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}

	projects := make([]models.Project, 0, len(rows))
	for _, row := range rows {
		project := row.Project
		project.Technologies = []string(row.Technologies)
		projects = append(projects, project)
	}

	return projects, nil
}
