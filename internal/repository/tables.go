package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"portfolio/internal/models"
)

const statsQuery = `
	SELECT
		(SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = 'public') AS tables,
		(SELECT COUNT(*) FROM posts) AS posts,
		(SELECT COUNT(*) FROM posts WHERE NOT published) AS drafts,
		(SELECT COUNT(*) FROM projects) AS projects,
		(SELECT COUNT(*) FROM contact_submissions) AS contact_submissions
`

type tablesRepository struct {
	db *sqlx.DB
}

func NewTablesRepository(db *sqlx.DB) TablesRepository {
	return &tablesRepository{db: db}
}

// Stats counts the public schema's tables and the rows of each content table
// in one round trip.
func (r *tablesRepository) Stats(ctx context.Context) (*models.StoreStats, error) {
	var stats models.StoreStats
	if err := r.db.GetContext(ctx, &stats, statsQuery); err != nil {
		return nil, fmt.Errorf("error reading store stats: %w", err)
	}

	return &stats, nil
}
