package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/models"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestBuildSelect(t *testing.T) {
	allowed := map[string]bool{"a": true, "b": true}

	tests := []struct {
		name     string
		q        Query
		wantSQL  string
		wantArgs []any
		wantErr  bool
	}{
		{
			name:     "bare",
			wantSQL:  "SELECT a, b FROM t",
			wantArgs: []any{},
		},
		{
			name:     "filters are sorted",
			q:        Query{Filter: map[string]any{"b": 2, "a": 1}},
			wantSQL:  "SELECT a, b FROM t WHERE a = $1 AND b = $2",
			wantArgs: []any{1, 2},
		},
		{
			name:     "order and limit",
			q:        Query{OrderBy: "b", Limit: 3},
			wantSQL:  "SELECT a, b FROM t ORDER BY b LIMIT $1",
			wantArgs: []any{3},
		},
		{
			name:    "unknown order column",
			q:       Query{OrderBy: "c"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := buildSelect("t", "a, b", allowed, tt.q)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestProjectRepository_List(t *testing.T) {
	db, mock := newMock(t)
	repo := NewProjectRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "title", "description", "image", "technologies", "github_url", "demo_url", "featured", "sort_order",
	}).AddRow("p1", "Site", "My site", "img.png", "{go,postgres}", "https://github.com/x", nil, true, 1)

	mock.ExpectQuery("SELECT " + projectColumns + " FROM projects WHERE featured = $1 ORDER BY sort_order").
		WithArgs(true).
		WillReturnRows(rows)

	projects, err := repo.List(context.Background(), Query{
		Filter:  map[string]any{"featured": true},
		OrderBy: "sort_order",
	})

	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, []string{"go", "postgres"}, projects[0].Technologies)
	require.NotNil(t, projects[0].GithubURL)
	assert.Nil(t, projects[0].DemoURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewContactRepository(sqlx.NewDb(db, "sqlmock"))

	t.Run("fills defaults", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO contact_submissions`).
			WithArgs(sqlmock.AnyArg(), "Ada", "ada@example.com", nil, nil, nil, "Hi", "new", sqlmock.AnyArg(), nil).
			WillReturnResult(sqlmock.NewResult(1, 1))

		submission := &models.ContactSubmission{Name: "Ada", Email: "ada@example.com", Message: "Hi"}
		err := repo.Create(context.Background(), submission)

		require.NoError(t, err)
		assert.NotEmpty(t, submission.ID)
		assert.Equal(t, models.ContactStatusNew, submission.Status)
		assert.False(t, submission.CreatedAt.IsZero())
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO contact_submissions`).WillReturnError(errors.New("boom"))

		err := repo.Create(context.Background(), &models.ContactSubmission{Name: "Ada"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error saving contact submission")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTablesRepository_Stats(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(statsQuery).WillReturnRows(
		sqlmock.NewRows([]string{"tables", "posts", "drafts", "projects", "contact_submissions"}).
			AddRow(3, 12, 2, 5, 40),
	)

	stats, err := NewTablesRepository(db).Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.StoreStats{Tables: 3, Posts: 12, Drafts: 2, Projects: 5, ContactSubmissions: 40}, *stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTablesRepository_StatsError(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(statsQuery).WillReturnError(errors.New("relation \"posts\" does not exist"))

	_, err := NewTablesRepository(db).Stats(context.Background())
	assert.ErrorContains(t, err, "error reading store stats")
}
