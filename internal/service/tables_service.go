package service

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/repository"
)

// TablesService reports row counts for the operator endpoint.
type TablesService interface {
	GetStoreStats(ctx context.Context) (*models.StoreStats, error)
}

type tablesService struct {
	tablesRepo repository.TablesRepository
}

func NewTablesService(tablesRepo repository.TablesRepository) TablesService {
	return &tablesService{tablesRepo: tablesRepo}
}

func (t *tablesService) GetStoreStats(ctx context.Context) (*models.StoreStats, error) {
	return t.tablesRepo.Stats(ctx)
}
