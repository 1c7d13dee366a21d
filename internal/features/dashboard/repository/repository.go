package repository

import (
	"context"

	"networth-tracker/internal/features/dashboard/models"
)

type DashboardRepository interface {
	Items(ctx context.Context) ([]models.Item, error)
	SaveItems(ctx context.Context, items []models.Item) error
	History(ctx context.Context) (models.History, error)
	SaveHistory(ctx context.Context, h models.History) error
	// Reset drops everything; the next read starts from the demo data again.
	Reset(ctx context.Context) error
}
