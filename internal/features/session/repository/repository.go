package repository

import (
	"context"

	"networth-tracker/internal/features/session/models"
)

// SessionRepository persists the single onboarded user record.
type SessionRepository interface {
	// Load returns the raw persisted value, or kv.ErrNotFound.
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, user *models.UserRecord) error
	Clear(ctx context.Context) error
}
