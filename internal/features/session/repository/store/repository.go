package store

import (
	"context"
	"encoding/json"
	"fmt"

	"networth-tracker/internal/features/session/models"
	"networth-tracker/internal/features/session/repository"
	"networth-tracker/internal/platform/kv"
)

// sessionRepository keeps the user record as JSON under one fixed key.
type sessionRepository struct {
	store kv.Store
	key   string
}

func NewSessionRepository(store kv.Store, key string) repository.SessionRepository {
	return &sessionRepository{store: store, key: key}
}

func (r *sessionRepository) Load(ctx context.Context) ([]byte, error) {
	return r.store.Get(ctx, r.key)
}

func (r *sessionRepository) Save(ctx context.Context, user *models.UserRecord) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user %s: %w", user.ID, err)
	}
	return r.store.Set(ctx, r.key, raw)
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, r.key)
}
