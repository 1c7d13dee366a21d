package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"networth-tracker/internal/features/dashboard/models"
	"networth-tracker/internal/features/dashboard/repository"
	"networth-tracker/internal/features/dashboard/seed"
	"networth-tracker/internal/platform/kv"
)

// SeedFunc produces the data an empty store starts with.
type SeedFunc func() (seed.Data, error)

type dashboardRepository struct {
	// guards load-or-seed so concurrent first reads share one seed
	mu sync.Mutex

	store      kv.Store
	itemsKey   string
	historyKey string
	seed       SeedFunc
}

// NewDashboardRepository keeps items and history as two JSON documents.
// Missing documents are filled from seedFn and written back.
func NewDashboardRepository(store kv.Store, itemsKey, historyKey string, seedFn SeedFunc) repository.DashboardRepository {
	if seedFn == nil {
		seedFn = seed.Demo
	}
	return &dashboardRepository{store: store, itemsKey: itemsKey, historyKey: historyKey, seed: seedFn}
}

func (r *dashboardRepository) Items(ctx context.Context) ([]models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var items []models.Item
	err := kv.GetJSON(ctx, r.store, r.itemsKey, &items)
	if errors.Is(err, kv.ErrNotFound) {
		d, err := r.seed()
		if err != nil {
			return nil, err
		}
		if err := r.saveItems(ctx, d.Items); err != nil {
			return nil, err
		}
		return d.Items, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

func (r *dashboardRepository) SaveItems(ctx context.Context, items []models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveItems(ctx, items)
}

func (r *dashboardRepository) saveItems(ctx context.Context, items []models.Item) error {
	if err := kv.SetJSON(ctx, r.store, r.itemsKey, items); err != nil {
		return fmt.Errorf("save items: %w", err)
	}
	return nil
}

func (r *dashboardRepository) History(ctx context.Context) (models.History, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var h models.History
	err := kv.GetJSON(ctx, r.store, r.historyKey, &h)
	if errors.Is(err, kv.ErrNotFound) {
		d, err := r.seed()
		if err != nil {
			return models.History{}, err
		}
		if err := r.saveHistory(ctx, d.History); err != nil {
			return models.History{}, err
		}
		return d.History, nil
	}
	if err != nil {
		return models.History{}, fmt.Errorf("load history: %w", err)
	}
	return h, nil
}

func (r *dashboardRepository) SaveHistory(ctx context.Context, h models.History) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveHistory(ctx, h)
}

func (r *dashboardRepository) saveHistory(ctx context.Context, h models.History) error {
	if err := kv.SetJSON(ctx, r.store, r.historyKey, h); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

func (r *dashboardRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(ctx, r.itemsKey); err != nil {
		return fmt.Errorf("reset items: %w", err)
	}
	if err := r.store.Delete(ctx, r.historyKey); err != nil {
		return fmt.Errorf("reset history: %w", err)
	}
	return nil
}
