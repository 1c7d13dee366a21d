package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"networth-tracker/internal/common/validation"
	"networth-tracker/internal/features/currency"
	"networth-tracker/internal/features/dashboard/models"
	"networth-tracker/internal/features/dashboard/repository"
)

const (
	netWorthSeries = "Net Worth"
	periodLayout   = "2006-01"
)

type DashboardService interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	AddItem(ctx context.Context, in models.ItemInput) (models.Item, error)
	UpdateItem(ctx context.Context, id string, in models.ItemInput) (models.Item, error)
	DeleteItem(ctx context.Context, id string) error

	Breakdown(ctx context.Context) (models.Breakdown, error)
	Statistics(ctx context.Context) (models.Statistics, error)
	Chart(ctx context.Context, r models.Range, currencyCode string) (models.ChartData, error)
	Overview(ctx context.Context, r models.Range, currencyCode string) (models.Overview, error)

	// RecordSnapshot stores the current net worth as this month's history point.
	RecordSnapshot(ctx context.Context) (models.History, error)
	// EnsureMonthlySnapshot records a snapshot only when the current month has none yet.
	EnsureMonthlySnapshot(ctx context.Context) (bool, error)
	// Reset goes back to the demo portfolio.
	Reset(ctx context.Context) error
}

type dashboardService struct {
	// serializes read-modify-write cycles on the stored documents
	mu sync.Mutex

	repo repository.DashboardRepository
	now  func() time.Time
	log  zerolog.Logger
}

func NewDashboardService(repo repository.DashboardRepository, now func() time.Time, log zerolog.Logger) DashboardService {
	if now == nil {
		now = time.Now
	}
	return &dashboardService{
		repo: repo,
		now:  now,
		log:  log.With().Str("component", "dashboard").Logger(),
	}
}

func (s *dashboardService) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.repo.Items(ctx)
}

func (s *dashboardService) AddItem(ctx context.Context, in models.ItemInput) (models.Item, error) {
	in, err := ValidateItem(in)
	if err != nil {
		return models.Item{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.Items(ctx)
	if err != nil {
		return models.Item{}, err
	}

	item := models.Item{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Value:    in.Value,
		Category: in.Category,
		Kind:     in.Kind,
	}
	if err := s.repo.SaveItems(ctx, append(items, item)); err != nil {
		return models.Item{}, err
	}

	s.log.Info().Str("item_id", item.ID).Str("kind", string(item.Kind)).Msg("Item added")
	return item, nil
}

func (s *dashboardService) UpdateItem(ctx context.Context, id string, in models.ItemInput) (models.Item, error) {
	in, err := ValidateItem(in)
	if err != nil {
		return models.Item{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.Items(ctx)
	if err != nil {
		return models.Item{}, err
	}

	i := indexOf(items, id)
	if i < 0 {
		return models.Item{}, models.ErrItemNotFound
	}

	items[i] = models.Item{ID: id, Name: in.Name, Value: in.Value, Category: in.Category, Kind: in.Kind}
	if err := s.repo.SaveItems(ctx, items); err != nil {
		return models.Item{}, err
	}

	s.log.Info().Str("item_id", id).Msg("Item updated")
	return items[i], nil
}

func (s *dashboardService) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.Items(ctx)
	if err != nil {
		return err
	}

	i := indexOf(items, id)
	if i < 0 {
		return models.ErrItemNotFound
	}

	items = append(items[:i], items[i+1:]...)
	if err := s.repo.SaveItems(ctx, items); err != nil {
		return err
	}

	s.log.Info().Str("item_id", id).Msg("Item deleted")
	return nil
}

func (s *dashboardService) Breakdown(ctx context.Context) (models.Breakdown, error) {
	items, err := s.repo.Items(ctx)
	if err != nil {
		return models.Breakdown{}, err
	}
	return models.NewBreakdown(items), nil
}

func (s *dashboardService) Statistics(ctx context.Context) (models.Statistics, error) {
	items, err := s.repo.Items(ctx)
	if err != nil {
		return models.Statistics{}, err
	}
	h, err := s.repo.History(ctx)
	if err != nil {
		return models.Statistics{}, err
	}
	return statistics(items, h, s.period()), nil
}

// statistics compares the live net worth against the last closed month
// before period. A point for period itself is the open month and is skipped.
func statistics(items []models.Item, h models.History, period string) models.Statistics {
	current := models.NetWorth(items)
	previous := decimal.Zero
	for i := len(h.Points) - 1; i >= 0; i-- {
		if h.Points[i].Period < period {
			previous = h.Points[i].Value
			break
		}
	}

	return models.Statistics{
		NetWorth:         current,
		PreviousNetWorth: previous,
		Growth:           models.NewGrowth(current, previous),
		LargestAsset:     models.Largest(models.OfKind(items, models.KindAsset)),
		LargestLiability: models.Largest(models.OfKind(items, models.KindLiability)),
	}
}

func (s *dashboardService) Chart(ctx context.Context, r models.Range, currencyCode string) (models.ChartData, error) {
	h, err := s.repo.History(ctx)
	if err != nil {
		return models.ChartData{}, err
	}
	return chart(h, r, currencyCode)
}

func chart(h models.History, r models.Range, currencyCode string) (models.ChartData, error) {
	labels, values, err := models.Aggregate(h, r)
	if err != nil {
		return models.ChartData{}, err
	}

	name := h.Name
	if name == "" {
		name = netWorthSeries
	}

	return models.ChartData{
		Range:  r,
		Labels: labels,
		Series: []models.Series{{Name: name, Values: values}},
		Symbol: currency.SymbolOf(currencyCode),
	}, nil
}

func (s *dashboardService) Overview(ctx context.Context, r models.Range, currencyCode string) (models.Overview, error) {
	items, err := s.repo.Items(ctx)
	if err != nil {
		return models.Overview{}, err
	}
	h, err := s.repo.History(ctx)
	if err != nil {
		return models.Overview{}, err
	}

	c, err := chart(h, r, currencyCode)
	if err != nil {
		return models.Overview{}, err
	}
	stats := statistics(items, h, s.period())
	breakdown := models.NewBreakdown(items)

	return models.Overview{
		Currency:   currencyCode,
		Symbol:     currency.SymbolOf(currencyCode),
		Statistics: stats,
		Chart:      c,
		Breakdown:  breakdown,
		Formatted: map[string]string{
			"netWorth":         currency.Format(stats.NetWorth, currencyCode),
			"previousNetWorth": currency.Format(stats.PreviousNetWorth, currencyCode),
			"growthAmount":     currency.Format(stats.Growth.Amount, currencyCode),
			"totalAssets":      currency.Format(breakdown.TotalAssets, currencyCode),
			"totalLiabilities": currency.Format(breakdown.TotalLiabilities, currencyCode),
		},
	}, nil
}

func (s *dashboardService) RecordSnapshot(ctx context.Context) (models.History, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recordSnapshot(ctx)
}

func (s *dashboardService) EnsureMonthlySnapshot(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := s.repo.History(ctx)
	if err != nil {
		return false, err
	}
	period := s.period()
	if n := len(h.Points); n > 0 && h.Points[n-1].Period >= period {
		return false, nil
	}

	if _, err := s.recordSnapshot(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (s *dashboardService) recordSnapshot(ctx context.Context) (models.History, error) {
	items, err := s.repo.Items(ctx)
	if err != nil {
		return models.History{}, err
	}
	h, err := s.repo.History(ctx)
	if err != nil {
		return models.History{}, err
	}

	now := s.now()
	p := models.Point{
		Period: now.Format(periodLayout),
		Label:  now.Format("Jan"),
		Value:  models.NetWorth(items),
	}

	if n := len(h.Points); n > 0 && h.Points[n-1].Period == p.Period {
		h.Points[n-1] = p
	} else {
		h.Points = append(h.Points, p)
	}
	if h.Name == "" {
		h.Name = netWorthSeries
	}

	if err := s.repo.SaveHistory(ctx, h); err != nil {
		return models.History{}, err
	}

	s.log.Info().Str("period", p.Period).Str("net_worth", p.Value.String()).Msg("Net worth snapshot recorded")
	return h, nil
}

func (s *dashboardService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Reset(ctx); err != nil {
		return err
	}
	s.log.Info().Msg("Dashboard reset to demo data")
	return nil
}

// ValidateItem trims the name and checks every field, collecting all errors.
func ValidateItem(in models.ItemInput) (models.ItemInput, error) {
	fields := map[string]string{}

	if err := validation.ValidateItemName(in.Name); err != nil {
		fields[models.FieldItemName] = err.Error()
	}
	if in.Value.IsNegative() {
		fields[models.FieldItemValue] = "value cannot be negative"
	}
	if !in.Kind.Valid() {
		fields[models.FieldItemKind] = "kind must be asset or liability"
	} else if !validation.OneOf(in.Category, in.Kind.Categories()...) {
		fields[models.FieldItemCategory] = "category is not valid for " + string(in.Kind)
	}

	if len(fields) > 0 {
		return in, &models.ItemValidationError{Fields: fields}
	}

	in.Name = strings.TrimSpace(in.Name)
	return in, nil
}

func (s *dashboardService) period() string {
	return s.now().Format(periodLayout)
}

func indexOf(items []models.Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
