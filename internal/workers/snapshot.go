package workers

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const snapshotTimeout = 10 * time.Second

// Snapshotter records the current net worth for a month that has no point yet.
type Snapshotter interface {
	EnsureMonthlySnapshot(ctx context.Context) (bool, error)
}

// OnboardedChecker reports whether there is a user whose dashboard to track.
type OnboardedChecker interface {
	IsOnboarded() bool
}

// SnapshotWorker periodically makes sure every month gets a net worth point.
type SnapshotWorker struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	dashboard Snapshotter
	session   OnboardedChecker
	interval  time.Duration
	log       zerolog.Logger
}

func NewSnapshotWorker(dashboard Snapshotter, session OnboardedChecker, interval time.Duration, log zerolog.Logger) *SnapshotWorker {
	ctx, cancel := context.WithCancel(context.Background())
	return &SnapshotWorker{
		ctx:       ctx,
		cancel:    cancel,
		dashboard: dashboard,
		session:   session,
		interval:  interval,
		log:       log.With().Str("component", "snapshot_worker").Logger(),
	}
}

// Start runs one pass immediately and then one per interval until Stop.
func (w *SnapshotWorker) Start() {
	w.log.Info().Dur("interval", w.interval).Msg("Starting snapshot worker")
	w.wg.Add(1)

	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.RunOnce()
		for {
			select {
			case <-ticker.C:
				w.RunOnce()
			case <-w.ctx.Done():
				return
			}
		}
	}()
}

// RunOnce performs a single pass. Errors are logged; the next tick retries.
func (w *SnapshotWorker) RunOnce() {
	if !w.session.IsOnboarded() {
		return
	}

	ctx, cancel := context.WithTimeout(w.ctx, snapshotTimeout)
	defer cancel()

	recorded, err := w.dashboard.EnsureMonthlySnapshot(ctx)
	if err != nil {
		w.log.Error().Err(err).Msg("Failed to record monthly snapshot")
		return
	}
	if recorded {
		w.log.Info().Msg("Monthly snapshot recorded")
	}
}

// Stop cancels the loop and waits for it to return.
func (w *SnapshotWorker) Stop() {
	w.cancel()
	w.wg.Wait()
	w.log.Info().Msg("Snapshot worker stopped")
}
