package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"folio-api/internal/domain/schedule"
)

type BusyRepository interface {
	Load(ctx context.Context) (schedule.BusyMap, error)
	Save(ctx context.Context, m schedule.BusyMap) error
	Subscribe(fn func())
}

// BusyWatcher keeps an in-memory snapshot of the busy map fresh. Two
// feeds update it: a fixed-interval poll and the store's change
// notifications. Either one alone is enough; together they cover both
// multi-instance writes and missed notifications.
type BusyWatcher struct {
	repo     BusyRepository
	interval time.Duration
	logger   *slog.Logger

	mu       sync.RWMutex
	snapshot schedule.BusyMap

	cancel context.CancelFunc
	done   chan struct{}
}

func NewBusyWatcher(repo BusyRepository, interval time.Duration, logger *slog.Logger) *BusyWatcher {
	return &BusyWatcher{
		repo:     repo,
		interval: interval,
		logger:   logger,
		snapshot: schedule.BusyMap{},
	}
}

// Start loads the initial snapshot and begins both feeds.
func (w *BusyWatcher) Start(ctx context.Context) {
	w.reload(ctx)
	w.repo.Subscribe(func() {
		w.reload(context.Background())
	})

	loopCtx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})
	go w.poll(loopCtx)
}

func (w *BusyWatcher) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}

// Snapshot returns the current busy map. Callers must not mutate it.
func (w *BusyWatcher) Snapshot() schedule.BusyMap {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.snapshot
}

// Refresh forces an immediate reload, used right after a local toggle
// so the writer sees its own change without waiting for a poll tick.
func (w *BusyWatcher) Refresh(ctx context.Context) {
	w.reload(ctx)
}

func (w *BusyWatcher) poll(ctx context.Context) {
	defer close(w.done)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			w.reload(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *BusyWatcher) reload(ctx context.Context) {
	m, err := w.repo.Load(ctx)
	if err != nil {
		w.logger.Warn("busy map reload failed", "error", err)
		return
	}
	w.mu.Lock()
	w.snapshot = m
	w.mu.Unlock()
}
