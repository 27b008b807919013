package worker

import (
	"context"
	"log/slog"
	"time"

	"rastreio/internal/service"
)

// RefreshWorker revalidates the sheet snapshot on a fixed interval so the
// cache stays warm between user lookups.
type RefreshWorker struct {
	tracker  *service.Tracker
	interval time.Duration
}

func NewRefreshWorker(tracker *service.Tracker, interval time.Duration) *RefreshWorker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &RefreshWorker{
		tracker:  tracker,
		interval: interval,
	}
}

func (w *RefreshWorker) Start(ctx context.Context) {
	slog.Info("starting refresh worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("refresh worker stopped")
			return
		case <-ticker.C:
			if err := w.tracker.Refresh(ctx); err != nil {
				slog.Error("scheduled refresh failed", "error", err)
			}
		}
	}
}
