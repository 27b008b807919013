package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"rastreio/internal/model"
)

// Fetcher supplies the raw sheet text. *SheetClient is the production
// implementation; tests inject their own.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// TrackerOptions tunes the snapshot cache. Zero values fall back to the
// defaults the web client was built around: 10s stale time, 2 retries,
// 500ms between retries, wall clock.
type TrackerOptions struct {
	StaleTime  time.Duration
	MaxRetries int
	RetryDelay time.Duration
	Now        func() time.Time
}

// snapshot is the immutable record set produced by one successful refresh.
type snapshot struct {
	records   []model.TrackingRecord
	fetchedAt time.Time
}

// Tracker owns the cached sheet snapshot. It is the only writer, and a
// refresh replaces the snapshot wholesale, so readers always observe a
// complete record set. At most one refresh runs at a time; triggers that
// arrive while one is in flight join it instead of starting another.
type Tracker struct {
	fetch      Fetcher
	staleTime  time.Duration
	maxRetries int
	retryDelay time.Duration
	now        func() time.Time

	mu       sync.Mutex
	snap     *snapshot
	lastErr  error
	inflight chan struct{} // closed when the running refresh finishes
}

func NewTracker(fetch Fetcher, opts TrackerOptions) *Tracker {
	if opts.StaleTime <= 0 {
		opts.StaleTime = 10 * time.Second
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 2
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 500 * time.Millisecond
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Tracker{
		fetch:      fetch,
		staleTime:  opts.StaleTime,
		maxRetries: opts.MaxRetries,
		retryDelay: opts.RetryDelay,
		now:        opts.Now,
	}
}

// Now returns the tracker's clock so callers derive statuses against the
// same notion of time the cache uses.
func (t *Tracker) Now() time.Time {
	return t.now()
}

// Records returns the current snapshot. A snapshot younger than the stale
// time is served as-is. A stale snapshot is still served immediately, with
// a revalidation kicked off in the background. Only a consumer that finds
// no snapshot at all waits for the refresh to finish.
func (t *Tracker) Records(ctx context.Context) ([]model.TrackingRecord, error) {
	t.mu.Lock()
	if t.snap != nil {
		records := t.snap.records
		if t.now().Sub(t.snap.fetchedAt) >= t.staleTime {
			t.startRefreshLocked()
		}
		t.mu.Unlock()
		return records, nil
	}
	done := t.startRefreshLocked()
	t.mu.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.snap == nil {
		return nil, t.lastErr
	}
	return t.snap.records, nil
}

// Refresh forces a revalidation and waits for it to finish. A refresh
// already in flight is joined rather than duplicated.
func (t *Tracker) Refresh(ctx context.Context) error {
	t.mu.Lock()
	done := t.startRefreshLocked()
	t.mu.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastErr
}

// CacheStats describes the cache for the status endpoint.
type CacheStats struct {
	Records    int        `json:"records"`
	FetchedAt  *time.Time `json:"fetched_at,omitempty"`
	LastError  string     `json:"last_error,omitempty"`
	Refreshing bool       `json:"refreshing"`
}

func (t *Tracker) Stats() CacheStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	stats := CacheStats{Refreshing: t.inflight != nil}
	if t.snap != nil {
		stats.Records = len(t.snap.records)
		fetchedAt := t.snap.fetchedAt
		stats.FetchedAt = &fetchedAt
	}
	if t.lastErr != nil {
		stats.LastError = t.lastErr.Error()
	}
	return stats
}

// startRefreshLocked returns the done channel of the in-flight refresh,
// starting one if none is running. Callers must hold t.mu.
func (t *Tracker) startRefreshLocked() chan struct{} {
	if t.inflight != nil {
		return t.inflight
	}
	done := make(chan struct{})
	t.inflight = done
	go t.runRefresh(done)
	return done
}

func (t *Tracker) runRefresh(done chan struct{}) {
	records, err := t.refresh(context.Background())

	t.mu.Lock()
	if err == nil {
		t.snap = &snapshot{records: records, fetchedAt: t.now()}
		t.lastErr = nil
	} else {
		// The previous snapshot, if any, stays visible to readers.
		t.lastErr = err
		slog.Error("sheet refresh failed", "error", err)
	}
	t.inflight = nil
	t.mu.Unlock()

	close(done)
}

// refresh runs the fetch-decode-normalize pipeline, retrying transient
// failures up to the retry bound. A missing sheet URL is configuration,
// not a transient fault, so it fails the cycle without retrying.
func (t *Tracker) refresh(ctx context.Context) ([]model.TrackingRecord, error) {
	var lastErr error
	for attempt := 0; attempt <= t.maxRetries; attempt++ {
		if attempt > 0 {
			slog.Warn("retrying sheet refresh", "attempt", attempt, "error", lastErr)
			select {
			case <-time.After(t.retryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		records, err := t.load(ctx)
		if err == nil {
			slog.Info("sheet refreshed", "records", len(records))
			return records, nil
		}
		lastErr = err
		if errors.Is(err, ErrSheetNotConfigured) {
			break
		}
	}
	return nil, lastErr
}

func (t *Tracker) load(ctx context.Context) ([]model.TrackingRecord, error) {
	text, err := t.fetch.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}
	rows, err := DecodeSheet(text)
	if err != nil {
		return nil, fmt.Errorf("decode sheet: %w", err)
	}
	return NormalizeRows(rows), nil
}
