package client

import (
	"context"
	"io"
	"log/slog"
	"time"

	"finpulse/internal/summary"

	"github.com/google/uuid"
)

// Fetcher is anything that can produce a live summary.
type Fetcher interface {
	Fetch(ctx context.Context) (summary.Summary, error)
}

// Snapshot is the outcome of one acquisition.
type Snapshot struct {
	Summary summary.Summary
	// At is when the acquisition finished, recorded for both outcomes.
	At time.Time
	// Live is false when Summary is the fallback. It is for logs and
	// traces only; the dashboard renders both cases identically.
	Live     bool
	Err      error
	Duration time.Duration
	// RequestID is the X-Request-ID sent with the fetch.
	RequestID string
}

// Poller turns fetches into snapshots, substituting summary.Fallback() on
// any failure. It never retries; the next poll tick is the retry.
type Poller struct {
	fetcher Fetcher
	now     func() time.Time
	logger  *slog.Logger
}

// NewPoller wraps f. A nil logger discards output.
func NewPoller(f Fetcher, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Poller{fetcher: f, now: time.Now, logger: logger}
}

// SetClock replaces the time source.
func (p *Poller) SetClock(now func() time.Time) {
	p.now = now
}

// Acquire performs one fetch and always returns a displayable snapshot.
func (p *Poller) Acquire(ctx context.Context) Snapshot {
	requestID := uuid.NewString()
	start := p.now()
	s, err := p.fetcher.Fetch(WithRequestID(ctx, requestID))
	snap := Snapshot{At: p.now(), RequestID: requestID}
	snap.Duration = snap.At.Sub(start)

	if err != nil {
		snap.Summary = summary.Fallback()
		snap.Err = err
		p.logger.Warn("summary unavailable, showing fallback",
			"error", err, "duration", snap.Duration, "request_id", requestID)
		return snap
	}

	snap.Summary = s
	snap.Live = true
	if !s.Consistent() {
		p.logger.Warn("summary distribution does not add up to total",
			"total", s.TotalAnalyzed, "sum", s.Distribution.Sum(), "request_id", requestID)
	}
	p.logger.Info("summary acquired",
		"total", s.TotalAnalyzed, "trend", s.OverallTrend, "duration", snap.Duration, "request_id", requestID)
	return snap
}
