package client

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"finpulse/internal/summary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	s         summary.Summary
	err       error
	calls     int
	requestID string
}

func (f *fakeFetcher) Fetch(ctx context.Context) (summary.Summary, error) {
	f.calls++
	f.requestID = RequestIDFrom(ctx)
	return f.s, f.err
}

// steppingClock advances by step on every call.
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	t := start
	return func() time.Time {
		now := t
		t = t.Add(step)
		return now
	}
}

func TestAcquire_Live(t *testing.T) {
	live := summary.Summary{
		TotalAnalyzed:    3,
		Distribution:     summary.Distribution{Positive: 1, Negative: 1, Neutral: 1},
		AverageSentiment: 0.02,
		OverallTrend:     "neutral",
	}
	f := &fakeFetcher{s: live}
	p := NewPoller(f, nil)
	start := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	p.SetClock(steppingClock(start, 200*time.Millisecond))

	snap := p.Acquire(context.Background())

	assert.Equal(t, 1, f.calls)
	assert.True(t, snap.Live)
	assert.NoError(t, snap.Err)
	assert.Equal(t, live, snap.Summary)
	assert.Equal(t, start.Add(200*time.Millisecond), snap.At)
	assert.Equal(t, 200*time.Millisecond, snap.Duration)
}

func TestAcquire_FallbackOnAnyError(t *testing.T) {
	errs := []error{
		context.DeadlineExceeded,
		errors.New("dial tcp 127.0.0.1:8000: connect: connection refused"),
		&StatusError{Code: 500, Status: "500 Internal Server Error"},
	}
	for _, err := range errs {
		t.Run(err.Error(), func(t *testing.T) {
			p := NewPoller(&fakeFetcher{err: err}, nil)
			at := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
			p.SetClock(func() time.Time { return at })

			snap := p.Acquire(context.Background())

			assert.False(t, snap.Live)
			assert.ErrorIs(t, snap.Err, err)
			assert.Equal(t, summary.Fallback(), snap.Summary)
			assert.Equal(t, 8, snap.Summary.TotalAnalyzed)
			assert.Equal(t, at, snap.At, "timestamp recorded regardless of outcome")
		})
	}
}

func TestAcquire_LogsOutcome(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	NewPoller(&fakeFetcher{err: errors.New("refused")}, logger).Acquire(context.Background())
	assert.Contains(t, buf.String(), "showing fallback")
	assert.Contains(t, buf.String(), "refused")

	buf.Reset()
	inconsistent := summary.Summary{TotalAnalyzed: 10, Distribution: summary.Distribution{Positive: 1}}
	NewPoller(&fakeFetcher{s: inconsistent}, logger).Acquire(context.Background())
	assert.Contains(t, buf.String(), "does not add up")
	assert.Contains(t, buf.String(), "summary acquired")
}

func TestAcquire_RequestIDLoggedAndPassedToFetch(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	f := &fakeFetcher{err: errors.New("refused")}
	snap := NewPoller(f, logger).Acquire(context.Background())
	require.NotEmpty(t, snap.RequestID)
	assert.Equal(t, snap.RequestID, f.requestID)
	assert.Contains(t, buf.String(), "request_id="+snap.RequestID)

	buf.Reset()
	f = &fakeFetcher{s: summary.Fallback()}
	snap = NewPoller(f, logger).Acquire(context.Background())
	assert.Equal(t, snap.RequestID, f.requestID)
	assert.Contains(t, buf.String(), "summary acquired")
	assert.Contains(t, buf.String(), "request_id="+snap.RequestID)
}
