package ui

import (
	"context"
	"time"

	"finpulse/internal/client"

	tea "github.com/charmbracelet/bubbletea"
)

// Acquirer produces one displayable snapshot per call. client.Poller
// implements it; failures are already folded into the fallback.
type Acquirer interface {
	Acquire(ctx context.Context) client.Snapshot
}

// acquireCmd runs one acquisition off the update loop. Overlapping
// commands are not de-duplicated; whichever result arrives last wins.
func acquireCmd(a Acquirer, gen int) tea.Cmd {
	return func() tea.Msg {
		return summaryAcquiredMsg{gen: gen, snap: a.Acquire(context.Background())}
	}
}

// pollTickCmd schedules the next poll tick after interval.
func pollTickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return pollTickMsg{gen: gen, at: t}
	})
}
