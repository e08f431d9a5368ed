package ui

import (
	"time"

	"finpulse/internal/client"
)

// RefreshMsg triggers a manual acquisition (r or SPC r).
type RefreshMsg struct{}

// ShowAboutMsg opens the about overlay (SPC a).
type ShowAboutMsg struct{}

// QuitMsg unmounts the dashboard and exits the program.
type QuitMsg struct{}

// pollTickMsg fires every poll interval. gen identifies the mount that
// scheduled it so ticks from an unmounted dashboard are dropped.
type pollTickMsg struct {
	gen int
	at  time.Time
}

// summaryAcquiredMsg carries the result of one acquisition.
type summaryAcquiredMsg struct {
	gen  int
	snap client.Snapshot
}
