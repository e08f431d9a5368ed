package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// AboutInfo is what the about overlay shows.
type AboutInfo struct {
	Version  string
	Endpoint string
	Interval time.Duration
	Timeout  time.Duration
}

// AboutModal is a read-only overlay describing the running dashboard.
type AboutModal struct {
	Info AboutInfo
}

var _ View = (*AboutModal)(nil)

// NewAboutModal creates the overlay.
func NewAboutModal(info AboutInfo) *AboutModal {
	return &AboutModal{Info: info}
}

// Init implements View.
func (m *AboutModal) Init() tea.Cmd { return nil }

// Update implements View. Dismissal is handled by the overlay stack.
func (m *AboutModal) Update(msg tea.Msg) (View, tea.Cmd) { return m, nil }

// View implements View.
func (m *AboutModal) View() string {
	version := m.Info.Version
	if version == "" {
		version = "dev"
	}
	var b strings.Builder
	b.WriteString(Styles.Title.Render("About FinPulse") + "\n\n")
	row := func(k, v string) {
		fmt.Fprintf(&b, "%s %s\n", Styles.Muted.Render(fmt.Sprintf("%-10s", k)), Styles.Normal.Render(v))
	}
	row("Version", version)
	row("Endpoint", m.Info.Endpoint)
	row("Refresh", "every "+m.Info.Interval.String())
	row("Timeout", m.Info.Timeout.String())
	b.WriteString("\n" + Styles.Hint.Render("esc to close"))
	return Styles.Box.Render(b.String())
}
