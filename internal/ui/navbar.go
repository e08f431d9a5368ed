package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Navbar is the static top bar. The status dot is decorative and does
// not reflect fetch outcomes.
type Navbar struct {
	Title    string
	Subtitle string
}

// NewNavbar returns the FinPulse branding bar.
func NewNavbar() *Navbar {
	return &Navbar{
		Title:    "FinPulse",
		Subtitle: "Financial Sentiment Dashboard",
	}
}

// Render draws the bar at width (0 means natural width).
func (n *Navbar) Render(width int) string {
	left := Styles.Brand.Render("◆ "+n.Title) + "  " + Styles.Muted.Render(n.Subtitle)
	right := Styles.Live.Render("●") + " " + Styles.Normal.Render("Live")

	gap := 2
	if width > 0 {
		// Nav has one column of padding each side.
		inner := width - 2
		if w := inner - lipgloss.Width(left) - lipgloss.Width(right); w > gap {
			gap = w
		}
	}
	return Styles.Nav.Render(left + strings.Repeat(" ", gap) + right)
}
