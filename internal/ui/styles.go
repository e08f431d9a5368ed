package ui

import (
	"finpulse/internal/summary"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for borders, keys
	ColorDanger    = "196" // Red - negative sentiment
	ColorPositive  = "42"  // Green - positive sentiment
	ColorNeutral   = "214" // Amber - neutral sentiment
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorBrand     = "39"  // Blue - navbar branding
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	// Title styles
	Title lipgloss.Style // Bold accent color - for main titles
	Brand lipgloss.Style // Navbar product name

	// Box styles
	Box  lipgloss.Style // Standard box with rounded border (accent border)
	Card lipgloss.Style // Metric card on the dashboard
	Nav  lipgloss.Style // Navbar strip

	// Text styles
	CardLabel lipgloss.Style // Small caption above a metric
	CardValue lipgloss.Style // Large metric value
	Muted     lipgloss.Style // Dimmed text (muted color)
	Normal    lipgloss.Style // Normal text (text color)
	Hint      lipgloss.Style // Help/hint text (muted color)
	Section   lipgloss.Style // Section headers (highlight color)
	Positive  lipgloss.Style
	Negative  lipgloss.Style
	Neutral   lipgloss.Style
	Live      lipgloss.Style // Navbar status dot
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Brand: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorBrand)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 2).
		MarginRight(1).
		Width(24),
	Nav: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	CardLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	CardValue: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Positive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPositive)),
	Negative: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Neutral: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorNeutral)),
	Live: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPositive)),
}

// BandStyle picks the colour for an average-sentiment band.
func BandStyle(b summary.Band) lipgloss.Style {
	switch b {
	case summary.BandPositive:
		return Styles.Positive
	case summary.BandNegative:
		return Styles.Negative
	default:
		return Styles.Neutral
	}
}

// TrendStyle is green for the literal "positive" trend and red otherwise.
func TrendStyle(s summary.Summary) lipgloss.Style {
	if s.TrendIsPositive() {
		return Styles.Positive
	}
	return Styles.Negative
}
