package ui

import (
	"fmt"
	"strings"
	"time"

	"finpulse/internal/summary"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultPollInterval is how often the dashboard re-acquires the summary.
const DefaultPollInterval = 30 * time.Second

const (
	defaultBarWidth = 40
	minBarWidth     = 10
	// barChrome is the width taken by the label and numbers around a bar.
	barChrome = 28
)

// category is one row of the distribution section.
type category struct {
	name  string
	color string
	count func(summary.Distribution) int
}

var categories = []category{
	{"Positive", ColorPositive, func(d summary.Distribution) int { return d.Positive }},
	{"Negative", ColorDanger, func(d summary.Distribution) int { return d.Negative }},
	{"Neutral", ColorNeutral, func(d summary.Distribution) int { return d.Neutral }},
}

// DashboardView polls the summary endpoint and renders the result.
// It moves from loading to showing data once, on the first acquisition.
type DashboardView struct {
	acquirer Acquirer
	interval time.Duration

	// gen changes on every mount and unmount; ticks and results tagged
	// with another generation are stale.
	gen     int
	mounted bool

	loading     bool
	current     summary.Summary
	lastUpdated time.Time

	spinner spinner.Model
	bars    []progress.Model
	width   int
}

// Ensure DashboardView implements View and Unmounter.
var (
	_ View      = (*DashboardView)(nil)
	_ Unmounter = (*DashboardView)(nil)
)

// NewDashboardView creates a dashboard polling a every interval.
// A non-positive interval uses DefaultPollInterval.
func NewDashboardView(a Acquirer, interval time.Duration) *DashboardView {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	bars := make([]progress.Model, len(categories))
	for i, c := range categories {
		bars[i] = progress.New(
			progress.WithSolidFill(c.color),
			progress.WithoutPercentage(),
			progress.WithWidth(defaultBarWidth),
		)
	}

	return &DashboardView{
		acquirer: a,
		interval: interval,
		loading:  true,
		spinner:  s,
		bars:     bars,
	}
}

// Interval returns the poll interval.
func (d *DashboardView) Interval() time.Duration { return d.interval }

// Current returns the summary being displayed.
func (d *DashboardView) Current() summary.Summary { return d.current }

// LastUpdated returns when the displayed summary was acquired.
func (d *DashboardView) LastUpdated() time.Time { return d.lastUpdated }

// Loading reports whether the first acquisition is still outstanding.
func (d *DashboardView) Loading() bool { return d.loading }

// Mounted reports whether the view is polling.
func (d *DashboardView) Mounted() bool { return d.mounted }

// Init mounts the view: acquire immediately, then on every interval.
func (d *DashboardView) Init() tea.Cmd {
	d.mounted = true
	d.gen++
	return tea.Batch(
		d.spinner.Tick,
		acquireCmd(d.acquirer, d.gen),
		pollTickCmd(d.interval, d.gen),
	)
}

// Unmount stops polling. Pending ticks and results are discarded when
// they arrive.
func (d *DashboardView) Unmount() {
	d.mounted = false
	d.gen++
}

// Refresh triggers the same acquisition as a poll tick.
func (d *DashboardView) Refresh() tea.Cmd {
	if !d.mounted {
		return nil
	}
	return acquireCmd(d.acquirer, d.gen)
}

// Update implements View.
func (d *DashboardView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case pollTickMsg:
		if !d.mounted || msg.gen != d.gen {
			return d, nil
		}
		return d, tea.Batch(acquireCmd(d.acquirer, d.gen), pollTickCmd(d.interval, d.gen))
	case summaryAcquiredMsg:
		if !d.mounted || msg.gen != d.gen {
			return d, nil
		}
		d.current = msg.snap.Summary
		d.lastUpdated = msg.snap.At
		d.loading = false
		return d, nil
	case RefreshMsg:
		return d, d.Refresh()
	case tea.WindowSizeMsg:
		d.SetWidth(msg.Width)
		return d, nil
	case spinner.TickMsg:
		// An unmounted view lets the spinner chain die out.
		if d.loading && d.mounted {
			var cmd tea.Cmd
			d.spinner, cmd = d.spinner.Update(msg)
			return d, cmd
		}
	}
	return d, nil
}

// SetWidth resizes the distribution bars to fit width.
func (d *DashboardView) SetWidth(width int) {
	d.width = width
	barWidth := width - barChrome
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}
	if barWidth > 2*defaultBarWidth {
		barWidth = 2 * defaultBarWidth
	}
	for i := range d.bars {
		d.bars[i].Width = barWidth
	}
}

// View implements View.
func (d *DashboardView) View() string {
	if d.loading {
		return "\n " + d.spinner.View() + " " + Styles.Muted.Render("Loading sentiment data...") + "\n"
	}

	var b strings.Builder
	b.WriteString(d.renderCards())
	b.WriteString("\n\n")
	b.WriteString(Styles.Section.Render("Sentiment Distribution"))
	b.WriteString("\n\n")
	b.WriteString(d.renderBars())
	b.WriteString("\n")
	b.WriteString(Styles.Hint.Render(fmt.Sprintf("Last updated: %s  ·  refreshes every %s  ·  [r] refresh  [SPC] commands",
		d.lastUpdated.Format("15:04:05"), d.interval)))
	return b.String()
}

func (d *DashboardView) renderCards() string {
	s := d.current
	band := summary.BandFor(s.AverageSentiment)

	total := card("Total Analyzed", Styles.CardValue.Render(fmt.Sprintf("%d", s.TotalAnalyzed)))
	avg := card("Average Sentiment",
		BandStyle(band).Render(summary.FormatAverage(s.AverageSentiment))+"  "+Styles.Muted.Render(band.String()))
	trend := card("Overall Trend", TrendStyle(s).Render(trendGlyph(s)+" "+s.OverallTrend))

	cards := []string{total, avg, trend}
	if d.width > 0 && d.width < 3*lipgloss.Width(total) {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (d *DashboardView) renderBars() string {
	var b strings.Builder
	for i, c := range categories {
		count := c.count(d.current.Distribution)
		pct := summary.Proportion(count, d.current.TotalAnalyzed)
		label := lipgloss.NewStyle().Width(10).Render(c.name)
		fmt.Fprintf(&b, "%s %s %6.1f%%  (%d)\n", label, d.bars[i].ViewAs(barFraction(pct)), pct, count)
	}
	return b.String()
}

func card(label, value string) string {
	return Styles.Card.Render(Styles.CardLabel.Render(label) + "\n" + value)
}

func trendGlyph(s summary.Summary) string {
	if s.TrendIsPositive() {
		return "▲"
	}
	return "▼"
}

// barFraction converts a percentage to the widget's [0,1] fill.
func barFraction(pct float64) float64 {
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 1
	default:
		return pct / 100
	}
}
