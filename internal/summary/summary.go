// Package summary holds the sentiment summary view-model shared by the
// dashboard, the summary client and the companion server.
package summary

import (
	"fmt"
	"strings"
)

// Trend labels. The dashboard only ever compares against TrendPositive.
const (
	TrendPositive = "positive"
	TrendNegative = "negative"
	TrendNeutral  = "neutral"
)

// Band bounds for the average sentiment. Display only.
const (
	PositiveThreshold = 0.1
	NegativeThreshold = -0.1
)

// Distribution counts analyzed items per sentiment label.
type Distribution struct {
	Positive int `json:"positive" yaml:"positive"`
	Negative int `json:"negative" yaml:"negative"`
	Neutral  int `json:"neutral" yaml:"neutral"`
}

// Sum returns positive+negative+neutral.
func (d Distribution) Sum() int {
	return d.Positive + d.Negative + d.Neutral
}

// Summary is the aggregate served by GET /sentiment/summary.
// A Summary is replaced wholesale on every acquisition; it is never merged.
type Summary struct {
	TotalAnalyzed    int          `json:"total_analyzed"`
	Distribution     Distribution `json:"sentiment_distribution"`
	AverageSentiment float64      `json:"average_sentiment"`
	OverallTrend     string       `json:"overall_trend"`
}

// Fallback returns the summary substituted whenever a live fetch fails.
// Each call returns a fresh copy.
func Fallback() Summary {
	return fallback
}

var fallback = Summary{
	TotalAnalyzed: 8,
	Distribution: Distribution{
		Positive: 7,
		Negative: 0,
		Neutral:  1,
	},
	AverageSentiment: 0.585,
	OverallTrend:     TrendPositive,
}

// TrendIsPositive reports whether the trend label is exactly "positive".
func (s Summary) TrendIsPositive() bool {
	return s.OverallTrend == TrendPositive
}

// Consistent reports whether the distribution counts add up to TotalAnalyzed.
// Nothing enforces this; callers use it for diagnostics.
func (s Summary) Consistent() bool {
	return s.Distribution.Sum() == s.TotalAnalyzed
}

// Proportions returns the percentage bars for positive, negative and neutral.
func (s Summary) Proportions() (positive, negative, neutral float64) {
	return Proportion(s.Distribution.Positive, s.TotalAnalyzed),
		Proportion(s.Distribution.Negative, s.TotalAnalyzed),
		Proportion(s.Distribution.Neutral, s.TotalAnalyzed)
}

// String is a compact one-line rendering used by logs and the fetch command.
func (s Summary) String() string {
	return fmt.Sprintf("total=%d positive=%d negative=%d neutral=%d average=%s trend=%s",
		s.TotalAnalyzed, s.Distribution.Positive, s.Distribution.Negative, s.Distribution.Neutral,
		FormatAverage(s.AverageSentiment), s.OverallTrend)
}

// Proportion returns count/total*100 with the denominator floored at 1.
// The result is not clamped: counts larger than total yield more than 100.
func Proportion(count, total int) float64 {
	if total < 1 {
		total = 1
	}
	return float64(count) / float64(total) * 100
}

// FormatAverage renders a signed fraction as a percentage with one decimal.
func FormatAverage(avg float64) string {
	return fmt.Sprintf("%.1f%%", avg*100)
}

// Band is the qualitative bucket of an average sentiment.
type Band int

const (
	BandNeutral Band = iota
	BandPositive
	BandNegative
)

func (b Band) String() string {
	switch b {
	case BandPositive:
		return "Positive"
	case BandNegative:
		return "Negative"
	default:
		return "Neutral"
	}
}

// BandFor buckets avg using the fixed thresholds.
func BandFor(avg float64) Band {
	switch {
	case avg > PositiveThreshold:
		return BandPositive
	case avg < NegativeThreshold:
		return BandNegative
	default:
		return BandNeutral
	}
}

// TrendFor returns the trend label the server reports for an average.
func TrendFor(avg float64) string {
	switch BandFor(avg) {
	case BandPositive:
		return TrendPositive
	case BandNegative:
		return TrendNegative
	default:
		return TrendNeutral
	}
}

// normalizeLabel lowercases and trims a score label.
func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
