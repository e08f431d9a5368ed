package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate(nil)
	assert.Equal(t, Summary{OverallTrend: TrendNeutral}, got)
}

func TestAggregate_SampleMatchesFallback(t *testing.T) {
	assert.Equal(t, Fallback(), Aggregate(SampleScores()))
}

func TestAggregate_LabelsAndTrend(t *testing.T) {
	got := Aggregate([]Score{
		{Label: "NEGATIVE", Compound: -0.8},
		{Label: " negative", Compound: -0.4},
		{Label: "neutral", Compound: 0},
		{Label: "mixed", Compound: 0.2},
	})
	assert.Equal(t, 4, got.TotalAnalyzed)
	assert.Equal(t, Distribution{Negative: 2, Neutral: 1}, got.Distribution)
	assert.False(t, got.Consistent())
	assert.InDelta(t, -0.25, got.AverageSentiment, 1e-9)
	assert.Equal(t, TrendNegative, got.OverallTrend)
}

func TestAggregate_RoundsToThreeDecimals(t *testing.T) {
	got := Aggregate([]Score{
		{Label: "positive", Compound: 0.12345},
		{Label: "positive", Compound: 0.12345},
	})
	assert.Equal(t, 0.123, got.AverageSentiment)
	assert.Equal(t, TrendPositive, got.OverallTrend)
}
