package summary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProportion(t *testing.T) {
	tests := []struct {
		name  string
		count int
		total int
		want  float64
	}{
		{"seven of eight", 7, 8, 87.5},
		{"one of eight", 1, 8, 12.5},
		{"zero count", 0, 8, 0},
		{"zero total uses one", 3, 0, 300},
		{"negative total uses one", 2, -5, 200},
		{"both zero", 0, 0, 0},
		{"count above total is not clamped", 10, 5, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Proportion(tt.count, tt.total), 1e-9)
		})
	}
}

func TestFallback_Rendering(t *testing.T) {
	fb := Fallback()
	assert.Equal(t, 8, fb.TotalAnalyzed)
	assert.True(t, fb.TrendIsPositive())
	assert.Equal(t, "58.5%", FormatAverage(fb.AverageSentiment))
	assert.Equal(t, BandPositive, BandFor(fb.AverageSentiment))
	assert.True(t, fb.Consistent())

	pos, neg, neu := fb.Proportions()
	assert.InDelta(t, 87.5, pos, 1e-9)
	assert.InDelta(t, 0, neg, 1e-9)
	assert.InDelta(t, 12.5, neu, 1e-9)
}

func TestFallback_CallersCannotAlterIt(t *testing.T) {
	fb := Fallback()
	fb.TotalAnalyzed = 0
	fb.Distribution.Positive = 99
	fb.OverallTrend = TrendNegative

	again := Fallback()
	assert.Equal(t, 8, again.TotalAnalyzed)
	assert.Equal(t, 7, again.Distribution.Positive)
	assert.Equal(t, TrendPositive, again.OverallTrend)
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, BandPositive, BandFor(0.11))
	assert.Equal(t, BandNeutral, BandFor(0.1))
	assert.Equal(t, BandNeutral, BandFor(0))
	assert.Equal(t, BandNeutral, BandFor(-0.1))
	assert.Equal(t, BandNegative, BandFor(-0.5))

	assert.Equal(t, "Positive", BandPositive.String())
	assert.Equal(t, "Negative", BandNegative.String())
	assert.Equal(t, "Neutral", BandNeutral.String())
}

func TestFormatAverage(t *testing.T) {
	assert.Equal(t, "0.0%", FormatAverage(0))
	assert.Equal(t, "-25.0%", FormatAverage(-0.25))
	assert.Equal(t, "100.0%", FormatAverage(1))
}

func TestTrendIsPositive_OnlyExactLiteral(t *testing.T) {
	for _, trend := range []string{"Positive", "improving", "", "positive "} {
		s := Summary{OverallTrend: trend}
		assert.False(t, s.TrendIsPositive(), "trend %q", trend)
	}
}

func TestConsistent(t *testing.T) {
	s := Summary{TotalAnalyzed: 10, Distribution: Distribution{Positive: 2, Negative: 3, Neutral: 4}}
	assert.False(t, s.Consistent())
	s.Distribution.Neutral = 5
	assert.True(t, s.Consistent())
}

func TestSummary_JSONShape(t *testing.T) {
	raw := `{"total_analyzed":12,"sentiment_distribution":{"positive":5,"negative":4,"neutral":3},"average_sentiment":-0.042,"overall_trend":"neutral"}`
	var s Summary
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	assert.Equal(t, Summary{
		TotalAnalyzed:    12,
		Distribution:     Distribution{Positive: 5, Negative: 4, Neutral: 3},
		AverageSentiment: -0.042,
		OverallTrend:     "neutral",
	}, s)
}

func TestSummary_String(t *testing.T) {
	assert.Equal(t, "total=8 positive=7 negative=0 neutral=1 average=58.5% trend=positive", Fallback().String())
}
