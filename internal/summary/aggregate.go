package summary

import "math"

// Score is one labelled sentiment result, as produced upstream.
type Score struct {
	Label    string  `json:"label" yaml:"label"`
	Compound float64 `json:"compound" yaml:"compound"`
}

// Aggregate folds scores into a Summary.
//
// Every score counts toward TotalAnalyzed; only the three known labels
// (case-insensitive) count toward the distribution. The average compound
// score is rounded to three decimals and is 0 for an empty slice.
func Aggregate(scores []Score) Summary {
	var s Summary
	var sum float64
	for _, sc := range scores {
		s.TotalAnalyzed++
		sum += sc.Compound
		switch normalizeLabel(sc.Label) {
		case TrendPositive:
			s.Distribution.Positive++
		case TrendNegative:
			s.Distribution.Negative++
		case TrendNeutral:
			s.Distribution.Neutral++
		}
	}
	if s.TotalAnalyzed > 0 {
		s.AverageSentiment = round3(sum / float64(s.TotalAnalyzed))
	}
	s.OverallTrend = TrendFor(s.AverageSentiment)
	return s
}

// SampleScores is a small built-in data set. Its aggregate matches Fallback.
func SampleScores() []Score {
	return []Score{
		{Label: "positive", Compound: 0.7269},
		{Label: "positive", Compound: 0.8126},
		{Label: "positive", Compound: 0.6124},
		{Label: "positive", Compound: 0.5106},
		{Label: "positive", Compound: 0.7717},
		{Label: "positive", Compound: 0.6369},
		{Label: "positive", Compound: 0.6089},
		{Label: "neutral", Compound: 0.0},
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
