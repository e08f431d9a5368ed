package server

import (
	"context"
	"fmt"
	"os"

	"finpulse/internal/summary"

	"gopkg.in/yaml.v3"
)

// ScoreSource supplies the labelled scores behind one summary.
type ScoreSource interface {
	Scores(ctx context.Context) ([]summary.Score, error)
}

// StaticSource serves a fixed set of scores.
type StaticSource []summary.Score

// Scores implements ScoreSource.
func (s StaticSource) Scores(ctx context.Context) ([]summary.Score, error) {
	return s, nil
}

// FileSource reads scores from a YAML list on every call, so edits to
// the file show up on the next poll.
//
//	- label: positive
//	  compound: 0.72
type FileSource struct {
	Path string
}

// Scores implements ScoreSource.
func (f FileSource) Scores(ctx context.Context) ([]summary.Score, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("reading scores: %w", err)
	}
	var scores []summary.Score
	if err := yaml.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("parsing scores %s: %w", f.Path, err)
	}
	return scores, nil
}

// SourceFor returns a FileSource for path, or the built-in sample when
// path is empty.
func SourceFor(path string) ScoreSource {
	if path == "" {
		return StaticSource(summary.SampleScores())
	}
	return FileSource{Path: path}
}
