// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings.
type Config struct {
	Lang         string
	Words        int
	WordListDir  string
	PollInterval time.Duration
}

// Mode is the session state.
type Mode int

// Session modes.
const (
	BeginTest Mode = iota
	EndTest
)

func (m Mode) String() string {
	if m == EndTest {
		return "end"
	}
	return "begin"
}

// Metrics is a derived view of typing speed and correctness.
type Metrics struct {
	WPM            float64
	CPM            float64
	Accuracy       float64
	ElapsedSeconds float64
	Mistyped       int
}

// Hint is a footer key hint.
type Hint struct {
	Key  string
	Desc string
}

// Snapshot is everything a renderer needs to paint one frame.
type Snapshot struct {
	Passage string
	Width   int
	Lines   int
	Typed   int
	Correct []bool
	Stats   Metrics
	Mode    Mode
	Started bool
	Hints   []Hint
}

// RoundResult records a completed round for the exit summary.
type RoundResult struct {
	Round    int
	Lang     string
	Words    int
	Metrics  Metrics
	Duration time.Duration
}

// WordListInfo describes an available word list.
type WordListInfo struct {
	Lang       string
	Source     string
	Size       int
	ImportedAt time.Time
}
