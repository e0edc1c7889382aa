// Package stats contains statistics calculations and reporting.
package stats

import (
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/termtyper/internal/model"
)

const sparkChars = " .:-=+*#%@"

// minElapsed keeps speeds finite right after the first keystroke.
const minElapsed = time.Second

// Elapsed returns the time since start, or zero when the clock is not running.
func Elapsed(start, now time.Time) time.Duration {
	if start.IsZero() || now.Before(start) {
		return 0
	}
	return now.Sub(start)
}

// WPM returns whitespace-delimited words typed per minute.
func WPM(transcript string, start, now time.Time) float64 {
	if start.IsZero() {
		return 0
	}
	return perMinute(len(strings.Fields(transcript)), Elapsed(start, now))
}

// CPM returns characters typed per minute.
func CPM(transcript string, start, now time.Time) float64 {
	if start.IsZero() {
		return 0
	}
	return perMinute(len([]rune(transcript)), Elapsed(start, now))
}

func perMinute(count int, elapsed time.Duration) float64 {
	if elapsed < minElapsed {
		elapsed = minElapsed
	}
	return round1(float64(count) / elapsed.Minutes())
}

// Accuracy returns the share of correct keystrokes as a percentage.
// An empty transcript is 100% accurate.
func Accuracy(typed, wrong int) float64 {
	if typed < 1 {
		return 100.0
	}
	correct := typed - wrong
	if correct < 0 {
		correct = 0
	}
	return round1(float64(correct) / float64(typed) * 100)
}

// Snapshot computes the live metrics for a transcript.
func Snapshot(transcript string, typed, mistyped int, start, now time.Time) model.Metrics {
	return model.Metrics{
		WPM:            WPM(transcript, start, now),
		CPM:            CPM(transcript, start, now),
		Accuracy:       Accuracy(typed, mistyped),
		ElapsedSeconds: math.Round(Elapsed(start, now).Seconds()*100) / 100,
		Mistyped:       mistyped,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
