package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/termtyper/internal/model"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		typed, wrong int
		want         float64
	}{
		{0, 0, 100.0},
		{10, 0, 100.0},
		{10, 10, 0.0},
		{10, 3, 70.0},
		{3, 1, 66.7},
		{2, 5, 0.0},
	}
	for _, tt := range tests {
		if got := Accuracy(tt.typed, tt.wrong); got != tt.want {
			t.Fatalf("Accuracy(%d, %d) = %v, want %v", tt.typed, tt.wrong, got, tt.want)
		}
	}
}

func TestWPMAndCPM(t *testing.T) {
	start := time.Unix(1000, 0)
	now := start.Add(30 * time.Second)
	if got := WPM("the cat sat", start, now); got != 6.0 {
		t.Fatalf("expected 6.0 wpm, got %v", got)
	}
	if got := CPM("the cat sat", start, now); got != 22.0 {
		t.Fatalf("expected 22.0 cpm, got %v", got)
	}
}

func TestSpeedClampsElapsedToOneSecond(t *testing.T) {
	start := time.Unix(1000, 0)
	if got := WPM("go", start, start); got != 60.0 {
		t.Fatalf("expected 60 wpm for one word in under a second, got %v", got)
	}
	if got := CPM("go", start, start.Add(10*time.Millisecond)); got != 120.0 {
		t.Fatalf("expected 120 cpm, got %v", got)
	}
}

func TestStoppedClock(t *testing.T) {
	now := time.Unix(1000, 0)
	if WPM("words here", time.Time{}, now) != 0 || CPM("words", time.Time{}, now) != 0 {
		t.Fatalf("expected zero speed without a start time")
	}
	if Elapsed(time.Time{}, now) != 0 {
		t.Fatalf("expected zero elapsed without a start time")
	}
	if Elapsed(now, now.Add(-time.Second)) != 0 {
		t.Fatalf("expected zero elapsed for a clock running backwards")
	}
}

func TestSnapshot(t *testing.T) {
	start := time.Unix(1000, 0)
	now := start.Add(1500 * time.Millisecond)
	m := Snapshot("ab", 4, 1, start, now)
	if m.Accuracy != 75.0 || m.Mistyped != 1 || m.ElapsedSeconds != 1.5 {
		t.Fatalf("unexpected snapshot: %+v", m)
	}
	if m.CPM != 80.0 {
		t.Fatalf("expected 80 cpm, got %v", m.CPM)
	}
}

func TestSparkline(t *testing.T) {
	if Sparkline(nil) != "" {
		t.Fatalf("expected empty sparkline")
	}
	if got := Sparkline([]float64{3, 3}); got != "++" {
		t.Fatalf("unexpected flat sparkline: %q", got)
	}
	if got := Sparkline([]float64{0, 10}); got != " @" {
		t.Fatalf("unexpected sparkline: %q", got)
	}
}

func TestRenderRounds(t *testing.T) {
	var buf bytes.Buffer
	rounds := []model.RoundResult{
		{Round: 1, Lang: "english", Words: 10, Metrics: model.Metrics{WPM: 40, CPM: 200, Accuracy: 95}, Duration: 15 * time.Second},
		{Round: 2, Lang: "english", Words: 10, Metrics: model.Metrics{WPM: 60, CPM: 300, Accuracy: 97, Mistyped: 2}, Duration: 10 * time.Second},
	}
	if err := RenderRounds(&buf, rounds); err != nil {
		t.Fatalf("render rounds: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Summary", "Round", "40.0", "97.0%", "10.00s", "Avg WPM: 50.0", "Best WPM: 60.0", "WPM trend:  @"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderRoundsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderRounds(&buf, nil); err != nil {
		t.Fatalf("render rounds: %v", err)
	}
	if buf.String() != "No rounds completed.\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
