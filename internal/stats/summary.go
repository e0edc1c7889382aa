// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/termtyper/internal/model"
)

// RenderRounds prints a summary table for the rounds completed in this run.
func RenderRounds(w io.Writer, rounds []model.RoundResult) error {
	if len(rounds) == 0 {
		_, err := fmt.Fprintln(w, "No rounds completed.")
		return err
	}
	headers := []string{"Round", "Lang", "Words", "WPM", "CPM", "Accuracy", "Time", "Mistyped"}
	rows := make([][]string, 0, len(rounds))
	wpms := make([]float64, 0, len(rounds))
	var totalWPM, totalAcc, bestWPM float64
	for _, r := range rounds {
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.Round),
			r.Lang,
			fmt.Sprintf("%d", r.Words),
			fmt.Sprintf("%.1f", r.Metrics.WPM),
			fmt.Sprintf("%.1f", r.Metrics.CPM),
			fmt.Sprintf("%.1f%%", r.Metrics.Accuracy),
			fmt.Sprintf("%.2fs", r.Duration.Seconds()),
			fmt.Sprintf("%d", r.Metrics.Mistyped),
		})
		wpms = append(wpms, r.Metrics.WPM)
		totalWPM += r.Metrics.WPM
		totalAcc += r.Metrics.Accuracy
		if r.Metrics.WPM > bestWPM {
			bestWPM = r.Metrics.WPM
		}
	}

	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	rightAlign := map[int]bool{0: true, 2: true, 3: true, 4: true, 5: true, 6: true, 7: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	count := float64(len(rounds))
	if _, err := fmt.Fprintf(w, "Avg WPM: %.1f  Best WPM: %.1f  Avg Accuracy: %.1f%%\n", totalWPM/count, bestWPM, totalAcc/count); err != nil {
		return err
	}
	if len(wpms) > 1 {
		if _, err := fmt.Fprintf(w, "WPM trend: %s\n", Sparkline(wpms)); err != nil {
			return err
		}
	}
	return nil
}
