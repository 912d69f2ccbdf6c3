package game

import (
	"fmt"
	"time"
)

// statusLine is the text shown along the bottom of the window.
func (e *Editor) statusLine() string {
	s := fmt.Sprintf("%s  particles %d  peak %d", formatDuration(e.elapsed), e.emitter.Count(), e.stats.peak())
	if e.lastPath != "" {
		s += "  file " + e.lastPath
	}
	if e.lastErr != nil {
		s += " | Error: " + e.lastErr.Error()
	}
	return s
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
