// Package util holds small formatting helpers shared by the binaries.
package util

import (
	"fmt"
	"time"
)

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
// Negative durations keep their sign, so an expired token reads as "-5m0s".
func FormatDuration(duration time.Duration) string {
	if duration < 0 {
		return "-" + FormatDuration(-duration)
	}

	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// FormatExpiry describes when a token expires relative to now, e.g. "in 1h59m" or "5m0s ago".
func FormatExpiry(expiresAt, now time.Time) string {
	remaining := expiresAt.Sub(now)
	if remaining <= 0 {
		return FormatDuration(-remaining) + " ago"
	}

	return "in " + FormatDuration(remaining)
}
