package analytics

import "time"

// Window is a half-open interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Duration returns the window length.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Contains reports whether ts falls inside the window.
func (w Window) Contains(ts time.Time) bool {
	return !ts.Before(w.Start) && ts.Before(w.End)
}

// Periods pairs the requested window with the equal-length window that
// immediately precedes it, so comparisons are always like-for-like.
type Periods struct {
	Current  Window
	Previous Window
}

const defaultRangeToken = "7d"

var rangeDurations = map[string]time.Duration{
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
	"90d": 90 * 24 * time.Hour,
	"1y":  365 * 24 * time.Hour,
}

// NormalizeRangeToken maps unknown tokens onto the default so responses echo
// the window actually used.
func NormalizeRangeToken(token string) string {
	if _, ok := rangeDurations[token]; !ok {
		return defaultRangeToken
	}
	return token
}

// ResolvePeriods maps a symbolic range token onto the current and previous
// windows ending at now. Unknown tokens fall back to the 7d window.
func ResolvePeriods(token string, now time.Time) Periods {
	duration, ok := rangeDurations[token]
	if !ok {
		duration = rangeDurations[defaultRangeToken]
	}
	currentStart := now.Add(-duration)
	return Periods{
		Current:  Window{Start: currentStart, End: now},
		Previous: Window{Start: currentStart.Add(-duration), End: currentStart},
	}
}
