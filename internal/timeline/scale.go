// Package timeline provides the date arithmetic behind the chart: the
// time-to-column mapping, domain-window fitting and zooming, and tick
// generation. Everything here is pure; callers inject "today" where needed.
package timeline

import "time"

// Scale is a linear, invertible mapping from a time window onto a pixel
// (terminal column) range: Start maps to 0 and End maps to Width. Positions
// outside the window extrapolate linearly; clamping is the caller's job.
type Scale struct {
	Start time.Time
	End   time.Time
	Width int
}

// NewScale builds a Scale for the given window and width. Width is floored
// to 1 so a collapsed layout never produces a degenerate mapping, and a
// window with End not after Start is widened to one day for the same reason.
func NewScale(start, end time.Time, width int) Scale {
	if width < 1 {
		width = 1
	}
	if !end.After(start) {
		end = start.AddDate(0, 0, 1)
	}
	return Scale{Start: start, End: end, Width: width}
}

// Pos returns the horizontal position of t.
func (s Scale) Pos(t time.Time) float64 {
	total := s.End.Sub(s.Start)
	return t.Sub(s.Start).Seconds() / total.Seconds() * float64(s.Width)
}

// TimeAt inverts Pos, returning the instant at horizontal position x.
func (s Scale) TimeAt(x float64) time.Time {
	total := s.End.Sub(s.Start)
	offset := time.Duration(x / float64(s.Width) * float64(total))
	return s.Start.Add(offset)
}

// DayAt returns the calendar day at position x, snapped to midnight.
func (s Scale) DayAt(x float64) time.Time {
	return Midnight(s.TimeAt(x))
}

// Midnight truncates t to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of whole days from the day of a to the day
// of b. Rounding through hours keeps the count stable across DST changes.
func DaysBetween(a, b time.Time) int {
	return int(Midnight(b).Sub(Midnight(a)).Round(time.Hour).Hours() / 24)
}
