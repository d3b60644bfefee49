package timeline

import (
	"time"

	"gantterm/internal/task"
)

// Window is the [Start, End] date range currently mapped onto the chart.
type Window struct {
	Start time.Time
	End   time.Time
}

// DefaultPaddingDays is the slack added on each side when fitting a window
// around a task set.
const DefaultPaddingDays = 2

// FitWindow returns a window spanning the earliest task start to the latest
// task end, padded by paddingDays on each side. An empty task list yields a
// window of today ± 7 days. The result is never week-rounded; presentations
// that want whole weeks call RoundToWeeks on it.
func FitWindow(tasks []task.Task, paddingDays int, today time.Time) Window {
	if len(tasks) == 0 {
		d := Midnight(today)
		return Window{Start: d.AddDate(0, 0, -7), End: d.AddDate(0, 0, 7)}
	}

	min, max := tasks[0].Start, tasks[0].End
	for _, t := range tasks[1:] {
		if t.Start.Before(min) {
			min = t.Start
		}
		if t.End.After(max) {
			max = t.End
		}
	}
	return Window{
		Start: min.AddDate(0, 0, -paddingDays),
		End:   max.AddDate(0, 0, paddingDays),
	}
}

// RoundToWeeks expands the window to whole weeks: Start moves down to the
// Monday on or before it, End moves up to the Sunday on or after it.
func (w Window) RoundToWeeks() Window {
	return Window{
		Start: weekStart(w.Start),
		End:   weekStart(w.End).AddDate(0, 0, 6),
	}
}

// WeeklyTicks returns every Monday from the week containing Start through
// the week containing End, inclusive.
func (w Window) WeeklyTicks() []time.Time {
	var ticks []time.Time
	last := weekStart(w.End)
	for t := weekStart(w.Start); !t.After(last); t = t.AddDate(0, 0, 7) {
		ticks = append(ticks, t)
	}
	return ticks
}

// DailyTicks returns every midnight from the day of Start through the day of
// End, inclusive.
func (w Window) DailyTicks() []time.Time {
	var ticks []time.Time
	last := Midnight(w.End)
	for t := Midnight(w.Start); !t.After(last); t = t.AddDate(0, 0, 1) {
		ticks = append(ticks, t)
	}
	return ticks
}

// Zoom scales the window's duration by 1/factor around center: factor > 1
// narrows the window (zoom in), factor in (0, 1) widens it. A zero center
// uses the window midpoint. No bounds are enforced; callers keep factor sane.
func (w Window) Zoom(factor float64, center time.Time) Window {
	if center.IsZero() {
		center = w.Start.Add(w.End.Sub(w.Start) / 2)
	}
	return Window{
		Start: center.Add(-time.Duration(float64(center.Sub(w.Start)) / factor)),
		End:   center.Add(time.Duration(float64(w.End.Sub(center)) / factor)),
	}
}

// Shift pans the window by d, preserving its duration.
func (w Window) Shift(d time.Duration) Window {
	return Window{Start: w.Start.Add(d), End: w.End.Add(d)}
}

// Days returns the window's inclusive span in calendar days.
func (w Window) Days() int {
	return DaysBetween(w.Start, w.End) + 1
}

// Scale builds the time-to-column mapping for this window at the given width.
func (w Window) Scale(width int) Scale {
	return NewScale(w.Start, w.End, width)
}

// weekStart returns the Monday at or before t, at midnight.
func weekStart(t time.Time) time.Time {
	t = Midnight(t)
	offset := (int(t.Weekday()) + 6) % 7 // Monday == 0
	return t.AddDate(0, 0, -offset)
}
