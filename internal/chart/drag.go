package chart

import (
	"gantterm/internal/task"
	"gantterm/internal/timeline"
)

// DragKind is the interaction started by a pointer-down on a bar.
type DragKind int

const (
	DragMove DragKind = iota
	DragResizeStart
	DragResizeEnd
)

func (k DragKind) String() string {
	switch k {
	case DragMove:
		return "move"
	case DragResizeStart:
		return "resize-start"
	case DragResizeEnd:
		return "resize-end"
	default:
		return "unknown"
	}
}

// Session is one in-flight drag: created on pointer-down over a bar, fed
// pointer-motion positions, discarded on pointer-up. At most one session is
// active at a time; the owner ignores pointer-downs while it holds a live
// session, so a second press on another bar cannot preempt an active drag.
type Session struct {
	Kind   DragKind
	TaskID string

	// grabOffset is the column distance between the pointer and the grabbed
	// edge at press time, so the bar does not jump under the cursor.
	grabOffset float64
}

// Begin starts a drag session for whatever sits under (x, y), or reports
// false when the press landed on empty grid.
func Begin(bars []Bar, x, y, rowHeight int, scale timeline.Scale) (*Session, bool) {
	hit, ok := HitTest(bars, x, y, rowHeight)
	if !ok {
		return nil, false
	}

	var anchor float64
	switch hit.Kind {
	case DragResizeEnd:
		anchor = scale.Pos(hit.Bar.Task.End)
	default:
		anchor = scale.Pos(hit.Bar.Task.Start)
	}

	return &Session{
		Kind:       hit.Kind,
		TaskID:     hit.Bar.Task.ID,
		grabOffset: float64(x) - anchor,
	}, true
}

// Update recomputes the dragged task's dates for pointer column x and
// returns a new task list with only that task replaced. The pointer position
// is clamped to the timeline, inverted through the scale, and snapped to day
// granularity. Move preserves duration; resizes enforce a one-day minimum.
func (s *Session) Update(tasks []task.Task, scale timeline.Scale, x int) []task.Task {
	t, _, ok := task.Find(tasks, s.TaskID)
	if !ok {
		return tasks
	}

	px := float64(x) - s.grabOffset
	if px < 0 {
		px = 0
	}
	if limit := float64(scale.Width); px > limit {
		px = limit
	}
	day := scale.DayAt(px)

	switch s.Kind {
	case DragMove:
		// Duration is preserved; a milestone keeps its zero-day span, and a
		// corrupt reversed range is repaired to the one-day minimum.
		dur := timeline.DaysBetween(t.Start, t.End)
		if dur < 0 {
			dur = 1
		}
		t.Start = day
		t.End = day.AddDate(0, 0, dur)

	case DragResizeStart:
		t.Start = day
		if !t.Start.Before(t.End) {
			t.Start = t.End.AddDate(0, 0, -1)
		}

	case DragResizeEnd:
		t.End = day
		if !t.End.After(t.Start) {
			t.End = t.Start.AddDate(0, 0, 1)
		}
	}

	return task.Replace(tasks, t)
}
