// Package chart computes the geometry of the timeline chart and interprets
// pointer drags as date mutations. It is pure: layout is recomputed from the
// task list, domain window and width on every render, and drag updates
// return a new task list instead of mutating the old one.
package chart

import (
	"math"

	"gantterm/internal/task"
	"gantterm/internal/timeline"
)

// MinBarWidth keeps short tasks visible and grabbable: one cell per resize
// handle plus one body cell.
const MinBarWidth = 3

// Bar is the computed horizontal extent and row of one task.
type Bar struct {
	Task          task.Task
	Row           int // vertical slot; rowIndex * rowHeight gives the cell row
	X             int // left edge in columns
	Width         int // always >= MinBarWidth for non-milestones
	Milestone     bool
	ProgressWidth int // filled portion of Width
}

// Layout positions every task within the window at the given width. Row
// order follows task list order; horizontal extent comes from the window's
// time scale with snap-to-column rounding.
func Layout(tasks []task.Task, w timeline.Window, width int) []Bar {
	scale := w.Scale(width)

	bars := make([]Bar, len(tasks))
	for i, t := range tasks {
		x := int(math.Round(scale.Pos(t.Start)))

		if t.IsMilestone() {
			bars[i] = Bar{Task: t, Row: i, X: x, Width: 1, Milestone: true}
			continue
		}

		bw := int(math.Round(scale.Pos(t.End))) - x
		if bw < MinBarWidth {
			bw = MinBarWidth
		}
		bars[i] = Bar{
			Task:          t,
			Row:           i,
			X:             x,
			Width:         bw,
			ProgressWidth: int(task.ClampProgress(t.Progress) / 100 * float64(bw)),
		}
	}
	return bars
}

// Hit identifies what part of which bar sits under a chart coordinate.
type Hit struct {
	Bar  Bar
	Kind DragKind
}

// HitTest maps a chart-relative cell coordinate to a bar body or one of its
// edge handles. Bars narrower than MinBarWidth (milestones) are body-only.
func HitTest(bars []Bar, x, y, rowHeight int) (Hit, bool) {
	if rowHeight < 1 {
		rowHeight = 1
	}
	row := y / rowHeight

	for _, b := range bars {
		if b.Row != row || x < b.X || x >= b.X+b.Width {
			continue
		}
		kind := DragMove
		if !b.Milestone && b.Width >= MinBarWidth {
			switch x {
			case b.X:
				kind = DragResizeStart
			case b.X + b.Width - 1:
				kind = DragResizeEnd
			}
		}
		return Hit{Bar: b, Kind: kind}, true
	}
	return Hit{}, false
}
