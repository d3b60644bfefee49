package chart

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"gantterm/internal/timeline"
)

// Theme is the set of styles the renderer paints with. The TUI supplies a
// palette-backed theme; headless rendering can pass the zero value for
// unstyled output.
type Theme struct {
	Header    lipgloss.Style // tick labels
	Grid      lipgloss.Style // empty cells and gridlines
	Bar       lipgloss.Style // unfilled bar cells
	Progress  lipgloss.Style // filled (progress) bar cells
	Milestone lipgloss.Style // milestone glyph
	Label     lipgloss.Style // task name gutter
	Selected  lipgloss.Style // selected row's gutter
	Today     lipgloss.Style // today marker column
}

// RenderOptions control one render pass.
type RenderOptions struct {
	Width    int // timeline width in columns (excluding the gutter)
	Gutter   int // name gutter width; 0 disables the gutter
	Selected int // selected row index, -1 for none
	Today    time.Time
	Theme    Theme
}

const (
	barCell       = '█'
	progressCell  = '▓'
	milestoneCell = '◆'
	weekTickCell  = '┊'
	todayCell     = '│'
	emptyCell     = ' '
)

// Render draws the tick header and one row per bar as styled text. It is a
// pure function of the layout: callers re-run it on every change.
func Render(bars []Bar, w timeline.Window, o RenderOptions) string {
	if o.Width < 1 {
		o.Width = 1
	}
	scale := w.Scale(o.Width)

	tickCols := tickColumns(w, scale, o.Width)
	todayCol := -1
	if !o.Today.IsZero() {
		if c := int(math.Round(scale.Pos(timeline.Midnight(o.Today)))); c >= 0 && c < o.Width {
			todayCol = c
		}
	}

	var b strings.Builder
	b.WriteString(renderHeader(w, scale, o))

	for _, bar := range bars {
		b.WriteByte('\n')
		if o.Gutter > 0 {
			style := o.Theme.Label
			if bar.Row == o.Selected {
				style = o.Theme.Selected
			}
			b.WriteString(style.Render(padName(bar.Task.Name, o.Gutter)))
		}
		b.WriteString(renderRow(bar, o, tickCols, todayCol))
	}
	return b.String()
}

// tickColumns maps each weekly tick to its column, dropping off-screen ones.
func tickColumns(w timeline.Window, scale timeline.Scale, width int) map[int]bool {
	cols := make(map[int]bool)
	for _, tick := range w.WeeklyTicks() {
		c := int(math.Round(scale.Pos(tick)))
		if c >= 0 && c < width {
			cols[c] = true
		}
	}
	return cols
}

// renderHeader lays weekly tick labels ("Jan 02") along the top line.
func renderHeader(w timeline.Window, scale timeline.Scale, o RenderOptions) string {
	line := make([]rune, o.Width)
	for i := range line {
		line[i] = emptyCell
	}
	for _, tick := range w.WeeklyTicks() {
		c := int(math.Round(scale.Pos(tick)))
		label := tick.Format("Jan 02")
		if c < 0 || c+len(label) > o.Width {
			continue
		}
		copy(line[c:], []rune(label))
	}
	return strings.Repeat(" ", o.Gutter) + o.Theme.Header.Render(string(line))
}

// Cell style keys, used to group contiguous same-styled cells into runs.
type styleKey int

const (
	styleGrid styleKey = iota
	styleToday
	styleBar
	styleProgress
	styleMilestone
)

// renderRow paints one task row, grouping same-styled cells into runs so the
// output stays compact.
func renderRow(bar Bar, o RenderOptions, tickCols map[int]bool, todayCol int) string {
	type cell struct {
		r   rune
		key styleKey
	}

	cells := make([]cell, o.Width)
	for x := range cells {
		switch {
		case x == todayCol:
			cells[x] = cell{todayCell, styleToday}
		case tickCols[x]:
			cells[x] = cell{weekTickCell, styleGrid}
		default:
			cells[x] = cell{emptyCell, styleGrid}
		}
	}

	if bar.Milestone {
		if bar.X >= 0 && bar.X < o.Width {
			cells[bar.X] = cell{milestoneCell, styleMilestone}
		}
	} else {
		for i := 0; i < bar.Width; i++ {
			x := bar.X + i
			if x < 0 || x >= o.Width {
				continue
			}
			if i < bar.ProgressWidth {
				cells[x] = cell{progressCell, styleProgress}
			} else {
				cells[x] = cell{barCell, styleBar}
			}
		}
	}

	styleFor := func(k styleKey) lipgloss.Style {
		switch k {
		case styleToday:
			return o.Theme.Today
		case styleBar:
			return o.Theme.Bar
		case styleProgress:
			return o.Theme.Progress
		case styleMilestone:
			return o.Theme.Milestone
		default:
			return o.Theme.Grid
		}
	}

	var b strings.Builder
	for start := 0; start < len(cells); {
		end := start
		var run strings.Builder
		for end < len(cells) && cells[end].key == cells[start].key {
			run.WriteRune(cells[end].r)
			end++
		}
		b.WriteString(styleFor(cells[start].key).Render(run.String()))
		start = end
	}
	return b.String()
}

// padName truncates or pads a task name to exactly width columns, leaving
// one trailing space as a separator from the timeline.
func padName(name string, width int) string {
	runes := []rune(name)
	if len(runes) > width-1 {
		runes = runes[:width-1]
	}
	return string(runes) + strings.Repeat(" ", width-len(runes))
}
