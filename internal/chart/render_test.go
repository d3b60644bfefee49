package chart

import (
	"strings"
	"testing"

	"gantterm/internal/task"
)

func plainOptions(width int) RenderOptions {
	return RenderOptions{Width: width, Gutter: 10, Selected: -1}
}

func TestRender_BarGlyphs(t *testing.T) {
	tasks := []task.Task{{
		ID: "t-1", Name: "Design", Start: date(2024, 1, 2), End: date(2024, 1, 5),
	}}
	bars := Layout(tasks, tenDayWindow, 100)

	out := Render(bars, tenDayWindow, plainOptions(100))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 row", len(lines))
	}
	row := lines[1]
	if !strings.ContainsRune(row, barCell) {
		t.Error("row has no bar cells")
	}
	if !strings.HasPrefix(row, "Design") {
		t.Errorf("gutter = %q, want task name first", row[:10])
	}
}

func TestRender_MilestoneGlyphNotBar(t *testing.T) {
	d := date(2024, 1, 6)
	tasks := []task.Task{{ID: "m", Name: "Launch", Start: d, End: d}}
	bars := Layout(tasks, tenDayWindow, 100)

	out := Render(bars, tenDayWindow, plainOptions(100))
	if !strings.ContainsRune(out, milestoneCell) {
		t.Error("milestone glyph missing")
	}
	if strings.ContainsRune(out, barCell) {
		t.Error("milestone rendered as a bar")
	}
}

func TestRender_ProgressFill(t *testing.T) {
	tasks := []task.Task{{
		ID: "t-1", Name: "Build", Start: date(2024, 1, 1), End: date(2024, 1, 11), Progress: 40,
	}}
	bars := Layout(tasks, tenDayWindow, 100)

	out := Render(bars, tenDayWindow, plainOptions(100))
	if got := strings.Count(out, string(progressCell)); got != 40 {
		t.Errorf("progress cells = %d, want 40", got)
	}
	if got := strings.Count(out, string(barCell)); got != 60 {
		t.Errorf("bar cells = %d, want 60", got)
	}
}

func TestRender_HeaderHasWeekLabels(t *testing.T) {
	tasks := []task.Task{{ID: "t-1", Start: date(2024, 1, 2), End: date(2024, 1, 5)}}
	bars := Layout(tasks, tenDayWindow, 100)

	out := Render(bars, tenDayWindow, plainOptions(100))
	header := strings.Split(out, "\n")[0]
	// The window contains the Mondays Jan 1 and Jan 8.
	if !strings.Contains(header, "Jan 01") || !strings.Contains(header, "Jan 08") {
		t.Errorf("header = %q", header)
	}
}

func TestRender_TodayMarker(t *testing.T) {
	tasks := []task.Task{{ID: "t-1", Start: date(2024, 1, 2), End: date(2024, 1, 5)}}
	bars := Layout(tasks, tenDayWindow, 100)

	o := plainOptions(100)
	o.Today = date(2024, 1, 7)
	out := Render(bars, tenDayWindow, o)
	if !strings.ContainsRune(out, todayCell) {
		t.Error("today marker missing")
	}

	o.Today = date(2030, 6, 1) // outside the window: no marker
	out = Render(bars, tenDayWindow, o)
	if strings.ContainsRune(out, todayCell) {
		t.Error("off-window today marker drawn")
	}
}

func TestRender_EmptyTaskListStillRendersHeader(t *testing.T) {
	out := Render(nil, tenDayWindow, plainOptions(80))
	if out == "" {
		t.Error("expected at least a tick header")
	}
	if strings.Count(out, "\n") != 0 {
		t.Errorf("expected a single header line, got %q", out)
	}
}

func TestRender_ZeroWidthDegrades(t *testing.T) {
	o := RenderOptions{Width: 0, Gutter: 0, Selected: -1}
	// Must not panic; floor kicks in.
	_ = Render(nil, tenDayWindow, o)
}

func TestPadName(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  string
	}{
		{"ab", 5, "ab   "},
		{"abcdefgh", 5, "abcd "},
		{"", 3, "   "},
	}
	for _, tt := range tests {
		if got := padName(tt.name, tt.width); got != tt.want {
			t.Errorf("padName(%q, %d) = %q, want %q", tt.name, tt.width, got, tt.want)
		}
	}
}
