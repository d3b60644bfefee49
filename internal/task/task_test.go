package task

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsMilestone_ZeroDuration(t *testing.T) {
	tk := Task{Start: date(2024, 3, 4), End: date(2024, 3, 4)}
	if !tk.IsMilestone() {
		t.Error("expected zero-duration task to be a milestone")
	}
}

func TestIsMilestone_OneDay(t *testing.T) {
	tk := Task{Start: date(2024, 3, 4), End: date(2024, 3, 5)}
	if tk.IsMilestone() {
		t.Error("expected one-day task not to be a milestone")
	}
}

func TestDurationDays(t *testing.T) {
	tk := Task{Start: date(2024, 1, 1), End: date(2024, 1, 10)}
	if got := tk.DurationDays(); got != 9 {
		t.Errorf("DurationDays() = %d, want 9", got)
	}
}

func TestClampProgress(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-5, 0},
		{0, 0},
		{50, 50},
		{100, 100},
		{150, 100},
	}
	for _, tt := range tests {
		if got := ClampProgress(tt.in); got != tt.want {
			t.Errorf("ClampProgress(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClassifyMilestone_DefaultKeywords(t *testing.T) {
	raw := map[string]string{"Type": "Release candidate"}
	if !ClassifyMilestone(raw, nil) {
		t.Error("expected 'Release' to classify as milestone")
	}

	raw = map[string]string{"Type": "Development"}
	if ClassifyMilestone(raw, nil) {
		t.Error("expected 'Development' not to classify as milestone")
	}
}

func TestClassifyMilestone_CustomKeywords(t *testing.T) {
	raw := map[string]string{"Notes": "final demo"}
	if !ClassifyMilestone(raw, []string{"demo"}) {
		t.Error("expected custom keyword match")
	}
	if ClassifyMilestone(raw, []string{"milestone"}) {
		t.Error("custom list should replace the defaults, not extend them")
	}
}

func TestReplace_SwapsOnlyMatchingTask(t *testing.T) {
	tasks := []Task{
		{ID: "t-1", Name: "one"},
		{ID: "t-2", Name: "two"},
	}
	got := Replace(tasks, Task{ID: "t-2", Name: "renamed"})

	if got[0].Name != "one" {
		t.Errorf("unrelated task changed: %q", got[0].Name)
	}
	if got[1].Name != "renamed" {
		t.Errorf("expected replacement, got %q", got[1].Name)
	}
	if tasks[1].Name != "two" {
		t.Error("input slice was mutated")
	}
}

func TestReplace_MissingIDLeavesCopyUnchanged(t *testing.T) {
	tasks := []Task{{ID: "t-1", Name: "one"}}
	got := Replace(tasks, Task{ID: "t-9", Name: "ghost"})
	if len(got) != 1 || got[0].Name != "one" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestFind(t *testing.T) {
	tasks := []Task{{ID: "t-1"}, {ID: "t-2"}}
	tk, i, ok := Find(tasks, "t-2")
	if !ok || i != 1 || tk.ID != "t-2" {
		t.Errorf("Find returned (%v, %d, %v)", tk.ID, i, ok)
	}
	if _, _, ok := Find(tasks, "nope"); ok {
		t.Error("expected miss for unknown id")
	}
}
