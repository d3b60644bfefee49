package tabular

import (
	"strings"
	"testing"
	"time"

	"gantterm/internal/task"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// baseDate is the injected "start of current year" used by all parse tests.
var baseDate = date(2024, 1, 1)

func parse(t *testing.T, src string) []task.Task {
	t.Helper()
	tasks, err := ParseTasks(strings.NewReader(src), ParseOptions{BaseDate: baseDate})
	if err != nil {
		t.Fatalf("ParseTasks: %v", err)
	}
	return tasks
}

func TestParseTasks_ExplicitDates(t *testing.T) {
	tasks := parse(t, "Task,Start,End,Progress\nDesign,2024-01-01,2024-01-10,50\n")

	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	tk := tasks[0]
	if tk.Name != "Design" {
		t.Errorf("Name = %q, want Design", tk.Name)
	}
	if !tk.Start.Equal(date(2024, 1, 1)) || !tk.End.Equal(date(2024, 1, 10)) {
		t.Errorf("dates = [%v, %v]", tk.Start, tk.End)
	}
	if tk.Progress != 50 {
		t.Errorf("Progress = %v, want 50", tk.Progress)
	}
	if tk.ID != "t-1" {
		t.Errorf("ID = %q, want synthesized t-1", tk.ID)
	}
}

func TestParseTasks_DateFormats(t *testing.T) {
	tests := []struct {
		value string
		want  time.Time
	}{
		{"2024-03-05", date(2024, 3, 5)},
		{"03/05/2024", date(2024, 3, 5)},  // MM/DD/YYYY wins over DD/MM
		{"2024/03/05", date(2024, 3, 5)},
		{"13/05/2024", date(2024, 5, 13)}, // impossible month falls to DD/MM
		{"10", date(2024, 1, 11)},         // integer day offset from base
	}
	for _, tt := range tests {
		tasks := parse(t, "Task,Start,End\nA,"+tt.value+",2024-12-31\n")
		if got := tasks[0].Start; !got.Equal(tt.want) {
			t.Errorf("start %q parsed to %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestParseTasks_WeekOffsets(t *testing.T) {
	tasks := parse(t, "Sprint,Start Week,End Week\nSprint 1,1,3\n")

	tk := tasks[0]
	if tk.Name != "Sprint 1" {
		t.Errorf("Name = %q, want Sprint 1", tk.Name)
	}
	if !tk.Start.Equal(baseDate) {
		t.Errorf("Start = %v, want base date %v", tk.Start, baseDate)
	}
	if want := baseDate.AddDate(0, 0, 21); !tk.End.Equal(want) {
		t.Errorf("End = %v, want base + 3 weeks = %v", tk.End, want)
	}
}

func TestParseTasks_WeekDuration(t *testing.T) {
	tasks := parse(t, "Task,Start Week,Duration\nBuild,2,4\n")

	tk := tasks[0]
	if want := baseDate.AddDate(0, 0, 7); !tk.Start.Equal(want) {
		t.Errorf("Start = %v, want week 2 = %v", tk.Start, want)
	}
	if want := tk.Start.AddDate(0, 0, 28); !tk.End.Equal(want) {
		t.Errorf("End = %v, want start + 4 weeks = %v", tk.End, want)
	}
}

func TestParseTasks_WeekOffsetsWithExplicitBase(t *testing.T) {
	tasks := parse(t, "Task,Start Week,End Week,Base Date\nKickoff,1,2,2024-06-03\n")

	tk := tasks[0]
	if !tk.Start.Equal(date(2024, 6, 3)) {
		t.Errorf("Start = %v, want explicit base", tk.Start)
	}
	if !tk.End.Equal(date(2024, 6, 17)) {
		t.Errorf("End = %v, want base + 2 weeks", tk.End)
	}
}

func TestParseTasks_FallbackDefaults(t *testing.T) {
	tasks := parse(t, "Task,Notes\nMystery,no dates here\n")

	tk := tasks[0]
	if !tk.Start.Equal(baseDate) {
		t.Errorf("Start = %v, want base date", tk.Start)
	}
	if want := baseDate.AddDate(0, 0, 7); !tk.End.Equal(want) {
		t.Errorf("End = %v, want start + 7 days", tk.End)
	}
}

func TestParseTasks_SynthesizedNames(t *testing.T) {
	tasks := parse(t, "Phase,Start,End\nAlpha,2024-01-01,2024-01-05\n,2024-02-01,2024-02-05\n")

	if got := tasks[0].Name; got != "Alpha 1" {
		t.Errorf("Name = %q, want phase-prefixed Alpha 1", got)
	}
	if got := tasks[1].Name; got != "Task 2" {
		t.Errorf("Name = %q, want default Task 2", got)
	}
}

func TestParseTasks_IDsStrictlyIncreasing(t *testing.T) {
	tasks := parse(t, "Task\nA\nB\nC\n")
	want := []string{"t-1", "t-2", "t-3"}
	for i, w := range want {
		if tasks[i].ID != w {
			t.Errorf("tasks[%d].ID = %q, want %q", i, tasks[i].ID, w)
		}
	}
}

func TestParseTasks_ExplicitIDWins(t *testing.T) {
	tasks := parse(t, "ID,Task,Start,End\nepic-7,Design,2024-01-01,2024-01-05\n")
	if tasks[0].ID != "epic-7" {
		t.Errorf("ID = %q, want epic-7", tasks[0].ID)
	}
}

func TestParseTasks_ProgressClampedAndDefaulted(t *testing.T) {
	tasks := parse(t, "Task,Progress\nA,150\nB,-10\nC,abc\nD,\n")
	want := []float64{100, 0, 0, 0}
	for i, w := range want {
		if tasks[i].Progress != w {
			t.Errorf("tasks[%d].Progress = %v, want %v", i, tasks[i].Progress, w)
		}
	}
}

func TestParseTasks_Dependencies(t *testing.T) {
	tasks := parse(t, "Task,Dependencies\nA,\"t-1, t-2,,  t-3 \"\n")
	got := tasks[0].Dependencies
	want := []string{"t-1", "t-2", "t-3"}
	if len(got) != len(want) {
		t.Fatalf("Dependencies = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Dependencies[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseTasks_MilestoneKeywordCollapsesDefaultedEnd(t *testing.T) {
	tasks := parse(t, "Task,Start,Type\nShip it,2024-04-01,Release\n")

	tk := tasks[0]
	if !tk.IsMilestone() {
		t.Errorf("expected keyword-classified milestone, got [%v, %v]", tk.Start, tk.End)
	}
}

func TestParseTasks_MilestoneKeywordDoesNotOverrideExplicitEnd(t *testing.T) {
	tasks := parse(t, "Task,Start,End\nRelease hardening,2024-04-01,2024-04-10\n")

	if tasks[0].IsMilestone() {
		t.Error("explicit end date must win over the keyword heuristic")
	}
}

func TestParseTasks_UnrecognizedColumnsKeptInRaw(t *testing.T) {
	tasks := parse(t, "Task,Start,End,Budget\nA,2024-01-01,2024-01-05,12000\n")

	if got := tasks[0].Raw["Budget"]; got != "12000" {
		t.Errorf("Raw[Budget] = %q, want 12000", got)
	}
}

func TestParseTasks_ShortRowsDegradeGracefully(t *testing.T) {
	tasks := parse(t, "Task,Start,End\nLonely\n")

	tk := tasks[0]
	if tk.Name != "Lonely" {
		t.Errorf("Name = %q", tk.Name)
	}
	if !tk.Start.Equal(baseDate) || !tk.End.Equal(baseDate.AddDate(0, 0, 7)) {
		t.Errorf("dates = [%v, %v], want defaults", tk.Start, tk.End)
	}
}

func TestParseTasks_LeadingBlankLinesBeforeHeader(t *testing.T) {
	tasks := parse(t, "\n\nTask,Start,End\nA,2024-01-01,2024-01-02\n")
	if len(tasks) != 1 || tasks[0].Name != "A" {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
}

func TestParseTasks_EmptySourceIsHardError(t *testing.T) {
	_, err := ParseTasks(strings.NewReader(""), ParseOptions{BaseDate: baseDate})
	if err == nil {
		t.Fatal("expected error for empty source")
	}
}

func TestParseTasks_ReversedDatesCollapseToMilestone(t *testing.T) {
	tasks := parse(t, "Task,Start,End\nOops,2024-02-10,2024-02-01\n")

	tk := tasks[0]
	if !tk.End.Equal(tk.Start) {
		t.Errorf("reversed range should collapse, got [%v, %v]", tk.Start, tk.End)
	}
}
