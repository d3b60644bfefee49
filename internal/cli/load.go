package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gantterm/internal/config"
	"gantterm/internal/tabular"
	"gantterm/internal/task"
	"gantterm/internal/timeline"
)

// logger reports diagnostics on stderr so stdout stays clean for piped
// chart output.
var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// loadTasks parses a CSV file using the shared config for keyword overrides.
func loadTasks(path string, cfg config.Config) ([]task.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	now := time.Now()
	tasks, err := tabular.ParseTasks(f, tabular.ParseOptions{
		BaseDate:          time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()),
		MilestoneKeywords: cfg.MilestoneKeywords,
	})
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	logger.Info("loaded tasks", "path", path, "count", len(tasks))
	return tasks, nil
}

// resolveWindow fits a window around the tasks, honoring optional --from and
// --to overrides in YYYY-MM-DD form.
func resolveWindow(tasks []task.Task, cfg config.Config, from, to string) (timeline.Window, error) {
	w := timeline.FitWindow(tasks, cfg.PaddingDays, time.Now())

	if from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return timeline.Window{}, fmt.Errorf("invalid --from date %q: %w", from, err)
		}
		w.Start = t
	}
	if to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return timeline.Window{}, fmt.Errorf("invalid --to date %q: %w", to, err)
		}
		w.End = t
	}
	if w.End.Before(w.Start) {
		return timeline.Window{}, fmt.Errorf("window end %s precedes start %s", w.End.Format("2006-01-02"), w.Start.Format("2006-01-02"))
	}
	return w, nil
}
