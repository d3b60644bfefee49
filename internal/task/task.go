// Package task defines the normalized task record that the chart operates on.
package task

import (
	"strings"
	"time"
)

// Task is a single row on the chart. Start and End are truncated to midnight;
// a task whose End equals its Start is a milestone.
type Task struct {
	ID           string
	Name         string
	Start        time.Time
	End          time.Time
	Assignee     string
	Progress     float64 // percent, clamped to [0, 100]
	Dependencies []string
	// Raw holds the original source columns keyed by header text, for fields
	// not mapped to the normalized schema. It is not round-tripped on export.
	Raw map[string]string
}

// IsMilestone reports whether the task has a zero-day duration.
func (t Task) IsMilestone() bool {
	return !t.End.After(t.Start)
}

// DurationDays returns the task's duration in whole days.
func (t Task) DurationDays() int {
	return int(t.End.Sub(t.Start).Round(time.Hour).Hours() / 24)
}

// ClampProgress clamps a progress percentage to [0, 100].
func ClampProgress(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// DefaultMilestoneKeywords are the words searched for by ClassifyMilestone
// when the caller does not supply its own list.
var DefaultMilestoneKeywords = []string{
	"milestone",
	"release",
	"launch",
	"deadline",
	"due date",
}

// ClassifyMilestone reports whether any of the raw source columns contain a
// milestone keyword. It is a heuristic for sources that have no explicit
// milestone field; swap it for a schema column by setting End = Start at
// import time instead. A nil keywords list uses DefaultMilestoneKeywords.
func ClassifyMilestone(raw map[string]string, keywords []string) bool {
	if keywords == nil {
		keywords = DefaultMilestoneKeywords
	}
	for _, v := range raw {
		lv := strings.ToLower(v)
		for _, kw := range keywords {
			if strings.Contains(lv, kw) {
				return true
			}
		}
	}
	return false
}

// Replace returns a new slice in which the task matching updated.ID is
// swapped for updated. All other elements are the same values; the input
// slice is never mutated. A missing ID returns a copy of the input.
func Replace(tasks []Task, updated Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if out[i].ID == updated.ID {
			out[i] = updated
			break
		}
	}
	return out
}

// Find returns the task with the given ID and its row index.
func Find(tasks []Task, id string) (Task, int, bool) {
	for i, t := range tasks {
		if t.ID == id {
			return t, i, true
		}
	}
	return Task{}, -1, false
}
