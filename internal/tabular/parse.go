// Package tabular converts delimited task data to and from the normalized
// task model. Import is deliberately forgiving: every row degrades through a
// fallback chain to a visible, valid task, and only a source that cannot be
// read as CSV at all is a hard error.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gantterm/internal/task"
	"gantterm/internal/timeline"
	"gantterm/internal/util"
)

// ErrNoHeader is returned when the source has no usable header row.
var ErrNoHeader = errors.New("tabular: no header row found")

// Header aliases, matched after util.NormalizeHeader. Name resolution walks
// nameAliases in order and takes the first populated column.
var (
	nameAliases      = []string{"task", "task name", "title", "sprint", "sprint name", "name", "activity"}
	startAliases     = []string{"start", "start date", "begin", "from"}
	endAliases       = []string{"end", "end date", "finish", "to", "due"}
	startWeekAliases = []string{"start week", "week start", "from week", "startweek"}
	endWeekAliases   = []string{"end week", "week end", "to week", "endweek"}
	durWeekAliases   = []string{"duration", "duration weeks", "duration (weeks)", "weeks"}
	baseDateAliases  = []string{"base date", "base", "project start"}
	assigneeAliases  = []string{"assignee", "owner", "resource", "assigned to"}
	progressAliases  = []string{"progress", "% complete", "percent", "complete"}
	depsAliases      = []string{"dependencies", "depends on", "deps", "predecessors"}
	idAliases        = []string{"id", "task id"}
	phaseAliases     = []string{"phase", "group", "category"}
)

// dateLayouts are tried in order before falling back to integer day offsets.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"2006/01/02",
}

// ParseOptions configures a parse call. The zero value is not usable:
// callers must supply BaseDate (conventionally January 1 of the current
// year) so parsing never reads the clock.
type ParseOptions struct {
	// BaseDate anchors integer day offsets and week-number encodings, and is
	// the start date of last resort.
	BaseDate time.Time
	// MilestoneKeywords overrides task.DefaultMilestoneKeywords when non-nil.
	MilestoneKeywords []string
}

// ParseTasks reads delimited text with a header row and returns one task per
// data row. Malformed rows never fail the parse; each resolves through the
// documented fallback chain. See ErrNoHeader for the single hard failure.
func ParseTasks(r io.Reader, opts ParseOptions) ([]task.Task, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("tabular: reading source: %w", err)
	}

	header, rows := splitHeader(records)
	if header == nil {
		return nil, ErrNoHeader
	}

	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = util.NormalizeHeader(h)
	}

	tasks := make([]task.Task, 0, len(rows))
	for i, rec := range rows {
		tasks = append(tasks, resolveRow(header, cols, rec, i+1, opts))
	}
	return tasks, nil
}

// splitHeader returns the first non-empty record as the header and the rest
// as data rows. Records that are entirely blank are skipped.
func splitHeader(records [][]string) ([]string, [][]string) {
	for i, rec := range records {
		if !blankRecord(rec) {
			return rec, records[i+1:]
		}
	}
	return nil, nil
}

func blankRecord(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// resolveRow applies the full fallback chain to one data row. seq is the
// 1-based row number used for synthesized names and IDs.
func resolveRow(header, cols, rec []string, seq int, opts ParseOptions) task.Task {
	row := newRowView(cols, rec)

	t := task.Task{Raw: rawColumns(header, rec)}

	// 1. Name: first populated alias, else "<phase-or-Task> <n>".
	t.Name = row.first(nameAliases)
	if t.Name == "" {
		prefix := row.first(phaseAliases)
		if prefix == "" {
			prefix = "Task"
		}
		t.Name = fmt.Sprintf("%s %d", prefix, seq)
	}

	// 2. Direct dates (explicit formats, then integer day offsets).
	start, okStart := parseDate(row.first(startAliases), opts.BaseDate)
	end, okEnd := parseDate(row.first(endAliases), opts.BaseDate)

	// 3. Week-number fallback for whichever endpoint is still missing.
	if !okStart || !okEnd {
		ws, we, okWS, okWE := resolveWeeks(row, opts.BaseDate)
		if !okStart && okWS {
			start, okStart = ws, true
		}
		if !okEnd && okWE {
			end, okEnd = we, true
		}
	}

	// 4. Visible defaults so the row always lands on the chart.
	if !okStart {
		start = opts.BaseDate
	}
	if !okEnd {
		end = start.AddDate(0, 0, 7)
	}

	// 5. Day granularity; a reversed range collapses to a milestone rather
	// than producing a negative duration. The keyword heuristic only applies
	// when the row had no explicit end date: explicit data wins.
	t.Start = timeline.Midnight(start)
	t.End = timeline.Midnight(end)
	if t.End.Before(t.Start) {
		t.End = t.Start
	}
	if !okEnd && task.ClassifyMilestone(t.Raw, opts.MilestoneKeywords) {
		t.End = t.Start
	}

	// 6. Remaining normalized fields.
	t.Assignee = row.first(assigneeAliases)
	if p, err := strconv.ParseFloat(row.first(progressAliases), 64); err == nil {
		t.Progress = task.ClampProgress(p)
	}
	t.Dependencies = splitDependencies(row.first(depsAliases))

	// 7. Identifier.
	t.ID = row.first(idAliases)
	if t.ID == "" {
		t.ID = util.TaskID(seq)
	}

	return t
}

// rowView indexes a record's fields by normalized column name.
type rowView struct {
	byCol map[string]string
}

func newRowView(cols, rec []string) rowView {
	m := make(map[string]string, len(cols))
	for i, c := range cols {
		if i >= len(rec) || c == "" {
			continue
		}
		v := strings.TrimSpace(rec[i])
		if v == "" {
			continue
		}
		if _, dup := m[c]; !dup {
			m[c] = v
		}
	}
	return rowView{byCol: m}
}

// first returns the value of the first populated alias.
func (r rowView) first(aliases []string) string {
	for _, a := range aliases {
		if v, ok := r.byCol[a]; ok {
			return v
		}
	}
	return ""
}

func rawColumns(header, rec []string) map[string]string {
	raw := make(map[string]string, len(header))
	for i, h := range header {
		if i < len(rec) {
			raw[h] = rec[i]
		}
	}
	return raw
}

// parseDate resolves an explicit date string: the known layouts in order,
// then a pure integer interpreted as a day offset from base.
func parseDate(s string, base time.Time) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		return base.AddDate(0, 0, n), true
	}
	return time.Time{}, false
}

// resolveWeeks computes start/end dates from week-number columns:
// start = base + (startWeek-1) weeks, end = base + endWeek weeks, or
// start + durationWeeks when only a start week and duration are present.
func resolveWeeks(row rowView, defaultBase time.Time) (start, end time.Time, okStart, okEnd bool) {
	base := defaultBase
	if b, ok := parseDate(row.first(baseDateAliases), defaultBase); ok {
		base = b
	}

	startWeek, okSW := parseWeekNumber(row.first(startWeekAliases))
	endWeek, okEW := parseWeekNumber(row.first(endWeekAliases))
	durWeeks, okDW := parseWeekNumber(row.first(durWeekAliases))

	if okSW {
		start = base.AddDate(0, 0, (startWeek-1)*7)
		okStart = true
	}
	switch {
	case okEW:
		end = base.AddDate(0, 0, endWeek*7)
		okEnd = true
	case okStart && okDW:
		end = start.AddDate(0, 0, durWeeks*7)
		okEnd = true
	}
	return start, end, okStart, okEnd
}

func parseWeekNumber(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	// Tolerate fractional week counts in duration columns by truncating.
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

func splitDependencies(s string) []string {
	if s == "" {
		return nil
	}
	var deps []string
	for _, d := range strings.Split(s, ",") {
		if d = strings.TrimSpace(d); d != "" {
			deps = append(deps, d)
		}
	}
	return deps
}
