package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gantterm/internal/task"
)

// exportHeader is the fixed column order of exported files. Raw source
// columns are not round-tripped, so export normalizes any input encoding.
var exportHeader = []string{"id", "name", "start", "end", "assignee", "progress", "dependencies"}

const dateFormat = "2006-01-02"

// WriteTasks emits one CSV row per task in the fixed export column order.
func WriteTasks(w io.Writer, tasks []task.Task) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("tabular: writing header: %w", err)
	}
	for _, t := range tasks {
		rec := []string{
			t.ID,
			t.Name,
			t.Start.Format(dateFormat),
			t.End.Format(dateFormat),
			t.Assignee,
			strconv.FormatFloat(t.Progress, 'f', -1, 64),
			strings.Join(t.Dependencies, ","),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("tabular: writing task %s: %w", t.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("tabular: flushing output: %w", err)
	}
	return nil
}
