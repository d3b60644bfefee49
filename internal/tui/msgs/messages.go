// Package msgs defines shared message types for TUI view transitions and
// asynchronous results.
package msgs

import "gantterm/internal/task"

// GoToChartMsg signals transition back to the chart view.
type GoToChartMsg struct{}

// OpenPickerMsg signals that the user wants to open the CSV file picker.
type OpenPickerMsg struct{}

// FileSelectedMsg is sent when a file is selected in the file picker.
type FileSelectedMsg struct {
	Path string
}

// TasksLoadedMsg is sent when a CSV file has been parsed.
type TasksLoadedMsg struct {
	Path  string
	Tasks []task.Task
}

// LoadFailedMsg is sent when a CSV file could not be read or parsed. The
// chart keeps its current state; the error is surfaced in the status bar.
type LoadFailedMsg struct {
	Path string
	Err  error
}

// CSVSavedMsg reports the outcome of a CSV export.
type CSVSavedMsg struct {
	Path string
	Err  error
}

// ImageSavedMsg reports the outcome of an asynchronous PNG capture.
type ImageSavedMsg struct {
	Path string
	Err  error
}

// ClearNoticeMsg expires a transient status bar notice.
type ClearNoticeMsg struct{}
