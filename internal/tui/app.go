// Package tui wires the chart editor views into a single Bubble Tea program.
package tui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gantterm/internal/config"
	"gantterm/internal/tabular"
	"gantterm/internal/tui/msgs"
	"gantterm/internal/tui/styles"
	"gantterm/internal/tui/views"
)

// View represents the different screens in the TUI.
type View int

const (
	ViewChart View = iota
	ViewFilePicker
)

// Model is the main Bubble Tea model that routes messages to the active view.
type Model struct {
	currentView View
	chart       views.ChartModel
	picker      views.FilePickerModel

	cfg    config.Config
	width  int
	height int
}

// Run starts the TUI, optionally loading a CSV file first.
func Run(path string, cfg config.Config) error {
	p := tea.NewProgram(
		initialModel(path, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

func initialModel(path string, cfg config.Config) Model {
	m := Model{
		currentView: ViewChart,
		chart:       views.NewChartModel(cfg, time.Now),
		cfg:         cfg,
	}
	if path != "" {
		// Synchronous initial load keeps startup simple; later opens go
		// through the picker and the same load message.
		m.chart, _ = m.chart.Update(loadTasks(path, cfg))
	}
	return m
}

// loadTasks reads and parses a CSV file into a load result message.
func loadTasks(path string, cfg config.Config) tea.Msg {
	f, err := os.Open(path)
	if err != nil {
		return msgs.LoadFailedMsg{Path: path, Err: err}
	}
	defer f.Close()

	now := time.Now()
	tasks, err := tabular.ParseTasks(f, tabular.ParseOptions{
		BaseDate:          time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()),
		MilestoneKeywords: cfg.MilestoneKeywords,
	})
	if err != nil {
		return msgs.LoadFailedMsg{Path: path, Err: err}
	}
	return msgs.TasksLoadedMsg{Path: path, Tasks: tasks}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.chart.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		var cmd tea.Cmd
		m.chart, cmd = m.chart.Update(msg)
		if m.currentView == ViewFilePicker {
			var pickerCmd tea.Cmd
			m.picker, pickerCmd = m.picker.Update(msg)
			return m, tea.Batch(cmd, pickerCmd)
		}
		return m, cmd

	case msgs.OpenPickerMsg:
		m.picker = views.NewFilePickerModel(startDir(), styles.ForName(m.cfg.Theme))
		m.currentView = ViewFilePicker
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return m, tea.Batch(m.picker.Init(), cmd)

	case msgs.GoToChartMsg:
		m.currentView = ViewChart
		return m, nil

	case msgs.FileSelectedMsg:
		m.currentView = ViewChart
		path := msg.Path
		cfg := m.cfg
		return m, func() tea.Msg { return loadTasks(path, cfg) }
	}

	switch m.currentView {
	case ViewFilePicker:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	default:
		var cmd tea.Cmd
		m.chart, cmd = m.chart.Update(msg)
		return m, cmd
	}
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.currentView {
	case ViewFilePicker:
		return m.picker.View()
	default:
		return m.chart.View()
	}
}

func startDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}
