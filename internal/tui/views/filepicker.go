package views

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"gantterm/internal/tui/msgs"
	"gantterm/internal/tui/styles"
)

// FilePickerModel is the CSV file picker view.
type FilePickerModel struct {
	picker  filepicker.Model
	palette styles.Palette
	width   int
	height  int
	err     error
}

// NewFilePickerModel creates a picker rooted in the given directory,
// filtered to .csv files.
func NewFilePickerModel(dir string, palette styles.Palette) FilePickerModel {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = []string{".csv"}
	fp.ShowHidden = false
	fp.ShowPermissions = false
	fp.ShowSize = false
	fp.DirAllowed = false
	fp.FileAllowed = true

	return FilePickerModel{picker: fp, palette: palette}
}

// Init implements tea.Model.
func (m FilePickerModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update implements tea.Model.
func (m FilePickerModel) Update(msg tea.Msg) (FilePickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Reserve space for the title and status bar.
		m.picker.Height = m.height - 4
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return msgs.GoToChartMsg{} }
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		absPath, err := filepath.Abs(path)
		if err != nil {
			m.err = err
			return m, nil
		}
		return m, func() tea.Msg { return msgs.FileSelectedMsg{Path: absPath} }
	}

	// Selections of non-.csv files are silently ignored.
	if didSelect, _ := m.picker.DidSelectDisabledFile(msg); didSelect {
		return m, cmd
	}

	return m, cmd
}

// View implements tea.Model.
func (m FilePickerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	title := m.palette.Title.Render("Open CSV")
	hint := m.palette.Subtle.Render("enter select • esc back • ctrl+c quit")
	return title + "\n\n" + m.picker.View() + "\n" + hint
}
