package views

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gantterm/internal/chart"
	"gantterm/internal/config"
	"gantterm/internal/export"
	"gantterm/internal/tabular"
	"gantterm/internal/task"
	"gantterm/internal/timeline"
	"gantterm/internal/tui/components"
	"gantterm/internal/tui/msgs"
	"gantterm/internal/tui/styles"
)

const (
	// gutterWidth is the task-name column on the left of the timeline.
	gutterWidth = 24
	// headerRows is the title line plus the tick header above the chart.
	headerRows = 2
	// zoomStep is the factor applied per zoom keypress or wheel click.
	zoomStep = 1.25
	// panDays is how far arrow keys pan the window.
	panDays = 1
	// noticeDuration is how long transient status notices stay visible.
	noticeDuration = 3 * time.Second
)

// ChartModel is the main editor view: it renders the chart and translates
// key and mouse events into task and window mutations.
type ChartModel struct {
	tasks  []task.Task
	path   string // source CSV path, empty for an unsaved chart
	window timeline.Window

	// pinned marks the window as explicitly zoomed or panned; while pinned,
	// task edits no longer re-fit the window until the user presses f.
	pinned bool
	// weekAlign rounds fitted windows to whole Monday-start weeks.
	weekAlign bool

	selected int
	drag     *chart.Session

	editing   bool
	nameInput textinput.Model

	cfg       config.Config
	palette   styles.Palette
	statusBar components.StatusBar
	notice    string
	noticeErr bool

	width  int
	height int

	now   func() time.Time
	today time.Time
}

// NewChartModel creates an empty chart. The clock is injected so tests can
// pin "today".
func NewChartModel(cfg config.Config, now func() time.Time) ChartModel {
	ti := textinput.New()
	ti.Prompt = "Rename: "
	ti.CharLimit = 120

	today := timeline.Midnight(now())
	return ChartModel{
		window:    timeline.FitWindow(nil, cfg.PaddingDays, today),
		selected:  -1,
		nameInput: ti,
		cfg:       cfg,
		palette:   styles.ForName(cfg.Theme),
		statusBar: components.NewStatusBar(),
		now:       now,
		today:     today,
	}
}

// Tasks returns the current task list.
func (m ChartModel) Tasks() []task.Task { return m.tasks }

// Window returns the current domain window.
func (m ChartModel) Window() timeline.Window { return m.window }

// Init implements tea.Model.
func (m ChartModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ChartModel) Update(msg tea.Msg) (ChartModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateNameEdit(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case msgs.TasksLoadedMsg:
		m.tasks = msg.Tasks
		m.path = msg.Path
		m.selected = 0
		if len(m.tasks) == 0 {
			m.selected = -1
		}
		m.pinned = false
		m.refit()
		return m.showNotice(fmt.Sprintf("loaded %d tasks from %s", len(msg.Tasks), filepath.Base(msg.Path)), false)

	case msgs.LoadFailedMsg:
		return m.showNotice(fmt.Sprintf("open %s: %v", filepath.Base(msg.Path), msg.Err), true)

	case msgs.CSVSavedMsg:
		if msg.Err != nil {
			return m.showNotice(fmt.Sprintf("save failed: %v", msg.Err), true)
		}
		return m.showNotice("saved "+msg.Path, false)

	case msgs.ImageSavedMsg:
		if msg.Err != nil {
			return m.showNotice(fmt.Sprintf("export failed: %v", msg.Err), true)
		}
		return m.showNotice("exported "+msg.Path, false)

	case msgs.ClearNoticeMsg:
		m.notice = ""
		m.noticeErr = false
		return m, nil
	}

	return m, nil
}

func (m ChartModel) handleKey(msg tea.KeyMsg) (ChartModel, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.tasks)-1 {
			m.selected++
		}

	case "+", "=":
		m.window = m.window.Zoom(zoomStep, time.Time{})
		m.pinned = true

	case "-", "_":
		m.window = m.window.Zoom(1/zoomStep, time.Time{})
		m.pinned = true

	case "left", "h":
		m.window = m.window.Shift(-panDays * 24 * time.Hour)
		m.pinned = true

	case "right", "l":
		m.window = m.window.Shift(panDays * 24 * time.Hour)
		m.pinned = true

	case "f":
		m.pinned = false
		m.refit()

	case "w":
		m.weekAlign = !m.weekAlign
		if !m.pinned {
			m.refit()
		}

	case "e", "enter":
		if m.selected >= 0 && m.selected < len(m.tasks) {
			m.editing = true
			m.nameInput.SetValue(m.tasks[m.selected].Name)
			m.nameInput.Focus()
			return m, textinput.Blink
		}

	case "t":
		m.palette = m.palette.Toggle()

	case "o":
		return m, func() tea.Msg { return msgs.OpenPickerMsg{} }

	case "s":
		return m, m.saveCSVCmd()

	case "p":
		return m, m.exportPNGCmd()
	}

	return m, nil
}

// updateNameEdit routes keys to the inline rename field. Enter commits by
// replacing the task list; esc cancels without touching it.
func (m ChartModel) updateNameEdit(msg tea.KeyMsg) (ChartModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name != "" && m.selected >= 0 && m.selected < len(m.tasks) {
			t := m.tasks[m.selected]
			t.Name = name
			m.tasks = task.Replace(m.tasks, t)
		}
		m.editing = false
		m.nameInput.Blur()
		return m, nil

	case "esc":
		m.editing = false
		m.nameInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleMouse translates pointer events into drag sessions, selection and
// zooming. An active drag session consumes motion and release exclusively; a
// press while one is active is ignored rather than preempting it.
func (m ChartModel) handleMouse(msg tea.MouseMsg) (ChartModel, tea.Cmd) {
	cx := msg.X - gutterWidth
	cy := msg.Y - headerRows
	scale := m.window.Scale(m.timelineWidth())

	if m.drag != nil {
		switch msg.Action {
		case tea.MouseActionRelease:
			// Release anywhere ends the session, including outside the chart.
			m.drag = nil
			if !m.pinned {
				m.refit()
			}
		case tea.MouseActionMotion:
			m.tasks = m.drag.Update(m.tasks, scale, cx)
		}
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.window = m.window.Zoom(zoomStep, m.cursorDate(cx, scale))
		m.pinned = true

	case tea.MouseButtonWheelDown:
		m.window = m.window.Zoom(1/zoomStep, m.cursorDate(cx, scale))
		m.pinned = true

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		bars := chart.Layout(m.tasks, m.window, m.timelineWidth())
		if s, ok := chart.Begin(bars, cx, cy, 1, scale); ok {
			m.drag = s
			if _, row, found := task.Find(m.tasks, s.TaskID); found {
				m.selected = row
			}
			return m, nil
		}
		// Clicking empty grid still selects the row under the cursor.
		if cy >= 0 && cy < len(m.tasks) {
			m.selected = cy
		}
	}

	return m, nil
}

// cursorDate maps a chart-relative column to a date, or the zero time (which
// Zoom treats as the window midpoint) when the cursor is off the timeline.
func (m ChartModel) cursorDate(cx int, scale timeline.Scale) time.Time {
	if cx < 0 || cx > scale.Width {
		return time.Time{}
	}
	return scale.TimeAt(float64(cx))
}

// refit recomputes the window from the task set unless the caller has kept
// it pinned. Week alignment applies only to fitted windows.
func (m *ChartModel) refit() {
	m.window = timeline.FitWindow(m.tasks, m.cfg.PaddingDays, m.today)
	if m.weekAlign {
		m.window = m.window.RoundToWeeks()
	}
}

func (m ChartModel) timelineWidth() int {
	w := m.width - gutterWidth
	if w < 1 {
		w = 1
	}
	return w
}

func (m ChartModel) showNotice(text string, isErr bool) (ChartModel, tea.Cmd) {
	m.notice = text
	m.noticeErr = isErr
	return m, tea.Tick(noticeDuration, func(time.Time) tea.Msg { return msgs.ClearNoticeMsg{} })
}

// saveCSVCmd captures the current task list and writes it out off the event
// loop. The in-memory state is untouched whether or not the write succeeds.
func (m ChartModel) saveCSVCmd() tea.Cmd {
	tasks := m.tasks
	path := m.path
	if path == "" {
		path = filepath.Join(m.cfg.ExportDir, "gantt.csv")
	}
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return msgs.CSVSavedMsg{Path: path, Err: err}
		}
		defer f.Close()
		if err := tabular.WriteTasks(f, tasks); err != nil {
			return msgs.CSVSavedMsg{Path: path, Err: err}
		}
		return msgs.CSVSavedMsg{Path: path}
	}
}

// exportPNGCmd captures the visible chart asynchronously so a slow encode
// never blocks pointer or keyboard handling. The snapshot reflects the
// window and edits at the moment of capture.
func (m ChartModel) exportPNGCmd() tea.Cmd {
	tasks := m.tasks
	window := m.window
	opts := export.Options{
		RowHeight: m.cfg.RowHeight,
		Colors:    export.DarkColors,
		Today:     m.today,
	}
	if m.palette.Name == "light" {
		opts.Colors = export.LightColors
	}
	path := filepath.Join(m.cfg.ExportDir, "gantt-"+m.now().Format("20060102-150405")+".png")

	return func() tea.Msg {
		if err := export.WriteFile(path, tasks, window, opts); err != nil {
			return msgs.ImageSavedMsg{Path: path, Err: err}
		}
		return msgs.ImageSavedMsg{Path: path}
	}
}

// View implements tea.Model.
func (m ChartModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	title := m.titleLine()
	bars := chart.Layout(m.tasks, m.window, m.timelineWidth())
	body := chart.Render(bars, m.window, chart.RenderOptions{
		Width:    m.timelineWidth(),
		Gutter:   gutterWidth,
		Selected: m.selected,
		Today:    m.today,
		Theme:    m.palette.ChartTheme(),
	})

	footer := m.footerLine()

	// Pad so the footer sits on the bottom row.
	content := title + "\n" + body
	used := strings.Count(content, "\n") + 1
	padding := m.height - used - 1
	if padding < 0 {
		padding = 0
	}
	return content + strings.Repeat("\n", padding+1) + footer
}

func (m ChartModel) titleLine() string {
	name := m.path
	if name == "" {
		name = "untitled"
	} else {
		name = filepath.Base(name)
	}
	span := fmt.Sprintf(" %s → %s", m.window.Start.Format("2006-01-02"), m.window.End.Format("2006-01-02"))
	return m.palette.Title.Render("gantterm · "+name) + m.palette.Subtle.Render(span)
}

func (m ChartModel) footerLine() string {
	if m.editing {
		return m.nameInput.View()
	}
	notice := m.notice
	if m.noticeErr {
		return m.palette.Error.Width(m.width).Render(notice)
	}
	hints := []string{
		"q quit", "o open", "s save csv", "p export png",
		"←/→ pan", "+/- zoom", "f fit", "w weeks", "e rename", "t theme",
	}
	return m.statusBar.Render(m.width, hints, notice, m.palette)
}
