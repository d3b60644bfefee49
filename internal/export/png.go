// Package export renders the laid-out chart to a PNG bitmap. It consumes the
// same layout as the terminal renderer, so a capture always reflects the
// window (pan/zoom) and task edits in effect at the moment it is taken.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"gantterm/internal/chart"
	"gantterm/internal/task"
	"gantterm/internal/timeline"
)

// ErrNoTasks is returned when there is nothing to draw.
var ErrNoTasks = errors.New("export: no tasks to render")

// Colors is the bitmap palette. DarkColors and LightColors mirror the two
// terminal themes.
type Colors struct {
	Background color.RGBA
	Grid       color.RGBA
	Bar        color.RGBA
	Progress   color.RGBA
	Milestone  color.RGBA
	Text       color.RGBA
	Today      color.RGBA
}

// DarkColors is the default palette.
var DarkColors = Colors{
	Background: color.RGBA{0x1E, 0x1E, 0x2A, 0xFF},
	Grid:       color.RGBA{0x3A, 0x3A, 0x4A, 0xFF},
	Bar:        color.RGBA{0x5F, 0xAF, 0xAF, 0xFF},
	Progress:   color.RGBA{0x87, 0xAF, 0x87, 0xFF},
	Milestone:  color.RGBA{0xD7, 0xAF, 0x5F, 0xFF},
	Text:       color.RGBA{0xD0, 0xD0, 0xD0, 0xFF},
	Today:      color.RGBA{0xAF, 0x5F, 0x5F, 0xFF},
}

// LightColors is the palette used when the light theme is active.
var LightColors = Colors{
	Background: color.RGBA{0xFA, 0xFA, 0xF5, 0xFF},
	Grid:       color.RGBA{0xD5, 0xD5, 0xCD, 0xFF},
	Bar:        color.RGBA{0x2E, 0x7D, 0x7D, 0xFF},
	Progress:   color.RGBA{0x4E, 0x7D, 0x4E, 0xFF},
	Milestone:  color.RGBA{0xB0, 0x80, 0x20, 0xFF},
	Text:       color.RGBA{0x30, 0x30, 0x30, 0xFF},
	Today:      color.RGBA{0xB0, 0x40, 0x40, 0xFF},
}

// Options size the bitmap. Zero fields take the listed defaults.
type Options struct {
	Width     int // total image width in pixels (default 1200)
	RowHeight int // per-task row height (default 28)
	Gutter    int // label gutter width (default 160)
	Colors    Colors
	Today     time.Time // optional today marker
}

const (
	defaultWidth     = 1200
	defaultRowHeight = 28
	defaultGutter    = 160
	headerHeight     = 24
	barPadding       = 6 // vertical padding inside a row
)

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.RowHeight <= 0 {
		o.RowHeight = defaultRowHeight
	}
	if o.Gutter <= 0 {
		o.Gutter = defaultGutter
	}
	if o.Colors == (Colors{}) {
		o.Colors = DarkColors
	}
	return o
}

// PNG renders the tasks within the window and returns the encoded image.
func PNG(tasks []task.Task, w timeline.Window, o Options) ([]byte, error) {
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}
	o = o.withDefaults()

	timelineWidth := o.Width - o.Gutter
	if timelineWidth < 1 {
		timelineWidth = 1
	}
	bars := chart.Layout(tasks, w, timelineWidth)
	scale := w.Scale(timelineWidth)

	height := headerHeight + len(tasks)*o.RowHeight
	img := image.NewRGBA(image.Rect(0, 0, o.Width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{o.Colors.Background}, image.Point{}, draw.Src)

	drawGrid(img, w, scale, o, height)
	drawTodayMarker(img, scale, o, height)

	for _, b := range bars {
		top := headerHeight + b.Row*o.RowHeight
		drawLabel(img, b.Task.Name, 8, top+o.RowHeight/2+4, o.Colors.Text)
		if b.Milestone {
			drawDiamond(img, o.Gutter+b.X, top+o.RowHeight/2, o.RowHeight/2-barPadding/2, o.Colors.Milestone)
			continue
		}
		drawBar(img, b, o, top)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("export: encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the chart and writes it to path.
func WriteFile(path string, tasks []task.Task, w timeline.Window, o Options) error {
	data, err := PNG(tasks, w, o)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("export: writing %s: %w", path, err)
	}
	return nil
}

func drawGrid(img *image.RGBA, w timeline.Window, scale timeline.Scale, o Options, height int) {
	for _, tick := range w.WeeklyTicks() {
		x := o.Gutter + int(math.Round(scale.Pos(tick)))
		if x < o.Gutter || x >= o.Width {
			continue
		}
		vline(img, x, 0, height, o.Colors.Grid)
		drawLabel(img, tick.Format("Jan 02"), x+3, 16, o.Colors.Text)
	}
}

func drawTodayMarker(img *image.RGBA, scale timeline.Scale, o Options, height int) {
	if o.Today.IsZero() {
		return
	}
	x := o.Gutter + int(math.Round(scale.Pos(timeline.Midnight(o.Today))))
	if x >= o.Gutter && x < o.Width {
		vline(img, x, headerHeight, height, o.Colors.Today)
	}
}

func drawBar(img *image.RGBA, b chart.Bar, o Options, top int) {
	x0 := o.Gutter + b.X
	x1 := x0 + b.Width
	y0 := top + barPadding
	y1 := top + o.RowHeight - barPadding

	fillRect(img, x0, y0, x1, y1, o.Colors.Bar)
	if b.ProgressWidth > 0 {
		fillRect(img, x0, y0, x0+b.ProgressWidth, y1, o.Colors.Progress)
	}
}

func drawDiamond(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		span := r - abs(dy)
		for dx := -span; dx <= span; dx++ {
			setPixel(img, cx+dx, cy+dy, c)
		}
	}
}

func drawLabel(img *image.RGBA, text string, x, y int, c color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			setPixel(img, x, y, c)
		}
	}
}

func vline(img *image.RGBA, x, y0, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		setPixel(img, x, y, c)
	}
}

func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, c)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
