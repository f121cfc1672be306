// Package termsurface renders a sparkle.Container into a terminal through
// tcell. Every cell stands for a block of canvas pixels; shapes color the
// cell background and glyph particles print their first rune.
package termsurface

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/sparkle"
)

// Default cell size in canvas pixels. Terminal cells are roughly twice as
// tall as they are wide.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

type cell struct {
	bg    colorful.Color
	fg    colorful.Color
	glyph rune
}

// Surface implements sparkle.Surface over a grid of terminal cells. Draw
// calls accumulate in memory; Flush copies the grid to the screen.
type Surface struct {
	screen       tcell.Screen
	cellW, cellH float64
	cols, rows   int
	background   colorful.Color
	cells        []cell
}

var _ sparkle.Surface = (*Surface)(nil)

// NewSurface creates a surface covering the whole screen. Non-positive cell
// sizes fall back to the defaults.
func NewSurface(screen tcell.Screen, cellW, cellH float64) *Surface {
	if cellW <= 0 {
		cellW = DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = DefaultCellHeight
	}
	s := &Surface{
		screen: screen,
		cellW:  cellW,
		cellH:  cellH,
	}
	s.Resize(screen.Size())
	return s
}

// SetBackground sets the color cells are cleared to.
func (s *Surface) SetBackground(c color.Color) {
	if cc, ok := colorful.MakeColor(c); ok {
		s.background = cc
	}
}

// Resize sets the grid size in cells.
func (s *Surface) Resize(cols, rows int) {
	s.cols, s.rows = max(cols, 0), max(rows, 0)
	s.cells = make([]cell, s.cols*s.rows)
	s.Clear()
}

// Canvas returns the canvas size in pixels covered by the grid.
func (s *Surface) Canvas() (w, h float64) {
	return float64(s.cols) * s.cellW, float64(s.rows) * s.cellH
}

// CellAt converts a cell coordinate to the canvas position of its center.
func (s *Surface) CellAt(col, row int) sparkle.Vec2 {
	return sparkle.Vec2{X: (float64(col) + 0.5) * s.cellW, Y: (float64(row) + 0.5) * s.cellH}
}

// Clear resets every cell to the background.
func (s *Surface) Clear() {
	for i := range s.cells {
		s.cells[i] = cell{bg: s.background}
	}
}

// Flush writes the grid to the screen. It does not call Show.
func (s *Surface) Flush() {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			c := s.cells[row*s.cols+col]
			style := tcell.StyleDefault.Background(toTcell(c.bg))
			glyph := ' '
			if c.glyph != 0 {
				glyph = c.glyph
				style = style.Foreground(toTcell(c.fg))
			}
			s.screen.SetContent(col, row, glyph, nil, style)
		}
	}
}

// DrawArc colors the cells whose centers fall inside the circle. A circle
// smaller than a cell colors the cell under its center.
func (s *Surface) DrawArc(x, y, radius float64, paint sparkle.Paint) {
	switch {
	case paint.HasFill:
		s.fillWhere(x-radius, y-radius, x+radius, y+radius, x, y, paint.Fill, func(p sparkle.Vec2) bool {
			return math.Hypot(p.X-x, p.Y-y) <= radius
		})
	case paint.StrokeWidth > 0:
		band := math.Max(paint.StrokeWidth, math.Min(s.cellW, s.cellH)) / 2
		s.fillWhere(x-radius-band, y-radius-band, x+radius+band, y+radius+band, x, y, paint.Stroke, func(p sparkle.Vec2) bool {
			return math.Abs(math.Hypot(p.X-x, p.Y-y)-radius) <= band
		})
	}
}

// DrawPath colors the cells whose centers fall inside the polygon.
func (s *Surface) DrawPath(points []sparkle.Vec2, paint sparkle.Paint) {
	if len(points) < 3 {
		return
	}
	clr := paint.Fill
	if !paint.HasFill {
		if paint.StrokeWidth <= 0 {
			return
		}
		clr = paint.Stroke
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	var cx, cy float64
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		cx += p.X
		cy += p.Y
	}
	n := float64(len(points))
	s.fillWhere(minX, minY, maxX, maxY, cx/n, cy/n, clr, func(p sparkle.Vec2) bool {
		return insidePolygon(points, p)
	})
}

// DrawImage fills the rectangle with the tint when one is given. Terminal
// cells cannot show bitmaps, so untinted images are skipped.
func (s *Surface) DrawImage(_ string, x, y, width, height, _ float64, tint *color.NRGBA) {
	if tint == nil {
		return
	}
	s.fillWhere(x, y, x+width, y+height, x+width/2, y+height/2, *tint, func(sparkle.Vec2) bool {
		return true
	})
}

// DrawGlyph prints the first rune of text in the cell under (x, y).
func (s *Surface) DrawGlyph(text string, x, y, _ float64, paint sparkle.Paint) {
	if !paint.HasFill || text == "" {
		return
	}
	r, _ := utf8.DecodeRuneInString(text)
	i, ok := s.index(x, y)
	if !ok {
		return
	}
	c := &s.cells[i]
	c.glyph = r
	c.fg = blend(c.bg, paint.Fill)
}

// DrawLine colors the cells along the segment.
func (s *Surface) DrawLine(x0, y0, x1, y1, _ float64, clr color.NRGBA) {
	if clr.A == 0 {
		return
	}
	c0, r0 := int(math.Floor(x0/s.cellW)), int(math.Floor(y0/s.cellH))
	c1, r1 := int(math.Floor(x1/s.cellW)), int(math.Floor(y1/s.cellH))
	dc, dr := abs(c1-c0), -abs(r1-r0)
	sc, sr := sign(c1-c0), sign(r1-r0)
	e := dc + dr
	for {
		s.blendAt(c0, r0, clr)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c0 += sc
		}
		if e2 <= dc {
			e += dc
			r0 += sr
		}
	}
}

// fillWhere blends clr into every cell within the pixel box whose center
// satisfies inside. When no center qualifies the cell under (fx, fy) is used.
func (s *Surface) fillWhere(x0, y0, x1, y1, fx, fy float64, clr color.NRGBA, inside func(sparkle.Vec2) bool) {
	if clr.A == 0 {
		return
	}
	c0 := max(int(math.Floor(x0/s.cellW)), 0)
	r0 := max(int(math.Floor(y0/s.cellH)), 0)
	c1 := min(int(math.Floor(x1/s.cellW)), s.cols-1)
	r1 := min(int(math.Floor(y1/s.cellH)), s.rows-1)
	hit := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if inside(s.CellAt(col, row)) {
				s.blendAt(col, row, clr)
				hit = true
			}
		}
	}
	if !hit {
		if i, ok := s.index(fx, fy); ok {
			s.cells[i].bg = blend(s.cells[i].bg, clr)
		}
	}
}

func (s *Surface) blendAt(col, row int, clr color.NRGBA) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return
	}
	c := &s.cells[row*s.cols+col]
	c.bg = blend(c.bg, clr)
}

func (s *Surface) index(x, y float64) (int, bool) {
	col, row := int(math.Floor(x/s.cellW)), int(math.Floor(y/s.cellH))
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return 0, false
	}
	return row*s.cols + col, true
}

// blend composites the straight-alpha src over dst.
func blend(dst colorful.Color, src color.NRGBA) colorful.Color {
	c := colorful.Color{R: float64(src.R) / 255, G: float64(src.G) / 255, B: float64(src.B) / 255}
	return dst.BlendRgb(c, float64(src.A)/255).Clamped()
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// insidePolygon is the even-odd ray casting test.
func insidePolygon(points []sparkle.Vec2, p sparkle.Vec2) bool {
	in := false
	j := len(points) - 1
	for i := range points {
		a, b := points[i], points[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
