// Package ebitensurface renders a sparkle.Container onto an Ebitengine
// window. Vector shapes go through the vector package, glyphs through
// text/v2 with the Go Regular font, and image particles through images
// registered by name.
package ebitensurface

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // LoadImage decodes PNG files
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/sparkle"
)

// Surface implements sparkle.Surface on top of an *ebiten.Image. Set the
// target with SetTarget before every Container.Draw.
type Surface struct {
	target *ebiten.Image
	font   *text.GoTextFaceSource
	white  *ebiten.Image
	images map[string]*ebiten.Image
	warned map[string]bool

	vs []ebiten.Vertex
	is []uint16
}

var _ sparkle.Surface = (*Surface)(nil)

// NewSurface creates a surface with the built-in glyph font loaded.
func NewSurface() (*Surface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitensurface: load font: %w", err)
	}
	// Sampling the center of a 3x3 image avoids bleeding at triangle edges.
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Surface{
		font:   src,
		white:  white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		images: make(map[string]*ebiten.Image),
		warned: make(map[string]bool),
	}, nil
}

// SetTarget sets the image subsequent draw calls render onto.
func (s *Surface) SetTarget(img *ebiten.Image) {
	s.target = img
}

// RegisterImage makes img available to image particles whose source is src.
func (s *Surface) RegisterImage(src string, img *ebiten.Image) {
	s.images[src] = img
}

// LoadImage decodes r and registers the result under src.
func (s *Surface) LoadImage(src string, r io.Reader) error {
	img, _, err := image.Decode(r)
	if err != nil {
		return fmt.Errorf("ebitensurface: decode image %q: %w", src, err)
	}
	s.RegisterImage(src, ebiten.NewImageFromImage(img))
	return nil
}

// DrawArc draws a filled and/or outlined circle.
func (s *Surface) DrawArc(x, y, radius float64, paint sparkle.Paint) {
	if paint.HasFill {
		vector.DrawFilledCircle(s.target, float32(x), float32(y), float32(radius), paint.Fill, true)
	}
	if paint.StrokeWidth > 0 {
		vector.StrokeCircle(s.target, float32(x), float32(y), float32(radius), float32(paint.StrokeWidth), paint.Stroke, true)
	}
}

// DrawPath fills and/or outlines a closed polygon.
func (s *Surface) DrawPath(points []sparkle.Vec2, paint sparkle.Paint) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, pt := range points[1:] {
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	path.Close()

	if paint.HasFill {
		s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
		colorVertices(s.vs, paint.Fill)
		s.target.DrawTriangles(s.vs, s.is, s.white, &ebiten.DrawTrianglesOptions{
			FillRule:  ebiten.FillRuleNonZero,
			AntiAlias: true,
		})
	}
	if paint.StrokeWidth > 0 {
		s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
			Width:    float32(paint.StrokeWidth),
			LineJoin: vector.LineJoinRound,
		})
		colorVertices(s.vs, paint.Stroke)
		s.target.DrawTriangles(s.vs, s.is, s.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}
}

// DrawImage draws a registered image scaled into the rectangle. Unknown
// sources are skipped with a one-time warning.
func (s *Surface) DrawImage(src string, x, y, width, height, alpha float64, tint *color.NRGBA) {
	img, ok := s.images[src]
	if !ok {
		if !s.warned[src] {
			s.warned[src] = true
			_, _ = fmt.Fprintf(os.Stderr, "[sparkle] ebitensurface: image %q is not registered\n", src)
		}
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(width/float64(b.Dx()), height/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	if tint != nil {
		a := float32(tint.A) / 255
		op.ColorScale.Scale(float32(tint.R)/255*a, float32(tint.G)/255*a, float32(tint.B)/255*a, a)
	} else {
		op.ColorScale.ScaleAlpha(float32(alpha))
	}
	s.target.DrawImage(img, op)
}

// DrawGlyph draws text centered on (x, y).
func (s *Surface) DrawGlyph(str string, x, y, size float64, paint sparkle.Paint) {
	if !paint.HasFill || size <= 0 {
		return
	}
	face := &text.GoTextFace{Source: s.font, Size: size}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(paint.Fill)
	text.Draw(s.target, str, face, op)
}

// DrawLine strokes an anti-aliased segment.
func (s *Surface) DrawLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	vector.StrokeLine(s.target, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// colorVertices points every vertex at the white pixel and applies c as a
// straight-alpha vertex color.
func colorVertices(vs []ebiten.Vertex, c color.NRGBA) {
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255
	a := float32(c.A) / 255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
}
