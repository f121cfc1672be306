package sparkle

import (
	"image/color"
	"math"
)

// Paint describes how a vector shape or glyph is filled and outlined.
type Paint struct {
	Fill    color.NRGBA
	HasFill bool
	Stroke  color.NRGBA
	// StrokeWidth is zero when there is no outline.
	StrokeWidth float64
}

// Surface is the drawing target a Container renders onto. Implementations
// must not retain the points slice passed to DrawPath, and must silently skip
// image sources they cannot resolve.
type Surface interface {
	// DrawArc draws a full circle centered at (x, y).
	DrawArc(x, y, radius float64, paint Paint)
	// DrawPath draws a closed polygon.
	DrawPath(points []Vec2, paint Paint)
	// DrawImage draws the bitmap identified by src scaled into the given
	// rectangle. tint, when non-nil, replaces the bitmap color and carries
	// the alpha; otherwise alpha scales the bitmap.
	DrawImage(src string, x, y, width, height, alpha float64, tint *color.NRGBA)
	// DrawGlyph draws text centered at (x, y) with the given pixel size.
	DrawGlyph(text string, x, y, size float64, paint Paint)
	// DrawLine draws a segment. The line opacity is carried in clr.A.
	DrawLine(x0, y0, x1, y1, width float64, clr color.NRGBA)
}

// draw renders the particle's current state. buf is scratch space for path
// vertices and is returned for reuse.
func (p *Particle) draw(s Surface, buf []Vec2) []Vec2 {
	shape := &p.world.Options().Particles.Shape
	pos := p.RenderPosition()
	size := p.RenderSize()
	alpha := p.RenderOpacity()
	if size <= 0 {
		return buf
	}

	var paint Paint
	paint.Fill, paint.HasFill = p.Color.NRGBA(alpha)
	if shape.Stroke.Width > 0 {
		if c, ok := p.strokeColor.NRGBA(alpha); ok {
			paint.Stroke = c
			paint.StrokeWidth = shape.Stroke.Width
		}
	}

	switch p.Shape {
	case ShapeCircle:
		s.DrawArc(pos.X, pos.Y, size, paint)
	case ShapeSquare:
		buf = append(buf[:0],
			Vec2{pos.X - size, pos.Y - size},
			Vec2{pos.X + size, pos.Y - size},
			Vec2{pos.X + size, pos.Y + size},
			Vec2{pos.X - size, pos.Y + size},
		)
		s.DrawPath(buf, paint)
	case ShapeTriangle:
		buf = polygonPoints(buf[:0], pos, size, 3)
		s.DrawPath(buf, paint)
	case ShapePolygon:
		buf = polygonPoints(buf[:0], pos, size, max(shape.Polygon.Sides, 3))
		s.DrawPath(buf, paint)
	case ShapeStar:
		inset := shape.Star.Inset
		if inset <= 1 {
			inset = 2
		}
		buf = starPoints(buf[:0], pos, size, max(shape.Star.Sides, 3), inset)
		s.DrawPath(buf, paint)
	case ShapeImage:
		if p.Image == nil || p.Image.Src == "" {
			return buf
		}
		w := size * 2
		h := w / p.Image.Ratio
		var tint *color.NRGBA
		if p.Image.ReplaceColor && paint.HasFill {
			t := paint.Fill
			tint = &t
		}
		s.DrawImage(p.Image.Src, pos.X-w/2, pos.Y-h/2, w, h, alpha, tint)
	case ShapeChar:
		if p.Text == "" {
			return buf
		}
		s.DrawGlyph(p.Text, pos.X, pos.Y, size*2, paint)
	}
	return buf
}

// polygonPoints appends the vertices of a regular polygon with circumradius
// r, first vertex pointing up.
func polygonPoints(buf []Vec2, c Vec2, r float64, sides int) []Vec2 {
	step := 2 * math.Pi / float64(sides)
	for i := 0; i < sides; i++ {
		a := -math.Pi/2 + float64(i)*step
		buf = append(buf, Vec2{c.X + r*math.Cos(a), c.Y + r*math.Sin(a)})
	}
	return buf
}

// starPoints appends the alternating outer/inner vertices of a star.
func starPoints(buf []Vec2, c Vec2, r float64, points int, inset float64) []Vec2 {
	step := math.Pi / float64(points)
	for i := 0; i < points*2; i++ {
		rr := r
		if i%2 == 1 {
			rr = r / inset
		}
		a := -math.Pi/2 + float64(i)*step
		buf = append(buf, Vec2{c.X + rr*math.Cos(a), c.Y + rr*math.Sin(a)})
	}
	return buf
}
