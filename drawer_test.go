package sparkle

import (
	"image/color"
	"math"
	"testing"
)

func drawOne(t *testing.T, opts Options) *recordingSurface {
	t.Helper()
	opts.Particles.Move.Enable = false
	c := newTestContainer(t, opts, 200, 200, nil)
	pushAt(c, 100, 100)
	s := &recordingSurface{}
	c.Draw(s)
	return s
}

func TestDrawCircle(t *testing.T) {
	s := drawOne(t, testOptions())
	if len(s.arcs) != 1 || len(s.paths) != 0 {
		t.Fatalf("arcs = %d, paths = %d; want 1, 0", len(s.arcs), len(s.paths))
	}
	a := s.arcs[0]
	if a.x != 100 || a.y != 100 || a.r != 3 {
		t.Errorf("arc = %+v", a)
	}
	want := color.NRGBA{255, 255, 255, 128}
	if !a.paint.HasFill || a.paint.Fill != want || a.paint.StrokeWidth != 0 {
		t.Errorf("paint = %+v, want fill %v and no stroke", a.paint, want)
	}
}

func TestDrawPolygonShapes(t *testing.T) {
	tests := []struct {
		kind   ShapeKind
		points int
		first  Vec2
	}{
		{ShapeSquare, 4, Vec2{97, 97}},
		{ShapeTriangle, 3, Vec2{100, 97}},
		{ShapePolygon, 6, Vec2{100, 97}},
		{ShapeStar, 10, Vec2{100, 97}},
	}
	for _, tt := range tests {
		opts := testOptions()
		opts.Particles.Shape.Type = ShapeOf(tt.kind)
		opts.Particles.Shape.Polygon.Sides = 6
		s := drawOne(t, opts)
		if len(s.paths) != 1 || len(s.arcs) != 0 {
			t.Fatalf("%v: paths = %d, arcs = %d; want 1, 0", tt.kind, len(s.paths), len(s.arcs))
		}
		pts := s.paths[0].points
		if len(pts) != tt.points {
			t.Errorf("%v: %d points, want %d", tt.kind, len(pts), tt.points)
			continue
		}
		assertNear(t, tt.kind.String()+" first.x", pts[0].X, tt.first.X)
		assertNear(t, tt.kind.String()+" first.y", pts[0].Y, tt.first.Y)
	}
}

func TestDrawStarInset(t *testing.T) {
	opts := testOptions()
	opts.Particles.Shape.Type = ShapeOf(ShapeStar)
	opts.Particles.Shape.Star = Star{Sides: 5, Inset: 3}
	s := drawOne(t, opts)
	pts := s.paths[0].points
	for i, pt := range pts {
		r := math.Hypot(pt.X-100, pt.Y-100)
		want := 3.0
		if i%2 == 1 {
			want = 1
		}
		assertNear(t, "star radius", r, want)
	}
}

func TestDrawImage(t *testing.T) {
	opts := testOptions()
	opts.Particles.Shape.Type = ShapeOf(ShapeImage)
	opts.Particles.Shape.Image = ImageOptions{Src: "leaf.png", Width: 200, Height: 100, ReplaceColor: true}
	s := drawOne(t, opts)
	if len(s.images) != 1 {
		t.Fatalf("images = %d, want 1", len(s.images))
	}
	im := s.images[0]
	if im.src != "leaf.png" {
		t.Errorf("src = %q", im.src)
	}
	assertNear(t, "w", im.w, 6)
	assertNear(t, "h", im.h, 3)
	assertNear(t, "x", im.x, 97)
	assertNear(t, "y", im.y, 98.5)
	assertNear(t, "alpha", im.alpha, 0.5)
	if im.tint == nil || *im.tint != (color.NRGBA{255, 255, 255, 128}) {
		t.Errorf("tint = %v, want white at alpha 128", im.tint)
	}
}

func TestDrawImageWithoutReplaceColor(t *testing.T) {
	opts := testOptions()
	opts.Particles.Shape.Type = ShapeOf(ShapeImage)
	opts.Particles.Shape.Image = ImageOptions{Src: "leaf.png", Width: 10, Height: 10}
	s := drawOne(t, opts)
	if len(s.images) != 1 || s.images[0].tint != nil {
		t.Errorf("images = %+v, want one untinted", s.images)
	}
}

func TestDrawSkipsMissingPayload(t *testing.T) {
	opts := testOptions()
	opts.Particles.Shape.Type = ShapeOf(ShapeImage)
	opts.Particles.Shape.Image = ImageOptions{Width: 10, Height: 10}
	s := drawOne(t, opts)
	if len(s.images)+len(s.arcs)+len(s.paths)+len(s.glyphs) != 0 {
		t.Errorf("image without source drew %+v", s)
	}

	opts = testOptions()
	opts.Particles.Shape.Type = ShapeOf(ShapeChar)
	opts.Particles.Shape.Character = Character{Value: CharacterOf("")}
	s = drawOne(t, opts)
	if len(s.glyphs) != 0 {
		t.Errorf("empty character drew %d glyphs", len(s.glyphs))
	}
}

func TestDrawGlyph(t *testing.T) {
	opts := testOptions()
	opts.Particles.Shape.Type = ShapeOf(ShapeChar)
	opts.Particles.Shape.Character = Character{Value: CharacterOf("*")}
	s := drawOne(t, opts)
	if len(s.glyphs) != 1 {
		t.Fatalf("glyphs = %d, want 1", len(s.glyphs))
	}
	g := s.glyphs[0]
	if g.text != "*" || g.x != 100 || g.y != 100 || g.size != 6 {
		t.Errorf("glyph = %+v", g)
	}
}

func TestDrawEmptyColorHasNoFill(t *testing.T) {
	opts := testOptions()
	opts.Particles.Color = ColorValue{}
	s := drawOne(t, opts)
	if len(s.arcs) != 1 {
		t.Fatalf("arcs = %d, want 1", len(s.arcs))
	}
	if s.arcs[0].paint.HasFill {
		t.Error("particle without color should not be filled")
	}
}

func TestDrawStroke(t *testing.T) {
	opts := testOptions()
	opts.Particles.Shape.Stroke = Stroke{Width: 2, Color: ColorLiteral("#ff0000")}
	s := drawOne(t, opts)
	p := s.arcs[0].paint
	if p.StrokeWidth != 2 || p.Stroke != (color.NRGBA{255, 0, 0, 128}) {
		t.Errorf("paint = %+v, want red stroke of width 2", p)
	}
}

func TestDrawDoesNotMutate(t *testing.T) {
	opts := testOptions()
	opts.Particles.Number = 20
	opts.Particles.Links.Enable = true
	c := newTestContainer(t, opts, 300, 300, nil)
	before := make([]Particle, 0, c.Count())
	for _, p := range c.Particles() {
		before = append(before, *p)
	}
	c.Draw(&recordingSurface{})
	for i, p := range c.Particles() {
		if p.Position != before[i].Position || p.Size != before[i].Size || p.Opacity != before[i].Opacity {
			t.Fatalf("particle %d changed while drawing", p.ID)
		}
	}
}
