package sparkle

import (
	"math"
	"testing"
)

func TestContainment(t *testing.T) {
	opts := testOptions()
	opts.Particles.Number = 300
	opts.Particles.Size = Size{Value: 12, Random: true}
	c := newTestContainer(t, opts, 640, 480, nil)

	for _, p := range c.Particles() {
		if p.Radius <= 0 {
			t.Fatalf("particle %d radius = %v, want > 0", p.ID, p.Radius)
		}
		if p.Position.X < p.Radius-epsilon || p.Position.X > 640-p.Radius+epsilon {
			t.Errorf("particle %d x = %v outside [%v, %v]", p.ID, p.Position.X, p.Radius, 640-p.Radius)
		}
		if p.Position.Y < p.Radius-epsilon || p.Position.Y > 480-p.Radius+epsilon {
			t.Errorf("particle %d y = %v outside [%v, %v]", p.ID, p.Position.Y, p.Radius, 480-p.Radius)
		}
	}
}

func TestExplicitPositionPulledInside(t *testing.T) {
	c := newTestContainer(t, testOptions(), 100, 100, nil)
	p := pushAt(c, 0, 100)
	assertNear(t, "x", p.Position.X, 3)
	assertNear(t, "y", p.Position.Y, 97)

	p = pushAt(c, 50, 40)
	assertNear(t, "x", p.Position.X, 50)
	assertNear(t, "y", p.Position.Y, 40)
}

func TestOverlapAvoidance(t *testing.T) {
	opts := testOptions()
	opts.Particles.Number = 40
	opts.Particles.Size = Size{Value: 6}
	opts.Particles.Move.Bounce = true
	c := newTestContainer(t, opts, 800, 600, nil)

	ps := c.Particles()
	if len(ps) != 40 {
		t.Fatalf("count = %d, want 40", len(ps))
	}
	for i, p := range ps {
		for _, q := range ps[i+1:] {
			if d := dist(p.Position, q.Position); d <= p.Radius+q.Radius {
				t.Errorf("particles %d and %d overlap: distance %v", p.ID, q.ID, d)
			}
		}
	}
	if fb := c.Stats().PlacementFallbacks; fb != 0 {
		t.Errorf("placement fallbacks = %d, want 0", fb)
	}
}

func TestOverlapAvoidanceSaturatedCanvas(t *testing.T) {
	opts := testOptions()
	opts.Particles.Number = 20
	opts.Particles.Size = Size{Value: 10}
	opts.Particles.Move.Bounce = true

	// A 30x30 canvas fits a single particle of radius 10; construction must
	// still terminate and report the fallbacks.
	c := newTestContainer(t, opts, 30, 30, nil)
	if c.Count() != 20 {
		t.Fatalf("count = %d, want 20", c.Count())
	}
	if fb := c.Stats().PlacementFallbacks; fb < 19 {
		t.Errorf("placement fallbacks = %d, want >= 19", fb)
	}
}

func TestOverlapExplicitPositionNotResampled(t *testing.T) {
	opts := testOptions()
	opts.Particles.Move.Bounce = true
	c := newTestContainer(t, opts, 200, 200, nil)
	pushAt(c, 100, 100)
	p := pushAt(c, 100, 100)
	assertNear(t, "x", p.Position.X, 100)
	assertNear(t, "y", p.Position.Y, 100)
	if c.Stats().PlacementFallbacks != 1 {
		t.Errorf("placement fallbacks = %d, want 1", c.Stats().PlacementFallbacks)
	}
}

func TestStraightVelocityIsBaseline(t *testing.T) {
	for _, dir := range []Direction{DirectionRight, DirectionBottomLeft, DirectionAngle} {
		opts := testOptions()
		opts.Particles.Number = 20
		opts.Particles.Move = Move{Enable: true, Speed: 4, Direction: dir, Angle: 30, Straight: true}
		c := newTestContainer(t, opts, 400, 400, nil)

		base := BaseVelocity(opts.Particles.Move)
		for _, p := range c.Particles() {
			if p.Velocity.Horizontal != base.X || p.Velocity.Vertical != base.Y {
				t.Errorf("direction %d: velocity = %+v, want %+v", dir, p.Velocity, base)
			}
			if p.InitialVelocity != p.Velocity {
				t.Errorf("direction %d: initial velocity = %+v, want %+v", dir, p.InitialVelocity, p.Velocity)
			}
		}
	}
}

func TestStraightRandomScalesEachAxis(t *testing.T) {
	opts := testOptions()
	opts.Particles.Number = 50
	opts.Particles.Move = Move{Enable: true, Direction: DirectionBottomRight, Straight: true, Random: true}
	c := newTestContainer(t, opts, 400, 400, nil)

	base := BaseVelocity(opts.Particles.Move)
	for _, p := range c.Particles() {
		if p.Velocity.Horizontal < 0 || p.Velocity.Horizontal > base.X {
			t.Errorf("horizontal = %v outside [0, %v]", p.Velocity.Horizontal, base.X)
		}
		if p.Velocity.Vertical < 0 || p.Velocity.Vertical > base.Y {
			t.Errorf("vertical = %v outside [0, %v]", p.Velocity.Vertical, base.Y)
		}
	}
}

func TestDriftVelocity(t *testing.T) {
	opts := testOptions()
	opts.Particles.Number = 100
	opts.Particles.Move = Move{Enable: true, Direction: DirectionTop}
	c := newTestContainer(t, opts, 400, 400, nil)

	for _, p := range c.Particles() {
		if math.Abs(p.Velocity.Horizontal) > 0.5 {
			t.Errorf("horizontal drift = %v, want within 0.5", p.Velocity.Horizontal)
		}
		if p.Velocity.Vertical < -1.5 || p.Velocity.Vertical > -0.5 {
			t.Errorf("vertical = %v, want within [-1.5, -0.5]", p.Velocity.Vertical)
		}
	}
}

func TestBaseVelocityDirections(t *testing.T) {
	assertNear(t, "none", math.Hypot(BaseVelocity(Move{}).X, BaseVelocity(Move{}).Y), 0)
	top := BaseVelocity(Move{Direction: DirectionTop})
	assertNear(t, "top.x", top.X, 0)
	assertNear(t, "top.y", top.Y, -1)
	tr := BaseVelocity(Move{Direction: DirectionTopRight})
	assertNear(t, "top-right length", math.Hypot(tr.X, tr.Y), 1)
	a := BaseVelocity(Move{Direction: DirectionAngle, Angle: 90})
	assertNear(t, "angle90.x", a.X, 0)
	assertNear(t, "angle90.y", a.Y, 1)
}

func TestSizeAndOpacityRandomAndAnim(t *testing.T) {
	opts := testOptions()
	opts.Particles.Number = 50
	opts.Particles.Size = Size{Value: 10, Random: true, Anim: Anim{Enable: true, Speed: 40, Min: 1}}
	opts.Particles.Opacity = Opacity{Value: 0.8, Anim: Anim{Enable: true, Speed: 5, Sync: true, Min: 0.2}}
	c := newTestContainer(t, opts, 400, 400, nil)

	for _, p := range c.Particles() {
		if p.Radius > 10 {
			t.Errorf("radius = %v, want <= 10", p.Radius)
		}
		if p.Size.Velocity < 0 || p.Size.Velocity > 0.4 {
			t.Errorf("size velocity = %v, want within [0, 0.4]", p.Size.Velocity)
		}
		assertNear(t, "opacity velocity (sync)", p.Opacity.Velocity, 0.05)
		assertNear(t, "opacity max", p.Opacity.Bounds().Max, 0.8)
		assertNear(t, "opacity min", p.Opacity.Bounds().Min, 0.2)
		if p.Opacity.Growing || p.Size.Growing {
			t.Error("animations should start shrinking")
		}
	}
}

func TestShapeResolution(t *testing.T) {
	opts := testOptions()
	opts.Particles.Number = 60
	opts.Particles.Shape.Type = ShapeList(ShapeImage, ShapeChar)
	opts.Particles.Shape.Image = ImageOptions{Src: "leaf.png", Width: 40, Height: 0, ReplaceColor: true}
	opts.Particles.Shape.Character = Character{Value: CharacterList("a", "b")}
	c := newTestContainer(t, opts, 400, 400, nil)

	var images, chars int
	for _, p := range c.Particles() {
		switch p.Shape {
		case ShapeImage:
			images++
			if p.Image == nil {
				t.Fatal("image particle without image payload")
			}
			assertNear(t, "ratio", p.Image.Ratio, 1)
			if p.Image.Src != "leaf.png" || !p.Image.ReplaceColor {
				t.Errorf("image payload = %+v", *p.Image)
			}
			if p.Text != "" {
				t.Errorf("image particle has text %q", p.Text)
			}
		case ShapeChar:
			chars++
			if p.Text != "a" && p.Text != "b" {
				t.Errorf("text = %q, want a or b", p.Text)
			}
			if p.Image != nil {
				t.Error("char particle has image payload")
			}
		default:
			t.Errorf("shape = %v, want image or char", p.Shape)
		}
	}
	if images == 0 || chars == 0 {
		t.Errorf("images = %d, chars = %d, want both > 0", images, chars)
	}
}

func TestImageRatio(t *testing.T) {
	opts := testOptions()
	opts.Particles.Shape.Type = ShapeOf(ShapeImage)
	opts.Particles.Shape.Image = ImageOptions{Src: "x", Width: 200, Height: 100}
	c := newTestContainer(t, opts, 400, 400, nil)
	p := pushAt(c, 200, 200)
	assertNear(t, "ratio", p.Image.Ratio, 2)
}

func TestParticleIDsAreUnique(t *testing.T) {
	opts := testOptions()
	opts.Particles.Number = 25
	c := newTestContainer(t, opts, 400, 400, nil)
	seen := make(map[uint32]bool)
	for _, p := range c.Particles() {
		if seen[p.ID] {
			t.Fatalf("duplicate id %d", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestSeededConstructionIsReproducible(t *testing.T) {
	opts := testOptions()
	opts.Particles.Number = 10
	opts.Particles.Color = ColorRandom()
	a := newTestContainer(t, opts, 400, 400, nil)
	b := newTestContainer(t, opts, 400, 400, nil)
	for i := range a.Particles() {
		pa, pb := a.Particles()[i], b.Particles()[i]
		if pa.Position != pb.Position || *pa.Color.RGB != *pb.Color.RGB || pa.Velocity != pb.Velocity {
			t.Fatalf("particle %d differs between identically seeded containers", i)
		}
	}
}

func TestEndToEndScenario(t *testing.T) {
	opts := testOptions()
	opts.Particles.Number = 50
	opts.Particles.Size = Size{Value: 3}
	opts.Particles.Color = ColorLiteral("#00ff00")
	opts.Particles.Move = Move{Enable: true, Speed: 2, Direction: DirectionRight, Straight: true}
	c := newTestContainer(t, opts, 800, 600, nil)

	if c.Count() != 50 {
		t.Fatalf("count = %d, want 50", c.Count())
	}
	base := BaseVelocity(opts.Particles.Move)
	for _, p := range c.Particles() {
		assertNear(t, "radius", p.Radius, 3)
		if p.Color.RGB == nil || *p.Color.RGB != (RGB{0, 255, 0}) {
			t.Errorf("color = %+v, want rgb(0,255,0)", p.Color)
		}
		if p.Color.HSL != nil {
			t.Error("hsl should be empty")
		}
		if p.Velocity.Horizontal != base.X || p.Velocity.Vertical != base.Y {
			t.Errorf("velocity = %+v, want %+v", p.Velocity, base)
		}
		if p.Position.X < 3 || p.Position.X > 797 || p.Position.Y < 3 || p.Position.Y > 597 {
			t.Errorf("position = %+v outside [3,797]x[3,597]", p.Position)
		}
	}
}
