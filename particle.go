package sparkle

import "math"

// maxPlacementAttempts bounds overlap-avoidance re-sampling. When every
// attempt overlaps an existing particle the last sampled position is kept.
const maxPlacementAttempts = 64

// minRadius keeps radius strictly positive when size is randomized.
const minRadius = 0.1

// World is the read-only view a Particle has of the Container that owns it.
// Particles never add or remove entries through it.
type World interface {
	// Canvas returns the canvas width and height.
	Canvas() (w, h float64)
	// Options returns the configuration snapshot. It MUST NOT be mutated.
	Options() *Options
	// Particles returns the live particles in insertion order. The returned
	// slice MUST NOT be mutated.
	Particles() []*Particle
	// Rand returns the random source used for construction.
	Rand() Rand
}

// AnimatedValue is a size or opacity that may oscillate between bounds.
type AnimatedValue struct {
	Value float64
	// Velocity is the per-frame step. Zero means the value is not animated.
	Velocity float64
	// Growing is the current direction of the oscillation.
	Growing bool

	bounds Range
	decay  bool
}

// Bounds returns the animation bounds. Only meaningful when Velocity != 0.
func (a *AnimatedValue) Bounds() Range {
	return a.bounds
}

// step advances the value by f frames, flipping direction at each bound.
func (a *AnimatedValue) step(f float64) {
	if a.Velocity == 0 {
		return
	}
	if a.Growing {
		a.Value += a.Velocity * f
		if a.Value >= a.bounds.Max {
			a.Value = a.bounds.Max
			a.Growing = false
		}
		return
	}
	a.Value -= a.Velocity * f
	if a.Value <= a.bounds.Min {
		a.Value = a.bounds.Min
		a.Growing = !a.decay
	}
}

// ParticleImage is the bitmap payload of an image-shaped particle.
type ParticleImage struct {
	// Ratio is width / height, 1 when the configured size is unusable.
	Ratio        float64
	ReplaceColor bool
	Src          string
}

// Particle is one simulated point owned by a Container.
type Particle struct {
	// ID is a stable handle, unique within its Container.
	ID       uint32
	Radius   float64
	Size     AnimatedValue
	Position Vec2
	// Offset is the parallax displacement, applied on top of Position when
	// drawing.
	Offset          Vec2
	Color           Color
	Opacity         AnimatedValue
	Velocity        Velocity
	InitialVelocity Velocity
	Shape           ShapeKind
	// Image is set only for ShapeImage.
	Image *ParticleImage
	// Text is set only for ShapeChar.
	Text string

	world       World
	strokeColor Color
	removed     bool

	bubble      fade
	repulse     fade
	repulseBase Vec2 // velocity delta at full strength
}

// newParticle builds a particle for w. When at is non-nil it is used as the
// spawn position. placed is false when overlap avoidance gave up and the
// particle overlaps an existing one.
func newParticle(w World, id uint32, at *Vec2) (p *Particle, placed bool) {
	opts := &w.Options().Particles
	rng := w.Rand()
	p = &Particle{ID: id, world: w}

	p.Radius = opts.Size.Value
	if opts.Size.Random {
		p.Radius *= rng.Float64()
	}
	p.Radius = math.Max(p.Radius, minRadius)
	p.Size = newAnimatedValue(p.Radius, opts.Size.Anim, rng)

	p.Position = p.place(at)
	placed = true
	if opts.Move.Bounce {
		placed = p.avoidOverlap(at)
	}

	p.Color = ResolveColor(opts.Color, rng)
	if opts.Shape.Stroke.Width > 0 {
		p.strokeColor = ResolveColor(opts.Shape.Stroke.Color, rng)
	}

	opacity := opts.Opacity.Value
	if opts.Opacity.Random {
		opacity *= rng.Float64()
	}
	p.Opacity = newAnimatedValue(opacity, opts.Opacity.Anim, rng)

	p.Velocity = newVelocity(opts.Move, rng)
	p.InitialVelocity = p.Velocity

	p.Shape = opts.Shape.Type.resolve(rng)
	switch p.Shape {
	case ShapeImage:
		img := opts.Shape.Image
		ratio := img.Width / img.Height
		if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
			ratio = 1
		}
		p.Image = &ParticleImage{Ratio: ratio, ReplaceColor: img.ReplaceColor, Src: img.Src}
	case ShapeChar:
		p.Text = opts.Shape.Character.Value.resolve(rng)
	}
	return p, placed
}

func newAnimatedValue(base float64, anim Anim, rng Rand) AnimatedValue {
	v := AnimatedValue{Value: base}
	if !anim.Enable || anim.Speed == 0 {
		return v
	}
	v.Velocity = anim.Speed / 100
	if !anim.Sync {
		v.Velocity *= rng.Float64()
	}
	hi := anim.Max
	if hi <= 0 {
		hi = base
	}
	v.bounds = Range{Min: math.Min(anim.Min, hi), Max: hi}
	v.Value = v.bounds.Clamp(base)
	v.decay = anim.Decay
	return v
}

// place samples (or takes) a position and pulls it inward so the whole shape
// lies inside the canvas.
func (p *Particle) place(at *Vec2) Vec2 {
	w, h := p.world.Canvas()
	var pos Vec2
	if at != nil {
		pos = *at
	} else {
		rng := p.world.Rand()
		pos = Vec2{X: rng.Float64() * w, Y: rng.Float64() * h}
	}
	pos.X = insetAxis(pos.X, w, p.Radius)
	pos.Y = insetAxis(pos.Y, h, p.Radius)
	return pos
}

func insetAxis(v, extent, r float64) float64 {
	if extent < 2*r {
		return extent / 2
	}
	if v > extent-2*r {
		v -= r
	} else if v < 2*r {
		v += r
	}
	return Range{Min: r, Max: extent - r}.Clamp(v)
}

// avoidOverlap re-samples the position until it clears every existing
// particle. An explicit spawn position is never re-sampled.
func (p *Particle) avoidOverlap(at *Vec2) bool {
	for attempt := 1; ; attempt++ {
		if !p.overlapsAny() {
			return true
		}
		if at != nil || attempt >= maxPlacementAttempts {
			return false
		}
		p.Position = p.place(nil)
	}
}

func (p *Particle) overlapsAny() bool {
	for _, q := range p.world.Particles() {
		if q == p || q.removed {
			continue
		}
		if dist(p.Position, q.Position) <= p.Radius+q.Radius {
			return true
		}
	}
	return false
}

// BaseVelocity returns the unit baseline vector for the configured direction.
func BaseVelocity(m Move) Vec2 {
	const d = math.Sqrt2 / 2
	switch m.Direction {
	case DirectionTop:
		return Vec2{0, -1}
	case DirectionTopRight:
		return Vec2{d, -d}
	case DirectionRight:
		return Vec2{1, 0}
	case DirectionBottomRight:
		return Vec2{d, d}
	case DirectionBottom:
		return Vec2{0, 1}
	case DirectionBottomLeft:
		return Vec2{-d, d}
	case DirectionLeft:
		return Vec2{-1, 0}
	case DirectionTopLeft:
		return Vec2{-d, -d}
	case DirectionAngle:
		rad := m.Angle * math.Pi / 180
		return Vec2{math.Cos(rad), math.Sin(rad)}
	}
	return Vec2{}
}

func newVelocity(m Move, rng Rand) Velocity {
	base := BaseVelocity(m)
	if m.Straight {
		v := Velocity{Horizontal: base.X, Vertical: base.Y}
		if m.Random {
			v.Horizontal *= rng.Float64()
			v.Vertical *= rng.Float64()
		}
		return v
	}
	return Velocity{
		Horizontal: base.X + rng.Float64() - 0.5,
		Vertical:   base.Y + rng.Float64() - 0.5,
	}
}

// Removed reports whether the particle has been marked for removal during
// the current update pass.
func (p *Particle) Removed() bool {
	return p.removed
}

// RenderPosition is the position the particle is drawn at, including the
// parallax offset.
func (p *Particle) RenderPosition() Vec2 {
	return Vec2{X: p.Position.X + p.Offset.X, Y: p.Position.Y + p.Offset.Y}
}

// RenderSize is the drawn radius: the animated size with any bubble effect
// applied on top.
func (p *Particle) RenderSize() float64 {
	s := p.Size.Value
	if f := p.bubble.factor; f > 0 {
		if target := p.world.Options().Interactivity.Modes.Bubble.Size; target > 0 {
			s = lerp(s, target, f)
		}
	}
	return s
}

// RenderOpacity is the drawn opacity: the animated opacity with any bubble
// effect applied on top.
func (p *Particle) RenderOpacity() float64 {
	o := p.Opacity.Value
	if f := p.bubble.factor; f > 0 {
		if target := p.world.Options().Interactivity.Modes.Bubble.Opacity; target >= 0 {
			o = lerp(o, target, f)
		}
	}
	return Range{0, 1}.Clamp(o)
}
