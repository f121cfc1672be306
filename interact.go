package sparkle

import "math"

// GrabLine is a draw instruction joining a particle to the pointer.
type GrabLine struct {
	From, To Vec2
	Opacity  float64
}

// bubbleStep sets the bubble strength from pointer proximity, or lets it
// decay back to the baseline once the pointer is out of range.
func (p *Particle) bubbleStep(ptr PointerState, modes InteractMode, dt float64) {
	b := &p.world.Options().Interactivity.Modes.Bubble
	if ptr.Present && modes.Has(ModeBubble) && b.Distance > 0 {
		if d := dist(p.RenderPosition(), ptr.Position); d <= b.Distance {
			p.bubble.hold(1 - d/b.Distance)
			return
		}
	}
	p.bubble.release(b.Duration)
	p.bubble.step(dt)
}

// repulseStep pushes the particle away from the pointer with a quadratic
// falloff. The push is a displacement kept in repulseBase and applied by
// update on top of Velocity; outside the radius it decays to zero.
// Pointer distances are measured from RenderPosition, where the particle is
// drawn.
func (p *Particle) repulseStep(ptr PointerState, modes InteractMode, dt float64) {
	r := &p.world.Options().Interactivity.Modes.Repulse
	if ptr.Present && modes.Has(ModeRepulse) && r.Distance > 0 {
		pos := p.RenderPosition()
		d := dist(pos, ptr.Position)
		if d > 0 && d <= r.Distance {
			n := d / r.Distance
			force := (1 - n*n) * r.Strength
			if r.MaxSpeed > 0 {
				force = math.Min(force, r.MaxSpeed)
			}
			p.repulseBase = Vec2{
				X: (pos.X - ptr.Position.X) / d * force,
				Y: (pos.Y - ptr.Position.Y) / d * force,
			}
			p.repulse.hold(1)
			return
		}
	}
	p.repulse.release(r.Duration)
	p.repulse.step(dt)
	if p.repulse.factor == 0 && p.repulseBase != (Vec2{}) {
		p.repulseBase = Vec2{}
		p.restoreVelocity()
	}
}

// restoreVelocity snaps each axis of Velocity back to the magnitude of
// InitialVelocity, keeping the current sign. Repulse itself never writes
// Velocity and bounces only flip signs, so this only undoes writes made by
// callers while the effect was active.
func (p *Particle) restoreVelocity() {
	p.Velocity.Horizontal = math.Copysign(p.InitialVelocity.Horizontal, signOr(p.Velocity.Horizontal, p.InitialVelocity.Horizontal))
	p.Velocity.Vertical = math.Copysign(p.InitialVelocity.Vertical, signOr(p.Velocity.Vertical, p.InitialVelocity.Vertical))
}

func signOr(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}

// grab returns the line to draw between the particle and the pointer.
func (p *Particle) grab(ptr PointerState, modes InteractMode) (GrabLine, bool) {
	g := &p.world.Options().Interactivity.Modes.Grab
	if !ptr.Present || !modes.Has(ModeGrab) || g.Distance <= 0 {
		return GrabLine{}, false
	}
	pos := p.RenderPosition()
	d := dist(pos, ptr.Position)
	if d > g.Distance {
		return GrabLine{}, false
	}
	opacity := Range{0, 1}.Clamp(1 - d/g.Distance)
	if g.LineOpacity > 0 {
		opacity *= g.LineOpacity
	}
	return GrabLine{From: pos, To: ptr.Position, Opacity: opacity}, true
}
