package sparkle

import "math"

// baseFPS is the frame rate velocities and animation steps are expressed in.
const baseFPS = 60

// update integrates one time step of dt seconds: motion, parallax,
// size/opacity animation, and the boundary policy. OutDestroy only marks the
// particle; the Container removes it after the pass.
func (p *Particle) update(dt float64, ptr PointerState) {
	opts := p.world.Options()
	move := &opts.Particles.Move
	f := dt * baseFPS

	if move.Enable {
		ms := move.Speed / 2
		p.Position.X += p.Velocity.Horizontal * ms * f
		p.Position.Y += p.Velocity.Vertical * ms * f
	}
	if p.repulse.factor > 0 {
		p.Position.X += p.repulseBase.X * p.repulse.factor * f
		p.Position.Y += p.repulseBase.Y * p.repulse.factor * f
	}

	p.updateParallax(&opts.Interactivity.Events.OnHover.Parallax, ptr, f)

	p.Size.step(f)
	p.Opacity.step(f)

	p.applyOutMode(move.OutMode)
}

func (p *Particle) updateParallax(px *Parallax, ptr PointerState, f float64) {
	if !px.Enable {
		return
	}
	var target Vec2
	if ptr.Present && px.Force > 0 {
		w, h := p.world.Canvas()
		target.X = (w/2 - ptr.Position.X) * (p.Radius / px.Force)
		target.Y = (h/2 - ptr.Position.Y) * (p.Radius / px.Force)
	}
	smooth := math.Max(px.Smooth, 1)
	k := 1 - math.Pow(1-1/smooth, f)
	p.Offset.X += (target.X - p.Offset.X) * k
	p.Offset.Y += (target.Y - p.Offset.Y) * k
}

func (p *Particle) applyOutMode(mode OutMode) {
	w, h := p.world.Canvas()
	r := p.Radius
	pos := &p.Position

	switch mode {
	case OutBounce:
		if pos.X+r > w {
			pos.X = w - r
			p.Velocity.Horizontal = -math.Abs(p.Velocity.Horizontal)
		} else if pos.X-r < 0 {
			pos.X = r
			p.Velocity.Horizontal = math.Abs(p.Velocity.Horizontal)
		}
		if pos.Y+r > h {
			pos.Y = h - r
			p.Velocity.Vertical = -math.Abs(p.Velocity.Vertical)
		} else if pos.Y-r < 0 {
			pos.Y = r
			p.Velocity.Vertical = math.Abs(p.Velocity.Vertical)
		}
	case OutWrap:
		if pos.X-r > w {
			pos.X = -r
		} else if pos.X+r < 0 {
			pos.X = w + r
		}
		if pos.Y-r > h {
			pos.Y = -r
		} else if pos.Y+r < 0 {
			pos.Y = h + r
		}
	case OutDestroy:
		if pos.X-r > w || pos.X+r < 0 || pos.Y-r > h || pos.Y+r < 0 {
			p.removed = true
		}
	}
}

// bounceOff reverses both velocities when p and q overlap and are closing
// on each other.
func bounceOff(p, q *Particle) {
	dx := q.Position.X - p.Position.X
	dy := q.Position.Y - p.Position.Y
	rr := p.Radius + q.Radius
	if dx*dx+dy*dy > rr*rr {
		return
	}
	dvx := q.Velocity.Horizontal - p.Velocity.Horizontal
	dvy := q.Velocity.Vertical - p.Velocity.Vertical
	if dvx*dx+dvy*dy >= 0 {
		return
	}
	p.Velocity.Horizontal, p.Velocity.Vertical = -p.Velocity.Horizontal, -p.Velocity.Vertical
	q.Velocity.Horizontal, q.Velocity.Vertical = -q.Velocity.Horizontal, -q.Velocity.Vertical
}
