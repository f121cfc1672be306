package sparkle

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidCanvas is returned when a canvas dimension is not positive.
var ErrInvalidCanvas = errors.New("canvas width and height must be positive")

// Config configures a new Container.
type Config struct {
	Width, Height float64
	Options       Options
	// Rand is the random source. Nil uses the global math/rand/v2 source.
	Rand Rand
	// Pointer is polled once per Update. Nil means no pointer.
	Pointer PointerSource
}

// Stats holds counters and the timings of the most recent frame.
type Stats struct {
	Frames uint64
	// Removed counts particles destroyed by the boundary policy.
	Removed int
	// PlacementFallbacks counts particles that were placed overlapping
	// another because no free position was found.
	PlacementFallbacks int
	UpdateTime         time.Duration
	DrawTime           time.Duration
}

// Container owns the particles, the canvas size, the configuration snapshot,
// and the pointer state, and drives one simulation frame at a time. It is not
// safe for concurrent use.
type Container struct {
	width, height float64
	opts          Options
	rng           Rand
	pointer       PointerSource

	ptr   PointerState
	modes InteractMode

	particles []*Particle
	nextID    uint32

	lines   []GrabLine
	pathBuf []Vec2

	linkColor Color
	grabColor Color

	debug bool
	stats Stats
}

// NewContainer validates the canvas and fills it to the target population.
func NewContainer(cfg Config) (*Container, error) {
	if err := checkCanvas(cfg.Width, cfg.Height); err != nil {
		return nil, fmt.Errorf("sparkle: new container: %w", err)
	}
	rng := cfg.Rand
	if rng == nil {
		rng = globalRand{}
	}
	c := &Container{
		width:   cfg.Width,
		height:  cfg.Height,
		opts:    cfg.Options,
		rng:     rng,
		pointer: cfg.Pointer,
	}
	c.linkColor = ResolveColor(c.opts.Particles.Links.Color, rng)
	c.grabColor = c.linkColor
	if gc := c.opts.Interactivity.Modes.Grab.Color; gc.IsSet() {
		c.grabColor = ResolveColor(gc, rng)
	}

	n := c.targetCount()
	c.particles = make([]*Particle, 0, n)
	c.Push(n, nil)
	return c, nil
}

func checkCanvas(w, h float64) error {
	// Written as negations so NaN is rejected too.
	if !(w > 0) || !(h > 0) {
		return fmt.Errorf("%gx%g: %w", w, h, ErrInvalidCanvas)
	}
	return nil
}

// targetCount is the configured population, scaled by canvas area when
// density is enabled.
func (c *Container) targetCount() int {
	po := &c.opts.Particles
	n := po.Number
	if po.Density.Enable && po.Density.Area > 0 {
		n = int(float64(n) * (c.width * c.height / 1000) / po.Density.Area)
	}
	return max(n, 0)
}

// Canvas returns the canvas width and height.
func (c *Container) Canvas() (w, h float64) {
	return c.width, c.height
}

// Options returns the configuration snapshot. It MUST NOT be mutated.
func (c *Container) Options() *Options {
	return &c.opts
}

// Particles returns the live particles in insertion order. The returned
// slice MUST NOT be mutated.
func (c *Container) Particles() []*Particle {
	return c.particles
}

// Rand returns the container's random source.
func (c *Container) Rand() Rand {
	return c.rng
}

// Count returns the number of live particles.
func (c *Container) Count() int {
	return len(c.particles)
}

// Pointer returns the pointer state polled by the most recent Update.
func (c *Container) Pointer() PointerState {
	return c.ptr
}

// GrabLines returns the grab lines computed by the most recent Update. The
// returned slice MUST NOT be mutated.
func (c *Container) GrabLines() []GrabLine {
	return c.lines
}

// Stats returns the frame counters.
func (c *Container) Stats() Stats {
	return c.stats
}

// Push constructs n particles, at the given position when at is non-nil.
// It must not be called from inside Update or Draw.
func (c *Container) Push(n int, at *Vec2) int {
	for i := 0; i < n; i++ {
		p, placed := newParticle(c, c.nextID, at)
		c.nextID++
		if !placed {
			c.stats.PlacementFallbacks++
			if c.debug {
				debugWarnPlacement(p)
			}
		}
		c.particles = append(c.particles, p)
	}
	return n
}

// Remove destroys the n oldest particles and returns how many were removed.
// It must not be called from inside Update or Draw.
func (c *Container) Remove(n int) int {
	n = min(max(n, 0), len(c.particles))
	if n == 0 {
		return 0
	}
	kept := copy(c.particles, c.particles[n:])
	clear(c.particles[kept:])
	c.particles = c.particles[:kept]
	return n
}

// Resize changes the canvas, pulls particles left past the new right or
// bottom edge back inside it, and grows or shrinks the population toward the
// density target. Particles beyond the top or left edge are left alone; the
// edge policy handles them.
func (c *Container) Resize(w, h float64) error {
	if err := checkCanvas(w, h); err != nil {
		return fmt.Errorf("sparkle: resize: %w", err)
	}
	if w == c.width && h == c.height {
		return nil
	}
	c.width, c.height = w, h
	for _, p := range c.particles {
		p.Position.X = pullInside(p.Position.X, w, p.Radius)
		p.Position.Y = pullInside(p.Position.Y, h, p.Radius)
	}
	if c.opts.Particles.Density.Enable {
		target := c.targetCount()
		if n := len(c.particles); n < target {
			c.Push(target-n, nil)
		} else if n > target {
			c.Remove(n - target)
		}
	}
	return nil
}

// pullInside moves v back to extent-r when the shrunken canvas left it past
// the far edge.
func pullInside(v, extent, r float64) float64 {
	if v <= extent-r {
		return v
	}
	if extent < 2*r {
		return extent / 2
	}
	return extent - r
}

// Update advances the simulation by dt seconds: poll the pointer, apply a
// click, integrate and interact every particle, then drop particles marked
// for removal.
func (c *Container) Update(dt float64) {
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}

	c.poll()
	c.applyClick()

	c.lines = c.lines[:0]
	for _, p := range c.particles {
		p.update(dt, c.ptr)
		if p.removed {
			continue
		}
		p.bubbleStep(c.ptr, c.modes, dt)
		p.repulseStep(c.ptr, c.modes, dt)
		if l, ok := p.grab(c.ptr, c.modes); ok {
			c.lines = append(c.lines, l)
		}
	}
	if c.opts.Particles.Move.Bounce {
		c.collide()
	}
	c.compact()

	c.stats.Frames++
	if c.debug {
		c.stats.UpdateTime = time.Since(t0)
	}
}

func (c *Container) poll() {
	if c.pointer != nil {
		c.ptr = c.pointer.Poll()
	} else {
		c.ptr = PointerState{}
	}
	c.modes = c.ptr.Modes
	if hover := &c.opts.Interactivity.Events.OnHover; hover.Enable {
		c.modes |= hover.Mode
	}
}

func (c *Container) applyClick() {
	click := &c.opts.Interactivity.Events.OnClick
	if !c.ptr.Clicked || !c.ptr.Present || !click.Enable {
		return
	}
	switch click.Action {
	case ClickPush:
		at := c.ptr.Position
		c.Push(c.opts.Interactivity.Modes.Push.Quantity, &at)
	case ClickRemove:
		c.Remove(c.opts.Interactivity.Modes.Remove.Quantity)
	}
}

func (c *Container) collide() {
	for i, p := range c.particles {
		if p.removed {
			continue
		}
		for _, q := range c.particles[i+1:] {
			if !q.removed {
				bounceOff(p, q)
			}
		}
	}
}

// compact removes particles marked during the update pass, keeping
// insertion order.
func (c *Container) compact() {
	kept := c.particles[:0]
	for _, p := range c.particles {
		if p.removed {
			c.stats.Removed++
			continue
		}
		kept = append(kept, p)
	}
	clear(c.particles[len(kept):])
	c.particles = kept
}

// Draw renders links, grab lines, then every particle onto s. It does not
// change particle state.
func (c *Container) Draw(s Surface) {
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}

	if c.opts.Particles.Links.Enable {
		c.drawLinks(s)
	}
	c.drawGrabLines(s)
	for _, p := range c.particles {
		c.pathBuf = p.draw(s, c.pathBuf)
	}

	if c.debug {
		c.stats.DrawTime = time.Since(t0)
		c.debugLog()
	}
}

// Frame runs Update followed by Draw.
func (c *Container) Frame(dt float64, s Surface) {
	c.Update(dt)
	c.Draw(s)
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame timing
// and population stats and placement warnings are printed to stderr.
func (c *Container) SetDebugMode(enabled bool) {
	c.debug = enabled
}
