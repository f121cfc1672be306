package sparkle

// drawLinks joins every pair of particles closer than Links.Distance with a
// line that fades out with distance.
func (c *Container) drawLinks(s Surface) {
	links := &c.opts.Particles.Links
	if links.Distance <= 0 {
		return
	}
	d2max := links.Distance * links.Distance
	for i, p := range c.particles {
		a := p.RenderPosition()
		for _, q := range c.particles[i+1:] {
			b := q.RenderPosition()
			dx, dy := a.X-b.X, a.Y-b.Y
			d2 := dx*dx + dy*dy
			if d2 > d2max {
				continue
			}
			opacity := links.Opacity * (1 - dist(a, b)/links.Distance)
			clr, ok := c.linkColor.NRGBA(opacity)
			if !ok || clr.A == 0 {
				continue
			}
			s.DrawLine(a.X, a.Y, b.X, b.Y, lineWidth(links.Width), clr)
		}
	}
}

func (c *Container) drawGrabLines(s Surface) {
	width := lineWidth(c.opts.Interactivity.Modes.Grab.Width)
	for _, l := range c.lines {
		clr, ok := c.grabColor.NRGBA(l.Opacity)
		if !ok {
			continue
		}
		s.DrawLine(l.From.X, l.From.Y, l.To.X, l.To.Y, width, clr)
	}
}

func lineWidth(w float64) float64 {
	if w <= 0 {
		return 1
	}
	return w
}
