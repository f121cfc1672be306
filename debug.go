package sparkle

import (
	"fmt"
	"os"
)

// debugLog prints timing and population stats to stderr.
func (c *Container) debugLog() {
	if !c.debug {
		return
	}
	st := &c.stats
	_, _ = fmt.Fprintf(os.Stderr,
		"[sparkle] frame %d | update: %v | draw: %v | total: %v\n",
		st.Frames, st.UpdateTime, st.DrawTime, st.UpdateTime+st.DrawTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[sparkle] particles: %d | grab lines: %d | removed: %d | placement fallbacks: %d\n",
		len(c.particles), len(c.lines), st.Removed, st.PlacementFallbacks)
}

// debugWarnPlacement warns that overlap avoidance gave up on p.
func debugWarnPlacement(p *Particle) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[sparkle] warning: particle %d placed overlapping at (%.1f, %.1f), no free position\n",
		p.ID, p.Position.X, p.Position.Y)
}
