package termsurface

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/sparkle"
)

// RunConfig configures Run.
type RunConfig struct {
	// FPS is the frame rate. Zero means 30.
	FPS int
	// Pointer receives every event before Run interprets it. Nil disables
	// mouse interaction.
	Pointer *Pointer
}

// Run drives c on screen until ctx is done or the user quits with Esc, q or
// Ctrl-C. The screen must already be initialized; Run does not finalize it.
// The goroutine reading screen events stays blocked in PollEvent after Run
// returns until the caller calls screen.Fini.
// The container is resized to the surface canvas on start and on every
// terminal resize.
func Run(ctx context.Context, screen tcell.Screen, c *sparkle.Container, surf *Surface, cfg RunConfig) error {
	fps := cfg.FPS
	if fps <= 0 {
		fps = 30
	}
	dt := 1 / float64(fps)

	screen.EnableMouse(tcell.MouseMotionEvents)
	defer screen.DisableMouse()
	if err := resize(screen, c, surf); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if cfg.Pointer != nil && cfg.Pointer.HandleEvent(ev) {
				continue
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev) {
					return nil
				}
				switch ev.Rune() {
				case '+':
					c.Push(1, nil)
				case '-':
					c.Remove(1)
				}
			case *tcell.EventResize:
				if err := resize(screen, c, surf); err != nil {
					return err
				}
				if cfg.Pointer != nil {
					cfg.Pointer.Leave()
				}
				screen.Sync()
			}

		case <-ticker.C:
			c.Update(dt)
			surf.Clear()
			c.Draw(surf)
			surf.Flush()
			screen.Show()
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func resize(screen tcell.Screen, c *sparkle.Container, surf *Surface) error {
	surf.Resize(screen.Size())
	w, h := surf.Canvas()
	if w <= 0 || h <= 0 {
		// The terminal collapsed; keep the old canvas until it comes back.
		return nil
	}
	if err := c.Resize(w, h); err != nil {
		return fmt.Errorf("termsurface: %w", err)
	}
	return nil
}
