package ebitensurface

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/sparkle"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS overlays FPS, TPS and the particle count.
	ShowFPS bool
	// Background fills the window every frame. Nil means black.
	Background color.Color
	// Pointer, when set, has its bounds kept in sync with the window.
	Pointer *Pointer
	// ScreenshotDir receives a PNG each time P is pressed. Empty disables
	// screenshots.
	ScreenshotDir string
}

type game struct {
	c    *sparkle.Container
	surf *Surface
	cfg  RunConfig

	width, height int
	screenshot    bool
}

// Run opens a resizable window and drives c at the Ebitengine tick rate
// until the window is closed or Escape is pressed.
func Run(c *sparkle.Container, surf *Surface, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		w, h := c.Canvas()
		cfg.Width, cfg.Height = int(w), int(h)
	}
	if cfg.Background == nil {
		cfg.Background = color.Black
	}
	g := &game{c: c, surf: surf, cfg: cfg}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebitensurface: run: %w", err)
	}
	return nil
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.cfg.ScreenshotDir != "" && inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.screenshot = true
	}
	g.c.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)
	g.surf.SetTarget(screen)
	g.c.Draw(g.surf)

	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nParticles: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.c.Count()))
	}
	if g.screenshot {
		g.screenshot = false
		path, err := saveScreenshot(screen, g.cfg.ScreenshotDir, g.cfg.Title)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[sparkle] screenshot: %v\n", err)
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "[sparkle] screenshot saved to %s\n", path)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		if err := g.c.Resize(float64(outsideWidth), float64(outsideHeight)); err == nil {
			g.width, g.height = outsideWidth, outsideHeight
			if g.cfg.Pointer != nil {
				g.cfg.Pointer.SetBounds(outsideWidth, outsideHeight)
			}
		}
	}
	return max(outsideWidth, 1), max(outsideHeight, 1)
}
