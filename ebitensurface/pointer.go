package ebitensurface

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/sparkle"
)

// Pointer reads the mouse and touch screen once per frame. The G, B and R
// keys toggle the grab, bubble and repulse modes on top of the configured
// hover mode.
type Pointer struct {
	width, height int
	modes         sparkle.InteractMode

	touchIDs []ebiten.TouchID
}

var _ sparkle.PointerSource = (*Pointer)(nil)

// NewPointer returns a pointer for a canvas of the given size.
func NewPointer(width, height int) *Pointer {
	return &Pointer{width: width, height: height}
}

// SetBounds updates the canvas size used to decide whether the pointer is
// present.
func (p *Pointer) SetBounds(width, height int) {
	p.width, p.height = width, height
}

// Modes returns the modes toggled from the keyboard.
func (p *Pointer) Modes() sparkle.InteractMode {
	return p.modes
}

// Poll implements sparkle.PointerSource.
func (p *Pointer) Poll() sparkle.PointerState {
	p.toggleModes()

	x, y := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		tid := p.touchIDs[0]
		x, y = ebiten.TouchPosition(tid)
		if inpututil.TouchPressDuration(tid) == 1 {
			clicked = true
		}
	}

	present := p.contains(x, y)
	return sparkle.PointerState{
		Position: sparkle.Vec2{X: float64(x), Y: float64(y)},
		Present:  present,
		Modes:    p.modes,
		Clicked:  clicked && present,
	}
}

func (p *Pointer) toggleModes() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		p.modes ^= sparkle.ModeGrab
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		p.modes ^= sparkle.ModeBubble
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.modes ^= sparkle.ModeRepulse
	}
}

func (p *Pointer) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.width && y < p.height
}
