package termsurface

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/sparkle"
)

// Pointer turns tcell mouse and key events into sparkle pointer state. Feed
// it every event with HandleEvent; the Container polls it once per frame.
type Pointer struct {
	surf *Surface

	state   sparkle.PointerState
	buttons tcell.ButtonMask
	clicked bool
}

var _ sparkle.PointerSource = (*Pointer)(nil)

// NewPointer returns a pointer mapping cells through surf.
func NewPointer(surf *Surface) *Pointer {
	return &Pointer{surf: surf}
}

// HandleEvent updates the pointer from ev and reports whether ev was
// consumed. The g, b and r keys toggle the grab, bubble and repulse modes.
func (p *Pointer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		col, row := ev.Position()
		p.state.Position = p.surf.CellAt(col, row)
		p.state.Present = col >= 0 && row >= 0 && col < p.surf.cols && row < p.surf.rows
		btn := ev.Buttons()
		if btn&tcell.Button1 != 0 && p.buttons&tcell.Button1 == 0 {
			p.clicked = true
		}
		p.buttons = btn
		return true
	case *tcell.EventKey:
		if ev.Key() != tcell.KeyRune {
			return false
		}
		switch ev.Rune() {
		case 'g':
			p.state.Modes ^= sparkle.ModeGrab
		case 'b':
			p.state.Modes ^= sparkle.ModeBubble
		case 'r':
			p.state.Modes ^= sparkle.ModeRepulse
		default:
			return false
		}
		return true
	}
	return false
}

// Leave marks the pointer absent, for example after a resize.
func (p *Pointer) Leave() {
	p.state.Present = false
}

// Poll implements sparkle.PointerSource. A click is reported once.
func (p *Pointer) Poll() sparkle.PointerState {
	st := p.state
	st.Clicked = p.clicked && st.Present
	p.clicked = false
	return st
}
