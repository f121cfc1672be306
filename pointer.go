package sparkle

import (
	"encoding/json"
	"fmt"
)

// PointerState is the pointer as seen by one frame.
type PointerState struct {
	Position Vec2
	// Present is false when the pointer is outside the canvas or absent.
	Present bool
	// Modes are interactions requested by the source, OR'd with the
	// configured hover mode.
	Modes InteractMode
	// Clicked is true on the frame a click happened.
	Clicked bool
}

// PointerSource is polled once per frame by the Container.
type PointerSource interface {
	Poll() PointerState
}

// StaticPointer reports a fixed state. A click is reported on one poll only.
type StaticPointer struct {
	State PointerState
}

// Poll returns the current state and clears Clicked.
func (s *StaticPointer) Poll() PointerState {
	st := s.State
	s.State.Clicked = false
	return st
}

// pointerStep is a single action in a pointer script.
type pointerStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Mode   string  `json:"mode,omitempty"`

	mode InteractMode
}

// pointerScript is the top-level JSON structure for a pointer script.
type pointerScript struct {
	Steps []pointerStep `json:"steps"`
}

// ScriptedPointer replays a recorded sequence of pointer actions, one action
// per frame. Supported actions:
//
//	move   {x, y}                       pointer enters/moves to (x, y)
//	leave                               pointer leaves the canvas
//	mode   {mode}                       none, grab, bubble, or repulse
//	click  {x, y}                       click at (x, y)
//	sweep  {fromX, fromY, toX, toY, frames}  linear move over frames
//	wait   {frames}                     hold the current state
//
// After the last step the final state is held.
type ScriptedPointer struct {
	steps []pointerStep
	queue []Vec2
	state PointerState

	cursor    int
	waitCount int
	done      bool
}

// LoadPointerScript parses a JSON pointer script.
func LoadPointerScript(jsonData []byte) (*ScriptedPointer, error) {
	var script pointerScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse pointer script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse pointer script: no steps")
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		switch st.Action {
		case "move", "leave", "click", "sweep", "wait":
		case "mode":
			m, ok := ParseInteractMode(st.Mode)
			if !ok {
				return nil, fmt.Errorf("parse pointer script: step %d: unknown mode %q", i, st.Mode)
			}
			st.mode = m
		default:
			return nil, fmt.Errorf("parse pointer script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptedPointer{steps: script.Steps}, nil
}

// Done reports whether every step has been replayed.
func (sp *ScriptedPointer) Done() bool {
	return sp.done
}

// Poll advances the script by one frame.
func (sp *ScriptedPointer) Poll() PointerState {
	sp.state.Clicked = false

	if len(sp.queue) > 0 {
		sp.state.Position = sp.queue[0]
		sp.state.Present = true
		sp.queue = sp.queue[1:]
		sp.checkDone()
		return sp.state
	}
	if sp.waitCount > 0 {
		sp.waitCount--
		sp.checkDone()
		return sp.state
	}
	if sp.cursor >= len(sp.steps) {
		sp.done = true
		return sp.state
	}

	st := sp.steps[sp.cursor]
	sp.cursor++

	switch st.Action {
	case "move":
		sp.state.Position = Vec2{st.X, st.Y}
		sp.state.Present = true
	case "leave":
		sp.state.Present = false
	case "mode":
		sp.state.Modes = st.mode
	case "click":
		sp.state.Position = Vec2{st.X, st.Y}
		sp.state.Present = true
		sp.state.Clicked = true
	case "sweep":
		frames := max(st.Frames, 2)
		for i := 1; i < frames; i++ {
			t := float64(i) / float64(frames-1)
			sp.queue = append(sp.queue, Vec2{
				X: st.FromX + (st.ToX-st.FromX)*t,
				Y: st.FromY + (st.ToY-st.FromY)*t,
			})
		}
		sp.state.Position = Vec2{st.FromX, st.FromY}
		sp.state.Present = true
	case "wait":
		if st.Frames > 0 {
			sp.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
	sp.checkDone()
	return sp.state
}

func (sp *ScriptedPointer) checkDone() {
	if sp.cursor >= len(sp.steps) && sp.waitCount == 0 && len(sp.queue) == 0 {
		sp.done = true
	}
}
