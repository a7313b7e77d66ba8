// Package input translates SDL2 events into a windowing-neutral
// per-frame snapshot of logical actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Action is a logical input the rest of the engine understands.
// Movement actions are camera-local axes.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionPerspective
	ActionOrthographic

	actionCount
)

// ActionCount is the number of logical actions.
const ActionCount = int(actionCount)

// Motion is one pointer-motion event in window coordinates.
type Motion struct {
	X, Y float32
}

// Snapshot is the input state for one frame: which actions are held,
// the pointer motions and wheel travel since the previous frame, and
// window events.
type Snapshot struct {
	Held    [actionCount]bool
	Motions []Motion
	Wheel   float32
	Quit    bool
	Resized bool
	Width   int
	Height  int
}

// Poller drains SDL events each frame and maintains held-key state
// across frames.
type Poller struct {
	held [actionCount]bool
}

// NewPoller creates a new input poller.
func NewPoller() *Poller {
	return &Poller{}
}

// Poll drains pending SDL events and returns this frame's snapshot.
func (p *Poller) Poll() Snapshot {
	var snap Snapshot

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			snap.Quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				snap.Resized = true
				snap.Width = int(e.Data1)
				snap.Height = int(e.Data2)
			}

		case *sdl.KeyboardEvent:
			if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE && e.Type == sdl.KEYDOWN {
				snap.Quit = true
				continue
			}
			if a, ok := actionFor(e.Keysym.Scancode); ok {
				p.held[a] = e.Type == sdl.KEYDOWN
			}

		case *sdl.MouseMotionEvent:
			snap.Motions = append(snap.Motions, Motion{
				X: float32(e.X),
				Y: float32(e.Y),
			})

		case *sdl.MouseWheelEvent:
			snap.Wheel += float32(e.Y)
		}
	}

	snap.Held = p.held
	return snap
}

// actionFor maps a scancode to its logical action.
func actionFor(sc sdl.Scancode) (Action, bool) {
	switch sc {
	case sdl.SCANCODE_W:
		return ActionMoveForward, true
	case sdl.SCANCODE_S:
		return ActionMoveBack, true
	case sdl.SCANCODE_A:
		return ActionMoveLeft, true
	case sdl.SCANCODE_D:
		return ActionMoveRight, true
	case sdl.SCANCODE_Q:
		return ActionMoveUp, true
	case sdl.SCANCODE_E:
		return ActionMoveDown, true
	case sdl.SCANCODE_P:
		return ActionPerspective, true
	case sdl.SCANCODE_O:
		return ActionOrthographic, true
	}
	return 0, false
}
