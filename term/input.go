package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/tetoris/game"
)

// Action is what the app loop should do after an event was handled.
type Action int

const (
	ActionNone Action = iota
	ActionRedraw
	ActionShare
	ActionQuit
)

// Input turns terminal events into session calls. Mouse presses follow the
// same press/release protocol as the windowed frontend; keys are shortcuts.
type Input struct {
	session  *game.Session
	renderer *Renderer
	pressed  bool
}

// NewInput binds input handling to a session and the renderer used for hit testing.
func NewInput(session *game.Session, renderer *Renderer) *Input {
	return &Input{session: session, renderer: renderer}
}

// Pressed reports whether the primary button is currently held.
func (in *Input) Pressed() bool {
	return in.pressed
}

// Handle processes one event.
func (in *Input) Handle(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return in.mouse(ev)
	case *tcell.EventKey:
		return in.key(ev)
	case *tcell.EventResize:
		return ActionRedraw
	}
	return ActionNone
}

const wheelButtons = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

func (in *Input) mouse(ev *tcell.EventMouse) Action {
	// Wheel events carry no button state and must not end a hold.
	if ev.Buttons()&wheelButtons != 0 {
		return ActionNone
	}

	down := ev.Buttons()&tcell.Button1 != 0
	switch {
	case down && !in.pressed:
		in.pressed = true
		x, _ := ev.Position()
		in.session.PointerDown(in.renderer.Direction(x))
		return ActionRedraw
	case !down && in.pressed:
		in.pressed = false
		in.session.PointerUp()
	}
	return ActionNone
}

func (in *Input) key(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyLeft:
		in.session.Enqueue(game.Move(-1))
		return ActionRedraw
	case tcell.KeyRight:
		in.session.Enqueue(game.Move(1))
		return ActionRedraw
	case tcell.KeyUp:
		in.session.Enqueue(game.Rotate())
		return ActionRedraw
	case tcell.KeyDown:
		in.session.Enqueue(game.Tick())
		return ActionRedraw
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return ActionQuit
	case 'r', 'R':
		in.pressed = false
		in.session.Restart()
		return ActionRedraw
	case 's', 'S':
		if in.session.GameOver() {
			return ActionShare
		}
	}
	return ActionNone
}
