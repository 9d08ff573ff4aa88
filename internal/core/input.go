package core

// Action is a semantic input, decoupled from the physical key that caused it.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move piece left
	ActionRight          // D, Right arrow - move piece right
	ActionDown           // S, Down arrow - soft drop
	ActionRotate         // W, Up arrow - rotate clockwise
	ActionDrop           // Space - hard drop
	ActionHold           // C - hold piece
	ActionPause          // P - pause/unpause
	ActionRestart        // R - new game
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - back to menu
	ActionQuit           // Q, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionRotate:
		return "Rotate"
	case ActionDrop:
		return "Drop"
	case ActionHold:
		return "Hold"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions received during one simulation tick.
// Actions keep their arrival order and repeats are preserved, so two Left
// presses within a tick move the piece twice.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has reports whether the action occurred this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Len returns the number of recorded actions.
func (f InputFrame) Len() int {
	return len(f.Actions)
}

// Clear empties the frame, keeping its storage.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone returns a copy that shares no memory with f.
func (f InputFrame) Clone() InputFrame {
	if f.Actions == nil {
		return InputFrame{}
	}
	return InputFrame{Actions: append([]Action(nil), f.Actions...)}
}
