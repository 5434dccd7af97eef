package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W
	ActionDown           // Down arrow, S
	ActionLeft           // Left arrow, A
	ActionRight          // Right arrow, D
	ActionPause          // P
	ActionConfirm        // Enter on the start screen
	ActionRestart        // R on the game-over screen
	ActionQuit           // Q on the game-over screen
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two simulation ticks.
// Steering actions keep their arrival order because only the last accepted
// turn matters; everything else is a set.
type InputFrame struct {
	Actions map[Action]bool
	Turns   []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// IsTurn reports whether the action is one of the four steering actions.
func (a Action) IsTurn() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	if a.IsTurn() {
		f.Turns = append(f.Turns, a)
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Turns = f.Turns[:0]
}
