package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow - move left / brake-reverse the car
	ActionRight             // D, Right arrow - move right / accelerate the car
	ActionJump              // Space, W, Up - jump (platformer, runner) / accelerate
	ActionBrake             // S, Down - brake the car
	ActionFire              // F - fire a bullet from the car
	ActionModeToggle        // P - leave hill climb for the platformer
	ActionSwap              // V - swap the car with the red coin
	ActionBack              // Esc, B - exit the runner / pause elsewhere
	ActionRestart           // R key - restart game after game over
	ActionQuit              // Q, Ctrl+C - exit game/session
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
	case ActionJump:
		return "Jump"
	case ActionBrake:
		return "Brake"
	case ActionFire:
		return "Fire"
	case ActionModeToggle:
		return "ModeToggle"
	case ActionSwap:
		return "Swap"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that are held or were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// InputOf builds a frame with the given actions set.
func InputOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
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
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Horizontal returns the left/right intent of the frame as -1, 0 or 1.
// When both directions are held, right wins, matching key polling order.
func (f InputFrame) Horizontal() int {
	dir := 0
	if f.Has(ActionLeft) {
		dir = -1
	}
	if f.Has(ActionRight) {
		dir = 1
	}
	return dir
}
