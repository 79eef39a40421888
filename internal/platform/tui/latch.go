package tui

import "github.com/vovakirdan/chaos-arcade/internal/core"

// Terminals report key presses, never releases. InputLatch keeps movement
// actions held for a number of ticks after each press so that keyboard
// auto-repeat reads as a held key; everything else lasts one tick.
type InputLatch struct {
	hold  int
	ticks map[core.Action]int
}

// holdable lists the actions that model held keys.
var holdable = map[core.Action]bool{
	core.ActionLeft:  true,
	core.ActionRight: true,
	core.ActionJump:  true,
	core.ActionBrake: true,
}

// opposite maps an action to the one a press of it cancels.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionJump:  core.ActionBrake,
	core.ActionBrake: core.ActionJump,
}

// NewInputLatch creates a latch holding movement keys for hold ticks.
func NewInputLatch(hold int) *InputLatch {
	return &InputLatch{
		hold:  max(hold, 1),
		ticks: make(map[core.Action]int),
	}
}

// Press records a key press.
func (l *InputLatch) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if o, ok := opposite[a]; ok {
		delete(l.ticks, o)
	}
	if holdable[a] {
		l.ticks[a] = l.hold
		return
	}
	l.ticks[a] = 1
}

// Frame returns the actions active for the coming tick and ages them.
func (l *InputLatch) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for a, n := range l.ticks {
		f.Set(a)
		if n <= 1 {
			delete(l.ticks, a)
		} else {
			l.ticks[a] = n - 1
		}
	}
	return f
}

// Release drops every held action.
func (l *InputLatch) Release() {
	clear(l.ticks)
}
