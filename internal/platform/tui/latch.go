package tui

import "github.com/vovakirdan/tui-asteroids/internal/core"

// DefaultHoldTicks keeps a steering key active between terminal
// auto-repeat events.
const DefaultHoldTicks = 6

// opposites cancel each other on press so direction changes are immediate.
var opposites = map[core.Action]core.Action{
	core.ActionRotateLeft:  core.ActionRotateRight,
	core.ActionRotateRight: core.ActionRotateLeft,
	core.ActionThrust:      core.ActionBrake,
	core.ActionBrake:       core.ActionThrust,
}

// isHeld reports whether an action stays on while its key is held down.
// Everything else fires once per key event.
func isHeld(a core.Action) bool {
	switch a {
	case core.ActionRotateLeft, core.ActionRotateRight, core.ActionThrust, core.ActionBrake, core.ActionRapidFire:
		return true
	}
	return false
}

// Latch turns key events into per-tick input frames. Terminals never
// report key releases, so a held action stays active for a number of
// ticks after its most recent press.
type Latch struct {
	hold    int
	held    map[core.Action]int
	pending map[core.Action]bool
}

// NewLatch creates a latch that keeps held actions alive for holdTicks
// ticks. Values below 1 use DefaultHoldTicks.
func NewLatch(holdTicks int) *Latch {
	if holdTicks < 1 {
		holdTicks = DefaultHoldTicks
	}
	return &Latch{
		hold:    holdTicks,
		held:    make(map[core.Action]int),
		pending: make(map[core.Action]bool),
	}
}

// Press records a key event for the given action.
func (l *Latch) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !isHeld(a) {
		l.pending[a] = true
		return
	}
	if o, ok := opposites[a]; ok {
		delete(l.held, o)
	}
	l.held[a] = l.hold
}

// Frame returns the input for the next tick and ages held actions.
func (l *Latch) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, left := range l.held {
		frame.Set(a)
		if left <= 1 {
			delete(l.held, a)
		} else {
			l.held[a] = left - 1
		}
	}
	for a := range l.pending {
		frame.Set(a)
		delete(l.pending, a)
	}
	return frame
}

// Release drops every held and pending action.
func (l *Latch) Release() {
	clear(l.held)
	clear(l.pending)
}
