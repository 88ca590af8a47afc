package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionRotateLeft         // A, Left arrow
	ActionRotateRight        // D, Right arrow
	ActionThrust             // W, Up arrow
	ActionBrake              // S, Down arrow
	ActionFire               // Space - single shot
	ActionRapidFire          // X - one shot every frame while held
	ActionSpecial            // Z - shockwave
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B, Escape - go back to menu
	ActionRestart            // R key - restart game after game over
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause game
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionRotateLeft:  "RotateLeft",
	ActionRotateRight: "RotateRight",
	ActionThrust:      "Thrust",
	ActionBrake:       "Brake",
	ActionFire:        "Fire",
	ActionRapidFire:   "RapidFire",
	ActionSpecial:     "Special",
	ActionConfirm:     "Confirm",
	ActionBack:        "Back",
	ActionRestart:     "Restart",
	ActionQuit:        "Quit",
	ActionPause:       "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool

	// FPS is the measured frame rate, shown in the HUD.
	FPS int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
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
	clone.FPS = f.FPS
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
