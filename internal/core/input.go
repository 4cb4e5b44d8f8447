package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions; the interaction layer decides what an
// action does to the game state.
type Action int

const (
	ActionNone          Action = iota
	ActionUp                   // W, Up arrow
	ActionDown                 // S, Down arrow
	ActionLeft                 // A, Left arrow
	ActionRight                // D, Right arrow
	ActionSwitchReality        // Space - toggle Normal/Quantum reality
	ActionReverseTime          // T, Shift+Tab - toggle time direction
	ActionFlipGravity          // G - flip gravity
	ActionReset                // Ctrl+R - reset the run
	ActionAnswer               // Enter - focus/submit the answer field
	ActionBack                 // Esc - leave the answer field
	ActionPause                // P - pause/unpause
	ActionQuit                 // Q, Ctrl+C - exit game/session
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
	case ActionSwitchReality:
		return "SwitchReality"
	case ActionReverseTime:
		return "ReverseTime"
	case ActionFlipGravity:
		return "FlipGravity"
	case ActionReset:
		return "Reset"
	case ActionAnswer:
		return "Answer"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action moves the player.
func (a Action) IsMovement() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}
