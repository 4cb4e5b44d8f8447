package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quantum-shift/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	SwitchReality key.Binding
	ReverseTime   key.Binding
	FlipGravity   key.Binding
	Reset         key.Binding
	Answer        key.Binding
	Back          key.Binding
	Pause         key.Binding
	Sound         key.Binding
	Screenshot    key.Binding
	Quit          key.Binding

	// Volume keys only act while the sound panel is open.
	MusicUp   key.Binding
	MusicDown key.Binding
	SFXUp     key.Binding
	SFXDown   key.Binding
}

// DefaultKeyMap returns the standard bindings. Terminals cannot report a bare
// Shift press, so time reversal sits on T and Shift+Tab.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:            key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("wasd/↑↓←→", "move")),
		Down:          key.NewBinding(key.WithKeys("s", "down")),
		Left:          key.NewBinding(key.WithKeys("a", "left")),
		Right:         key.NewBinding(key.WithKeys("d", "right")),
		SwitchReality: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "reality")),
		ReverseTime:   key.NewBinding(key.WithKeys("t", "shift+tab"), key.WithHelp("t", "time")),
		FlipGravity:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "gravity")),
		Reset:         key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Answer:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "answer")),
		Back:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave answer")),
		Pause:         key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Sound:         key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "sound")),
		Screenshot:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		MusicUp:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "music volume")),
		MusicDown: key.NewBinding(key.WithKeys("down")),
		SFXUp:     key.NewBinding(key.WithKeys("right"), key.WithHelp("←/→", "sfx volume")),
		SFXDown:   key.NewBinding(key.WithKeys("left")),
	}
}

// Action maps a key message to a game action, or core.ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.SwitchReality):
		return core.ActionSwitchReality
	case key.Matches(msg, k.ReverseTime):
		return core.ActionReverseTime
	case key.Matches(msg, k.FlipGravity):
		return core.ActionFlipGravity
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.Answer):
		return core.ActionAnswer
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.SwitchReality, k.ReverseTime, k.FlipGravity, k.Answer, k.Reset, k.Sound, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.SwitchReality, k.ReverseTime, k.FlipGravity},
		{k.Answer, k.Back, k.Pause, k.Reset},
		{k.Sound, k.MusicUp, k.SFXUp, k.Screenshot, k.Quit},
	}
}

// soundHelp is shown while the sound panel is open.
type soundHelp struct {
	k KeyMap
}

func (s soundHelp) ShortHelp() []key.Binding {
	return []key.Binding{s.k.MusicUp, s.k.SFXUp, s.k.Sound, s.k.Quit}
}

func (s soundHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{s.ShortHelp()}
}

// answerHelp is shown while the answer field has focus.
type answerHelp struct {
	k KeyMap
}

func (a answerHelp) ShortHelp() []key.Binding {
	submit := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit"))
	quit := key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
	return []key.Binding{submit, a.k.Back, quit}
}

func (a answerHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{a.ShortHelp()}
}
