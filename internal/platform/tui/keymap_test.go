package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quantum-shift/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"w", runeKey("w"), core.ActionUp},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", runeKey("s"), core.ActionDown},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"a", runeKey("a"), core.ActionLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey("d"), core.ActionRight},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionSwitchReality},
		{"t", runeKey("t"), core.ActionReverseTime},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, core.ActionReverseTime},
		{"g", runeKey("g"), core.ActionFlipGravity},
		{"ctrl+r", tea.KeyMsg{Type: tea.KeyCtrlR}, core.ActionReset},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionAnswer},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"p", runeKey("p"), core.ActionPause},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("z"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	for _, b := range km.ShortHelp() {
		if b.Help().Key == "" {
			t.Errorf("Binding %v has no help text", b.Keys())
		}
	}
	if len(km.FullHelp()) != 3 {
		t.Errorf("FullHelp columns = %d, want 3", len(km.FullHelp()))
	}
}
