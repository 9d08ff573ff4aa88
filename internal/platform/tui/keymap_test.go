package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGameKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey("a"), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"l", runeKey("l"), core.ActionRight},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate},
		{"x", runeKey("x"), core.ActionRotate},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionDrop},
		{"c", runeKey("c"), core.ActionHold},
		{"C", runeKey("C"), core.ActionHold},
		{"p", runeKey("p"), core.ActionPause},
		{"r", runeKey("r"), core.ActionRestart},
		{"quit is handled by the model", runeKey("q"), core.ActionNone},
		{"back is handled by the model", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionNone},
		{"unbound", runeKey("z"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapsProvideHelp(t *testing.T) {
	if len(DefaultGameKeyMap().ShortHelp()) == 0 {
		t.Error("game key map has no short help")
	}
	if len(DefaultMenuKeyMap().FullHelp()) == 0 {
		t.Error("menu key map has no full help")
	}
}
