package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/striderun/strider/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		action   core.Action
		wantQuit bool
	}{
		{"space confirms", tea.KeyMsg{Type: tea.KeySpace}, core.ActionConfirm, false},
		{"up confirms", tea.KeyMsg{Type: tea.KeyUp}, core.ActionConfirm, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"w confirms", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionConfirm, false},
		{"down ducks", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDuck, false},
		{"s ducks", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, core.ActionDuck, false},
		{"p pauses", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r restarts", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart, false},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key ignored", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tc.msg)
			if action != tc.action {
				t.Errorf("MapKey(%q) action = %v, expected %v", tc.msg.String(), action, tc.action)
			}
			if isQuit != tc.wantQuit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tc.msg.String(), isQuit, tc.wantQuit)
			}
		})
	}
}
