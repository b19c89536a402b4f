package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tiniprime/RugRun/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"w", runeKey("w"), core.ActionJump, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"c", runeKey("c"), core.ActionCopyProof, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"b", runeKey("b"), core.ActionBack, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unmapped", runeKey("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestEnterDependsOnPhase(t *testing.T) {
	km := NewKeyMapper()
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	frame := core.NewInputFrame()
	km.MapKeyToFrame(enter, &frame, core.PhaseIdle)
	if !frame.Has(core.ActionJump) || frame.Has(core.ActionRestart) {
		t.Error("enter while idle should jump")
	}

	frame = core.NewInputFrame()
	km.MapKeyToFrame(enter, &frame, core.PhaseOver)
	if !frame.Has(core.ActionRestart) || frame.Has(core.ActionJump) {
		t.Error("enter after game over should restart")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	cases := map[string]MenuAction{
		"k":     MenuActionUp,
		"j":     MenuActionDown,
		"b":     MenuActionBack,
		"q":     MenuActionQuit,
		"l":     MenuActionScoreboard,
		"?":     MenuActionAbout,
		"f":     MenuActionAbout,
		"xyzzy": MenuActionNone,
	}
	for k, want := range cases {
		if got := km.MapKeyToMenuAction(runeKey(k)); got != want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", k, got, want)
		}
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}); got != MenuActionScoreboard {
		t.Errorf("tab = %v, expected scoreboard", got)
	}
}
