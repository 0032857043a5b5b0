package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zigzag/internal/core"
)

var (
	stateReady    = core.GameState{Ready: true}
	statePlaying  = core.GameState{}
	stateGameOver = core.GameState{GameOver: true}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDecodeKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name  string
		msg   tea.KeyMsg
		state core.GameState
		want  core.Action
	}{
		{"space in ready starts", tea.KeyMsg{Type: tea.KeySpace}, stateReady, core.ActionStartOrRestart},
		{"space while playing turns", tea.KeyMsg{Type: tea.KeySpace}, statePlaying, core.ActionAdvanceDirection},
		{"enter while playing turns", tea.KeyMsg{Type: tea.KeyEnter}, statePlaying, core.ActionAdvanceDirection},
		{"enter after game over restarts", tea.KeyMsg{Type: tea.KeyEnter}, stateGameOver, core.ActionStartOrRestart},
		{"m toggles sound", runeKey('m'), statePlaying, core.ActionToggleSound},
		{"p toggles perf", runeKey('p'), stateReady, core.ActionTogglePerf},
		{"tab is not game input", tea.KeyMsg{Type: tea.KeyTab}, stateReady, core.ActionNone},
		{"q is not game input", runeKey('q'), statePlaying, core.ActionNone},
		{"unbound key", runeKey('x'), statePlaying, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.DecodeKey(tc.msg, tc.state); got != tc.want {
				t.Errorf("DecodeKey() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestDecodeMouse(t *testing.T) {
	tests := []struct {
		name  string
		msg   tea.MouseMsg
		state core.GameState
		want  core.Action
	}{
		{"left press while playing", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, statePlaying, core.ActionAdvanceDirection},
		{"left press in ready", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, stateReady, core.ActionStartOrRestart},
		{"release ignored", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, statePlaying, core.ActionNone},
		{"motion ignored", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, statePlaying, core.ActionNone},
		{"right press ignored", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, statePlaying, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DecodeMouse(tc.msg, tc.state); got != tc.want {
				t.Errorf("DecodeMouse() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("short help should list bindings")
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 7 {
		t.Errorf("full help lists %d bindings, expected 7", total)
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tc := range tests {
		if got := tickInterval(tc.rate); got != tc.want {
			t.Errorf("tickInterval(%d) = %v, expected %v", tc.rate, got, tc.want)
		}
	}
}
