package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zigzag/internal/core"
)

// KeyMap holds the bindings of the game screen.
type KeyMap struct {
	Tap        key.Binding
	Sound      key.Binding
	Perf       key.Binding
	Scores     key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Sound, k.Scores, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tap, k.Sound, k.Perf},
		{k.Scores, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tap: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/click", "turn / start"),
		),
		Sound: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "sound"),
		),
		Perf: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "perf"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// tapAction is what a tap means in the given state: a turn while playing,
// a start or restart otherwise.
func tapAction(st core.GameState) core.Action {
	if st.Ready || st.GameOver {
		return core.ActionStartOrRestart
	}
	return core.ActionAdvanceDirection
}

// DecodeKey translates a key message into a game action.
// Keys that are not game input (quit, help, scores) return ActionNone.
func (k KeyMap) DecodeKey(msg tea.KeyMsg, st core.GameState) core.Action {
	switch {
	case key.Matches(msg, k.Tap):
		return tapAction(st)
	case key.Matches(msg, k.Sound):
		return core.ActionToggleSound
	case key.Matches(msg, k.Perf):
		return core.ActionTogglePerf
	}
	return core.ActionNone
}

// DecodeMouse translates a mouse message into a game action. Only a left
// button press counts as a tap.
func DecodeMouse(msg tea.MouseMsg, st core.GameState) core.Action {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.ActionNone
	}
	return tapAction(st)
}
