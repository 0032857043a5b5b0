package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zigzag/internal/core"
	"github.com/vovakirdan/zigzag/internal/storage"
)

// stubGame records the actions it is stepped with and reports a scripted state.
type stubGame struct {
	state  core.GameState
	resets int
	steps  [][]core.Action
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Ready: true}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, append([]core.Action(nil), in.Actions...))
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) lastStep() []core.Action {
	if len(g.steps) == 0 {
		return nil
	}
	return g.steps[len(g.steps)-1]
}

func newTestModel(t *testing.T, store *storage.Store) (Model, *stubGame) {
	t.Helper()
	g := &stubGame{}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, TickMsg(time.Now()))
}

func TestModelResetsGameOnCreate(t *testing.T) {
	m, g := newTestModel(t, nil)
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
	if !m.GameState().Ready {
		t.Error("model should see the ready state before the first tick")
	}
}

func TestModelTapStartsThenTurns(t *testing.T) {
	m, g := newTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	g.state = core.GameState{}
	m = tick(t, m)

	if got := g.lastStep(); len(got) != 1 || got[0] != core.ActionStartOrRestart {
		t.Fatalf("first tick actions = %v, expected a single start", got)
	}

	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	tick(t, m)

	got := g.lastStep()
	if len(got) != 2 || got[0] != core.ActionAdvanceDirection || got[1] != core.ActionAdvanceDirection {
		t.Errorf("playing tick actions = %v, expected two turns", got)
	}
}

func TestModelClearsInputAfterTick(t *testing.T) {
	m, g := newTestModel(t, nil)
	m = update(t, m, runeKey('m'))
	m = tick(t, m)
	tick(t, m)

	if len(g.steps) != 2 || len(g.steps[1]) != 0 {
		t.Errorf("second tick actions = %v, expected none", g.steps)
	}
}

func TestModelSavesScoreOncePerGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	m, g := newTestModel(t, store)
	g.state = core.GameState{Score: 12, GameOver: true}
	m = tick(t, m)
	m = tick(t, m)

	g.state = core.GameState{Ready: true}
	m = tick(t, m)
	g.state = core.GameState{Score: 5, GameOver: true}
	m = tick(t, m)

	g.state = core.GameState{Ready: true}
	m = tick(t, m)
	g.state = core.GameState{Score: 0, GameOver: true}
	tick(t, m)

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 12 || scores[1].Score != 5 {
		t.Errorf("saved scores = %+v, expected 12 and 5", scores)
	}
}

func TestModelScoreboardOnlyOutsidePlay(t *testing.T) {
	m, g := newTestModel(t, nil)

	g.state = core.GameState{}
	m = tick(t, m)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.board != nil {
		t.Fatal("scoreboard must not open while playing")
	}

	g.state = core.GameState{GameOver: true}
	m = tick(t, m)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.board == nil {
		t.Fatal("scoreboard should open after game over")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("view should show the scoreboard")
	}

	steps := len(g.steps)
	m = tick(t, m)
	if len(g.steps) != steps {
		t.Error("game must not step while the scoreboard is open")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.board != nil {
		t.Error("esc should close the scoreboard")
	}
	if m.quitting {
		t.Error("closing the scoreboard must not quit")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, g := newTestModel(t, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}

	m = update(t, m, runeKey('?'))
	if m.screen.Height() != 29 {
		t.Errorf("help footer should take one row, screen height %d", m.screen.Height())
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines < 30 {
		t.Errorf("view has %d lines, expected the footer below the game", lines)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorCyan)
	s.DrawTextColor(2, 0, "cd", core.ColorDarkGray)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected two rows, got %q", out)
	}
}
