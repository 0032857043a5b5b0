// Package zigzag implements an endless runner: a sphere rolls along a
// randomly generated zigzag path of tiles that fall away behind it, and the
// player changes direction to stay on the path.
package zigzag

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zigzag/internal/config"
	"github.com/vovakirdan/zigzag/internal/core"
	"github.com/vovakirdan/zigzag/internal/registry"
)

// floatLifetime is how long a floating score stays on screen, in seconds.
const floatLifetime = 0.5

func init() {
	registry.Register("zigzag", func() registry.Game { return New() })
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// stats and logger are shared by every Game created after they are set.
var (
	stats  Persistence
	logger *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStats sets the persistence used for best score, games played and sound.
func SetStats(p Persistence) {
	stats = p
}

// SetLogger sets the logger handed to new controllers.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game adapts the Controller to the fixed-tick registry.Game interface and
// plays the rendering side: it ages floating scores and completes them.
type Game struct {
	runtime  core.RuntimeConfig
	ctrl     *Controller
	clock    Clock
	floatAge map[int]float64
	tickTime time.Duration
}

// New creates a new zigzag game instance.
func New() *Game {
	return &Game{floatAge: make(map[int]float64)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "zigzag"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Zigzag"
}

// Reset loads the config and builds a new controller in READY.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadZigzag(configPath)
	if err != nil {
		if logger != nil {
			logger.Warn("falling back to default config", "err", err)
		}
		cfg = config.DefaultZigzagConfig()
	}
	if difficultyPreset != "" {
		config.ApplyZigzagPreset(&cfg, difficultyPreset)
	}

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := []Option{WithRand(rand.New(rand.NewSource(seed)))}
	if stats != nil {
		opts = append(opts, WithPersistence(stats))
	}
	if logger != nil {
		opts = append(opts, WithLogger(logger))
	}

	g.ctrl = NewController(cfg, opts...)
	g.clock = Clock{}
	clear(g.floatAge)
	g.tickTime = 0
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	dt := g.runtime.Delta()
	frame := g.clock.Advance(dt)

	start := time.Now()
	g.ctrl.Tick(frame, in.Drain())
	g.tickTime = time.Since(start)

	g.ageFloats(dt)
	return core.StepResult{State: g.State()}
}

// ageFloats completes floating scores whose animation has run its course.
func (g *Game) ageFloats(dt float64) {
	live := make(map[int]float64)
	for _, f := range g.ctrl.FloatingScores() {
		age := g.floatAge[f.ID] + dt
		if age >= floatLifetime {
			f.Complete()
			continue
		}
		live[f.ID] = age
	}
	g.floatAge = live
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{Ready: true}
	}
	phase := g.ctrl.Phase()
	return core.GameState{
		Score:    g.ctrl.Score(),
		GameOver: phase == PhaseGameOver,
		Ready:    phase == PhaseReady,
	}
}

// Controller exposes the underlying simulation.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// Render draws the current state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.ctrl == nil {
		dst.Clear()
		return
	}
	r := renderer{
		snap:     g.ctrl.Snapshot(),
		cfg:      g.ctrl.Config(),
		floatAge: g.floatAge,
		tickTime: g.tickTime,
		elapsed:  g.clock.Elapsed(),
	}
	r.draw(dst)
}
