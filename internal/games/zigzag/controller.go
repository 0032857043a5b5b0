package zigzag

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zigzag/internal/config"
	"github.com/vovakirdan/zigzag/internal/core"
)

// Phase is the run state.
type Phase int

const (
	PhaseReady Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a lower-case name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Keys under which the controller persists its stats.
const (
	StatBestScore   = "bestScore"
	StatGamesPlayed = "gamesPlayed"
	StatSound       = "sound"
)

// Persistence stores integer stats. Read errors fall back to defaults.
// Several controllers may share one Persistence, so the best score and the
// games counter are merged by the store rather than overwritten.
type Persistence interface {
	ReadStat(key string) (int, error)
	WriteStat(key string, value int) error
	// MaxStat stores value unless a larger one is stored and returns the result.
	MaxStat(key string, value int) (int, error)
	// IncrStat adds delta to the stored value and returns the result.
	IncrStat(key string, delta int) (int, error)
}

// Frame is the timing of one tick.
type Frame struct {
	Elapsed float64 // seconds since the clock started
	Delta   float64 // seconds since the previous frame
}

// Clock is the monotonic time source owned by the host loop.
type Clock struct {
	elapsed float64
}

// Advance moves the clock forward and returns the frame.
func (c *Clock) Advance(dt float64) Frame {
	if dt < 0 {
		dt = 0
	}
	c.elapsed += dt
	return Frame{Elapsed: c.elapsed, Delta: dt}
}

// Elapsed returns the seconds since the clock started.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// TickResult describes what changed during one tick.
type TickResult struct {
	Phase        Phase
	Score        int
	Collected    []int // gems picked up by the sphere
	FellTiles    []int // tiles that started falling
	RemovedTiles []int
	RemovedGems  []int // includes collected gems
}

// Option configures a Controller.
type Option func(*Controller)

// WithPersistence sets where stats are read from and written to.
func WithPersistence(p Persistence) Option {
	return func(c *Controller) { c.store = p }
}

// WithLogger sets the logger for phase changes and persistence failures.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithVisuals sets the renderer handle tracker.
func WithVisuals(v Visuals) Option {
	return func(c *Controller) {
		if v != nil {
			c.visuals = v
		}
	}
}

// WithRand sets the random source for path generation.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) {
		if r != nil {
			c.rng = r
		}
	}
}

// Controller runs the simulation. All state is touched only from Tick and
// the read-only accessors, on the caller's goroutine.
type Controller struct {
	cfg     config.ZigzagConfig
	log     *log.Logger
	store   Persistence
	visuals Visuals
	rng     *rand.Rand

	tiles  *TileRegistry
	gems   *GemRegistry
	ledger *ContactLedger

	tileIDs  IDAllocator
	gemIDs   IDAllocator
	floatIDs IDAllocator

	path    *PathGenerator
	support SupportDetector
	fall    FallScheduler
	sphere  Sphere
	camera  Camera

	phase      Phase
	score      int
	best       int
	played     int
	onPlatform bool
	supportID  int
	hasSupport bool
	fresh      bool

	sound bool
	perf  bool

	floats     []FloatingScore
	generation int
}

// NewController creates a controller in READY with a freshly generated level.
// Stats are read once from persistence here.
func NewController(cfg config.ZigzagConfig, opts ...Option) *Controller {
	c := &Controller{
		cfg:     cfg,
		log:     log.New(io.Discard),
		visuals: attachedAll{},
		tiles:   NewTileRegistry(),
		gems:    NewGemRegistry(),
		ledger:  NewContactLedger(),
		sound:   true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	c.path = NewPathGenerator(&c.cfg, c.rng)
	c.support = NewSupportDetector(&c.cfg)
	c.fall = NewFallScheduler(&c.cfg)

	c.best = c.readStat(StatBestScore, 0)
	c.played = c.readStat(StatGamesPlayed, 0)
	c.sound = c.readStat(StatSound, 1) != 0

	c.reset()
	return c
}

func (c *Controller) readStat(key string, def int) int {
	if c.store == nil {
		return def
	}
	v, err := c.store.ReadStat(key)
	if err != nil {
		c.log.Debug("stat unavailable, using default", "key", key, "default", def, "err", err)
		return def
	}
	return v
}

func (c *Controller) writeStat(key string, v int) {
	if c.store == nil {
		return
	}
	if err := c.store.WriteStat(key, v); err != nil {
		c.log.Warn("failed to persist stat", "key", key, "value", v, "err", err)
	}
}

// mergeBest raises the persisted best to at least score and adopts the
// stored value, which may come from another controller.
func (c *Controller) mergeBest(score int) {
	c.best = max(c.best, score)
	if c.store == nil {
		return
	}
	stored, err := c.store.MaxStat(StatBestScore, score)
	if err != nil {
		c.log.Warn("failed to persist stat", "key", StatBestScore, "value", score, "err", err)
		return
	}
	c.best = max(c.best, stored)
}

// countGame records one started run and adopts the stored total.
func (c *Controller) countGame() {
	c.played++
	if c.store == nil {
		return
	}
	stored, err := c.store.IncrStat(StatGamesPlayed, 1)
	if err != nil {
		c.log.Warn("failed to persist stat", "key", StatGamesPlayed, "err", err)
		return
	}
	c.played = stored
}

// reset discards all run-scoped state and regenerates the level.
func (c *Controller) reset() {
	c.generation++
	c.score = 0

	c.tiles.Reset()
	c.gems.Reset()
	c.ledger.Reset()
	c.tileIDs.Reset()
	c.gemIDs.Reset()
	c.floatIDs.Reset()
	c.floats = nil

	c.sphere = NewSphere(&c.cfg)
	c.camera = Follow(c.sphere.Position, c.cfg.Camera)
	c.onPlatform = true
	c.supportID, c.hasSupport = 0, false

	c.path.Reset()
	c.path.GenerateInitialPlatform(c.tiles, &c.tileIDs)
	segments := int(c.cfg.Level.Lookahead)
	for i := 0; i <= segments; i++ {
		c.path.GeneratePathSegment(c.tiles, c.gems, &c.tileIDs, &c.gemIDs)
	}
	c.fresh = true
}

// Tick runs one frame: queued commands first, then the simulation in its
// fixed order.
func (c *Controller) Tick(frame Frame, cmds []core.Action) TickResult {
	for _, cmd := range cmds {
		c.apply(cmd)
	}

	res := TickResult{Phase: c.phase, Score: c.score}
	if c.phase == PhaseReady {
		return res
	}
	c.fresh = false
	dt := frame.Delta

	fallen := c.fall.Animate(c.tiles, c.gems, c.ledger, c.visuals, dt)
	res.RemovedTiles = fallen.Tiles
	res.RemovedGems = fallen.Gems

	switch c.phase {
	case PhasePlaying:
		c.sphere.Step(&c.cfg, dt)
		c.camera = Follow(c.sphere.Position, c.cfg.Camera)
		c.extendPath()
		res.Collected = c.collectGems()
		res.RemovedGems = append(res.RemovedGems, res.Collected...)
	case PhaseGameOver:
		c.sphere.Fall(&c.cfg, dt)
	}

	c.supportID, c.hasSupport = c.support.Detect(c.tiles, c.visuals, c.ledger, c.sphere.Position, frame.Elapsed)
	c.onPlatform = c.hasSupport

	res.FellTiles = c.fall.Trigger(c.tiles, c.ledger, c.supportID, c.hasSupport, frame.Elapsed)

	if c.phase == PhasePlaying && !c.onPlatform {
		c.gameOver()
	}

	res.Phase = c.phase
	res.Score = c.score
	return res
}

// extendPath keeps the frontier at least one lookahead distance away.
func (c *Controller) extendPath() {
	for c.sphere.Position.Dist(c.path.Frontier()) < c.cfg.Level.Lookahead {
		c.path.GeneratePathSegment(c.tiles, c.gems, &c.tileIDs, &c.gemIDs)
	}
}

// collectGems awards points for every gem the sphere touches while supported.
// A collected gem is removed in the same pass that scores it.
func (c *Controller) collectGems() []int {
	if !c.onPlatform {
		return nil
	}
	reach := c.cfg.Sphere.Radius + c.cfg.Gems.Radius

	var hit []int
	gone := make(map[int]struct{})
	for _, g := range c.gems.All() {
		if !c.visuals.GemAttached(g.ID) {
			continue
		}
		if c.sphere.Position.Dist(g.Position) >= reach {
			continue
		}
		hit = append(hit, g.ID)
		gone[g.ID] = struct{}{}
		c.score += c.cfg.Gems.Points
		c.emitFloat(g.Position)
	}
	c.gems.Remove(gone)
	return hit
}

func (c *Controller) emitFloat(pos core.Vec3) {
	id := c.floatIDs.Next()
	gen := c.generation
	c.floats = append(c.floats, FloatingScore{
		ID:       id,
		Position: pos,
		Label:    FloatingScoreLabel,
		done:     func() { c.dropFloat(gen, id) },
	})
}

func (c *Controller) dropFloat(gen, id int) {
	if gen != c.generation {
		return
	}
	for i, f := range c.floats {
		if f.ID == id {
			c.floats = append(c.floats[:i], c.floats[i+1:]...)
			return
		}
	}
}

func (c *Controller) gameOver() {
	c.phase = PhaseGameOver
	c.recordBest()
	c.log.Info("game over", "score", c.score, "best", c.best, "tiles", c.tileIDs.Peek())
}

func (c *Controller) recordBest() {
	if c.score > c.best {
		c.mergeBest(c.score)
	}
}

// apply handles one decoded input command.
func (c *Controller) apply(a core.Action) {
	switch a {
	case core.ActionAdvanceDirection:
		if c.phase != PhasePlaying || !c.onPlatform {
			return
		}
		c.sphere.QueueAdvance()
		c.score += c.cfg.Scoring.TapPoints

	case core.ActionStartOrRestart:
		switch c.phase {
		case PhaseReady:
			if !c.fresh {
				c.reset()
			}
			c.countGame()
			c.phase = PhasePlaying
			c.log.Debug("run started", "games", c.played)
		case PhaseGameOver:
			c.recordBest()
			c.best = max(c.best, c.readStat(StatBestScore, 0))
			c.reset()
			c.phase = PhaseReady
			c.log.Debug("back to ready")
		}

	case core.ActionToggleSound:
		c.sound = !c.sound
		v := 0
		if c.sound {
			v = 1
		}
		c.writeStat(StatSound, v)

	case core.ActionTogglePerf:
		c.perf = !c.perf
	}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Score returns the score of the current run.
func (c *Controller) Score() int { return c.score }

// BestScore returns the best score seen, including persisted runs.
func (c *Controller) BestScore() int { return c.best }

// GamesPlayed returns the number of started runs.
func (c *Controller) GamesPlayed() int { return c.played }

// OnPlatform reports whether the sphere was supported on the last tick.
func (c *Controller) OnPlatform() bool { return c.onPlatform }

// SpherePosition returns the sphere center.
func (c *Controller) SpherePosition() core.Vec3 { return c.sphere.Position }

// SoundEnabled reports the sound preference.
func (c *Controller) SoundEnabled() bool { return c.sound }

// PerfEnabled reports whether the performance overlay is on.
func (c *Controller) PerfEnabled() bool { return c.perf }

// Config returns the configuration the controller runs with.
func (c *Controller) Config() config.ZigzagConfig { return c.cfg }

// FloatingScores returns the pending floating-score events.
func (c *Controller) FloatingScores() []FloatingScore {
	out := make([]FloatingScore, len(c.floats))
	copy(out, c.floats)
	return out
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Phase          Phase
	Score          int
	BestScore      int
	GamesPlayed    int
	OnPlatform     bool
	SupportID      int
	HasSupport     bool
	SpherePosition core.Vec3
	Speed          float64
	Direction      Direction
	Camera         Camera
	Frontier       core.Vec3
	FrontierDir    Direction
	Tiles          []Tile
	Gems           []Gem
	Floats         []FloatingScore
	Sound          bool
	Perf           bool
}

// Snapshot returns a copy of the observable state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Phase:          c.phase,
		Score:          c.score,
		BestScore:      c.best,
		GamesPlayed:    c.played,
		OnPlatform:     c.onPlatform,
		SupportID:      c.supportID,
		HasSupport:     c.hasSupport,
		SpherePosition: c.sphere.Position,
		Speed:          c.sphere.Speed,
		Direction:      c.sphere.Direction(),
		Camera:         c.camera,
		Frontier:       c.path.Frontier(),
		FrontierDir:    c.path.LastDirection(),
		Tiles:          c.tiles.All(),
		Gems:           c.gems.All(),
		Floats:         c.FloatingScores(),
		Sound:          c.sound,
		Perf:           c.perf,
	}
}
