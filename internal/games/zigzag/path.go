package zigzag

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/zigzag/internal/config"
	"github.com/vovakirdan/zigzag/internal/core"
)

// Direction is one of the two axes the path and the sphere travel along.
type Direction int

const (
	DirForward Direction = iota // -Z
	DirRight                    // +X
)

// directions is the fixed two-step cycle shared by the path and the sphere.
var directions = [...]core.Vec3{
	DirForward: {X: 0, Y: 0, Z: -1},
	DirRight:   {X: 1, Y: 0, Z: 0},
}

// Vec returns the unit vector of the direction.
func (d Direction) Vec() core.Vec3 {
	return directions[d]
}

// Next returns the following direction in the cycle.
func (d Direction) Next() Direction {
	return (d + 1) % Direction(len(directions))
}

// String returns the axis name of the direction.
func (d Direction) String() string {
	switch d {
	case DirForward:
		return "-Z"
	case DirRight:
		return "+X"
	default:
		return "?"
	}
}

// PathGenerator extends the tile frontier with a biased random walk.
// Each step adds one to the counter of the chosen axis and subtracts one from
// the other, so divX == -divZ and a counter reaching the bound forces the
// opposite axis on the next step.
type PathGenerator struct {
	cfg      *config.ZigzagConfig
	rng      *rand.Rand
	frontier core.Vec3
	divX     int
	divZ     int
	last     Direction
}

// NewPathGenerator creates a generator drawing from rng.
func NewPathGenerator(cfg *config.ZigzagConfig, rng *rand.Rand) *PathGenerator {
	p := &PathGenerator{cfg: cfg, rng: rng}
	p.Reset()
	return p
}

// Reset zeroes the divergence counters and moves the frontier back to the origin tile.
func (p *PathGenerator) Reset() {
	p.frontier = core.V3(0, -p.cfg.Level.TileDepth/2, 0)
	p.divX = 0
	p.divZ = 0
	p.last = DirForward
}

// Frontier returns the center of the most recently generated tile.
func (p *PathGenerator) Frontier() core.Vec3 {
	return p.frontier
}

// LastDirection returns the direction of the most recent path step.
// It is -Z before the first step.
func (p *PathGenerator) LastDirection() Direction {
	return p.last
}

// Divergence returns the current (x, z) divergence counters.
func (p *PathGenerator) Divergence() (int, int) {
	return p.divX, p.divZ
}

// GenerateInitialPlatform emits the W x L start grid.
// Rows run from z=0 towards -Z, columns from the right corner towards -X.
// The frontier ends on the right corner of the far row, where the path starts.
func (p *PathGenerator) GenerateInitialPlatform(tiles *TileRegistry, ids *IDAllocator) {
	size := p.cfg.Level.TileSize
	y := -p.cfg.Level.TileDepth / 2
	startX := math.Floor(float64(p.cfg.Level.PlatformWidth)/2) * size

	z := 0.0
	for l := 0; l < p.cfg.Level.PlatformLength; l++ {
		z = -float64(l) * size
		for w := 0; w < p.cfg.Level.PlatformWidth; w++ {
			tiles.Insert(Tile{
				ID:       ids.Next(),
				Position: core.V3(startX-float64(w)*size, y, z),
				Status:   TileActive,
			})
		}
	}

	p.frontier = core.V3(startX, y, z)
}

// chooseDirection applies the divergence policy and updates the counters.
func (p *PathGenerator) chooseDirection() Direction {
	bound := p.cfg.Level.MaxDivergence

	var d Direction
	switch {
	case p.divX >= bound:
		d = DirForward
	case p.divZ >= bound:
		d = DirRight
	case p.rng.Float64() < 0.5:
		d = DirForward
	default:
		d = DirRight
	}

	if d == DirForward {
		p.divZ++
		p.divX--
	} else {
		p.divX++
		p.divZ--
	}
	return d
}

// GeneratePathSegment appends exactly one tile one tile-length beyond the
// frontier and, with the configured probability, a gem on top of it.
func (p *PathGenerator) GeneratePathSegment(tiles *TileRegistry, gems *GemRegistry, tileIDs, gemIDs *IDAllocator) Direction {
	d := p.chooseDirection()
	next := p.frontier.AddScaled(d.Vec(), p.cfg.Level.TileSize)

	tile := Tile{ID: tileIDs.Next(), Position: next, Status: TileActive}
	tiles.Insert(tile)

	if p.rng.Float64() < p.cfg.Gems.SpawnProbability {
		gems.Insert(Gem{
			ID:       gemIDs.Next(),
			Position: core.V3(next.X, next.Y+p.cfg.GemHeightOffset(), next.Z),
			TileID:   tile.ID,
		})
	}

	p.frontier = next
	p.last = d
	return d
}
