package zigzag

import (
	"github.com/vovakirdan/zigzag/internal/config"
	"github.com/vovakirdan/zigzag/internal/core"
)

// Visuals reports whether the rendering side still holds a handle for an
// entity. Entities without a handle are treated as already gone.
type Visuals interface {
	TileAttached(id int) bool
	GemAttached(id int) bool
}

// attachedAll is the Visuals used when no renderer tracks handles.
type attachedAll struct{}

func (attachedAll) TileAttached(int) bool { return true }
func (attachedAll) GemAttached(int) bool  { return true }

// SupportDetector finds the tile holding the sphere.
// It writes only the contact ledger; the caller owns isOnPlatform.
type SupportDetector struct {
	half   float64
	depth  float64
	radius float64
}

// NewSupportDetector creates a detector for the configured tile and sphere sizes.
func NewSupportDetector(cfg *config.ZigzagConfig) SupportDetector {
	return SupportDetector{
		half:   cfg.Level.TileSize / 2,
		depth:  cfg.Level.TileDepth,
		radius: cfg.Sphere.Radius,
	}
}

// Box returns the containment volume in which a tile supports the sphere.
func (d SupportDetector) Box(t Tile) core.Box {
	p := t.Position
	return core.Box{
		MinX: p.X - d.half, MaxX: p.X + d.half,
		MinY: p.Y - d.radius, MaxY: p.Y + d.depth + d.radius,
		MinZ: p.Z - d.half, MaxZ: p.Z + d.half,
	}
}

// Detect scans ACTIVE tiles in insertion order and stops at the first one
// whose box contains pos. The matching tile's contact time is set to now.
func (d SupportDetector) Detect(tiles *TileRegistry, visuals Visuals, ledger *ContactLedger, pos core.Vec3, now float64) (int, bool) {
	id, found := 0, false
	tiles.Range(func(t Tile) bool {
		if t.Status != TileActive || !visuals.TileAttached(t.ID) {
			return true
		}
		if !d.Box(t).Contains(pos) {
			return true
		}
		id, found = t.ID, true
		return false
	})
	if found {
		ledger.Touch(id, now)
	}
	return id, found
}
