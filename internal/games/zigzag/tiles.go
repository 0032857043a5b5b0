package zigzag

import "github.com/vovakirdan/zigzag/internal/core"

// TileStatus is the lifecycle state of a tile.
type TileStatus int

const (
	TileActive TileStatus = iota
	TileFalling
)

// String returns a human-readable name for the status.
func (s TileStatus) String() string {
	switch s {
	case TileActive:
		return "active"
	case TileFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// Tile is one platform block. Position is the center of the block.
type Tile struct {
	ID       int
	Position core.Vec3
	Status   TileStatus
}

// TileRegistry owns the live tiles.
// Tiles are kept densely in insertion order (which is also id order) with an
// id->slot index for lookups.
type TileRegistry struct {
	tiles []Tile
	slot  map[int]int
}

// NewTileRegistry creates an empty registry.
func NewTileRegistry() *TileRegistry {
	return &TileRegistry{
		tiles: make([]Tile, 0, 128),
		slot:  make(map[int]int),
	}
}

// Insert appends a tile.
func (r *TileRegistry) Insert(t Tile) {
	r.slot[t.ID] = len(r.tiles)
	r.tiles = append(r.tiles, t)
}

// Get returns the tile with the given id.
func (r *TileRegistry) Get(id int) (Tile, bool) {
	i, ok := r.slot[id]
	if !ok {
		return Tile{}, false
	}
	return r.tiles[i], true
}

// Has reports whether a tile with the given id is live.
func (r *TileRegistry) Has(id int) bool {
	_, ok := r.slot[id]
	return ok
}

// Len returns the number of live tiles.
func (r *TileRegistry) Len() int {
	return len(r.tiles)
}

// All returns a copy of the live tiles in insertion order.
func (r *TileRegistry) All() []Tile {
	out := make([]Tile, len(r.tiles))
	copy(out, r.tiles)
	return out
}

// Range calls fn for each live tile in insertion order until fn returns false.
func (r *TileRegistry) Range(fn func(Tile) bool) {
	for _, t := range r.tiles {
		if !fn(t) {
			return
		}
	}
}

// MarkFalling applies one bulk status update: every listed ACTIVE tile becomes
// FALLING. Tiles that are already falling or gone are skipped, so re-issuing
// the update never restarts a fall. Returns the ids that actually changed.
func (r *TileRegistry) MarkFalling(ids []int) []int {
	var changed []int
	for _, id := range ids {
		i, ok := r.slot[id]
		if !ok || r.tiles[i].Status == TileFalling {
			continue
		}
		r.tiles[i].Status = TileFalling
		changed = append(changed, id)
	}
	return changed
}

// Drop moves a tile down by dy.
func (r *TileRegistry) Drop(id int, dy float64) {
	if i, ok := r.slot[id]; ok {
		r.tiles[i].Position.Y -= dy
	}
}

// Remove deletes every tile whose id is in the set, preserving order.
func (r *TileRegistry) Remove(ids map[int]struct{}) {
	if len(ids) == 0 {
		return
	}
	kept := r.tiles[:0]
	for _, t := range r.tiles {
		if _, gone := ids[t.ID]; gone {
			delete(r.slot, t.ID)
			continue
		}
		r.slot[t.ID] = len(kept)
		kept = append(kept, t)
	}
	r.tiles = kept
}

// Reset removes all tiles.
func (r *TileRegistry) Reset() {
	r.tiles = r.tiles[:0]
	clear(r.slot)
}
