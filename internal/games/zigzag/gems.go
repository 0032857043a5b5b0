package zigzag

import "github.com/vovakirdan/zigzag/internal/core"

// Gem is a collectible resting on a tile. TileID names the tile that spawned
// it; the gem never outlives that tile.
type Gem struct {
	ID       int
	Position core.Vec3
	TileID   int
}

// GemRegistry owns the live gems, with the same dense layout as TileRegistry.
type GemRegistry struct {
	gems []Gem
	slot map[int]int
}

// NewGemRegistry creates an empty registry.
func NewGemRegistry() *GemRegistry {
	return &GemRegistry{
		gems: make([]Gem, 0, 32),
		slot: make(map[int]int),
	}
}

// Insert appends a gem.
func (r *GemRegistry) Insert(g Gem) {
	r.slot[g.ID] = len(r.gems)
	r.gems = append(r.gems, g)
}

// Get returns the gem with the given id.
func (r *GemRegistry) Get(id int) (Gem, bool) {
	i, ok := r.slot[id]
	if !ok {
		return Gem{}, false
	}
	return r.gems[i], true
}

// Len returns the number of live gems.
func (r *GemRegistry) Len() int {
	return len(r.gems)
}

// All returns a copy of the live gems in insertion order.
func (r *GemRegistry) All() []Gem {
	out := make([]Gem, len(r.gems))
	copy(out, r.gems)
	return out
}

// OnTile returns the ids of gems attached to the given tile.
func (r *GemRegistry) OnTile(tileID int) []int {
	var ids []int
	for _, g := range r.gems {
		if g.TileID == tileID {
			ids = append(ids, g.ID)
		}
	}
	return ids
}

// Drop moves a gem down by dy.
func (r *GemRegistry) Drop(id int, dy float64) {
	if i, ok := r.slot[id]; ok {
		r.gems[i].Position.Y -= dy
	}
}

// Remove deletes every gem whose id is in the set.
func (r *GemRegistry) Remove(ids map[int]struct{}) {
	if len(ids) == 0 {
		return
	}
	kept := r.gems[:0]
	for _, g := range r.gems {
		if _, gone := ids[g.ID]; gone {
			delete(r.slot, g.ID)
			continue
		}
		r.slot[g.ID] = len(kept)
		kept = append(kept, g)
	}
	r.gems = kept
}

// RemoveByTile deletes every gem attached to one of the given tiles and
// returns the removed gem ids.
func (r *GemRegistry) RemoveByTile(tileIDs map[int]struct{}) []int {
	if len(tileIDs) == 0 {
		return nil
	}
	gone := make(map[int]struct{})
	var removed []int
	for _, g := range r.gems {
		if _, ok := tileIDs[g.TileID]; ok {
			gone[g.ID] = struct{}{}
			removed = append(removed, g.ID)
		}
	}
	r.Remove(gone)
	return removed
}

// Reset removes all gems.
func (r *GemRegistry) Reset() {
	r.gems = r.gems[:0]
	clear(r.slot)
}
