package zigzag

import "github.com/vovakirdan/zigzag/internal/config"

// FallScheduler decides when tiles start falling and moves them down once
// they do.
//
// Tiles of the initial platform (ids below the batch size) form a rigid
// group led by the first path tile (id equal to the batch size). While the
// leader is live, group tiles never move on their own; when the leader starts
// falling the whole group is marked FALLING with it and every member drops by
// the same offset each tick.
type FallScheduler struct {
	delay    float64
	gravity  float64
	gemRate  float64
	removalY float64
	batch    int
}

// NewFallScheduler creates a scheduler for the given configuration.
func NewFallScheduler(cfg *config.ZigzagConfig) FallScheduler {
	return FallScheduler{
		delay:    cfg.Level.FallDelay,
		gravity:  cfg.Physics.Gravity,
		gemRate:  cfg.Gems.FallFactor * cfg.Physics.Gravity,
		removalY: cfg.Level.RemovalY,
		batch:    cfg.PlatformTileCount(),
	}
}

// inGroup reports whether the tile belongs to the initial platform batch.
func (f FallScheduler) inGroup(id int) bool {
	return id >= 0 && id < f.batch
}

// Trigger promotes every ACTIVE tile other than the support whose last
// contact is older than the fall delay, and deletes the ledger entries of the
// tiles that changed. It returns the ids that started falling, in one bulk
// status update.
func (f FallScheduler) Trigger(tiles *TileRegistry, ledger *ContactLedger, supportID int, hasSupport bool, now float64) []int {
	var due []int
	leaderDue := false
	tiles.Range(func(t Tile) bool {
		if t.Status != TileActive || (hasSupport && t.ID == supportID) {
			return true
		}
		last, ok := ledger.LastContact(t.ID)
		if ok && now-last > f.delay {
			due = append(due, t.ID)
			if t.ID == f.batch {
				leaderDue = true
			}
		}
		return true
	})

	if leaderDue {
		tiles.Range(func(t Tile) bool {
			if !f.inGroup(t.ID) {
				return false
			}
			if t.Status == TileActive && !(hasSupport && t.ID == supportID) {
				due = append(due, t.ID)
			}
			return true
		})
	}

	changed := tiles.MarkFalling(due)
	for _, id := range changed {
		ledger.Delete(id)
	}
	return changed
}

// FallResult lists the entities removed by one animation pass.
type FallResult struct {
	Tiles []int
	Gems  []int
}

// Animate moves every FALLING tile and its gems down by one tick and removes
// tiles that passed the removal height or lost their visual handle, together
// with every gem attached to them. Gems without a visual handle are removed
// as well. Removed tiles also leave the ledger.
func (f FallScheduler) Animate(tiles *TileRegistry, gems *GemRegistry, ledger *ContactLedger, visuals Visuals, dt float64) FallResult {
	leader, leaderLive := tiles.Get(f.batch)
	groupMoving := leaderLive && leader.Status == TileFalling

	dy := f.gravity * dt
	gemDy := f.gemRate * dt

	goneTiles := make(map[int]struct{})
	var moved []int
	tiles.Range(func(t Tile) bool {
		if t.Status != TileFalling {
			return true
		}
		if !visuals.TileAttached(t.ID) {
			goneTiles[t.ID] = struct{}{}
			return true
		}
		if f.inGroup(t.ID) && leaderLive && !groupMoving {
			return true
		}
		moved = append(moved, t.ID)
		if t.Position.Y-dy < f.removalY {
			goneTiles[t.ID] = struct{}{}
		}
		return true
	})

	for _, id := range moved {
		tiles.Drop(id, dy)
		for _, gid := range gems.OnTile(id) {
			gems.Drop(gid, gemDy)
		}
	}

	var res FallResult
	for _, t := range tiles.All() {
		if _, ok := goneTiles[t.ID]; ok {
			res.Tiles = append(res.Tiles, t.ID)
			ledger.Delete(t.ID)
		}
	}
	tiles.Remove(goneTiles)
	res.Gems = gems.RemoveByTile(goneTiles)

	goneGems := make(map[int]struct{})
	for _, g := range gems.All() {
		if !visuals.GemAttached(g.ID) {
			goneGems[g.ID] = struct{}{}
			res.Gems = append(res.Gems, g.ID)
		}
	}
	gems.Remove(goneGems)

	return res
}
