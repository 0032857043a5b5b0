package zigzag

import (
	"testing"

	"github.com/vovakirdan/zigzag/internal/core"
)

func TestIDAllocator(t *testing.T) {
	var a IDAllocator
	for want := 0; want < 3; want++ {
		if got := a.Next(); got != want {
			t.Fatalf("Next() = %d, expected %d", got, want)
		}
	}
	if a.Peek() != 3 {
		t.Errorf("Peek() = %d, expected 3", a.Peek())
	}
	a.Reset()
	if a.Next() != 0 {
		t.Error("Reset should restart ids at 0")
	}
}

func TestMarkFallingIsIdempotent(t *testing.T) {
	r := NewTileRegistry()
	for i := 0; i < 4; i++ {
		r.Insert(Tile{ID: i, Position: core.V3(float64(i), 0, 0)})
	}

	changed := r.MarkFalling([]int{1, 2, 99})
	if len(changed) != 2 || changed[0] != 1 || changed[1] != 2 {
		t.Fatalf("MarkFalling() = %v, expected [1 2]", changed)
	}

	r.Drop(1, 3)
	if again := r.MarkFalling([]int{1, 2}); len(again) != 0 {
		t.Errorf("re-issuing the update changed %v", again)
	}

	tile, _ := r.Get(1)
	if tile.Status != TileFalling || tile.Position.Y != -3 {
		t.Errorf("tile 1 = %+v, expected falling with its offset kept", tile)
	}
	if tile, _ := r.Get(0); tile.Status != TileActive {
		t.Error("tile 0 should stay active")
	}
}

func TestTileRegistryRemovePreservesOrder(t *testing.T) {
	r := NewTileRegistry()
	for i := 0; i < 6; i++ {
		r.Insert(Tile{ID: i})
	}

	r.Remove(map[int]struct{}{1: {}, 4: {}})

	want := []int{0, 2, 3, 5}
	got := r.All()
	if len(got) != len(want) {
		t.Fatalf("Len() = %d, expected %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("slot %d has id %d, expected %d", i, got[i].ID, id)
		}
		if tile, ok := r.Get(id); !ok || tile.ID != id {
			t.Errorf("Get(%d) lookup broken after removal", id)
		}
	}
	if r.Has(1) || r.Has(4) {
		t.Error("removed tiles should be gone")
	}
}

func TestGemRegistryRemoveByTile(t *testing.T) {
	r := NewGemRegistry()
	r.Insert(Gem{ID: 0, TileID: 7})
	r.Insert(Gem{ID: 1, TileID: 8})
	r.Insert(Gem{ID: 2, TileID: 7})

	removed := r.RemoveByTile(map[int]struct{}{7: {}})
	if len(removed) != 2 || removed[0] != 0 || removed[1] != 2 {
		t.Errorf("RemoveByTile() = %v, expected [0 2]", removed)
	}
	if _, ok := r.Get(0); ok {
		t.Error("gem 0 should be gone with tile 7")
	}
	if g, ok := r.Get(1); !ok || g.TileID != 8 {
		t.Error("gem on tile 8 should remain")
	}
	if len(r.OnTile(7)) != 0 {
		t.Error("no gems should reference tile 7")
	}
}

func TestContactLedgerZeroTimestamp(t *testing.T) {
	l := NewContactLedger()
	l.Touch(5, 0)

	at, ok := l.LastContact(5)
	if !ok || at != 0 {
		t.Errorf("LastContact(5) = %g, %v; expected a contact at t=0", at, ok)
	}
	l.Delete(5)
	if _, ok := l.LastContact(5); ok {
		t.Error("deleted entry should be gone")
	}
}
