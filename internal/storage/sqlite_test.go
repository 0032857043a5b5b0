package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("zigzag", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("zigzag", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("zigzag", (i+1)*10)
	}

	scores, err := store.TopScores("zigzag", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("zigzag")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("zigzag", 10)
	store.SaveScore("zigzag", 30)
	store.SaveScore("zigzag", 20)

	high, err = store.HighScore("zigzag")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}

	stats, err := store.GetGameStats("zigzag")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 30 || stats.AvgScore != 20 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("zigzag", 100)
	store.SaveScore("other", 300)

	if err := store.ClearScores("zigzag"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("zigzag", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("Other games should not be affected by clearing zigzag")
	}
}

func TestStoreStatsReadWrite(t *testing.T) {
	store := openTestStore(t)
	stats := store.Stats("zigzag")

	if _, err := stats.ReadStat("bestScore"); !errors.Is(err, ErrStatNotFound) {
		t.Fatalf("ReadStat on empty table = %v, expected ErrStatNotFound", err)
	}

	if err := stats.WriteStat("bestScore", 10); err != nil {
		t.Fatalf("WriteStat() failed: %v", err)
	}
	if err := stats.WriteStat("bestScore", 42); err != nil {
		t.Fatalf("WriteStat() overwrite failed: %v", err)
	}

	got, err := stats.ReadStat("bestScore")
	if err != nil {
		t.Fatalf("ReadStat() failed: %v", err)
	}
	if got != 42 {
		t.Errorf("ReadStat() = %d, expected 42", got)
	}

	// Keys are scoped per game
	if _, err := store.ReadStat("other", "bestScore"); !errors.Is(err, ErrStatNotFound) {
		t.Errorf("stat leaked across games: %v", err)
	}
}

func TestStoreStatsSurviveReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "stats.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.WriteStat("zigzag", "gamesPlayed", 7); err != nil {
		t.Fatalf("WriteStat() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	got, err := store.ReadStat("zigzag", "gamesPlayed")
	if err != nil || got != 7 {
		t.Errorf("ReadStat() after reopen = %d, %v; expected 7", got, err)
	}
}

func TestStoreMaxStatNeverLowers(t *testing.T) {
	store := openTestStore(t)
	stats := store.Stats("zigzag")

	tests := []struct {
		value int
		want  int
	}{
		{10, 10},
		{50, 50},
		{20, 50},
		{50, 50},
		{51, 51},
	}
	for _, tc := range tests {
		got, err := stats.MaxStat("bestScore", tc.value)
		if err != nil {
			t.Fatalf("MaxStat(%d) failed: %v", tc.value, err)
		}
		if got != tc.want {
			t.Errorf("MaxStat(%d) = %d, expected %d", tc.value, got, tc.want)
		}
	}

	if got, _ := stats.ReadStat("bestScore"); got != 51 {
		t.Errorf("ReadStat() = %d, expected 51", got)
	}
}

func TestStoreIncrStatAccumulates(t *testing.T) {
	store := openTestStore(t)
	a := store.Stats("zigzag")
	b := store.Stats("zigzag")

	if got, err := a.IncrStat("gamesPlayed", 1); err != nil || got != 1 {
		t.Fatalf("first IncrStat() = %d, %v; expected 1", got, err)
	}
	if err := a.WriteStat("gamesPlayed", 5); err != nil {
		t.Fatalf("WriteStat() failed: %v", err)
	}
	a.IncrStat("gamesPlayed", 1)
	got, err := b.IncrStat("gamesPlayed", 1)
	if err != nil || got != 7 {
		t.Errorf("IncrStat() from a second handle = %d, %v; expected 7", got, err)
	}

	if _, err := store.ReadStat("other", "gamesPlayed"); !errors.Is(err, ErrStatNotFound) {
		t.Errorf("increment leaked across games: %v", err)
	}
}
