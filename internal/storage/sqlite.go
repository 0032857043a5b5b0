// Package storage provides SQLite-based persistence for scores and player
// stats. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrStatNotFound is returned by ReadStat when the key was never written.
var ErrStatNotFound = errors.New("storage: stat not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished run.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS stats (
			game_id TEXT NOT NULL,
			key TEXT NOT NULL,
			value INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (game_id, key)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// parseTimestamp handles both time.Time and the string form SQLite returns.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// SaveScore records a finished run for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics over the score history.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTimestamp(lastPlayed)

	return stats, nil
}

// ReadStat returns the integer stored under key for the given game.
func (s *Store) ReadStat(gameID, key string) (int, error) {
	var value int
	err := s.db.QueryRow(
		"SELECT value FROM stats WHERE game_id = ? AND key = ?",
		gameID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrStatNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read stat %s: %w", key, err)
	}
	return value, nil
}

// WriteStat stores an integer under key for the given game, replacing any
// previous value.
func (s *Store) WriteStat(gameID, key string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO stats (game_id, key, value, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id, key) DO UPDATE SET
		   value = excluded.value,
		   updated_at = excluded.updated_at`,
		gameID, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write stat %s: %w", key, err)
	}
	return nil
}

// MaxStat stores value under key unless a larger value is already stored,
// and returns what the row holds afterwards.
func (s *Store) MaxStat(gameID, key string, value int) (int, error) {
	var stored int
	err := s.db.QueryRow(
		`INSERT INTO stats (game_id, key, value, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id, key) DO UPDATE SET
		   value = MAX(value, excluded.value),
		   updated_at = excluded.updated_at
		 RETURNING value`,
		gameID, key, value,
	).Scan(&stored)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot merge stat %s: %w", key, err)
	}
	return stored, nil
}

// IncrStat adds delta to the value under key, starting from zero, and
// returns the new value.
func (s *Store) IncrStat(gameID, key string, delta int) (int, error) {
	var stored int
	err := s.db.QueryRow(
		`INSERT INTO stats (game_id, key, value, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id, key) DO UPDATE SET
		   value = value + excluded.value,
		   updated_at = excluded.updated_at
		 RETURNING value`,
		gameID, key, delta,
	).Scan(&stored)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot increment stat %s: %w", key, err)
	}
	return stored, nil
}

// GameStatStore scopes the stats table to one game.
type GameStatStore struct {
	store  *Store
	gameID string
}

// Stats returns a key-value view of the stats of one game.
func (s *Store) Stats(gameID string) *GameStatStore {
	return &GameStatStore{store: s, gameID: gameID}
}

// ReadStat returns the integer stored under key.
func (g *GameStatStore) ReadStat(key string) (int, error) {
	return g.store.ReadStat(g.gameID, key)
}

// WriteStat stores an integer under key.
func (g *GameStatStore) WriteStat(key string, value int) error {
	return g.store.WriteStat(g.gameID, key, value)
}

// MaxStat keeps the larger of value and the stored value under key.
func (g *GameStatStore) MaxStat(key string, value int) (int, error) {
	return g.store.MaxStat(g.gameID, key, value)
}

// IncrStat adds delta to the value under key.
func (g *GameStatStore) IncrStat(key string, delta int) (int, error) {
	return g.store.IncrStat(g.gameID, key, delta)
}
