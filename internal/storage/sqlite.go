// Package storage keeps a history of finished runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only run summaries are stored; a game in progress is never persisted.
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

// DefaultLimit is used by list queries when the caller passes no limit.
const DefaultLimit = 10

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is the summary of one finished session.
type Run struct {
	ID         int64
	SongID     int
	Score      int
	DurationMs int64   // Simulated running time
	PeakSpeed  float64 // Speed multiplier at game over
	CreatedAt  time.Time
}

// Stats contains aggregated statistics for one song.
type Stats struct {
	SongID     int
	Runs       int
	BestScore  int
	AvgScore   float64
	TotalMs    int64
	PeakSpeed  float64
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			song_id INTEGER NOT NULL,
			score INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			peak_speed REAL NOT NULL DEFAULT 1.0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_song_id ON runs(song_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(song_id, score DESC);
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

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (song_id, score, duration_ms, peak_speed) VALUES (?, ?, ?, ?)",
		r.SongID, r.Score, r.DurationMs, r.PeakSpeed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best runs for a song, highest score first.
// Ties go to the earlier run.
func (s *Store) TopRuns(songID, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.queryRuns(
		`SELECT id, song_id, score, duration_ms, peak_speed, created_at
		 FROM runs
		 WHERE song_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		songID, limit,
	)
}

// RecentRuns retrieves the latest runs across all songs.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.queryRuns(
		`SELECT id, song_id, score, duration_ms, peak_speed, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SongID, &r.Score, &r.DurationMs, &r.PeakSpeed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestScore returns the highest score for a song.
// Returns 0 if the song has no runs.
func (s *Store) BestScore(songID int) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE song_id = ?",
		songID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics for a song.
func (s *Store) Stats(songID int) (*Stats, error) {
	stats := &Stats{SongID: songID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(duration_ms), 0), COALESCE(MAX(peak_speed), 0)
		 FROM runs WHERE song_id = ?`,
		songID,
	).Scan(&stats.Runs, &stats.BestScore, &stats.AvgScore, &stats.TotalMs, &stats.PeakSpeed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE song_id = ? ORDER BY id DESC LIMIT 1`,
		songID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// Songs returns the ids of all songs with at least one run, ascending.
func (s *Store) Songs() ([]int, error) {
	rows, err := s.db.Query("SELECT DISTINCT song_id FROM runs ORDER BY song_id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query songs: %w", err)
	}
	defer rows.Close()

	var songs []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		songs = append(songs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return songs, nil
}

// ClearRuns deletes all runs for a song.
func (s *Store) ClearRuns(songID int) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE song_id = ?", songID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
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
