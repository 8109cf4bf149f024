// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only run summaries are stored; grid contents never leave memory.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord is the summary of one finished session.
type RunRecord struct {
	ID             int64
	RunID          string // UUID, generated on save when empty
	Player         string
	Pattern        string
	Seed           int64
	Generations    uint64
	PeakPopulation int
	Frames         uint64
	Duration       int // Duration in seconds
	CreatedAt      time.Time
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

	// Create parent directories
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
			run_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL,
			pattern TEXT NOT NULL,
			seed INTEGER NOT NULL,
			generations INTEGER NOT NULL DEFAULT 0,
			peak_population INTEGER NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_pattern ON runs(pattern);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(pattern, generations DESC);
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

// SaveRun records a finished run and returns its run ID.
func (s *Store) SaveRun(r RunRecord) (string, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, player, pattern, seed, generations, peak_population, frames, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID,
		r.Player,
		r.Pattern,
		r.Seed,
		int64(r.Generations),
		r.PeakPopulation,
		int64(r.Frames),
		r.Duration,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return r.RunID, nil
}

const runColumns = `id, run_id, player, pattern, seed, generations, peak_population, frames, duration_secs, created_at`

// TopRuns retrieves the longest runs (by generations) for a pattern.
// An empty pattern selects all patterns.
func (s *Store) TopRuns(pattern string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR pattern = ?
		 ORDER BY generations DESC, peak_population DESC, id ASC
		 LIMIT ?`,
		pattern, pattern, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the most recent runs across all patterns.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RunByID retrieves a run by its run ID. Returns nil if not found.
func (s *Store) RunByID(runID string) (*RunRecord, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// ClearRuns deletes all runs for the given pattern. An empty pattern deletes everything.
func (s *Store) ClearRuns(pattern string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR pattern = ?", pattern, pattern)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// PatternStats contains aggregated statistics for one seed pattern.
type PatternStats struct {
	Pattern        string
	Runs           int
	MaxGenerations uint64
	AvgGenerations float64
	PeakPopulation int
	TotalFrames    int64
	LastPlayed     time.Time
}

// AllPatternStats retrieves statistics for every pattern that has been played.
func (s *Store) AllPatternStats() (map[string]*PatternStats, error) {
	rows, err := s.db.Query(
		`SELECT pattern, COUNT(*), MAX(generations), AVG(generations),
		        MAX(peak_population), SUM(frames), MAX(created_at)
		 FROM runs
		 GROUP BY pattern`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pattern stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PatternStats)
	for rows.Next() {
		var ps PatternStats
		var maxGen int64
		var lastPlayed any
		if err := rows.Scan(&ps.Pattern, &ps.Runs, &maxGen, &ps.AvgGenerations,
			&ps.PeakPopulation, &ps.TotalFrames, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.MaxGenerations = uint64(maxGen)
		ps.LastPlayed = parseTime(lastPlayed)
		stats[ps.Pattern] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (RunRecord, error) {
	var r RunRecord
	var generations, frames int64
	var createdAt any
	err := row.Scan(
		&r.ID,
		&r.RunID,
		&r.Player,
		&r.Pattern,
		&r.Seed,
		&generations,
		&r.PeakPopulation,
		&frames,
		&r.Duration,
		&createdAt,
	)
	if err != nil {
		return RunRecord{}, err
	}
	r.Generations = uint64(generations)
	r.Frames = uint64(frames)
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

func scanRuns(rows *sql.Rows) ([]RunRecord, error) {
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
