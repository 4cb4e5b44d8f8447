// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

	"github.com/vovakirdan/quantum-shift/internal/state"
)

// Store manages the SQLite database connection for the score history.
// It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Run is one finished game.
type Run struct {
	ID            int64
	RunID         string // UUID assigned on save
	Player        string
	Score         int
	PuzzlesSolved int
	WrongAnswers  int
	RealityShifts int
	TimeReversals int
	GravityFlips  int
	Duration      int // Duration in seconds
	CreatedAt     time.Time
}

// NewRun builds a run record from a store's final score and counters.
func NewRun(player string, score int, stats state.Stats, elapsed time.Duration) Run {
	return Run{
		Player:        player,
		Score:         score,
		PuzzlesSolved: stats.PuzzlesSolved,
		WrongAnswers:  stats.WrongAnswers,
		RealityShifts: stats.RealityShifts,
		TimeReversals: stats.TimeReversals,
		GravityFlips:  stats.GravityFlips,
		Duration:      int(elapsed.Seconds()),
	}
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
			score INTEGER NOT NULL,
			puzzles_solved INTEGER NOT NULL DEFAULT 0,
			wrong_answers INTEGER NOT NULL DEFAULT 0,
			reality_shifts INTEGER NOT NULL DEFAULT 0,
			time_reversals INTEGER NOT NULL DEFAULT 0,
			gravity_flips INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
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

// SaveRun records a finished run and returns it with its IDs filled in.
func (s *Store) SaveRun(r Run) (Run, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}

	result, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, player, score, puzzles_solved, wrong_answers, reality_shifts, time_reversals, gravity_flips, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID,
		r.Player,
		r.Score,
		r.PuzzlesSolved,
		r.WrongAnswers,
		r.RealityShifts,
		r.TimeReversals,
		r.GravityFlips,
		r.Duration,
	)
	if err != nil {
		return r, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return r, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	r.ID = id

	return r, nil
}

const runColumns = `id, run_id, player, score, puzzles_solved, wrong_answers,
		        reality_shifts, time_reversals, gravity_flips, duration_secs, created_at`

// TopRuns retrieves the best N runs across all players.
// Results are ordered by score descending.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return collectRuns(rows)
}

// RunsByPlayer retrieves a player's most recent runs.
func (s *Store) RunsByPlayer(player string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE player = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player runs: %w", err)
	}
	return collectRuns(rows)
}

// RunByID retrieves a run by its UUID. Returns nil if it does not exist.
func (s *Store) RunByID(runID string) (*Run, error) {
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

// HighScore returns the best score across all runs.
// Returns 0 if no runs exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes every run.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Summary contains aggregated statistics over all runs.
type Summary struct {
	Runs          int
	HighScore     int
	AvgScore      float64
	PuzzlesSolved int64
	LastPlayed    time.Time
}

// Summary aggregates the whole history.
func (s *Store) Summary() (*Summary, error) {
	sum := &Summary{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(puzzles_solved), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&sum.Runs, &sum.HighScore, &sum.AvgScore, &sum.PuzzlesSolved, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get summary: %w", err)
	}
	sum.LastPlayed = parseTime(lastPlayed)

	return sum, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var createdAt any
	err := sc.Scan(
		&r.ID,
		&r.RunID,
		&r.Player,
		&r.Score,
		&r.PuzzlesSolved,
		&r.WrongAnswers,
		&r.RealityShifts,
		&r.TimeReversals,
		&r.GravityFlips,
		&r.Duration,
		&createdAt,
	)
	if err != nil {
		return r, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

func collectRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string datetimes.
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
