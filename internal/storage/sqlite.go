// Package storage provides SQLite-based persistence for finished rounds.
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
)

// Round outcomes as stored in the status column.
const (
	StatusWon  = "won"
	StatusLost = "lost"
	StatusQuit = "quit"
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for round persistence.
type Store struct {
	db *sql.DB
}

// RoundResult is one finished round.
type RoundResult struct {
	ID        int64
	RoundID   uuid.UUID
	GameID    string
	Score     int
	Status    string
	Pellets   int // Collectibles eaten
	Total     int // Collectibles in the maze
	Ticks     uint64
	Seed      int64
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
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			status TEXT NOT NULL,
			pellets INTEGER NOT NULL DEFAULT 0,
			total INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_game_id ON rounds(game_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(game_id, score DESC);
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

// SaveRound records a finished round. A zero RoundID is replaced with a
// fresh UUID. Returns the row ID of the inserted record.
func (s *Store) SaveRound(r RoundResult) (int64, error) {
	if r.RoundID == uuid.Nil {
		r.RoundID = uuid.New()
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (round_id, game_id, score, status, pellets, total, ticks, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RoundID.String(), r.GameID, r.Score, r.Status, r.Pellets, r.Total, int64(r.Ticks), r.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const roundColumns = `id, round_id, game_id, score, status, pellets, total, ticks, seed, created_at`

// TopScores retrieves the top N rounds for the given game, best first.
func (s *Store) TopScores(gameID string, limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanRounds(rows)
}

// RecentRounds retrieves the last N rounds for the given game, newest first.
func (s *Store) RecentRounds(gameID string, limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

// RoundByID looks a round up by its UUID.
func (s *Store) RoundByID(roundID uuid.UUID) (*RoundResult, error) {
	rows, err := s.db.Query(
		`SELECT `+roundColumns+` FROM rounds WHERE round_id = ?`,
		roundID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round: %w", err)
	}

	rounds, err := scanRounds(rows)
	if err != nil {
		return nil, err
	}
	if len(rounds) == 0 {
		return nil, fmt.Errorf("storage: round %s: %w", roundID, sql.ErrNoRows)
	}
	return &rounds[0], nil
}

func scanRounds(rows *sql.Rows) ([]RoundResult, error) {
	defer rows.Close()

	var out []RoundResult
	for rows.Next() {
		var (
			r         RoundResult
			roundID   string
			ticks     int64
			createdAt any
		)
		if err := rows.Scan(&r.ID, &roundID, &r.GameID, &r.Score, &r.Status,
			&r.Pellets, &r.Total, &ticks, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		id, err := uuid.Parse(roundID)
		if err != nil {
			return nil, fmt.Errorf("storage: bad round_id %q: %w", roundID, err)
		}
		r.RoundID = id
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// parseTime handles both time.Time and string values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score for the given game.
// Returns 0 if no rounds exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE game_id = ?",
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

// ClearScores deletes all rounds for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats holds aggregated statistics for a game.
type GameStats struct {
	GameID     string
	Rounds     int
	Wins       int
	Losses     int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	Pellets    int64
	LastPlayed time.Time
}

// WinRate is the share of rounds won, 0 when nothing was played.
func (g GameStats) WinRate() float64 {
	if g.Rounds == 0 {
		return 0
	}
	return float64(g.Wins) / float64(g.Rounds)
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(SUM(pellets), 0)
		 FROM rounds WHERE game_id = ?`,
		StatusWon, StatusLost, gameID,
	).Scan(&stats.Rounds, &stats.Wins, &stats.Losses, &stats.HighScore,
		&stats.AvgScore, &stats.TotalScore, &stats.Pellets)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE game_id = ? ORDER BY id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
