package game

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one finished episode on the leaderboard
type Run struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	SessionID string    `json:"sessionId"`
	Turns     int       `json:"turns"`
	Size      int       `json:"size"`
	Outcome   string    `json:"outcome"`
	Duration  float64   `json:"duration"` // seconds
	Date      time.Time `json:"date"`
}

// RunFromGame summarises a finished game
func RunFromGame(name, sessionID string, g *Game) Run {
	end := g.EndTime
	if end.IsZero() {
		end = time.Now()
	}
	return Run{
		Name:      name,
		SessionID: sessionID,
		Turns:     g.Turn,
		Size:      g.Snake.Len(),
		Outcome:   g.Outcome().String(),
		Duration:  end.Sub(g.StartTime).Seconds(),
		Date:      end,
	}
}

// Leaderboard stores finished runs in SQLite
type Leaderboard struct {
	db *sql.DB
}

// OpenLeaderboard opens (and creates if needed) the database at path
func OpenLeaderboard(path string) (*Leaderboard, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps SQLite writers from tripping over each other
	db.SetMaxOpenConns(1)

	lb := &Leaderboard{db: db}
	if err := lb.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return lb, nil
}

func (lb *Leaderboard) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT,
			session_id TEXT,
			turns INTEGER,
			size INTEGER,
			outcome TEXT,
			duration REAL,
			date TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_turns ON runs (turns DESC)`,
	}

	for _, query := range queries {
		if _, err := lb.db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table (%s): %w", query, err)
		}
	}
	return nil
}

// RecordRun stores a finished run and returns its id
func (lb *Leaderboard) RecordRun(ctx context.Context, run Run) (int64, error) {
	res, err := lb.db.ExecContext(ctx,
		"INSERT INTO runs (name, session_id, turns, size, outcome, duration, date) VALUES (?, ?, ?, ?, ?, ?, ?)",
		run.Name, run.SessionID, run.Turns, run.Size, run.Outcome, run.Duration, run.Date.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}
	return res.LastInsertId()
}

// Top returns the limit longest survivals, longest first
func (lb *Leaderboard) Top(ctx context.Context, limit int) ([]Run, error) {
	rows, err := lb.db.QueryContext(ctx,
		"SELECT id, name, session_id, turns, size, outcome, duration, date FROM runs ORDER BY turns DESC, id ASC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var date string
		if err := rows.Scan(&run.ID, &run.Name, &run.SessionID, &run.Turns, &run.Size, &run.Outcome, &run.Duration, &date); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, date); err == nil {
			run.Date = t
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Close closes the database
func (lb *Leaderboard) Close() error {
	return lb.db.Close()
}
