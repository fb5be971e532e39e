// Package sqlite provides a SQLite-backed puzzle store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"sudoku_game_go/internal/storage"
	"sudoku_game_go/internal/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS puzzles (
    id         TEXT PRIMARY KEY,
    difficulty TEXT NOT NULL,
    givens     TEXT NOT NULL,
    solution   TEXT NOT NULL,
    seed       INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL
);
`

// Store persists puzzles in a local SQLite file.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the store at path, creating the file and schema if needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save inserts one puzzle record.
func (s *Store) Save(ctx context.Context, p *types.Puzzle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("puzzle id is required")
	}
	givens, err := json.Marshal(p.Givens)
	if err != nil {
		return fmt.Errorf("marshal givens: %w", err)
	}
	solution, err := json.Marshal(p.Solution)
	if err != nil {
		return fmt.Errorf("marshal solution: %w", err)
	}
	created := p.Created
	if created == 0 {
		created = time.Now().UnixMilli()
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO puzzles (id, difficulty, givens, solution, seed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID,
		p.Difficulty.String(),
		string(givens),
		string(solution),
		p.Seed,
		created,
	)
	if err != nil {
		var serr *msqlite.Error
		if errors.As(err, &serr) && serr.Code() == sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("insert puzzle: %w", err)
	}
	return nil
}

// Load fetches one puzzle by ID.
func (s *Store) Load(ctx context.Context, id string) (*types.Puzzle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, difficulty, givens, solution, seed, created_at
		 FROM puzzles WHERE id = ?`,
		id,
	)

	var (
		p            types.Puzzle
		difficulty   string
		givensJSON   string
		solutionJSON string
	)
	err := row.Scan(&p.ID, &difficulty, &givensJSON, &solutionJSON, &p.Seed, &p.Created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan puzzle: %w", err)
	}

	if p.Difficulty, err = types.ParseDifficulty(difficulty); err != nil {
		return nil, fmt.Errorf("load puzzle %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(givensJSON), &p.Givens); err != nil {
		return nil, fmt.Errorf("unmarshal givens: %w", err)
	}
	if err := json.Unmarshal([]byte(solutionJSON), &p.Solution); err != nil {
		return nil, fmt.Errorf("unmarshal solution: %w", err)
	}
	return &p, nil
}

// List returns saved puzzles, newest first.
func (s *Store) List(ctx context.Context) ([]storage.Meta, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, difficulty, created_at FROM puzzles ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list puzzles: %w", err)
	}
	defer rows.Close()

	var metas []storage.Meta
	for rows.Next() {
		var (
			m          storage.Meta
			difficulty string
		)
		if err := rows.Scan(&m.ID, &difficulty, &m.Created); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		if m.Difficulty, err = types.ParseDifficulty(difficulty); err != nil {
			return nil, fmt.Errorf("list puzzles: %w", err)
		}
		metas = append(metas, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings: %w", err)
	}
	return metas, nil
}
