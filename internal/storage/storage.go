// Package storage defines puzzle persistence.
package storage

import (
	"context"
	"errors"

	"github.com/duke-git/lancet/v2/random"

	"sudoku_game_go/internal/types"
)

var (
	// ErrNotFound means no puzzle exists under the requested ID.
	ErrNotFound = errors.New("storage: puzzle not found")
	// ErrAlreadyExists means a puzzle is already saved under that ID.
	ErrAlreadyExists = errors.New("storage: puzzle already exists")
)

// IDLength is the puzzle ID size. PocketBase caps custom record IDs, so
// every backend uses the same shape.
const IDLength = 6

// Meta is a lightweight listing entry.
type Meta struct {
	ID         string
	Difficulty types.Difficulty
	Created    int64
}

// Store persists puzzles.
type Store interface {
	Save(ctx context.Context, p *types.Puzzle) error
	Load(ctx context.Context, id string) (*types.Puzzle, error)
	List(ctx context.Context) ([]Meta, error)
	Close() error
}

// NewID returns a random puzzle ID.
func NewID() string {
	return random.RandString(IDLength)
}
