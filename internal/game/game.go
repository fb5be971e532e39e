// Package game tracks one Sudoku game: the immutable solution, the mutable
// working board, and the win condition.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"sudoku_game_go/internal/generator"
	"sudoku_game_go/internal/types"
)

var (
	// ErrInvalidCoordinate means row or column fell outside 1..9.
	ErrInvalidCoordinate = errors.New("game: row and column must be between 1 and 9")
	// ErrInvalidValue means the value fell outside 1..9.
	ErrInvalidValue = errors.New("game: value must be between 1 and 9")
	// ErrCellOccupied means the target cell already holds a value.
	ErrCellOccupied = errors.New("game: cell is already filled")
	// ErrNoGame means no puzzle is in progress.
	ErrNoGame = errors.New("game: no game in progress")
)

// State tracks where a game is in its lifecycle.
type State int

const (
	StateEmpty State = iota
	StateGenerating
	StatePlaying
	StateSolved
)

// Game owns one solution/working board pair. The solution never changes once
// generated; the working board absorbs player moves.
type Game struct {
	gen    generator.SudokuGenerator
	carver *generator.Carver

	solution   types.Board
	working    types.Board
	difficulty types.Difficulty
	state      State
}

// New builds a game drawing randomness from rng. A nil rng gets a
// time-seeded source.
func New(rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{
		gen:    generator.NewClassicGenerator(rng),
		carver: generator.NewCarver(rng),
	}
}

// Reset clears the working board and drops back to the empty state.
func (g *Game) Reset() {
	g.working = types.Board{}
	g.state = StateEmpty
}

// NewGame generates a fresh solution, copies it to the working board, and
// carves the working board down to the difficulty's empty-cell target.
// Generation runs to completion before this returns.
func (g *Game) NewGame(d types.Difficulty) error {
	g.Reset()
	g.state = StateGenerating
	solution, err := g.gen.Generate()
	if err != nil {
		g.state = StateEmpty
		return fmt.Errorf("new game: %w", err)
	}
	working := solution
	if err := g.carver.Carve(&working, d.EmptyCells()); err != nil {
		g.state = StateEmpty
		return fmt.Errorf("new game: %w", err)
	}
	g.solution = solution
	g.working = working
	g.difficulty = d
	g.state = StatePlaying
	return nil
}

// Load resumes a saved puzzle: its givens become the working board and its
// solution the ground truth.
func (g *Game) Load(p *types.Puzzle) {
	g.solution = p.Solution
	g.working = p.Givens
	g.difficulty = p.Difficulty
	g.state = StatePlaying
	if g.IsSolved() {
		g.state = StateSolved
	}
}

// Place writes value into the working board. Coordinates are 1-based at this
// boundary. Placing into an occupied cell is rejected here rather than left
// to the caller. Rejected moves leave the board untouched.
func (g *Game) Place(row, col, value int) error {
	if g.state != StatePlaying {
		return ErrNoGame
	}
	if row < 1 || row > types.Size || col < 1 || col > types.Size {
		return ErrInvalidCoordinate
	}
	if value < 1 || value > types.Size {
		return ErrInvalidValue
	}
	r, c := row-1, col-1
	if g.working[r][c] != 0 {
		return ErrCellOccupied
	}
	g.working[r][c] = value
	if g.IsSolved() {
		g.state = StateSolved
	}
	return nil
}

// IsSolved reports whether the working board is fully filled and matches the
// solution cell for cell.
func (g *Game) IsSolved() bool {
	for i := 0; i < types.Size; i++ {
		for j := 0; j < types.Size; j++ {
			if g.working[i][j] == 0 || g.working[i][j] != g.solution[i][j] {
				return false
			}
		}
	}
	return true
}

// Working returns a snapshot of the player-visible board.
func (g *Game) Working() types.Board {
	return g.working
}

// Difficulty returns the difficulty of the current puzzle.
func (g *Game) Difficulty() types.Difficulty {
	return g.difficulty
}

// State returns the lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Snapshot packages the current position as a persistable puzzle. The
// working board is stored as the givens, so a reloaded snapshot resumes
// where the player left off.
func (g *Game) Snapshot() *types.Puzzle {
	return &types.Puzzle{
		Difficulty: g.difficulty,
		Givens:     g.working,
		Solution:   g.solution,
		Created:    time.Now().UnixMilli(),
	}
}
