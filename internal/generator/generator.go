package generator

import (
	"errors"
	"math/rand"

	"sudoku_game_go/internal/types"
)

// ErrNoSolution is returned when the backtracking completion exhausts every
// candidate. A seeded board always has a completion, so this error indicates
// a defect in the engine, not a retryable condition.
var ErrNoSolution = errors.New("generator: backtracking found no completion")

// SudokuGenerator interface defines methods for producing solved boards
type SudokuGenerator interface {
	Generate() (types.Board, error)
}

// ClassicGenerator fills a board by seeding the three diagonal boxes with
// random digits and completing the rest with backtracking.
type ClassicGenerator struct {
	rng *rand.Rand
}

// NewClassicGenerator returns a generator drawing all randomness from rng,
// so a fixed seed reproduces the same board.
func NewClassicGenerator(rng *rand.Rand) *ClassicGenerator {
	return &ClassicGenerator{rng: rng}
}

// Generate returns a board where every row, column, and box contains each of
// 1..9 exactly once.
func (g *ClassicGenerator) Generate() (types.Board, error) {
	var b types.Board
	g.fillDiagonal(&b)
	if !fillRemaining(&b, 0) {
		return types.Board{}, ErrNoSolution
	}
	return b, nil
}

// fillDiagonal seeds the boxes at (0,0), (3,3), and (6,6). They share no row
// or column, so each only has to satisfy its own box constraint.
func (g *ClassicGenerator) fillDiagonal(b *types.Board) {
	for start := 0; start < types.Size; start += types.BoxSize {
		g.fillBox(b, start, start)
	}
}

// fillBox fills one 3x3 box, redrawing each value until the box accepts it.
func (g *ClassicGenerator) fillBox(b *types.Board, rowStart, colStart int) {
	for i := 0; i < types.BoxSize; i++ {
		for j := 0; j < types.BoxSize; j++ {
			num := g.rng.Intn(types.Size) + 1
			for !AbsentInBox(b, rowStart, colStart, num) {
				num = g.rng.Intn(types.Size) + 1
			}
			b[rowStart+i][colStart+j] = num
		}
	}
}

// fillRemaining completes the board from cell index pos onward in row-major
// order, skipping cells the seeding already filled. Candidates are tried in
// ascending order, which makes the completion deterministic for a given
// seeding.
func fillRemaining(b *types.Board, pos int) bool {
	if pos == types.Cells {
		return true
	}
	row, col := pos/types.Size, pos%types.Size
	if b[row][col] != 0 {
		return fillRemaining(b, pos+1)
	}
	for num := 1; num <= types.Size; num++ {
		if IsSafe(b, row, col, num) {
			b[row][col] = num
			if fillRemaining(b, pos+1) {
				return true
			}
			b[row][col] = 0
		}
	}
	return false
}
