package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// Size is the board edge length.
	Size = 9
	// BoxSize is the edge length of one 3x3 box.
	BoxSize = 3
	// Cells is the total cell count.
	Cells = Size * Size
)

// Board is a 9x9 Sudoku grid. A zero cell is empty. Board is an array type,
// so assignment copies the whole grid.
type Board [Size][Size]int

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	n := 0
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if b[i][j] == 0 {
				n++
			}
		}
	}
	return n
}

// Difficulty selects how many cells get carved out of a finished solution.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// EmptyCells returns the number of cells removed for this difficulty.
func (d Difficulty) EmptyCells() int {
	switch d {
	case Medium:
		return 29
	case Hard:
		return 41
	default:
		return 13
	}
}

func (d Difficulty) String() string {
	switch d {
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "easy"
	}
}

// ParseDifficulty maps a difficulty name back to its enum value.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q", s)
}

// MarshalJSON encodes the difficulty as its name.
func (d Difficulty) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a difficulty name.
func (d *Difficulty) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDifficulty(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Puzzle is a persistable Sudoku with metadata. Givens is the player-facing
// grid; Solution is the ground truth it was carved from.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Givens     Board      `json:"grid"`
	Solution   Board      `json:"solution"`
	Seed       int64      `json:"seed,omitempty"`
	Created    int64      `json:"created,omitempty"`
}

// ToJSON converts the puzzle to JSON bytes.
func (p *Puzzle) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// FromJSON creates a Puzzle from JSON bytes.
func FromJSON(data []byte) (*Puzzle, error) {
	var p Puzzle
	err := json.Unmarshal(data, &p)
	return &p, err
}
