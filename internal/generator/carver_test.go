package generator

import (
	"math/rand"
	"testing"

	"sudoku_game_go/internal/types"
)

func solvedBoard(t *testing.T) types.Board {
	t.Helper()
	b, err := NewClassicGenerator(rand.New(rand.NewSource(11))).Generate()
	if err != nil {
		t.Fatalf("Generate(): %v", err)
	}
	return b
}

func TestCarveRemovesExactCount(t *testing.T) {
	solution := solvedBoard(t)
	carver := NewCarver(rand.New(rand.NewSource(11)))

	for _, count := range []int{0, 1, 13, 29, 41, 81} {
		b := solution
		if err := carver.Carve(&b, count); err != nil {
			t.Fatalf("Carve(%d): %v", count, err)
		}
		if got := b.EmptyCount(); got != count {
			t.Errorf("Carve(%d) left %d empty cells", count, got)
		}
		for row := 0; row < types.Size; row++ {
			for col := 0; col < types.Size; col++ {
				if b[row][col] != 0 && b[row][col] != solution[row][col] {
					t.Fatalf("Carve(%d) changed surviving cell (%d,%d)", count, row, col)
				}
			}
		}
	}
}

func TestCarveRejectsOutOfRangeCounts(t *testing.T) {
	solution := solvedBoard(t)
	carver := NewCarver(rand.New(rand.NewSource(5)))

	for _, count := range []int{-1, 82} {
		b := solution
		if err := carver.Carve(&b, count); err == nil {
			t.Errorf("Carve(%d) = nil, want error", count)
		}
		if b != solution {
			t.Errorf("Carve(%d) mutated the board on rejection", count)
		}
	}
}

func TestCarveRejectsCountBeyondFilledCells(t *testing.T) {
	solution := solvedBoard(t)
	carver := NewCarver(rand.New(rand.NewSource(5)))

	b := solution
	if err := carver.Carve(&b, 41); err != nil {
		t.Fatalf("Carve(41): %v", err)
	}
	if err := carver.Carve(&b, 41); err == nil {
		t.Fatal("second Carve(41) on a 40-cell board = nil, want error")
	}
}
