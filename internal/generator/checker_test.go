package generator

import (
	"testing"

	"sudoku_game_go/internal/types"
)

func TestAbsentPredicates(t *testing.T) {
	var b types.Board
	b[0][0] = 5

	if AbsentInRow(&b, 0, 5) {
		t.Error("AbsentInRow(0, 5) = true, want false")
	}
	if !AbsentInRow(&b, 1, 5) {
		t.Error("AbsentInRow(1, 5) = false, want true")
	}
	if AbsentInCol(&b, 0, 5) {
		t.Error("AbsentInCol(0, 5) = true, want false")
	}
	if !AbsentInCol(&b, 1, 5) {
		t.Error("AbsentInCol(1, 5) = false, want true")
	}
	if AbsentInBox(&b, 0, 0, 5) {
		t.Error("AbsentInBox(0, 0, 5) = true, want false")
	}
	if !AbsentInBox(&b, 0, 3, 5) {
		t.Error("AbsentInBox(0, 3, 5) = false, want true")
	}
}

func TestIsSafeRejectsEachConstraint(t *testing.T) {
	var b types.Board
	b[0][0] = 5

	cases := []struct {
		name          string
		row, col, num int
		want          bool
	}{
		{"row conflict", 0, 8, 5, false},
		{"col conflict", 8, 0, 5, false},
		{"box conflict", 1, 1, 5, false},
		{"other value in box", 1, 1, 6, true},
		{"far away cell", 4, 4, 5, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsSafe(&b, tc.row, tc.col, tc.num); got != tc.want {
				t.Errorf("IsSafe(%d, %d, %d) = %v, want %v", tc.row, tc.col, tc.num, got, tc.want)
			}
		})
	}
}

func TestIsSafeHasNoSideEffects(t *testing.T) {
	var b types.Board
	b[0][0] = 5
	before := b
	IsSafe(&b, 4, 4, 5)
	if b != before {
		t.Fatal("IsSafe mutated the board")
	}
}
