package generator

import "sudoku_game_go/internal/types"

// AbsentInRow reports whether num does not appear anywhere in row.
func AbsentInRow(b *types.Board, row, num int) bool {
	for col := 0; col < types.Size; col++ {
		if b[row][col] == num {
			return false
		}
	}
	return true
}

// AbsentInCol reports whether num does not appear anywhere in col.
func AbsentInCol(b *types.Board, col, num int) bool {
	for row := 0; row < types.Size; row++ {
		if b[row][col] == num {
			return false
		}
	}
	return true
}

// AbsentInBox reports whether num does not appear in the 3x3 box whose
// top-left corner is (rowStart, colStart). Origins are multiples of 3.
func AbsentInBox(b *types.Board, rowStart, colStart, num int) bool {
	for i := 0; i < types.BoxSize; i++ {
		for j := 0; j < types.BoxSize; j++ {
			if b[rowStart+i][colStart+j] == num {
				return false
			}
		}
	}
	return true
}

// IsSafe reports whether num can be placed at (row, col) without violating
// the row, column, or box constraint.
func IsSafe(b *types.Board, row, col, num int) bool {
	return AbsentInRow(b, row, num) &&
		AbsentInCol(b, col, num) &&
		AbsentInBox(b, row-row%types.BoxSize, col-col%types.BoxSize, num)
}
