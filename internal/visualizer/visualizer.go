// Package visualizer renders boards for the terminal.
package visualizer

import (
	"fmt"
	"strings"

	"sudoku_game_go/internal/types"
)

// Render draws the board with 1-based X/Y axis labels and box separators.
// Empty cells are shown as dots.
func Render(b *types.Board) string {
	var sb strings.Builder

	// Column labels
	sb.WriteString("  X")
	for col := 1; col <= types.Size; col++ {
		fmt.Fprintf(&sb, " %d ", col)
		if col%types.BoxSize == 0 {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte('\n')

	sb.WriteString("Y  ")
	writeSeparator(&sb)

	for row := 0; row < types.Size; row++ {
		fmt.Fprintf(&sb, "%d ", row+1)
		for col := 0; col < types.Size; col++ {
			if col%types.BoxSize == 0 {
				sb.WriteByte('|')
			}
			if b[row][col] == 0 {
				sb.WriteString(" . ")
			} else {
				fmt.Fprintf(&sb, " %d ", b[row][col])
			}
		}
		sb.WriteString("|\n")

		if (row+1)%types.BoxSize == 0 {
			sb.WriteString("   ")
			writeSeparator(&sb)
		}
	}

	return sb.String()
}

func writeSeparator(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("--", types.Size+2*types.BoxSize))
	sb.WriteByte('\n')
}

// Print writes the rendered board to stdout.
func Print(b *types.Board) {
	fmt.Print(Render(b))
}
