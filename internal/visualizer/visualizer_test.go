package visualizer

import (
	"strings"
	"testing"

	"sudoku_game_go/internal/types"
)

func TestRenderShowsDotsForEmptyCells(t *testing.T) {
	var b types.Board
	b[0][0] = 5
	b[4][4] = 7

	out := Render(&b)
	if got := strings.Count(out, "."); got != b.EmptyCount() {
		t.Fatalf("rendered %d dots, want %d", got, b.EmptyCount())
	}
	if !strings.Contains(out, " 5 ") || !strings.Contains(out, " 7 ") {
		t.Fatal("rendered board is missing placed values")
	}
}

func TestRenderLayout(t *testing.T) {
	var b types.Board
	out := Render(&b)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// header + top rule + 9 rows + 3 box rules
	if len(lines) != 14 {
		t.Fatalf("rendered %d lines, want 14", len(lines))
	}
	if !strings.HasPrefix(lines[0], "  X") {
		t.Fatalf("header = %q, want X axis labels", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Y") {
		t.Fatalf("second line = %q, want Y axis rule", lines[1])
	}
	for row := 1; row <= types.Size; row++ {
		line := lines[1+row+(row-1)/types.BoxSize]
		if !strings.HasPrefix(line, string(rune('0'+row))) {
			t.Fatalf("row line %q does not start with label %d", line, row)
		}
	}
}
