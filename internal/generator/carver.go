package generator

import (
	"fmt"
	"math/rand"

	"sudoku_game_go/internal/types"
)

// Carver removes cells from a solved board to produce a playable puzzle.
type Carver struct {
	rng *rand.Rand
}

// NewCarver returns a carver drawing cell positions from rng.
func NewCarver(rng *rand.Rand) *Carver {
	return &Carver{rng: rng}
}

// Carve empties exactly count distinct cells, each drawn uniformly over the
// whole board with already-empty draws rejected and redrawn. The surviving
// cells are untouched. count 0 leaves the board solved; count 81 clears it.
func (c *Carver) Carve(b *types.Board, count int) error {
	if count < 0 || count > types.Cells {
		return fmt.Errorf("carver: count %d outside [0, %d]", count, types.Cells)
	}
	if filled := types.Cells - b.EmptyCount(); count > filled {
		return fmt.Errorf("carver: count %d exceeds %d filled cells", count, filled)
	}
	for remaining := count; remaining > 0; {
		cell := c.rng.Intn(types.Cells)
		row, col := cell/types.Size, cell%types.Size
		if b[row][col] != 0 {
			b[row][col] = 0
			remaining--
		}
	}
	return nil
}
