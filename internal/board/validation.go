package board

import (
	"errors"
	"fmt"
)

var (
	ErrGridString  = errors.New("malformed grid string")
	ErrVertexValue = errors.New("invalid cell value")
)

// Valid reports whether a grid satisfies Sudoku constraints: no digit
// repeats within any line, row or box. Unknown cells are ignored.
// Fails with ErrVertexValue if any cell holds a value outside 1-9 or
// Unknown; such a grid is malformed, not merely contradictory.
//
// Valid never mutates the grid. It must pass before candidate propagation
// or search is attempted, since both assume a contradiction-free input.
func (g *Grid) Valid() (bool, error) {
	if err := g.checkValues(); err != nil {
		return false, err
	}

	var lineCheck, rowCheck, boxCheck [9]uint

	for pos := 0; pos < CellCount; pos++ {
		val := g.cells[pos]
		if val == Unknown {
			continue
		}

		line, row, box := posToLine[pos], posToRow[pos], posToBox[pos]
		mask := uint(1 << (val - 1))

		// Check for duplicates in line, row, or box
		if lineCheck[line]&mask != 0 ||
			rowCheck[row]&mask != 0 ||
			boxCheck[box]&mask != 0 {
			return false, nil
		}

		lineCheck[line] |= mask
		rowCheck[row] |= mask
		boxCheck[box] |= mask
	}

	return true, nil
}

// checkValues verifies that every cell holds Unknown or a digit 1-9.
// Unreachable through Parse, but Set does not type-check values, so the
// boundary operations re-check before trusting cell contents.
func (g *Grid) checkValues() error {
	for pos := 0; pos < CellCount; pos++ {
		if !isValidValue(g.cells[pos]) {
			return fmt.Errorf("%w: got %d at position %d", ErrVertexValue, g.cells[pos], pos)
		}
	}
	return nil
}

// isValidValue reports whether a given number is representable on a grid.
func isValidValue(num int) bool {
	return (num >= 1 && num <= 9) || num == Unknown
}
