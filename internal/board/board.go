package board

import (
	"fmt"
	"strings"
)

// Special cell values
const (
	Unknown   = 0
	CellCount = 81
)

// Grid represents a 9x9 Sudoku grid.
//
// Cells are stored in line-major order: position pos holds the cell at
// (line = pos/9, row = pos%9). The grid carries no derived state, so the
// unchecked Set below cannot corrupt anything; constraint checking is the
// job of Valid, invoked on demand.
type Grid struct {
	cells [CellCount]int
}

// New creates an empty Grid.
func New() *Grid {
	return &Grid{}
}

// Parse creates a Grid from an 81-character string.
// Use '.' for unknown cells, '1'-'9' for known cells. Any other character,
// or a string of any other length, fails with ErrGridString.
func Parse(s string) (*Grid, error) {
	if len(s) != CellCount {
		return nil, fmt.Errorf("%w: string must be exactly %d characters, got %d", ErrGridString, CellCount, len(s))
	}

	g := New()
	for pos := 0; pos < CellCount; pos++ {
		ch := s[pos]
		switch ch {
		case '.':
			// Unknown cell, already initialized
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			g.cells[pos] = int(ch - '0')
		default:
			return nil, fmt.Errorf("%w: invalid character '%c' at position %d", ErrGridString, ch, pos)
		}
	}
	return g, nil
}

// Clone creates an independent copy of the Grid.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	clone := *g
	return &clone
}

// Get returns the value at the given position.
// No bounds checking is performed; callers own position validity.
func (g *Grid) Get(pos int) int {
	return g.cells[pos]
}

// Set places a value at the given position.
// Neither the position nor the value is checked; this keeps mutation cheap
// in the search hot loop. Valid and Serialize catch bad values later.
func (g *Grid) Set(pos, val int) {
	g.cells[pos] = val
}

// EmptyCount returns the number of unknown cells on the grid.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, cell := range g.cells {
		if cell == Unknown {
			n++
		}
	}
	return n
}

// Serialize returns the grid as an 81-character string in line-major order.
// Unknown cells are represented as '.', known cells as '1'-'9'.
// Fails with ErrVertexValue if any cell holds an out-of-range value.
func (g *Grid) Serialize() (string, error) {
	if err := g.checkValues(); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(CellCount)

	for _, cell := range g.cells {
		if cell == Unknown {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + byte(cell))
		}
	}

	return sb.String(), nil
}

// Format returns a human-readable grid representation: cells separated by
// single spaces, a '|' after rows 2 and 5, and a divider line after lines
// 2 and 5. Fails with ErrVertexValue if any cell holds an out-of-range value.
func (g *Grid) Format() (string, error) {
	if err := g.checkValues(); err != nil {
		return "", err
	}

	var sb strings.Builder
	for line := 0; line < 9; line++ {
		for row := 0; row < 9; row++ {
			val := g.cells[MakePos(line, row)]
			if val == Unknown {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(val))
			}
			if row != 8 {
				sb.WriteByte(' ')
			} else if line != 8 {
				sb.WriteByte('\n')
			}
			if row == 2 || row == 5 {
				sb.WriteString("| ")
			}
		}
		if line == 2 || line == 5 {
			sb.WriteString("------+-------+------\n")
		}
	}

	return sb.String(), nil
}

// MakePos transforms a line and row into a linear position.
func MakePos(line, row int) int {
	return 9*line + row
}

// Precomputed lookup tables for line, row and box membership.
// Boxes are the nine 3×3 subgrids; box membership is derived from position
// and never stored per cell.
var (
	posToLine [CellCount]int
	posToRow  [CellCount]int
	posToBox  [CellCount]int
)

// init initializes the position lookup tables.
func init() {
	for pos := 0; pos < CellCount; pos++ {
		posToLine[pos] = pos / 9
		posToRow[pos] = pos % 9
		posToBox[pos] = 3*(pos/27) + (pos%9)/3
	}
}
