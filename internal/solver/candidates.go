package solver

import (
	"math/bits"

	"github.com/ed-cetera/sudoku/internal/board"
)

// DigitSet is a set of candidate digits as a 9-bit mask.
// Bit i represents digit i+1 (bit 0 = digit 1, bit 8 = digit 9).
type DigitSet uint16

// AllDigits is the full candidate set {1..9}.
const AllDigits DigitSet = 511

// SetOf returns the set containing exactly the given digits.
func SetOf(digits ...int) DigitSet {
	var s DigitSet
	for _, n := range digits {
		s |= 1 << (n - 1)
	}
	return s
}

// Has reports whether digit n is in the set.
func (s DigitSet) Has(n int) bool {
	return s&(1<<(n-1)) != 0
}

// Remove returns the set without digit n.
func (s DigitSet) Remove(n int) DigitSet {
	return s &^ (1 << (n - 1))
}

// Count returns the number of digits in the set.
func (s DigitSet) Count() int {
	return bits.OnesCount16(uint16(s))
}

// Single returns the set's digit if it contains exactly one.
func (s DigitSet) Single() (int, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return bits.TrailingZeros16(uint16(s)) + 1, true
}

// Digits returns the set's digits in ascending order.
func (s DigitSet) Digits() []int {
	digits := make([]int, 0, s.Count())
	for n := 1; n <= 9; n++ {
		if s.Has(n) {
			digits = append(digits, n)
		}
	}
	return digits
}

// Map holds one candidate set per cell, indexed by (line, row).
// A map is derived from a single grid snapshot and is never updated in
// place when the grid changes; recompute it instead.
type Map [9][9]DigitSet

// At returns the candidate set for the cell at (line, row).
func (m *Map) At(line, row int) DigitSet {
	return m[line][row]
}

// Candidates computes the candidate map for a grid and tightens it to a
// fixpoint.
//
// Every set starts at AllDigits. Known cells collapse to their singleton
// and eliminate their digit from all line, row and box peers. Then, until
// a full pass stops shrinking the map, every digit is scanned against
// every line, row and box for hidden singles (a digit with exactly one
// remaining home in the unit) and locked candidates (a digit whose 2-3
// remaining homes in the unit share a box, or share a line/row within a
// box), eliminating accordingly.
//
// The grid is assumed contradiction-free; run Valid first. On a grid with
// duplicates the eliminations can legitimately empty a candidate set.
func Candidates(g *board.Grid) Map {
	p := newPropagation()

	for pos := 0; pos < board.CellCount; pos++ {
		if val := g.Get(pos); val != board.Unknown {
			p.place(pos/9, pos%9, val)
		}
	}

	// Total candidate count is non-negative and strictly decreases on any
	// pass that makes progress, so this loop terminates.
	for {
		before := p.total()
		for n := 1; n <= 9; n++ {
			for i := 0; i < 9; i++ {
				p.scanLine(i, n)
				p.scanRow(i, n)
				p.scanBox(i, n)
			}
		}
		if p.total() == before {
			break
		}
	}

	return p.cands
}

// propagation carries the working state of one Candidates call.
// resolved is tracked separately from set size: a set shrunk to a
// singleton by elimination alone has not been placed yet, and placing it
// is what propagates its digit to its peers.
type propagation struct {
	cands    Map
	resolved [9][9]bool
}

func newPropagation() *propagation {
	p := &propagation{}
	for line := 0; line < 9; line++ {
		for row := 0; row < 9; row++ {
			p.cands[line][row] = AllDigits
		}
	}
	return p
}

// place collapses the cell at (line, row) to digit n and eliminates n from
// every other cell in the same line, row and box.
func (p *propagation) place(line, row, n int) {
	p.cands[line][row] = SetOf(n)
	p.resolved[line][row] = true

	boxLine, boxRow := line-line%3, row-row%3
	for i := 0; i < 9; i++ {
		if i != row {
			p.cands[line][i] = p.cands[line][i].Remove(n)
		}
		if i != line {
			p.cands[i][row] = p.cands[i][row].Remove(n)
		}
		bl, br := boxLine+i/3, boxRow+i%3
		if bl != line || br != row {
			p.cands[bl][br] = p.cands[bl][br].Remove(n)
		}
	}
}

// scanLine applies the hidden-single and pointing rules for digit n in the
// given line.
func (p *propagation) scanLine(line, n int) {
	var seen []int
	for row := 0; row < 9; row++ {
		if p.cands[line][row].Has(n) {
			seen = append(seen, row)
		}
	}

	switch {
	case len(seen) == 1 && !p.resolved[line][seen[0]]:
		p.place(line, seen[0], n)

	case len(seen) >= 2 && len(seen) <= 3:
		// Pointing: all homes for n in this line share a box, so n cannot
		// appear elsewhere in that box.
		box := boxOf(line, seen[0])
		for _, row := range seen[1:] {
			if boxOf(line, row) != box {
				return
			}
		}
		bl, br := 3*(box/3), 3*(box%3)
		for i := 0; i < 9; i++ {
			if l, r := bl+i/3, br+i%3; l != line {
				p.cands[l][r] = p.cands[l][r].Remove(n)
			}
		}
	}
}

// scanRow applies the hidden-single and pointing rules for digit n in the
// given row.
func (p *propagation) scanRow(row, n int) {
	var seen []int
	for line := 0; line < 9; line++ {
		if p.cands[line][row].Has(n) {
			seen = append(seen, line)
		}
	}

	switch {
	case len(seen) == 1 && !p.resolved[seen[0]][row]:
		p.place(seen[0], row, n)

	case len(seen) >= 2 && len(seen) <= 3:
		box := boxOf(seen[0], row)
		for _, line := range seen[1:] {
			if boxOf(line, row) != box {
				return
			}
		}
		bl, br := 3*(box/3), 3*(box%3)
		for i := 0; i < 9; i++ {
			if l, r := bl+i/3, br+i%3; r != row {
				p.cands[l][r] = p.cands[l][r].Remove(n)
			}
		}
	}
}

// scanBox applies the hidden-single and claiming rules for digit n in the
// given box. Cells within a box are indexed 0-8 in line-major order.
func (p *propagation) scanBox(box, n int) {
	bl, br := 3*(box/3), 3*(box%3)

	var seen []int
	for i := 0; i < 9; i++ {
		if p.cands[bl+i/3][br+i%3].Has(n) {
			seen = append(seen, i)
		}
	}

	switch {
	case len(seen) == 1 && !p.resolved[bl+seen[0]/3][br+seen[0]%3]:
		p.place(bl+seen[0]/3, br+seen[0]%3, n)

	case len(seen) >= 2 && len(seen) <= 3:
		// Claiming: all homes for n in this box share a line (or row), so n
		// cannot appear in the rest of that line (row) outside the box.
		sameLine, sameRow := true, true
		line0, row0 := bl+seen[0]/3, br+seen[0]%3
		for _, i := range seen[1:] {
			if bl+i/3 != line0 {
				sameLine = false
			}
			if br+i%3 != row0 {
				sameRow = false
			}
		}
		if sameLine {
			for row := 0; row < 9; row++ {
				if row < br || row >= br+3 {
					p.cands[line0][row] = p.cands[line0][row].Remove(n)
				}
			}
		} else if sameRow {
			for line := 0; line < 9; line++ {
				if line < bl || line >= bl+3 {
					p.cands[line][row0] = p.cands[line][row0].Remove(n)
				}
			}
		}
	}
}

// total returns the candidate count summed over all cells.
func (p *propagation) total() int {
	t := 0
	for line := 0; line < 9; line++ {
		for row := 0; row < 9; row++ {
			t += p.cands[line][row].Count()
		}
	}
	return t
}

// boxOf returns the box index of the cell at (line, row).
func boxOf(line, row int) int {
	return 3*(line/3) + row/3
}
