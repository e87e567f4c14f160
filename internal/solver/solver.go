package solver

import (
	"github.com/ed-cetera/sudoku/internal/board"
)

// Solver enumerates the solutions of a Sudoku grid.
type Solver struct {
	Grid    *board.Grid
	options *Options
}

// New creates a solver for the given grid.
// The solver works on its own copy; the caller's grid is never mutated.
func New(g *board.Grid, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}

	return &Solver{
		Grid:    g.Clone(),
		options: options,
	}
}

// Solve exhaustively enumerates every completion of the grid that
// satisfies the Sudoku constraints, in deterministic discovery order.
//
// A grid that violates the constraints yields an empty result without any
// search; a malformed grid fails with board.ErrVertexValue. Either way no
// partial solution is ever returned.
func (s *Solver) Solve() ([]*board.Grid, error) {
	ok, err := s.Grid.Valid()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var solutions []*board.Grid
	s.search(&solutions)
	return solutions, nil
}

// search implements recursive backtracking with the MRV heuristic.
// MRV = Minimum Remaining Values: guess on the most constrained cell first
// to reduce the branching factor and fail fast on dead ends.
//
// Every branch assigns a value, recurses, and unconditionally restores the
// cell to Unknown, so sibling branches always see a clean grid. Recursion
// depth is bounded by the number of empty cells (at most 81).
func (s *Solver) search(solutions *[]*board.Grid) {
	candidates := Candidates(s.Grid)

	pos, set := s.findMRVCell(&candidates)
	if pos < 0 {
		// Complete assignment. Every value came from a candidate set, which
		// excludes all peer conflicts, so the grid is a valid solution.
		*solutions = append(*solutions, s.Grid.Clone())
		return
	}

	// Branch over the candidates in ascending digit order. A cell with an
	// empty candidate set contributes zero branches and unwinds the search.
	for n := 1; n <= 9; n++ {
		if !set.Has(n) {
			continue
		}
		s.Grid.Set(pos, n)
		s.search(solutions)
		s.Grid.Set(pos, board.Unknown)

		if s.options.MaxSolutions > 0 && len(*solutions) >= s.options.MaxSolutions {
			return
		}
	}
}

// findMRVCell returns the first empty cell in line-major order whose
// candidate set has the globally smallest size, or -1 when no empty cell
// remains.
func (s *Solver) findMRVCell(candidates *Map) (int, DigitSet) {
	mrvPos := -1
	mrvCount := 10
	var mrvSet DigitSet

	for pos := 0; pos < board.CellCount; pos++ {
		if s.Grid.Get(pos) != board.Unknown {
			continue
		}

		set := candidates.At(pos/9, pos%9)
		if count := set.Count(); count < mrvCount {
			mrvPos, mrvCount, mrvSet = pos, count, set

			if count == 0 {
				break
			}
		}
	}

	return mrvPos, mrvSet
}
