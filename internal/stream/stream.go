// Package stream chunks raw puzzle text into grids.
//
// The core parser expects exactly 81 characters of '.' and '1'-'9'; this
// package is the collaborator that upholds that contract for free-form
// input such as puzzle collections with whitespace, separators or comments.
package stream

import (
	"fmt"
	"io"

	"github.com/ed-cetera/sudoku/internal/board"
)

// Grids reads r to EOF and returns one Grid per 81 usable characters.
// Every byte outside '.' and '1'-'9' is discarded, the survivors are
// partitioned into consecutive 81-character chunks, and a trailing
// fragment shorter than 81 characters is dropped.
func Grids(r io.Reader) ([]*board.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	filtered := make([]byte, 0, len(data))
	for _, ch := range data {
		if ch == '.' || (ch >= '1' && ch <= '9') {
			filtered = append(filtered, ch)
		}
	}

	grids := make([]*board.Grid, 0, len(filtered)/board.CellCount)
	for len(filtered) >= board.CellCount {
		g, err := board.Parse(string(filtered[:board.CellCount]))
		if err != nil {
			// Unreachable on pre-filtered input, but Parse owns the contract.
			return nil, fmt.Errorf("puzzle %d: %w", len(grids)+1, err)
		}
		grids = append(grids, g)
		filtered = filtered[board.CellCount:]
	}

	return grids, nil
}
