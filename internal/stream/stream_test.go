package stream

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ed-cetera/sudoku/internal/board"
)

const classicPuzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func serializeAll(t *testing.T, grids []*board.Grid) []string {
	t.Helper()
	out := make([]string, len(grids))
	for i, g := range grids {
		s, err := g.Serialize()
		if err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		out[i] = s
	}
	return out
}

func TestGridsSinglePuzzle(t *testing.T) {
	grids, err := Grids(strings.NewReader(classicPuzzle + "\n"))
	if err != nil {
		t.Fatalf("Grids failed: %v", err)
	}

	if diff := cmp.Diff([]string{classicPuzzle}, serializeAll(t, grids)); diff != "" {
		t.Errorf("puzzle mismatch (-want +got):\n%s", diff)
	}
}

func TestGridsFiltersNoise(t *testing.T) {
	// Grid characters interleaved with spacing, zeros and prose all parse
	// to the same puzzle.
	var sb strings.Builder
	for line := 0; line < 9; line++ {
		sb.WriteString("row: ")
		sb.WriteString(classicPuzzle[line*9 : line*9+9])
		sb.WriteString(" 0\n")
	}

	grids, err := Grids(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("Grids failed: %v", err)
	}

	if diff := cmp.Diff([]string{classicPuzzle}, serializeAll(t, grids)); diff != "" {
		t.Errorf("puzzle mismatch (-want +got):\n%s", diff)
	}
}

func TestGridsMultiplePuzzlesAndFragment(t *testing.T) {
	second := strings.Repeat(".", board.CellCount)
	input := classicPuzzle + "\n\n" + second + "\n" + "1234..89"

	grids, err := Grids(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Grids failed: %v", err)
	}

	// The trailing fragment is shorter than 81 characters and is dropped.
	if diff := cmp.Diff([]string{classicPuzzle, second}, serializeAll(t, grids)); diff != "" {
		t.Errorf("puzzles mismatch (-want +got):\n%s", diff)
	}
}

func TestGridsEmptyInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"only noise", "no grid characters here at all\n"},
		{"short fragment", "53..7...."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grids, err := Grids(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("Grids failed: %v", err)
			}
			if len(grids) != 0 {
				t.Fatalf("got %d grids, want 0", len(grids))
			}
		})
	}
}
