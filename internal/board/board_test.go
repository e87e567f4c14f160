package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const (
	classicPuzzle   = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	classicSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func TestParseSerializeRoundTrip(t *testing.T) {
	inputs := []string{
		classicPuzzle,
		classicSolution,
		strings.Repeat(".", CellCount),
	}

	for _, in := range inputs {
		g, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", in, err)
		}
		out, err := g.Serialize()
		if err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		if out != in {
			t.Errorf("round trip mismatch:\n in:  %s\n out: %s", in, out)
		}
	}
}

func TestParseRejectsBadLength(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", strings.Repeat(".", 80)},
		{"too long", strings.Repeat(".", 82)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.input); !errors.Is(err, ErrGridString) {
				t.Fatalf("Parse(len=%d) error = %v, want ErrGridString", len(tc.input), err)
			}
		})
	}
}

func TestParseRejectsBadCharacters(t *testing.T) {
	cases := []struct {
		name string
		ch   byte
	}{
		{"zero", '0'},
		{"letter", 'x'},
		{"space", ' '},
		{"underscore", '_'},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := []byte(strings.Repeat(".", CellCount))
			in[40] = tc.ch
			if _, err := Parse(string(in)); !errors.Is(err, ErrGridString) {
				t.Fatalf("Parse with '%c' error = %v, want ErrGridString", tc.ch, err)
			}
		})
	}
}

func TestGetSet(t *testing.T) {
	g := New()
	pos := MakePos(4, 7)

	if got := g.Get(pos); got != Unknown {
		t.Fatalf("new grid cell = %d, want Unknown", got)
	}
	g.Set(pos, 3)
	if got := g.Get(pos); got != 3 {
		t.Fatalf("after Set, Get = %d, want 3", got)
	}
	g.Set(pos, Unknown)
	if got := g.Get(pos); got != Unknown {
		t.Fatalf("after clearing, Get = %d, want Unknown", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := Parse(classicPuzzle)
	if err != nil {
		t.Fatal(err)
	}

	clone := g.Clone()
	clone.Set(MakePos(0, 2), 4)

	if got := g.Get(MakePos(0, 2)); got != Unknown {
		t.Fatalf("mutating the clone changed the original: got %d", got)
	}
}

func TestEmptyCount(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"empty grid", strings.Repeat(".", CellCount), 81},
		{"classic puzzle", classicPuzzle, 51},
		{"solved grid", classicSolution, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Parse(tc.input)
			if err != nil {
				t.Fatal(err)
			}
			if got := g.EmptyCount(); got != tc.want {
				t.Fatalf("EmptyCount = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestSerializeRejectsBadValue(t *testing.T) {
	g := New()
	g.Set(13, 12)

	if _, err := g.Serialize(); !errors.Is(err, ErrVertexValue) {
		t.Fatalf("Serialize error = %v, want ErrVertexValue", err)
	}
}

func TestFormat(t *testing.T) {
	g, err := Parse(classicPuzzle)
	if err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"5 3 . | . 7 . | . . .",
		"6 . . | 1 9 5 | . . .",
		". 9 8 | . . . | . 6 .",
		"------+-------+------",
		"8 . . | . 6 . | . . 3",
		"4 . . | 8 . 3 | . . 1",
		"7 . . | . 2 . | . . 6",
		"------+-------+------",
		". 6 . | . . . | 2 8 .",
		". . . | 4 1 9 | . . 5",
		". . . | . 8 . | . 7 9",
	}, "\n")

	got, err := g.Format()
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Format mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatRejectsBadValue(t *testing.T) {
	g := New()
	g.Set(0, -3)

	if _, err := g.Format(); !errors.Is(err, ErrVertexValue) {
		t.Fatalf("Format error = %v, want ErrVertexValue", err)
	}
}
