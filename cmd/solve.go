package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ed-cetera/sudoku/internal/board"
	"github.com/ed-cetera/sudoku/internal/solver"
	"github.com/ed-cetera/sudoku/internal/stream"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [file...]",
		Short: "Enumerate all solutions of the given puzzles",
		Long: `Solve reads puzzles from the given files, or from standard input when no
file is given. Characters other than '.' and '1'-'9' are discarded and every
81 remaining characters form one puzzle; a shorter trailing fragment is
ignored.

Each puzzle is echoed on a line starting with "p", followed by one line
starting with "s" per solution found. An invalid puzzle yields no "s" lines.

Examples:
  sudoku solve puzzles.txt
  cat puzzles.txt | sudoku solve --pretty
  sudoku solve -m 1 hard.txt`,
		RunE: runSolve,
	}

	solveCmd.Flags().IntP("max-solutions", "m", 0, "Stop after this many solutions per puzzle (0 = enumerate all)")
	solveCmd.Flags().Bool("pretty", false, "Print grids with box separators instead of p/s lines")
	viper.BindPFlag("max-solutions", solveCmd.Flags().Lookup("max-solutions"))
	viper.BindPFlag("pretty", solveCmd.Flags().Lookup("pretty"))

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	grids, err := readGrids(args)
	if err != nil {
		return err
	}

	opts := &solver.Options{MaxSolutions: viper.GetInt("max-solutions")}
	for _, g := range grids {
		solutions, err := solver.New(g, opts).Solve()
		if err != nil {
			return err
		}
		if err := printResult(cmd.OutOrStdout(), g, solutions); err != nil {
			return err
		}
	}
	return nil
}

// printResult writes one puzzle and its solutions, either as compact p/s
// lines or as formatted grids.
func printResult(w io.Writer, g *board.Grid, solutions []*board.Grid) error {
	if viper.GetBool("pretty") {
		text, err := g.Format()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "puzzle:\n%s\n", text)
		if len(solutions) == 0 {
			fmt.Fprintln(w, "no solutions")
			return nil
		}
		for i, sol := range solutions {
			text, err := sol.Format()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "solution %d:\n%s\n", i+1, text)
		}
		return nil
	}

	puz, err := g.Serialize()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "p%s\n", puz)
	for _, sol := range solutions {
		str, err := sol.Serialize()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "s%s\n", str)
	}
	return nil
}

// readGrids collects puzzles from the argument files, or from stdin when
// no files are given.
func readGrids(args []string) ([]*board.Grid, error) {
	if len(args) == 0 {
		return stream.Grids(os.Stdin)
	}

	var grids []*board.Grid
	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		gs, err := stream.Grids(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		grids = append(grids, gs...)
	}
	return grids, nil
}
