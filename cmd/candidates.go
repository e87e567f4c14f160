package cmd

import (
	"fmt"

	"github.com/ed-cetera/sudoku/internal/board"
	"github.com/ed-cetera/sudoku/internal/solver"
	"github.com/spf13/cobra"
)

func init() {
	candidatesCmd := &cobra.Command{
		Use:   "candidates [file...]",
		Short: "Print the candidate digits for every empty cell",
		Long: `Candidates runs constraint propagation on each puzzle and prints, for
every empty cell, the digits it may still take. Cells are addressed as
(line, row) pairs counted from zero.`,
		RunE: runCandidates,
	}

	rootCmd.AddCommand(candidatesCmd)
}

func runCandidates(cmd *cobra.Command, args []string) error {
	grids, err := readGrids(args)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, g := range grids {
		str, err := g.Serialize()
		if err != nil {
			return err
		}
		ok, err := g.Valid()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "p%s\n", str)
		if !ok {
			// Propagation on a contradictory grid derives nonsense; skip it.
			fmt.Fprintln(w, "invalid puzzle")
			continue
		}

		candidates := solver.Candidates(g)
		for line := 0; line < 9; line++ {
			for row := 0; row < 9; row++ {
				if g.Get(board.MakePos(line, row)) != board.Unknown {
					continue
				}
				fmt.Fprintf(w, "(%d,%d) %v\n", line, row, candidates.At(line, row).Digits())
			}
		}
	}
	return nil
}
