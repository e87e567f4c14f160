package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	checkCmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Check puzzles for rule violations",
		Long: `Check reports for every input puzzle whether its filled cells respect the
line, row and box constraints. Empty cells are ignored; a valid puzzle is
not necessarily solvable.`,
		RunE: runCheck,
	}

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
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
		if ok {
			fmt.Fprintf(w, "%s valid\n", str)
		} else {
			fmt.Fprintf(w, "%s invalid\n", str)
		}
	}
	return nil
}
