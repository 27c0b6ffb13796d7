package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Solve, generate, and serve generalized N×N Sudoku puzzles",
	Long: `A backtracking Sudoku solver for N×N grids where N is a perfect
square (4×4, 9×9, 16×16, ...). Two search strategies are available:
a simple row-major scan and the minimum-remaining-values heuristic.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
