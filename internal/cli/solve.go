package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/echoenvoy/sudoku-solver/internal/domain"
	"github.com/echoenvoy/sudoku-solver/internal/infrastructure/gridfile"
	"github.com/echoenvoy/sudoku-solver/internal/solver"
	"github.com/echoenvoy/sudoku-solver/internal/usecase"
	"github.com/echoenvoy/sudoku-solver/internal/validator"
)

var (
	solveFixture  string
	solveFile     string
	solveSize     int
	solveStrategy string
	solveTimeout  time.Duration
	solveExport   string
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a Sudoku board",
		Long: `Solve a board loaded from a built-in fixture or a text file.

Examples:
  sudoku solve --fixture easy
  sudoku solve --fixture expert --strategy mrv --timeout 30s
  sudoku solve --file puzzle.txt --size 9 --export solution.txt`,
		RunE: runSolve,
	}

	solveCmd.Flags().StringVar(&solveFixture, "fixture", "", "Built-in board: easy, hard, expert, 4x4")
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "Read the board from a text file")
	solveCmd.Flags().IntVar(&solveSize, "size", 9, "Grid size N (perfect square) for file input")
	solveCmd.Flags().StringVarP(&solveStrategy, "strategy", "s", "mrv", "Cell selection strategy: mrv or scan")
	solveCmd.Flags().DurationVarP(&solveTimeout, "timeout", "t", 10*time.Second, "Wall-clock budget for the search")
	solveCmd.Flags().StringVarP(&solveExport, "export", "o", "", "Write the solution to this file")

	rootCmd.AddCommand(solveCmd)
}

// loadBoard reads the board named by --fixture or --file.
func loadBoard(fixture, file string, size int) (*domain.Board, error) {
	switch {
	case fixture != "" && file != "":
		return nil, fmt.Errorf("--fixture and --file are mutually exclusive")
	case fixture != "":
		return fixtureBoard(fixture)
	case file != "":
		return gridfile.ParseFile(file, size)
	default:
		return nil, fmt.Errorf("one of --fixture or --file is required")
	}
}

func parseStrategy(s string) (domain.Strategy, error) {
	switch s {
	case "mrv":
		return domain.StrategyMRV, nil
	case "scan":
		return domain.StrategyScan, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q (use mrv or scan)", s)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	board, err := loadBoard(solveFixture, solveFile, solveSize)
	if err != nil {
		return err
	}
	strategy, err := parseStrategy(solveStrategy)
	if err != nil {
		return err
	}

	fmt.Println("Input board:")
	fmt.Println(board.Format())

	uc := usecase.NewService(solver.NewBacktracker(), nil, validator.New(), nil)
	out, st, err := uc.Solve(context.Background(), board, strategy, solveTimeout)
	if err != nil {
		return err
	}

	switch out {
	case domain.Solved:
		fmt.Println("Solution found!")
		fmt.Println(board.Format())
		fmt.Printf("Time: %.4fs\nRecursive calls: %d\n", st.Duration.Seconds(), st.Calls)
		if solveExport != "" {
			if err := gridfile.ExportFile(solveExport, board); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			fmt.Printf("Solution exported to %s\n", solveExport)
		}
	case domain.Exhausted:
		fmt.Println("No solution exists for this board.")
		fmt.Printf("Time: %.4fs\nRecursive calls: %d\n", st.Duration.Seconds(), st.Calls)
	case domain.TimedOut:
		fmt.Printf("Timeout: search exceeded %v. The puzzle may still be solvable;\n", solveTimeout)
		fmt.Println("try the mrv strategy or a larger --timeout.")
	}
	return nil
}
