package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/echoenvoy/sudoku-solver/internal/domain"
	"github.com/echoenvoy/sudoku-solver/internal/ports"
	"github.com/echoenvoy/sudoku-solver/internal/solver"
	"github.com/echoenvoy/sudoku-solver/internal/usecase"
	"github.com/echoenvoy/sudoku-solver/internal/validator"
)

var (
	benchFixture string
	benchFile    string
	benchSize    int
	benchTimeout time.Duration
)

func init() {
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare the MRV heuristic against simple backtracking",
		Long: `Solve the same board with both strategies and report the speedup
and call-count reduction the MRV heuristic achieves.

Examples:
  sudoku bench --fixture hard
  sudoku bench --file puzzle.txt --timeout 60s`,
		RunE: runBench,
	}

	benchCmd.Flags().StringVar(&benchFixture, "fixture", "hard", "Built-in board: easy, hard, expert, 4x4")
	benchCmd.Flags().StringVarP(&benchFile, "file", "f", "", "Read the board from a text file")
	benchCmd.Flags().IntVar(&benchSize, "size", 9, "Grid size N (perfect square) for file input")
	benchCmd.Flags().DurationVarP(&benchTimeout, "timeout", "t", 30*time.Second, "Wall-clock budget per strategy")

	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	fixture := benchFixture
	if benchFile != "" {
		fixture = ""
	}
	board, err := loadBoard(fixture, benchFile, benchSize)
	if err != nil {
		return err
	}

	fmt.Println("Input board:")
	fmt.Println(board.Format())

	uc := usecase.NewService(solver.NewBacktracker(), nil, validator.New(), nil)

	report := func(label string, out domain.Outcome, st ports.Stats) {
		switch out {
		case domain.Solved:
			fmt.Printf("%s: solved in %.4fs, %d recursive calls\n", label, st.Duration.Seconds(), st.Calls)
		case domain.Exhausted:
			fmt.Printf("%s: no solution (%.4fs, %d recursive calls)\n", label, st.Duration.Seconds(), st.Calls)
		case domain.TimedOut:
			fmt.Printf("%s: timed out after %v\n", label, benchTimeout)
		}
	}

	mrvOut, mrvStats, err := uc.Solve(context.Background(), board.Clone(), domain.StrategyMRV, benchTimeout)
	if err != nil {
		return err
	}
	report("mrv ", mrvOut, mrvStats)

	scanOut, scanStats, err := uc.Solve(context.Background(), board.Clone(), domain.StrategyScan, benchTimeout)
	if err != nil {
		return err
	}
	report("scan", scanOut, scanStats)

	if mrvOut == domain.Solved && scanOut == domain.Solved &&
		mrvStats.Duration > 0 && mrvStats.Calls > 0 {
		speedup := float64(scanStats.Duration) / float64(mrvStats.Duration)
		ratio := float64(scanStats.Calls) / float64(mrvStats.Calls)
		fmt.Printf("\nMRV is %.1fx faster and uses %.1fx fewer recursive calls\n", speedup, ratio)
	}
	return nil
}
