package ports

import (
	"context"
	"time"

	"github.com/echoenvoy/sudoku-solver/internal/domain"
)

// Stats captures performance characteristics of one solve run.
type Stats struct {
	Calls    int
	Duration time.Duration
}

// Solver runs the backtracking search on a board, mutating it in place.
// On Solved every cell is filled; on Exhausted the board is back in its
// entry state; on TimedOut it holds whatever partial assignment was in
// flight when the deadline hit.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board, strategy domain.Strategy, deadline time.Duration) (domain.Outcome, Stats, error)
	Unique(ctx context.Context, b *domain.Board, deadline time.Duration) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, size int, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator checks that a board is well-formed and conflict-free.
// A nil return means the board is valid; otherwise the error identifies
// the first violation found.
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) error
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
