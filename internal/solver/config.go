package solver

import (
	"errors"
	"fmt"
	"time"

	"github.com/echoenvoy/sudoku-solver/internal/domain"
)

var (
	ErrNotSquare   = errors.New("grid size must be a perfect square")
	ErrBadDeadline = errors.New("deadline must be positive")
)

// Config fixes the parameters of one solve run. It is immutable for the
// duration of the run.
type Config struct {
	Size     int
	Box      int
	Strategy domain.Strategy
	Deadline time.Duration
}

// NewConfig derives the box size from the grid size and rejects sizes
// without an integer square root or non-positive deadlines.
func NewConfig(size int, strategy domain.Strategy, deadline time.Duration) (Config, error) {
	box := domain.BoxSize(size)
	if box == 0 {
		return Config{}, fmt.Errorf("%w: got %d", ErrNotSquare, size)
	}
	if deadline <= 0 {
		return Config{}, fmt.Errorf("%w: got %v", ErrBadDeadline, deadline)
	}
	return Config{Size: size, Box: box, Strategy: strategy, Deadline: deadline}, nil
}
