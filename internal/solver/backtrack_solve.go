package solver

import (
	"context"
	"time"

	"github.com/echoenvoy/sudoku-solver/internal/domain"
	"github.com/echoenvoy/sudoku-solver/internal/ports"
)

// Solve runs the backtracking search on b, mutating it in place.
// On Solved every cell is filled. On Exhausted the board is restored to
// its entry state. On TimedOut the pending partial assignment is left
// where it was when the deadline hit; nothing is rolled back.
func (s *Backtracker) Solve(ctx context.Context, b *domain.Board, strategy domain.Strategy, deadline time.Duration) (domain.Outcome, ports.Stats, error) {
	start := time.Now()
	cfg, err := NewConfig(b.Size, strategy, deadline)
	if err != nil {
		return 0, ports.Stats{}, err
	}

	run := &search{
		ctx:      ctx,
		board:    b,
		box:      cfg.Box,
		sel:      newSelector(cfg.Strategy, cfg.Size, cfg.Box),
		deadline: start.Add(cfg.Deadline),
	}
	out := run.step()
	return out, ports.Stats{Calls: run.calls, Duration: time.Since(start)}, nil
}

// search carries the per-run state threaded through the recursion.
type search struct {
	ctx      context.Context
	board    *domain.Board
	box      int
	sel      selector
	deadline time.Time
	calls    int
}

// step is one recursive descent. The deadline is polled at the top of
// every call; recursion depth is bounded by the number of empty cells,
// so the poll is cheap next to the O(N) work per call.
func (s *search) step() domain.Outcome {
	if time.Now().After(s.deadline) || s.ctx.Err() != nil {
		return domain.TimedOut
	}
	s.calls++

	p, ok := s.sel.next(s.board)
	if !ok {
		// Every placement was pre-validated, so a full board is a solution.
		return domain.Solved
	}
	for _, v := range p.candidates {
		// Re-check validity: the scan selector hands over the raw 1..N range.
		if !allowed(s.board, p.row, p.col, v, s.box) {
			continue
		}
		s.board.Cells[p.row][p.col] = v
		switch out := s.step(); out {
		case domain.Solved, domain.TimedOut:
			// Propagate without undoing so the caller sees the final
			// board on success and the abort state on timeout.
			return out
		}
		s.board.Cells[p.row][p.col] = 0
	}
	return domain.Exhausted
}
