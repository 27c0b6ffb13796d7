package solver

import (
	"context"
	"time"

	"github.com/echoenvoy/sudoku-solver/internal/domain"
	"github.com/echoenvoy/sudoku-solver/internal/ports"
)

// Unique counts solutions up to 2 and reports whether exactly one
// exists. The board is never mutated; the search runs on a clone.
func (s *Backtracker) Unique(ctx context.Context, b *domain.Board, deadline time.Duration) (bool, ports.Stats, error) {
	start := time.Now()
	cfg, err := NewConfig(b.Size, domain.StrategyMRV, deadline)
	if err != nil {
		return false, ports.Stats{}, err
	}

	run := &counter{
		ctx:      ctx,
		board:    b.Clone(),
		box:      cfg.Box,
		sel:      newSelector(domain.StrategyMRV, cfg.Size, cfg.Box),
		deadline: start.Add(cfg.Deadline),
	}
	run.step()
	return run.count == 1, ports.Stats{Calls: run.calls, Duration: time.Since(start)}, nil
}

type counter struct {
	ctx      context.Context
	board    *domain.Board
	box      int
	sel      selector
	deadline time.Time
	calls    int
	count    int
}

// step returns true when the search should stop early, either because a
// second solution was found or the deadline hit.
func (s *counter) step() bool {
	if time.Now().After(s.deadline) || s.ctx.Err() != nil {
		return true
	}
	s.calls++

	p, ok := s.sel.next(s.board)
	if !ok {
		s.count++
		return s.count >= 2
	}
	for _, v := range p.candidates {
		if !allowed(s.board, p.row, p.col, v, s.box) {
			continue
		}
		s.board.Cells[p.row][p.col] = v
		if s.step() {
			return true
		}
		s.board.Cells[p.row][p.col] = 0
	}
	return false
}
