package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/echoenvoy/sudoku-solver/internal/domain"
	"github.com/echoenvoy/sudoku-solver/internal/solver"
	"github.com/echoenvoy/sudoku-solver/internal/validator"
)

func TestSolveRefusesInvalidBoard(t *testing.T) {
	uc := NewService(solver.NewBacktracker(), nil, validator.New(), nil)

	b := domain.NewBoard(9)
	b.Cells[0][0] = 5
	b.Cells[0][8] = 5 // row conflict
	before := b.Clone()

	_, _, err := uc.Solve(context.Background(), b, domain.StrategyMRV, time.Second)
	var conflict *validator.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("err = %v, want a validation conflict", err)
	}
	for r := range b.Cells {
		for c := range b.Cells[r] {
			if b.Cells[r][c] != before.Cells[r][c] {
				t.Fatal("board mutated despite refused solve")
			}
		}
	}
}

func TestSolveRunsOnValidBoard(t *testing.T) {
	uc := NewService(solver.NewBacktracker(), nil, validator.New(), nil)
	b := domain.NewBoard(4)
	out, st, err := uc.Solve(context.Background(), b, domain.StrategyScan, time.Second)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if out != domain.Solved || st.Calls == 0 {
		t.Fatalf("out = %v, calls = %d", out, st.Calls)
	}
}

func TestMissingDependencies(t *testing.T) {
	uc := &Service{}
	if _, _, err := uc.Solve(context.Background(), domain.NewBoard(4), domain.StrategyMRV, time.Second); err == nil {
		t.Fatal("expected an error with no solver wired")
	}
	if err := uc.Validate(context.Background(), domain.NewBoard(4)); err == nil {
		t.Fatal("expected an error with no validator wired")
	}
	if _, _, err := uc.Generate(context.Background(), 9, 1, domain.Easy); err == nil {
		t.Fatal("expected an error with no generator wired")
	}
}
