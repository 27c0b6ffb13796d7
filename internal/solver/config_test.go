package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/echoenvoy/sudoku-solver/internal/domain"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		deadline time.Duration
		wantBox  int
		wantErr  error
	}{
		{"standard 9", 9, time.Second, 3, nil},
		{"small 4", 4, time.Second, 2, nil},
		{"hexadoku 16", 16, time.Second, 4, nil},
		{"not a square", 5, time.Second, 0, ErrNotSquare},
		{"zero size", 0, time.Second, 0, ErrNotSquare},
		{"negative size", -9, time.Second, 0, ErrNotSquare},
		{"zero deadline", 9, 0, 0, ErrBadDeadline},
		{"negative deadline", 9, -time.Second, 0, ErrBadDeadline},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.size, domain.StrategyMRV, tc.deadline)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Box != tc.wantBox {
				t.Fatalf("Box = %d, want %d", cfg.Box, tc.wantBox)
			}
		})
	}
}

func TestSolveRejectsNonSquareBoard(t *testing.T) {
	b := domain.NewBoard(5)
	_, _, err := NewBacktracker().Solve(context.Background(), b, domain.StrategyMRV, time.Second)
	if !errors.Is(err, ErrNotSquare) {
		t.Fatalf("err = %v, want %v", err, ErrNotSquare)
	}
}
