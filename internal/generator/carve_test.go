package generator

import (
	"context"
	"testing"
	"time"

	"github.com/echoenvoy/sudoku-solver/internal/domain"
	"github.com/echoenvoy/sudoku-solver/internal/solver"
)

func TestGenerateAllDifficulties(t *testing.T) {
	s := solver.NewBacktracker()
	g := NewUniqueGenerator(s)

	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"expert", domain.Expert},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			p, _, err := g.Generate(ctx, 9, 12345, tc.diff)
			if err != nil {
				t.Fatalf("Generate(%s) failed: %v", tc.name, err)
			}
			givens := 81 - p.Board.EmptyCount()
			if givens < 17 || givens > 81 {
				t.Fatalf("implausible givens count for %s: %d", tc.name, givens)
			}
			ok, _, err := s.Unique(ctx, &p.Board, 5*time.Second)
			if err != nil || !ok {
				t.Fatalf("puzzle for %s is not unique (err=%v)", tc.name, err)
			}
		})
	}
}

func TestGenerateSmallBoard(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBacktracker())
	p, _, err := g.Generate(context.Background(), 4, 7, domain.Easy)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if p.Board.Size != 4 || len(p.Board.Cells) != 4 {
		t.Fatalf("board size = %d, want 4", p.Board.Size)
	}
}

func TestGenerateRejectsNonSquareSize(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBacktracker())
	if _, _, err := g.Generate(context.Background(), 6, 1, domain.Easy); err == nil {
		t.Fatal("expected an error for size 6")
	}
}

func TestGenerateIsSeedDeterministic(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBacktracker())
	a, _, err := g.Generate(context.Background(), 4, 99, domain.Easy)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := g.Generate(context.Background(), 4, 99, domain.Easy)
	if err != nil {
		t.Fatal(err)
	}
	for r := range a.Board.Cells {
		for c := range a.Board.Cells[r] {
			if a.Board.Cells[r][c] != b.Board.Cells[r][c] {
				t.Fatalf("same seed produced different boards at (%d,%d)", r, c)
			}
		}
	}
}
