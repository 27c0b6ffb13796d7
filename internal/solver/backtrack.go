package solver

import (
	"github.com/echoenvoy/sudoku-solver/internal/domain"
)

// Backtracker is a recursive depth-first solver for N×N grids.
type Backtracker struct{}

func NewBacktracker() *Backtracker { return &Backtracker{} }

// allowed reports whether v can be placed at (r, c) without clashing in
// the row, column, or box. The target cell is excluded, so a cell that
// already holds v does not conflict with itself.
func allowed(b *domain.Board, r, c, v, box int) bool {
	for i := 0; i < b.Size; i++ {
		if b.Cells[r][i] == v && i != c {
			return false
		}
		if b.Cells[i][c] == v && i != r {
			return false
		}
	}
	br, bc := (r/box)*box, (c/box)*box
	for dr := 0; dr < box; dr++ {
		for dc := 0; dc < box; dc++ {
			if b.Cells[br+dr][bc+dc] == v && (br+dr != r || bc+dc != c) {
				return false
			}
		}
	}
	return true
}

// candidatesAt lists the values legal at (r, c) in ascending order.
// Ascending order fixes the search exploration order, so it is part of
// the contract, not cosmetic.
func candidatesAt(b *domain.Board, r, c, box int) []int {
	out := make([]int, 0, b.Size)
	for v := 1; v <= b.Size; v++ {
		if allowed(b, r, c, v, box) {
			out = append(out, v)
		}
	}
	return out
}
