package generator

import (
	"github.com/echoenvoy/sudoku-solver/internal/domain"
	"github.com/echoenvoy/sudoku-solver/internal/ports"
)

// UniqueGenerator creates puzzles with a unique solution using a
// provided Solver for the uniqueness checks.
type UniqueGenerator struct {
	Solver ports.Solver
}

func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

// targetGivens scales the classic 9×9 clue targets (40/34/28/24 of 81)
// to an N×N grid.
func targetGivens(size int, d domain.Difficulty) int {
	var of81 int
	switch d {
	case domain.Easy:
		of81 = 40
	case domain.Medium:
		of81 = 34
	case domain.Hard:
		of81 = 28
	default:
		of81 = 24 // Expert
	}
	return of81 * size * size / 81
}
