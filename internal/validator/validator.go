package validator

import (
	"context"
	"errors"
	"fmt"

	"github.com/echoenvoy/sudoku-solver/internal/domain"
)

// ErrWrongDimensions marks a board that is not N×N for a perfect-square N.
var ErrWrongDimensions = errors.New("board has wrong dimensions")

// ValueError reports a cell whose value falls outside [0, N].
type ValueError struct {
	Cell  domain.CellCoord
	Value int
	Size  int
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("value %d at (%d,%d) is not between 0 and %d",
		e.Value, e.Cell.Row, e.Cell.Col, e.Size)
}

// ConflictError reports a filled cell that clashes with another cell in
// its row, column, or box.
type ConflictError struct {
	Cell  domain.CellCoord
	Value int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %d at (%d,%d) violates row/column/box exclusivity",
		e.Value, e.Cell.Row, e.Cell.Col)
}

// BoardValidator performs the one-shot pre-solve check.
type BoardValidator struct{}

func New() *BoardValidator { return &BoardValidator{} }

// Validate returns nil for a well-formed, conflict-free board and the
// first violation otherwise. Checks run in a fixed order — dimensions,
// then value ranges, then conflicts — because the later passes are not
// safe on malformed input. The board is never mutated.
func (v *BoardValidator) Validate(ctx context.Context, b *domain.Board) error {
	if b == nil || b.Size <= 0 || len(b.Cells) != b.Size {
		return fmt.Errorf("%w: expected %d rows", ErrWrongDimensions, sizeOf(b))
	}
	box := domain.BoxSize(b.Size)
	if box == 0 {
		return fmt.Errorf("%w: size %d has no integer square root", ErrWrongDimensions, b.Size)
	}
	for r, row := range b.Cells {
		if len(row) != b.Size {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrWrongDimensions, r, len(row), b.Size)
		}
	}

	for r, row := range b.Cells {
		for c, val := range row {
			if val < 0 || val > b.Size {
				return &ValueError{Cell: domain.CellCoord{Row: r, Col: c}, Value: val, Size: b.Size}
			}
		}
	}

	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			val := b.Cells[r][c]
			if val == 0 {
				continue
			}
			if !allowed(b, r, c, val, box) {
				return &ConflictError{Cell: domain.CellCoord{Row: r, Col: c}, Value: val}
			}
		}
	}
	return nil
}

func sizeOf(b *domain.Board) int {
	if b == nil {
		return 0
	}
	return b.Size
}

// allowed mirrors the solver's row/col/box check, excluding the target
// cell so a filled cell is tested against the rest of the board without
// temporarily blanking it.
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
