package solver

import (
	"github.com/echoenvoy/sudoku-solver/internal/domain"
)

// pick is one branching decision: the cell to fill next and the ordered
// values to try there.
type pick struct {
	row, col   int
	candidates []int
}

// selector chooses the next empty cell to branch on. ok=false means no
// empty cell remains and the board is complete.
type selector interface {
	next(b *domain.Board) (p pick, ok bool)
}

func newSelector(strategy domain.Strategy, size, box int) selector {
	if strategy == domain.StrategyMRV {
		return &mrvSelector{box: box}
	}
	all := make([]int, size)
	for i := range all {
		all[i] = i + 1
	}
	return &scanSelector{all: all}
}

// scanSelector returns the first empty cell in row-major order. It does
// not filter candidates; the engine re-validates every value 1..N.
type scanSelector struct {
	all []int
}

func (s *scanSelector) next(b *domain.Board) (pick, bool) {
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			if b.Cells[r][c] == 0 {
				return pick{row: r, col: c, candidates: s.all}, true
			}
		}
	}
	return pick{}, false
}

// mrvSelector scans every empty cell and picks the one with the fewest
// legal values, ties broken by scan order. A cell with at most one
// candidate ends the scan early since nothing can beat it. An empty
// candidate set in the returned pick marks a dead end.
type mrvSelector struct {
	box int
}

func (s *mrvSelector) next(b *domain.Board) (pick, bool) {
	var best pick
	bestCount := b.Size + 1
	found := false

	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			if b.Cells[r][c] != 0 {
				continue
			}
			cand := candidatesAt(b, r, c, s.box)
			if len(cand) < bestCount {
				best = pick{row: r, col: c, candidates: cand}
				bestCount = len(cand)
				found = true
				if bestCount <= 1 {
					return best, true
				}
			}
		}
	}
	return best, found
}
