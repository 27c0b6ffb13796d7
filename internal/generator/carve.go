package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/echoenvoy/sudoku-solver/internal/domain"
	"github.com/echoenvoy/sudoku-solver/internal/ports"
)

// Generate builds a full random solution for the given size, then
// carves out clues while the puzzle keeps a unique solution. The carve
// stops at the difficulty's target clue count or when its time budget
// runs out, whichever comes first.
func (g *UniqueGenerator) Generate(ctx context.Context, size int, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	box := domain.BoxSize(size)
	if box == 0 {
		return nil, ports.Stats{}, fmt.Errorf("cannot generate %d×%d puzzle: size has no integer square root", size, size)
	}

	rng := rand.New(rand.NewSource(seed))
	puz := domain.NewBoard(size)
	if !fillRandom(ctx, rng, puz, box) {
		return nil, ports.Stats{}, context.Canceled
	}

	fixed := make([][]bool, size)
	for r := range fixed {
		fixed[r] = make([]bool, size)
		for c := range fixed[r] {
			fixed[r][c] = true
		}
	}

	positions := make([]int, size*size)
	for i := range positions {
		positions[i] = i
	}
	rng.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})

	target := targetGivens(size, diff)
	deadline := start.Add(time.Duration(size*size) * 11 * time.Millisecond)
	calls := 0

	for _, pos := range positions {
		budget := time.Until(deadline)
		if budget <= 0 {
			break
		}
		if size*size-puz.EmptyCount() <= target {
			break
		}
		r, c := pos/size, pos%size
		if puz.Cells[r][c] == 0 {
			continue
		}
		old := puz.Cells[r][c]
		puz.Cells[r][c] = 0
		fixed[r][c] = false
		unique, st, err := g.Solver.Unique(ctx, puz, budget)
		calls += st.Calls
		if err != nil || !unique {
			puz.Cells[r][c] = old
			fixed[r][c] = true
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      domain.Board{Size: size, Cells: puz.Cells, Fixed: fixed},
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Calls: calls, Duration: time.Since(start)}, nil
}

// fillRandom solves an empty grid into a full valid solution, trying
// values in random order at each cell.
func fillRandom(ctx context.Context, rng *rand.Rand, b *domain.Board, box int) bool {
	nums := make([]int, b.Size)
	for i := range nums {
		nums[i] = i + 1
	}
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == b.Size {
			return true
		}
		nr, nc := r, c+1
		if nc == b.Size {
			nr, nc = r+1, 0
		}
		rng.Shuffle(len(nums), func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			if allowed(b, r, c, v, box) {
				b.Cells[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				b.Cells[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}

// allowed mirrors the solver's row/col/box check locally for the fill.
func allowed(b *domain.Board, r, c, v, box int) bool {
	for i := 0; i < b.Size; i++ {
		if b.Cells[r][i] == v || b.Cells[i][c] == v {
			return false
		}
	}
	br, bc := (r/box)*box, (c/box)*box
	for dr := 0; dr < box; dr++ {
		for dc := 0; dc < box; dc++ {
			if b.Cells[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
