package domain

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// Strategy selects how the search engine picks the next cell to branch on.
type Strategy int

const (
	// StrategyScan takes the first empty cell in row-major order and tries
	// every value 1..N in ascending order.
	StrategyScan Strategy = iota
	// StrategyMRV takes the empty cell with the fewest remaining legal
	// values (minimum remaining values heuristic).
	StrategyMRV
)

func (s Strategy) String() string {
	if s == StrategyMRV {
		return "mrv"
	}
	return "scan"
}

// Outcome is the terminal state of one search run.
type Outcome int

const (
	// Solved: every cell is filled and each placement passed validation.
	Solved Outcome = iota
	// Exhausted: the search tried every candidate everywhere; the grid is
	// provably unsolvable from its starting position.
	Exhausted
	// TimedOut: the wall-clock deadline expired mid-search. Says nothing
	// about solvability.
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	case TimedOut:
		return "timed-out"
	default:
		return "unknown"
	}
}
