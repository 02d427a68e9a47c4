package solver

import "github.com/rybkr/npuzzle/internal/board"

// heuristic returns the summed Manhattan distance of every non-blank tile
// to its goal cell. It never overestimates the remaining move count and a
// single slide changes it by at most 1, which licenses the cost-bound
// pruning in search. Zero exactly when the board is the goal.
func heuristic(b *board.Board) int {
	h := 0
	for pos := 0; pos < b.CellCount(); pos++ {
		v := b.Get(pos)
		if v == board.Blank {
			continue
		}
		h += abs(b.Row(pos)-b.GoalRow(v)) + abs(b.Col(pos)-b.GoalCol(v))
	}
	return h
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
