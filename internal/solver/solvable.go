package solver

import "github.com/rybkr/npuzzle/internal/board"

// Solvable reports whether b can reach the goal arrangement at all.
// The verdict is closed-form parity, no search involved.
//
// Count inversions among the non-blank values read in row-major order.
// Because the goal places the blank at the top-left rather than the
// conventional bottom-right, an odd-width board is solvable iff the
// inversion count is even, and an even-width board iff the inversion count
// plus the blank's row (0-based from the top) is even.
func Solvable(b *board.Board) bool {
	n := b.CellCount()

	inversions := 0
	for i := 0; i < n; i++ {
		vi := b.Get(i)
		if vi == board.Blank {
			continue
		}
		for j := i + 1; j < n; j++ {
			vj := b.Get(j)
			if vj == board.Blank {
				continue
			}
			if vi > vj {
				inversions++
			}
		}
	}

	if b.Size()%2 == 1 {
		return inversions%2 == 0
	}
	blankRow := b.Row(b.BlankPos())
	return (inversions+blankRow)%2 == 0
}
