package solver

import (
	"sync"
	"testing"

	"github.com/rybkr/npuzzle/internal/board"
)

// goalDistances runs breadth-first search outward from the goal board and
// returns the exact move distance of every reachable arrangement, keyed by
// Board.String(). Slides are their own inverses, so distance from the goal
// equals distance to it. Used as the ground-truth oracle for solvability
// and optimality.
func goalDistances(t *testing.T, k int) map[string]int {
	t.Helper()

	goal, err := board.New(k)
	if err != nil {
		t.Fatalf("New(%d) failed: %v", k, err)
	}

	dist := map[string]int{goal.String(): 0}
	queue := []*board.Board{goal}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		d := dist[b.String()]

		for _, m := range board.Moves {
			next := b.Clone()
			if next.Apply(m) != nil {
				continue
			}
			key := next.String()
			if _, seen := dist[key]; seen {
				continue
			}
			dist[key] = d + 1
			queue = append(queue, next)
		}
	}
	return dist
}

// The 3×3 state space has 181440 reachable arrangements; share one BFS
// across the tests that need it.
var (
	distances3     map[string]int
	distances3Once sync.Once
)

func goalDistances3(t *testing.T) map[string]int {
	t.Helper()
	distances3Once.Do(func() {
		distances3 = goalDistances(t, 3)
	})
	return distances3
}

// permutations returns every ordering of 0..n-1.
func permutations(n int) [][]int {
	base := make([]int, n)
	for i := range base {
		base[i] = i
	}

	var all [][]int
	var rec func(prefix []int, rest []int)
	rec = func(prefix []int, rest []int) {
		if len(rest) == 0 {
			all = append(all, append([]int(nil), prefix...))
			return
		}
		for i := range rest {
			next := append(append([]int(nil), rest[:i]...), rest[i+1:]...)
			rec(append(prefix, rest[i]), next)
		}
	}
	rec(nil, base)
	return all
}
