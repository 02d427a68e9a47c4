package solver

import (
	"math/rand"
	"testing"

	"github.com/rybkr/npuzzle/internal/board"
)

func TestSolvableMatchesOracle2x2(t *testing.T) {
	dist := goalDistances(t, 2)

	reachable := 0
	for _, tiles := range permutations(4) {
		b, err := board.NewFromTiles(2, tiles)
		if err != nil {
			t.Fatal(err)
		}
		_, ok := dist[b.String()]
		if got := Solvable(b); got != ok {
			t.Errorf("Solvable(%s) = %v, BFS reachable = %v", b, got, ok)
		}
		if ok {
			reachable++
		}
	}
	// Exactly half of the 24 arrangements reach the goal.
	if reachable != 12 {
		t.Errorf("oracle found %d reachable arrangements, want 12", reachable)
	}
}

func TestSolvableMatchesOracle3x3(t *testing.T) {
	dist := goalDistances3(t)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		tiles := rng.Perm(9)
		b, err := board.NewFromTiles(3, tiles)
		if err != nil {
			t.Fatal(err)
		}
		_, ok := dist[b.String()]
		if got := Solvable(b); got != ok {
			t.Fatalf("Solvable(%s) = %v, BFS reachable = %v", b, got, ok)
		}
	}
}

func TestSolvableTrivialAndKnownCases(t *testing.T) {
	cases := []struct {
		name  string
		k     int
		tiles []int
		want  bool
	}{
		{"1x1 goal", 1, []int{0}, true},
		{"2x2 goal", 2, []int{0, 1, 2, 3}, true},
		{"2x2 one slide", 2, []int{1, 0, 2, 3}, true},
		// One inversion with the blank still on row 0: parity violated.
		{"2x2 swapped pair", 2, []int{0, 1, 3, 2}, false},
		{"3x3 swapped pair", 3, []int{0, 2, 1, 3, 4, 5, 6, 7, 8}, false},
		{"3x3 goal", 3, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := board.NewFromTiles(tc.k, tc.tiles)
			if err != nil {
				t.Fatal(err)
			}
			if got := Solvable(b); got != tc.want {
				t.Errorf("Solvable(%v) = %v, want %v", tc.tiles, got, tc.want)
			}
		})
	}
}

func TestSolvableHasNoSideEffects(t *testing.T) {
	b, err := board.NewFromTiles(3, []int{8, 6, 7, 2, 5, 4, 3, 0, 1})
	if err != nil {
		t.Fatal(err)
	}
	before := b.Clone()
	Solvable(b)
	if !b.Equal(before) {
		t.Errorf("Solvable mutated the board: %s", b)
	}
}
