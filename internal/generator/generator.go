package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rybkr/npuzzle/internal/board"
)

var ErrInvalidSteps = errors.New("scramble steps out of range")

// Generator produces random solvable sliding-tile boards.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a board generator with the given options.
// A nil options generates 3×3 boards with default scrambling.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(3)
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate scrambles the goal board with Steps random blank slides, never
// immediately undoing the previous slide. A random walk from the goal keeps
// the board solvable by construction, and its optimal solution is never
// longer than Steps.
func (g *Generator) Generate() (*board.Board, error) {
	if g.options.Steps < 0 || g.options.Steps > MaxSteps {
		return nil, fmt.Errorf("%w: steps must be in [0, %d], got %d", ErrInvalidSteps, MaxSteps, g.options.Steps)
	}

	b, err := board.New(g.options.Size)
	if err != nil {
		return nil, err
	}
	// A 1×1 board has no legal slides; it is already the goal.
	if b.CellCount() == 1 {
		return b, nil
	}

	prev := board.Move(-1)
	hasPrev := false
	for applied := 0; applied < g.options.Steps; {
		m := board.Moves[g.rng.Intn(len(board.Moves))]
		if hasPrev && m == prev.Reverse() {
			continue
		}
		if err := b.Apply(m); err != nil {
			continue // blank is at an edge, pick again
		}
		prev, hasPrev = m, true
		applied++
	}
	return b, nil
}
