package solver

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rybkr/npuzzle/internal/board"
)

var (
	ErrNoSolution      = errors.New("puzzle has no solution")
	ErrMoveCapExceeded = errors.New("search exceeded the move cap")
)

// noMove marks the root of a probe, where no incoming move exists and no
// direction is excluded.
const noMove board.Move = -1

// Solver implements IDA* (iterative deepening A*) search over sliding-tile
// boards: repeated depth-first probes under an increasing g+h cost bound,
// with the Manhattan-distance heuristic pruning each probe.
//
// A Solver exclusively owns its board and path buffers.
// It is not safe for concurrent use.
type Solver struct {
	Board   *board.Board
	options *Options
	log     *logrus.Logger

	// path accumulates the moves along the current DFS branch;
	// on success it is the solution in play order.
	path []board.Move

	// nextBound tracks the smallest f-value seen above the current bound;
	// it becomes the bound of the next deepening iteration. hasNextBound
	// distinguishes "no candidate yet" from any legitimate cost.
	nextBound    int
	hasNextBound bool

	nodes int
}

// Stats reports the work a Solve call performed.
type Stats struct {
	Nodes    int           // nodes expanded across all probes
	Probes   int           // deepening iterations run
	Bound    int           // cost bound of the last probe
	Duration time.Duration // wall time spent in Solve
}

// New creates a solver for the given board.
func New(b *board.Board, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}

	log := options.Logger
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	return &Solver{
		Board:   b.Clone(),
		options: options,
		log:     log,
	}
}

// Solve searches for a minimal-length move sequence transforming the board
// into the goal arrangement.
//
// An already-solved board yields an empty path without searching. An
// unsolvable board yields ErrNoSolution without searching. On success the
// solver's board is left in the goal arrangement; on failure it is restored
// to its starting arrangement exactly.
func (s *Solver) Solve() ([]board.Move, Stats, error) {
	started := time.Now()
	stats := Stats{}

	finish := func() Stats {
		stats.Nodes = s.nodes
		stats.Duration = time.Since(started)
		return stats
	}

	if s.Board.IsGoal() {
		return nil, finish(), nil
	}
	if !Solvable(s.Board) {
		return nil, finish(), ErrNoSolution
	}

	bound := heuristic(s.Board)
	s.path = s.path[:0]
	s.nodes = 0

	for {
		stats.Probes++
		stats.Bound = bound
		s.hasNextBound = false

		found, err := s.search(0, bound, noMove)
		if err != nil {
			// An error return skips the per-level undo; rewind the branch
			// so the board is bit-for-bit its pre-search arrangement.
			s.rewind()
			return nil, finish(), err
		}
		if found {
			path := make([]board.Move, len(s.path))
			copy(path, s.path)
			return path, finish(), nil
		}

		if !s.hasNextBound {
			// Every branch bottomed out without overflowing the bound.
			// Cannot happen once Solvable has passed; kept as an explicit
			// verdict rather than an assumption.
			return nil, finish(), fmt.Errorf("%w: search space exhausted at bound %d", ErrNoSolution, bound)
		}

		s.log.WithFields(logrus.Fields{
			"bound": bound,
			"next":  s.nextBound,
			"nodes": s.nodes,
		}).Debug("deepening cost bound")
		bound = s.nextBound
	}
}

// rewind undoes every move still on the path, newest first.
func (s *Solver) rewind() {
	for i := len(s.path) - 1; i >= 0; i-- {
		s.Board.Apply(s.path[i].Reverse())
	}
	s.path = s.path[:0]
}

// search runs one bounded depth-first probe from the solver's current
// board. g is the accumulated move count and prev the move that produced
// this node. It reports whether the goal was reached under the bound; when
// it returns false the board and path are exactly as they were on entry.
func (s *Solver) search(g, bound int, prev board.Move) (bool, error) {
	s.nodes++

	h := heuristic(s.Board)
	if f := g + h; f > bound {
		if !s.hasNextBound || f < s.nextBound {
			s.nextBound = f
			s.hasNextBound = true
		}
		return false, nil
	}
	if h == 0 {
		return true, nil
	}

	for _, m := range board.Moves {
		// Undoing the move that got us here only revisits the parent.
		if prev != noMove && m == prev.Reverse() {
			continue
		}
		if len(s.path) >= s.options.MaxMoves {
			return false, fmt.Errorf("%w: %d moves", ErrMoveCapExceeded, s.options.MaxMoves)
		}
		if err := s.Board.Apply(m); err != nil {
			continue // blank would leave the board
		}
		s.path = append(s.path, m)

		found, err := s.search(g+1, bound, m)
		if found || err != nil {
			return found, err
		}

		s.path = s.path[:len(s.path)-1]
		s.Board.Apply(m.Reverse())
	}
	return false, nil
}
