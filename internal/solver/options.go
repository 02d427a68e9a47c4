package solver

import "github.com/sirupsen/logrus"

// DefaultMaxMoves caps the solution length a search will attempt.
const DefaultMaxMoves = 100000

// Options configures search behavior.
type Options struct {
	// MaxMoves caps the path length. A probe that would push past it
	// fails with ErrMoveCapExceeded instead of overflowing the buffer.
	MaxMoves int

	// Logger receives per-iteration progress at Debug level.
	// nil discards all search logging.
	Logger *logrus.Logger
}

// DefaultOptions returns standard search options.
func DefaultOptions() *Options {
	return &Options{
		MaxMoves: DefaultMaxMoves,
	}
}
