package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize  = errors.New("board side length out of range")
	ErrInvalidTiles = errors.New("tiles are not a permutation of 0..k²-1")
	ErrIllegalMove  = errors.New("move slides the blank off the board")
)

// validateSize checks the side length against the supported range.
func validateSize(k int) error {
	if k < 1 || k > MaxK {
		return fmt.Errorf("%w: k must be in [1, %d], got %d", ErrInvalidSize, MaxK, k)
	}
	return nil
}

// validateTiles checks that tiles is a permutation of 0..k²-1.
// Exactly one blank follows from the permutation property.
func validateTiles(k int, tiles []int) error {
	n := k * k
	if len(tiles) != n {
		return fmt.Errorf("%w: expected %d values, got %d", ErrInvalidTiles, n, len(tiles))
	}

	seen := make([]bool, n)
	for pos, v := range tiles {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: value %d at position %d out of range [0, %d)", ErrInvalidTiles, v, pos, n)
		}
		if seen[v] {
			return fmt.Errorf("%w: duplicate value %d at position %d", ErrInvalidTiles, v, pos)
		}
		seen[v] = true
	}
	return nil
}
