package board

import (
	"strconv"
	"strings"
)

// Special tile values and size limits
const (
	// Blank is the tile value marking the empty cell.
	Blank = 0

	// MaxK bounds the supported board side length.
	MaxK = 5
)

// Board represents a k×k sliding-tile board.
//
// Tiles hold a permutation of 0..k²-1 in row-major order; the value 0 is
// the blank. The goal arrangement is ascending row-major order, which puts
// the blank at the top-left corner.
type Board struct {
	k     int
	tiles []int

	// blank caches the linear position of the blank cell.
	// Once initialized, blank should only be touched inside Apply.
	blank int
}

// New creates a solved k×k board: tiles in ascending order, blank at top-left.
func New(k int) (*Board, error) {
	if err := validateSize(k); err != nil {
		return nil, err
	}
	tiles := make([]int, k*k)
	for pos := range tiles {
		tiles[pos] = pos
	}
	return &Board{k: k, tiles: tiles, blank: 0}, nil
}

// NewFromTiles creates a Board from the given row-major tile values.
// tiles must be a permutation of 0..k²-1 with exactly one zero.
// The slice is copied; the caller keeps ownership of its argument.
func NewFromTiles(k int, tiles []int) (*Board, error) {
	if err := validateSize(k); err != nil {
		return nil, err
	}
	if err := validateTiles(k, tiles); err != nil {
		return nil, err
	}

	b := &Board{k: k, tiles: make([]int, len(tiles))}
	copy(b.tiles, tiles)
	for pos, v := range b.tiles {
		if v == Blank {
			b.blank = pos
		}
	}
	return b, nil
}

// Clone creates an independent copy of the Board.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := *b
	clone.tiles = make([]int, len(b.tiles))
	copy(clone.tiles, b.tiles)
	return &clone
}

// Size returns the board side length k.
func (b *Board) Size() int {
	return b.k
}

// CellCount returns the number of cells, k².
func (b *Board) CellCount() int {
	return len(b.tiles)
}

// Get returns the tile value at the given position.
// Returns -1 for invalid positions.
func (b *Board) Get(pos int) int {
	if pos < 0 || pos >= len(b.tiles) {
		return -1
	}
	return b.tiles[pos]
}

// BlankPos returns the linear position of the blank cell.
func (b *Board) BlankPos() int {
	return b.blank
}

// Row returns the row of a linear position.
func (b *Board) Row(pos int) int {
	return pos / b.k
}

// Col returns the column of a linear position.
func (b *Board) Col(pos int) int {
	return pos % b.k
}

// MakePos transforms a row and column into a linear position.
// Returns -1 if row and/or col are out of bounds.
func (b *Board) MakePos(row, col int) int {
	if row < 0 || row >= b.k || col < 0 || col >= b.k {
		return -1
	}
	return row*b.k + col
}

// GoalRow returns the row the given tile value occupies in the goal
// arrangement. The blank's goal cell is (0,0).
func (b *Board) GoalRow(v int) int {
	return v / b.k
}

// GoalCol returns the column the given tile value occupies in the goal
// arrangement.
func (b *Board) GoalCol(v int) int {
	return v % b.k
}

// IsGoal reports whether the board is in the goal arrangement.
func (b *Board) IsGoal() bool {
	for pos, v := range b.tiles {
		if v != pos {
			return false
		}
	}
	return true
}

// Equal reports whether two boards hold identical arrangements.
func (b *Board) Equal(other *Board) bool {
	if b.k != other.k {
		return false
	}
	for pos, v := range b.tiles {
		if other.tiles[pos] != v {
			return false
		}
	}
	return true
}

// Apply slides the blank one cell in direction m, swapping it with the
// neighboring tile. The board is mutated in place.
// Returns ErrIllegalMove if the blank would leave the board; the board is
// unchanged on error. Applying m and then m.Reverse() restores the board
// exactly.
func (b *Board) Apply(m Move) error {
	row, col := b.Row(b.blank), b.Col(b.blank)
	next := b.MakePos(row+m.RowDelta(), col+m.ColDelta())
	if next == -1 {
		return ErrIllegalMove
	}

	b.tiles[b.blank] = b.tiles[next]
	b.tiles[next] = Blank
	b.blank = next
	return nil
}

// String returns the tile values space-separated in row-major order.
func (b *Board) String() string {
	var sb strings.Builder
	for pos, v := range b.tiles {
		if pos > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// Format returns a human-readable grid, one row per line, the blank shown
// as '.'.
func (b *Board) Format() string {
	// Widest tile value decides the column width.
	width := len(strconv.Itoa(len(b.tiles) - 1))

	var sb strings.Builder
	for row := 0; row < b.k; row++ {
		for col := 0; col < b.k; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			v := b.tiles[b.MakePos(row, col)]
			cell := "."
			if v != Blank {
				cell = strconv.Itoa(v)
			}
			for pad := len(cell); pad < width; pad++ {
				sb.WriteByte(' ')
			}
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
