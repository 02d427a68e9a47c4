package board

// Move names the direction the blank slides — its own position change, not
// the tile's.
type Move int

const (
	Left Move = iota
	Right
	Up
	Down
)

// Moves lists the four directions in the order search and generation
// enumerate them.
var Moves = [...]Move{Left, Right, Up, Down}

// moveNames holds the exact tokens the CLI emits.
var moveNames = [...]string{"LEFT", "RIGHT", "UP", "DOWN"}

var (
	rowDeltas = [...]int{0, 0, -1, 1}
	colDeltas = [...]int{-1, 1, 0, 0}
)

// String returns the move's output token.
func (m Move) String() string {
	if m < 0 || int(m) >= len(moveNames) {
		return "INVALID"
	}
	return moveNames[m]
}

// RowDelta returns the blank's row change for this move.
func (m Move) RowDelta() int {
	return rowDeltas[m]
}

// ColDelta returns the blank's column change for this move.
func (m Move) ColDelta() int {
	return colDeltas[m]
}

// Reverse returns the move that exactly undoes m.
func (m Move) Reverse() Move {
	switch m {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}
