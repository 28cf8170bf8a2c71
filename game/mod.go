package game

// Size is the number of rows and columns of the board.
const Size = 8

// Color identifies the owner of a pawn and the side to move.
type Color int

const (
	White Color = iota
	Black
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// Tile is the content of a single board cell.
type Tile int

const (
	Empty Tile = iota
	WhiteTile
	BlackTile
)

func (t Tile) String() string {
	switch t {
	case WhiteTile:
		return "W"
	case BlackTile:
		return "B"
	case Empty:
		return "."
	default:
		return "X"
	}
}

func tileOf(c Color) Tile {
	if c == White {
		return WhiteTile
	}
	return BlackTile
}
