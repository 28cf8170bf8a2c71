package game

import (
	"errors"
	"strconv"
	"strings"

	"breakthrough/utils"
)

var (
	ErrInvalidPosition = errors.New("position is off the board")
	ErrOccupied        = errors.New("position is already occupied")
	ErrFinished        = errors.New("game is already finished")
)

// Board holds the grid and the pawn lists of both colors. A Board is mutated
// only by Apply; search code works on clones so a Board shared between tree
// nodes and rollouts is never written twice.
type Board struct {
	tiles    [Size][Size]Tile
	whites   []Position // White pawns in insertion order
	blacks   []Position // Black pawns in insertion order
	whiteWon bool
	blackWon bool
}

// NewBoard returns the opening position: BLACK fills the two top rows and
// WHITE the two bottom rows.
func NewBoard() *Board {
	b := NewEmptyBoard()
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pos := Position{Row: row, Col: col}
			if row < 2 {
				b.tiles[row][col] = BlackTile
				b.blacks = append(b.blacks, pos)
			} else if row > Size-3 {
				b.tiles[row][col] = WhiteTile
				b.whites = append(b.whites, pos)
			}
		}
	}
	return b
}

// NewEmptyBoard returns a board without pawns, to be filled with Place.
func NewEmptyBoard() *Board {
	return &Board{
		whites: make([]Position, 0, 2*Size),
		blacks: make([]Position, 0, 2*Size),
	}
}

// Place puts a pawn of the given color on an empty cell.
func (b *Board) Place(pos Position, color Color) error {
	if b.IsFinished() {
		return ErrFinished
	}
	if !pos.Valid() {
		return ErrInvalidPosition
	}
	if b.tiles[pos.Row][pos.Col] != Empty {
		return ErrOccupied
	}
	b.tiles[pos.Row][pos.Col] = tileOf(color)
	if color == White {
		b.whites = append(b.whites, pos)
	} else {
		b.blacks = append(b.blacks, pos)
	}
	return nil
}

func (b *Board) Clone() *Board {
	whites := make([]Position, len(b.whites), cap(b.whites))
	copy(whites, b.whites)
	blacks := make([]Position, len(b.blacks), cap(b.blacks))
	copy(blacks, b.blacks)

	return &Board{
		tiles:    b.tiles, // Arrays are copied by value
		whites:   whites,
		blacks:   blacks,
		whiteWon: b.whiteWon,
		blackWon: b.blackWon,
	}
}

// Play returns a copy of the board with the move applied, leaving b untouched.
func (b *Board) Play(move Move) *Board {
	next := b.Clone()
	next.Apply(move)
	return next
}

// PossibleMoves lists the legal moves of the pawn on pos, in diagonal-left,
// diagonal-right, straight order. An empty cell has no moves.
func (b *Board) PossibleMoves(pos Position) []Move {
	if !pos.Valid() {
		return nil
	}

	var forward int
	var enemy Tile
	switch b.tiles[pos.Row][pos.Col] {
	case WhiteTile:
		forward, enemy = -1, BlackTile
	case BlackTile:
		forward, enemy = 1, WhiteTile
	default:
		return nil
	}

	moves := make([]Move, 0, 3)
	row := pos.Row + forward
	if row < 0 || row >= Size {
		return moves
	}

	for _, col := range [2]int{pos.Col - 1, pos.Col + 1} {
		if col < 0 || col >= Size {
			continue
		}
		if tile := b.tiles[row][col]; tile == Empty || tile == enemy {
			moves = append(moves, Move{Start: pos, End: Position{Row: row, Col: col}})
		}
	}
	if b.tiles[row][pos.Col] == Empty {
		moves = append(moves, Move{Start: pos, End: Position{Row: row, Col: pos.Col}})
	}
	return moves
}

// AllPossibleMoves concatenates the legal moves of every pawn of color.
func (b *Board) AllPossibleMoves(color Color) []Move {
	pawns := b.pawns(color)
	moves := make([]Move, 0, 3*len(pawns))
	for _, pos := range pawns {
		moves = append(moves, b.PossibleMoves(pos)...)
	}
	return moves
}

// Apply plays a legal move and reports whether it did. Anything else (finished
// game, off-board or empty start, move not in PossibleMoves) leaves the board
// unchanged.
func (b *Board) Apply(move Move) bool {
	if b.IsFinished() || !move.Start.Valid() || !move.End.Valid() {
		return false
	}
	mover := b.tiles[move.Start.Row][move.Start.Col]
	if mover == Empty || !utils.Contains(b.PossibleMoves(move.Start), move) {
		return false
	}

	switch mover {
	case WhiteTile:
		b.whites, _ = utils.Remove(b.whites, move.Start)
		b.whites = append(b.whites, move.End)
		b.blacks, _ = utils.Remove(b.blacks, move.End)
		b.whiteWon = move.End.Row == 0 || len(b.blacks) == 0
	case BlackTile:
		b.blacks, _ = utils.Remove(b.blacks, move.Start)
		b.blacks = append(b.blacks, move.End)
		b.whites, _ = utils.Remove(b.whites, move.End)
		b.blackWon = move.End.Row == Size-1 || len(b.whites) == 0
	}
	b.tiles[move.Start.Row][move.Start.Col] = Empty
	b.tiles[move.End.Row][move.End.Col] = mover
	return true
}

// Tile returns the content of pos, Empty for positions off the board.
func (b *Board) Tile(pos Position) Tile {
	if !pos.Valid() {
		return Empty
	}
	return b.tiles[pos.Row][pos.Col]
}

func (b *Board) pawns(color Color) []Position {
	if color == White {
		return b.whites
	}
	return b.blacks
}

// Whites returns a copy of the white pawn positions.
func (b *Board) Whites() []Position {
	return append([]Position(nil), b.whites...)
}

// Blacks returns a copy of the black pawn positions.
func (b *Board) Blacks() []Position {
	return append([]Position(nil), b.blacks...)
}

func (b *Board) PawnCount(color Color) int {
	return len(b.pawns(color))
}

func (b *Board) WhiteHasWon() bool {
	return b.whiteWon
}

func (b *Board) BlackHasWon() bool {
	return b.blackWon
}

func (b *Board) HasWon(color Color) bool {
	return (color == White && b.whiteWon) || (color == Black && b.blackWon)
}

func (b *Board) IsFinished() bool {
	return b.whiteWon || b.blackWon
}

// Winner returns the winning color, if any.
func (b *Board) Winner() (Color, bool) {
	switch {
	case b.whiteWon:
		return White, true
	case b.blackWon:
		return Black, true
	default:
		return White, false
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(" ")
	for col := 0; col < Size; col++ {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(col))
	}
	sb.WriteString("\n")
	for row := 0; row < Size; row++ {
		sb.WriteString(strconv.Itoa(row))
		sb.WriteString("|")
		for col := 0; col < Size; col++ {
			sb.WriteString(b.tiles[row][col].String())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
