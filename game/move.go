package game

import "fmt"

// Position is a board coordinate, row 0 being BLACK's home row.
type Position struct {
	Row int
	Col int
}

func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

func (p Position) String() string {
	return fmt.Sprintf("(%d;%d)", p.Row, p.Col)
}

// Move relocates the pawn on Start to End, capturing whatever enemy pawn stands there.
type Move struct {
	Start Position
	End   Position
}

func (m Move) String() string {
	return m.Start.String() + "->" + m.End.String()
}
