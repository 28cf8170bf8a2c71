package searcher

import (
	"errors"
)

var (
	// ErrGameFinished is returned when a search is requested on a finished board.
	ErrGameFinished = errors.New("cannot search a finished game")
	// ErrNoChildren is returned when the best move is extracted from an unexpanded root.
	ErrNoChildren = errors.New("root has no children")
	// ErrNoLegalMoves is returned when the side to move has nowhere to go on an unfinished board.
	ErrNoLegalMoves = errors.New("no legal moves")
)

// Rand is the source of every random decision taken by the search. It is
// satisfied by *rand.Rand from golang.org/x/exp/rand.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Uint64() uint64
}
