package agent

import (
	"testing"

	"breakthrough/game"
	"breakthrough/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRandomAgent(t *testing.T) {
	t.Run("playing a legal move", func(t *testing.T) {
		a := NewRandomAgent(rand.New(rand.NewSource(1)))
		board := game.NewBoard()

		for i := 0; i < 20; i++ {
			move, _, err := a.FindMove(board, game.Black)

			require.NoError(t, err)
			require.Contains(t, board.AllPossibleMoves(game.Black), move)
		}
	})

	t.Run("refusing a finished game", func(t *testing.T) {
		a := NewRandomAgent(rand.New(rand.NewSource(1)))
		board := game.NewEmptyBoard()
		require.NoError(t, board.Place(game.Position{Row: 1, Col: 1}, game.White))
		require.NoError(t, board.Place(game.Position{Row: 4, Col: 1}, game.Black))
		require.True(t, board.Apply(game.Move{Start: game.Position{Row: 1, Col: 1}, End: game.Position{Row: 0, Col: 1}}))

		_, _, err := a.FindMove(board, game.Black)

		require.ErrorIs(t, err, searcher.ErrNoLegalMoves)
	})
}

func TestEvaluationAgent(t *testing.T) {
	board := game.NewEmptyBoard()
	require.NoError(t, board.Place(game.Position{Row: 1, Col: 0}, game.White))
	require.NoError(t, board.Place(game.Position{Row: 0, Col: 1}, game.Black))
	a := NewEvaluationAgent(searcher.NewMCTS(searcher.WithEpisodes(20), searcher.WithSeed(2), searcher.WithMetrics()))

	move, metric, err := a.FindMove(board, game.White)

	require.NoError(t, err)
	require.Equal(t, 0, move.End.Row, "White should move to the black home row")
	require.Equal(t, 20, metric.Iterations)
	require.True(t, board.Apply(move))
	require.True(t, board.WhiteHasWon())
}
