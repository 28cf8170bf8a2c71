package agent

import (
	"fmt"

	"breakthrough/experiments/metrics"
	"breakthrough/game"
	"breakthrough/searcher"
)

type randomAgent struct {
	rng searcher.Rand
}

// NewRandomAgent returns a baseline agent sampling uniformly among the legal moves.
func NewRandomAgent(rng searcher.Rand) Agent {
	return randomAgent{rng: rng}
}

func (a randomAgent) FindMove(board *game.Board, color game.Color) (game.Move, metrics.SearchMetric, error) {
	moves := board.AllPossibleMoves(color)
	if board.IsFinished() || len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%s cannot move: %w", color, searcher.ErrNoLegalMoves)
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
