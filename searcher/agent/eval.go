package agent

import (
	"breakthrough/experiments/metrics"
	"breakthrough/game"
	"breakthrough/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns a new agent playing the best move found by mcts.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(board *game.Board, color game.Color) (game.Move, metrics.SearchMetric, error) {
	return a.mcts.FindMove(board, color)
}
