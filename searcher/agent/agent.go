package agent

import (
	"breakthrough/experiments/metrics"
	"breakthrough/game"
)

type Agent interface {
	// FindMove returns a legal move for color and the metrics collected while finding it
	FindMove(board *game.Board, color game.Color) (game.Move, metrics.SearchMetric, error)
}
