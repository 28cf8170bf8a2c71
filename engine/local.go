package engine

import (
	"errors"
	"fmt"
	"time"

	"breakthrough/experiments/metrics"
	"breakthrough/game"
	"breakthrough/meta"
	"breakthrough/searcher/agent"

	"github.com/rs/zerolog/log"
)

var ErrIllegalMove = errors.New("illegal move")

// Observer is called after every applied move, e.g. to redraw the pawns.
type Observer func(move game.Move, board *game.Board)

type Option func(e *LocalEngine)

type LocalEngine struct {
	Board    *game.Board
	agents   [2]agent.Agent // Indexed by game.Color
	maxTurns int
	observer Observer
}

// WithBoard starts the game from a custom position instead of the opening.
func WithBoard(board *game.Board) Option {
	return func(e *LocalEngine) {
		if board != nil {
			e.Board = board
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(e *LocalEngine) {
		e.observer = observer
	}
}

func NewLocalEngine(white, black agent.Agent, options ...Option) *LocalEngine {
	if white == nil || black == nil {
		panic("need an agent for each color")
	}

	e := &LocalEngine{
		Board:    game.NewBoard(),
		agents:   [2]agent.Agent{game.White: white, game.Black: black},
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run alternates the agents, white first, until the board is finished.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: game.White.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", game.White)

	color := game.White
	turn := 1
	for !e.Board.IsFinished() && turn <= e.maxTurns {
		move, searchMetric, err := e.agents[color].FindMove(e.Board.Clone(), color)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("turn %d: %s failed to find a move: %w", turn, color, err)
		}
		if !e.Board.Apply(move) {
			return gameMetric, moveMetrics, fmt.Errorf("turn %d: %s played %s: %w", turn, color, move, ErrIllegalMove)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       color.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Int("turn", turn).Stringer("player", color).Stringer("move", move).Msg("move played")

		if e.observer != nil {
			e.observer(move, e.Board)
		}
		color = color.Opposite()
		turn++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if winner, ok := e.Board.Winner(); ok {
		gameMetric.Winner = winner.String()
		log.Info().Msgf("game over after %d moves, winner: %s", gameMetric.TotalMoves, winner)
	} else {
		log.Info().Msgf("stopped after %d moves (no winner yet)", gameMetric.TotalMoves)
	}

	return gameMetric, moveMetrics, nil
}
