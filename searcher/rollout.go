package searcher

import (
	"fmt"

	"breakthrough/game"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// rollout plays uniformly random moves on a private copy of board, starting
// with mover, and returns 1 if target won the finished game.
func rollout(board *game.Board, mover, target game.Color, rng Rand) (int, error) {
	board = board.Clone()
	for !board.IsFinished() {
		moves := board.AllPossibleMoves(mover)
		if len(moves) == 0 {
			return 0, fmt.Errorf("rollout stalled: %w for %s", ErrNoLegalMoves, mover)
		}
		board.Apply(moves[rng.Intn(len(moves))]) // Random rollout policy
		mover = mover.Opposite()
	}

	if board.HasWon(target) {
		return 1, nil
	}
	return 0, nil
}

// playouts runs one rollout per seed concurrently, blocks until all of them
// are done and returns the number of wins for target.
func playouts(board *game.Board, mover, target game.Color, seeds []uint64) (int, error) {
	results := make([]int, len(seeds))

	var g errgroup.Group
	for i, seed := range seeds {
		g.Go(func() error {
			score, err := rollout(board, mover, target, rand.New(rand.NewSource(seed)))
			results[i] = score
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	wins := 0
	for _, score := range results {
		wins += score
	}
	return wins, nil
}
