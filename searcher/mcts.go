package searcher

import (
	"math"
	"time"

	"breakthrough/experiments/metrics"
	"breakthrough/game"
	"breakthrough/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

type Option func(mcts *MCTS)

// MCTS searches a fresh tree for every move. It is not safe for concurrent
// use: the random source is shared by consecutive searches.
type MCTS struct {
	duration       time.Duration
	episodes       int
	depthThreshold int
	fanOut         int
	exploit        float64
	amplification  int
	rng            Rand
	metrics        metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithEpisodes runs a fixed number of iterations instead of a timed search.
func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithDepthThreshold(depth int) Option {
	return func(m *MCTS) {
		if depth >= 0 {
			m.depthThreshold = depth
		}
	}
}

func WithFanOut(fanOut int) Option {
	return func(m *MCTS) {
		if fanOut > 0 {
			m.fanOut = fanOut
		}
	}
}

func WithExploitProbability(p float64) Option {
	return func(m *MCTS) {
		if p >= 0 && p <= 1 {
			m.exploit = p
		}
	}
}

func WithAmplification(factor int) Option {
	return func(m *MCTS) {
		if factor > 0 {
			m.amplification = factor
		}
	}
}

// WithRand routes every random draw through rng, seeding rollout workers too.
func WithRand(rng Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithSeed is WithRand with a golang.org/x/exp/rand generator.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		duration:       meta.TIME_BUDGET,
		depthThreshold: meta.DEPTH_THRESHOLD,
		fanOut:         meta.FAN_OUT,
		exploit:        meta.EXPLOIT_PROBABILITY,
		amplification:  meta.AMPLIFICATION,
		metrics:        metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(frand.Uint64n(math.MaxUint64)))
	}
	return m
}

// FindMove searches for the configured duration.
func (m *MCTS) FindMove(board *game.Board, color game.Color) (game.Move, metrics.SearchMetric, error) {
	return m.Search(board, color, m.duration)
}

// Search grows a tree rooted at board with color to move until budget has
// elapsed (or the configured episodes have run) and returns the root move with
// the best win rate for color. An iteration in flight is always completed, so
// the budget may be overrun by one iteration.
func (m *MCTS) Search(board *game.Board, color game.Color, budget time.Duration) (game.Move, metrics.SearchMetric, error) {
	if board.IsFinished() {
		return game.Move{}, metrics.SearchMetric{}, ErrGameFinished
	}

	t := newTree(board, color, m)
	m.metrics.Start(m.fanOut, m.depthThreshold)

	var err error
	if m.episodes > 0 {
		err = m.iterate(t)
	} else {
		err = m.countdown(t, budget)
	}
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}

	root := t.root()
	metric := m.metrics.Complete(root.tries, root.score())
	move, err := t.best()
	if err != nil {
		return game.Move{}, metric, err
	}

	log.Debug().
		Int("tries", root.tries).
		Float64("win_rate", root.score()*100).
		Int("nodes", len(t.nodes)).
		Msgf("%s plays %s", color, move)

	return move, metric, nil
}

func (m *MCTS) iterate(t *tree) error {
	for i := 0; i < m.episodes; i++ {
		if _, err := t.iterate(0); err != nil {
			return err
		}
		m.metrics.AddIteration()
	}
	return nil
}

// countdown runs at least one iteration so the root always gets a child.
func (m *MCTS) countdown(t *tree, budget time.Duration) error {
	start := time.Now()
	for {
		if _, err := t.iterate(0); err != nil {
			return err
		}
		m.metrics.AddIteration()
		if time.Since(start) >= budget {
			return nil
		}
	}
}
