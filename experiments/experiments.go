package experiments

import (
	"fmt"
	"math"
	"time"

	"breakthrough/engine"
	"breakthrough/experiments/metrics"
	"breakthrough/searcher"
	"breakthrough/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

// MatchUp pairs two agents. The first one plays WHITE in even games.
type MatchUp [2]metrics.AgentConfig

// Settings are the knobs shared by the predefined experiments.
type Settings struct {
	Duration       time.Duration
	Episodes       int
	DepthThreshold int
	FanOut         int
	Exploit        float64
	Amplification  int
	Seed           uint64
}

type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps []MatchUp
}

// StrengthExperiment pits the configured MCTS agent against the random baseline.
func StrengthExperiment(s Settings) Experiment {
	mcts := s.agentConfig(1)
	random := metrics.AgentConfig{ID: 2, Kind: metrics.RandomAgent, Seed: s.seed(2)}
	return Experiment{
		Name:     "strength",
		Configs:  []metrics.AgentConfig{mcts, random},
		MatchUps: []MatchUp{{mcts, random}},
	}
}

// DepthExperiment pairs the configured MCTS agent against agents expanding the
// tree to other depths before rolling out.
func DepthExperiment(s Settings) Experiment {
	baseline := s.agentConfig(0)
	configs := []metrics.AgentConfig{baseline}
	var matchUps []MatchUp
	for i, depth := range []int{0, 1, 2, 4, 6} {
		config := s.agentConfig(i + 1)
		config.DepthThreshold = depth
		configs = append(configs, config)
		matchUps = append(matchUps, MatchUp{baseline, config})
	}
	return Experiment{Name: "depth", Configs: configs, MatchUps: matchUps}
}

// FanOutExperiment pairs the configured MCTS agent against agents running
// more or fewer rollouts per frontier visit.
func FanOutExperiment(s Settings) Experiment {
	baseline := s.agentConfig(0)
	configs := []metrics.AgentConfig{baseline}
	var matchUps []MatchUp
	for i, fanOut := range []int{1, 2, 8, 16} {
		config := s.agentConfig(i + 1)
		config.FanOut = fanOut
		configs = append(configs, config)
		matchUps = append(matchUps, MatchUp{baseline, config})
	}
	return Experiment{Name: "fan_out", Configs: configs, MatchUps: matchUps}
}

func (s Settings) agentConfig(id int) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:             id,
		Kind:           metrics.MCTSAgent,
		Duration:       s.Duration,
		Episodes:       s.Episodes,
		DepthThreshold: s.DepthThreshold,
		FanOut:         s.FanOut,
		Exploit:        s.Exploit,
		Amplification:  s.Amplification,
		Seed:           s.seed(id),
	}
}

// seed derives a distinct seed per agent, or leaves seeding to the agent when
// no base seed is set.
func (s Settings) seed(id int) uint64 {
	if s.Seed == 0 {
		return 0
	}
	return s.Seed + uint64(id)
}

// Run plays games per match-up, stores the records with writer and returns
// the game records.
func (e Experiment) Run(games int, writer *metrics.Writer) ([]metrics.GameRecord, error) {
	return Run(e.Name, e.Configs, e.MatchUps, games, writer)
}

// Run plays games per match-up, alternating which agent takes WHITE, then
// writes the agent configs and the game and move records.
func Run(name string, configs []metrics.AgentConfig, matchUps []MatchUp, games int, writer *metrics.Writer) ([]metrics.GameRecord, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < games; i++ {
			white, black := matchUp[0], matchUp[1]
			if i%2 == 1 {
				white, black = black, white
			}

			gameMetric, moveMetrics, err := runGame(white, black)
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				White:      white.ID,
				Black:      black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s", mi+1, len(matchUps), i+1, games, gameMetric.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")

	return gameRecords, nil
}

func runGame(white, black metrics.AgentConfig) (metrics.GameMetric, []metrics.MoveMetric, error) {
	e := engine.NewLocalEngine(createAgent(white), createAgent(black))
	return e.Run()
}

func createAgent(config metrics.AgentConfig) agent.Agent {
	if config.Kind == metrics.RandomAgent {
		seed := config.Seed
		if seed == 0 {
			seed = frand.Uint64n(math.MaxUint64)
		}
		return agent.NewRandomAgent(rand.New(rand.NewSource(seed)))
	}
	return agent.NewEvaluationAgent(createMCTS(config))
}

func createMCTS(config metrics.AgentConfig) *searcher.MCTS {
	options := []searcher.Option{
		searcher.WithDuration(config.Duration),
		searcher.WithEpisodes(config.Episodes),
		searcher.WithDepthThreshold(config.DepthThreshold),
		searcher.WithFanOut(config.FanOut),
		searcher.WithAmplification(config.Amplification),
		searcher.WithMetrics(),
	}
	if config.Exploit > 0 {
		options = append(options, searcher.WithExploitProbability(config.Exploit))
	}
	if config.Seed != 0 {
		options = append(options, searcher.WithSeed(config.Seed))
	}
	return searcher.NewMCTS(options...)
}
