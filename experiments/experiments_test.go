package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"breakthrough/experiments/metrics"
	"breakthrough/meta"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	mcts := metrics.AgentConfig{ID: 1, Kind: metrics.MCTSAgent, Episodes: 5, DepthThreshold: 0, FanOut: 1, Seed: 3}
	random := metrics.AgentConfig{ID: 2, Kind: metrics.RandomAgent, Seed: 4}
	writer, err := metrics.NewWriter(t.TempDir(), "test")
	require.NoError(t, err)

	records, err := Run("test", []metrics.AgentConfig{mcts, random}, []MatchUp{{mcts, random}}, 2, writer)

	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, 1, records[0].White, "First agent should start the first game")
	require.Equal(t, 2, records[0].Black)
	require.Equal(t, 2, records[1].White, "Colors should alternate")
	require.Equal(t, 1, records[1].Black)
	for _, record := range records {
		require.NotEmpty(t, record.Winner)
		require.Positive(t, record.TotalMoves)
	}
	for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		_, err := os.Stat(filepath.Join(writer.Dir(), name))
		require.NoError(t, err, "%s should be written", name)
	}
}

func TestPredefinedExperiments(t *testing.T) {
	s := Settings{Episodes: 10, DepthThreshold: meta.DEPTH_THRESHOLD, FanOut: meta.FAN_OUT, Seed: 100}

	t.Run("strength", func(t *testing.T) {
		e := StrengthExperiment(s)

		require.Len(t, e.MatchUps, 1)
		require.Equal(t, metrics.MCTSAgent, e.MatchUps[0][0].Kind)
		require.Equal(t, metrics.RandomAgent, e.MatchUps[0][1].Kind)
		require.NotEqual(t, e.Configs[0].Seed, e.Configs[1].Seed)
	})

	t.Run("depth", func(t *testing.T) {
		e := DepthExperiment(s)

		require.Len(t, e.Configs, len(e.MatchUps)+1)
		for _, matchUp := range e.MatchUps {
			require.Equal(t, meta.DEPTH_THRESHOLD, matchUp[0].DepthThreshold)
			require.NotEqual(t, meta.DEPTH_THRESHOLD, matchUp[1].DepthThreshold)
		}
	})

	t.Run("fan-out", func(t *testing.T) {
		e := FanOutExperiment(s)

		for _, matchUp := range e.MatchUps {
			require.Equal(t, meta.FAN_OUT, matchUp[0].FanOut)
			require.NotEqual(t, meta.FAN_OUT, matchUp[1].FanOut)
		}
	})

	t.Run("unseeded", func(t *testing.T) {
		e := StrengthExperiment(Settings{})

		require.Zero(t, e.Configs[0].Seed)
		require.Zero(t, e.Configs[1].Seed)
	})
}
