package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/tetris"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestPlayerIsDeterministic(t *testing.T) {
	a, b := newPlayer(11), newPlayer(11)
	for range 200 {
		got := a.intents()
		require.Equal(t, got, b.intents())
		for _, intent := range got {
			assert.NotEqual(t, tetris.IntentTogglePause, intent)
			assert.NotEqual(t, tetris.IntentRestart, intent)
		}
	}
}

func TestRunRecordsSessions(t *testing.T) {
	store := highscore.NewStore(highscore.NewMemoryBackend())
	game := tetris.NewGame(
		tetris.WithRandomizer(tetris.NewUniformRandomizer(5)),
		tetris.WithScoreRecorder(store),
	)
	report := &Report{}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	run(ctx, game, newPlayer(5), report, 3)

	require.Len(t, report.Sessions, 3)
	assert.True(t, game.IsGameOver(), "the last session is left finished")
	assert.Positive(t, report.TotalUpdates)
	assert.Positive(t, report.Locks)

	total := 0
	for _, n := range report.Pieces {
		total += n
	}
	assert.GreaterOrEqual(t, total, report.Locks)

	var ticks int64
	for _, s := range report.Sessions {
		ticks += s.Ticks
	}
	assert.Equal(t, report.TotalUpdates, ticks)
	assert.NotEmpty(t, store.Scores())
}

func TestSummary(t *testing.T) {
	r := &Report{Sessions: []Session{
		{Score: 100, Level: 1, Lines: 2, Ticks: 10},
		{Score: 300, Level: 3, Lines: 4, Ticks: 30},
	}}

	sum := r.Summary()
	assert.Equal(t, 2, sum.Count)
	assert.Equal(t, 300, sum.BestScore)
	assert.InDelta(t, 200.0, sum.AvgScore, 1e-9)
	assert.InDelta(t, 3.0, sum.AvgLines, 1e-9)
	assert.Equal(t, 3, sum.MaxLevel)
	assert.InDelta(t, 20.0, sum.AvgTicks, 1e-9)

	assert.Zero(t, (&Report{}).Summary().Count)
}

func TestGenerate(t *testing.T) {
	r := &Report{
		Duration:   time.Second,
		Seed:       9,
		Randomizer: tetris.RandomizerBag,
		Sessions:   []Session{{Score: 120, Level: 1, Lines: 1, Ticks: 600}},
		HighScores: []highscore.Entry{{Name: "stress", Score: 120, Level: 1, Lines: 1}},
		Clears:     [5]int{0, 4, 1, 0, 0},
	}
	r.Pieces[0] = 3
	r.Pieces[1] = 1

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Seed:** 9")
	assert.Contains(t, out, "**Randomizer:** bag")
	assert.Contains(t, out, "**Best Score:** 120")
	assert.Contains(t, out, "- I: 3 (75.0%)")
	assert.Contains(t, out, "- Singles: 4")
	assert.Contains(t, out, "1. stress 120 (level 1, 1 lines)")
}
