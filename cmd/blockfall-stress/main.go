// Command blockfall-stress plays sessions with random input as fast as it can
// and prints a report of tick timings and game statistics.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/tetris"
)

const tickDelta = 1.0 / 60.0

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	maxSessions := flag.Int("sessions", 0, "Stop after this many finished sessions (0 means no limit).")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")

	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	seed := cfg.Seeded(time.Now())

	log.Println("Starting blockfall stress test...")

	store := highscore.NewStore(highscore.NewMemoryBackend())
	randomizer, err := tetris.NewRandomizer(cfg.Randomizer, seed)
	if err != nil {
		log.Fatalf("Failed to create randomizer: %v", err)
	}
	game := tetris.NewGame(
		tetris.WithRandomizer(randomizer),
		tetris.WithScoreRecorder(store),
		tetris.WithPlayerName("stress"),
	)

	report := &Report{
		Duration:       *duration,
		Seed:           seed,
		Randomizer:     cfg.Randomizer,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running sessions for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	run(ctx, game, newPlayer(seed), report, *maxSessions)

	report.UpdateTime.Finalize()
	report.HighScores = store.Scores()
	report.Systems = game.Scheduler().GetStats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// run ticks game until ctx is done or maxSessions sessions have finished.
// Finished sessions are recorded in report and restarted.
func run(ctx context.Context, game *tetris.Game, p *player, report *Report, maxSessions int) {
	startTime := time.Now()
	var sessionTicks int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			game.Submit(p.intents()...)

			updateStart := time.Now()
			game.Update(tickDelta)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
			sessionTicks++

			if !game.IsGameOver() {
				continue
			}

			report.Sessions = append(report.Sessions, Session{
				Score: game.Score(),
				Level: game.Level(),
				Lines: game.Lines(),
				Ticks: sessionTicks,
			})
			report.Absorb(game.Stats())
			sessionTicks = 0

			if maxSessions > 0 && len(report.Sessions) >= maxSessions {
				break Loop
			}
			game.Restart()
		}
	}

	report.TotalTime = time.Since(startTime)
}
