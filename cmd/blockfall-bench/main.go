// Command blockfall-bench plays games headlessly as fast as possible and
// prints a report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/internal/setup"
	"github.com/plus3/blockfall/tetris"
)

// Bench drives a session with an agent and records the results.
type Bench struct {
	session  *engine.Session
	agent    Agent
	width    int
	maxGames int
	report   *Report
}

func NewBench(session *engine.Session, agent Agent, maxGames int, report *Report) *Bench {
	b := &Bench{
		session:  session,
		agent:    agent,
		width:    session.Config().Width,
		maxGames: maxGames,
		report:   report,
	}
	session.Listen(engine.ListenerFunc(func(o engine.Outcome) {
		if o.GameOver {
			b.report.FinalScores = append(b.report.FinalScores, b.session.State().Score)
		}
	}))
	return b
}

// Run plays placements until the context is done, the agent runs out of
// actions or maxGames games have finished.
func (b *Bench) Run(ctx context.Context) {
	for ctx.Err() == nil {
		if b.session.State().GameOver {
			if b.maxGames > 0 && len(b.report.FinalScores) >= b.maxGames {
				return
			}
			b.session.Play(tetris.Reset{})
		}

		actions := b.agent.Next(b.session.State(), b.width)
		if actions == nil {
			return
		}

		start := time.Now()
		for _, action := range actions {
			b.session.Play(action)
		}
		b.report.PlacementTime.Samples = append(b.report.PlacementTime.Samples, time.Since(start))
		b.report.Actions += int64(len(actions))
	}
}

func main() {
	flags := setup.Register(flag.CommandLine)
	duration := flag.Duration("duration", 10*time.Second, "The longest the benchmark may run for.")
	games := flag.Int("games", 0, "Stop after this many finished games. Zero means no limit.")
	script := flag.String("script", "", "Replay this action script instead of playing randomly.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	session, err := flags.NewSession()
	if err != nil {
		log.Fatalf("Failed to create board: %v", err)
	}

	var agent Agent = NewRandomAgent(flags.Seed)
	if *script != "" {
		agent = NewScriptAgent(*script)
	}

	source := "random"
	if flags.Bag {
		source = "bag"
	}
	report := &Report{
		Duration:       *duration,
		MaxGames:       *games,
		Width:          flags.Width,
		Height:         flags.Height,
		Seed:           flags.Seed,
		Source:         source,
		Script:         *script != "",
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running benchmark for up to %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	NewBench(session, agent, *games, report).Run(ctx)
	report.TotalTime = time.Since(startTime)

	report.PlacementTime.Finalize()
	report.Collect(session.Stats())
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Benchmark finished.")

	fmt.Println("\n\n--- Benchmark Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
