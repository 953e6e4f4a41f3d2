package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/plus3/pixeltetris/tetris"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	tick := flag.Duration("tick", time.Millisecond, "Fall interval used instead of the difficulty speed.")
	workers := flag.Int("workers", 4, "Goroutines issuing random commands concurrently.")
	seed := flag.Uint64("seed", 0, "Piece and command seed (0 for random).")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *seed == 0 {
		*seed = rand.Uint64()
	}

	log.Println("Starting tetris stress test...")

	runner := tetris.NewRunner(
		tetris.WithSource(rand.New(rand.NewPCG(*seed, 0))),
		tetris.WithTickInterval(*tick),
	)

	report := &Report{
		Duration:       *duration,
		TickInterval:   *tick,
		Workers:        *workers,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
	}

	var gamesMu sync.Mutex
	runner.OnChange(func(prev, next tetris.State) {
		if prev.GameOver || !next.GameOver {
			return
		}
		gamesMu.Lock()
		report.Games = append(report.Games, GameResult{Score: next.Score, Lines: next.Lines})
		gamesMu.Unlock()
	})

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s with %d workers...\n", *duration, *workers)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	runDone := make(chan error, 1)
	go func() {
		runDone <- runner.Run(ctx)
	}()

	startTime := time.Now()
	results := make(chan workerResult, *workers)
	for w := range *workers {
		go func() {
			results <- drive(ctx, runner, rand.New(rand.NewPCG(*seed, uint64(w)+1)))
		}()
	}

	for range *workers {
		res := <-results
		report.CommandTime.Samples = append(report.CommandTime.Samples, res.samples...)
		report.Violations += res.violations
	}

	if err := <-runDone; err != nil && !errors.Is(err, context.DeadlineExceeded) {
		log.Fatalf("Runner failed: %v", err)
	}

	gamesMu.Lock()
	defer gamesMu.Unlock()

	report.TotalTime = time.Since(startTime)
	report.Runner = runner.Stats()
	report.Final = runner.Snapshot()
	report.CommandTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Stress run finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if report.Violations > 0 {
		log.Fatalf("Stress test found %d invariant violations.", report.Violations)
	}
	log.Println("Stress test complete.")
}

type workerResult struct {
	samples    []time.Duration
	violations int
}

// playable excludes TogglePause so the run keeps ticking; Reset is issued
// only after a game ends.
var playable = []tetris.Command{tetris.MoveLeft, tetris.MoveRight, tetris.SoftDrop, tetris.RotateCW}

// drive issues random commands until ctx is done, restarting finished games
// and checking board invariants on every snapshot.
func drive(ctx context.Context, runner *tetris.Runner, rng *rand.Rand) workerResult {
	var res workerResult
	for ctx.Err() == nil {
		cmd := playable[rng.IntN(len(playable))]

		start := time.Now()
		if err := runner.Apply(cmd); err != nil {
			res.violations++
		}
		res.samples = append(res.samples, time.Since(start))

		s := runner.Snapshot()
		res.violations += checkInvariants(s)

		if s.GameOver {
			_ = runner.Apply(tetris.Reset)
		}
	}
	return res
}

// checkInvariants counts broken board invariants in s: out-of-range cells,
// uncleared full rows and a running piece overlapping the board.
func checkInvariants(s tetris.State) int {
	violations := 0
	for cell := range s.Board.Cells() {
		if cell.X() >= s.Board.Width() || cell.Y() >= s.Board.Height() {
			violations++
		}
	}
	violations += len(s.Board.FullRows())
	if !s.GameOver && !s.Board.Valid(s.Current) {
		violations++
	}
	return violations
}
