package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/pixeltetris/highscore"
	"github.com/plus3/pixeltetris/tetris"
)

func main() {
	difficulty := tetris.Easy
	flag.Var(&difficulty, "difficulty", "fall speed: easy, hard or god-tier")
	scorePath := flag.String("highscore", "", "high score file (default: user config dir)")
	seed := flag.Uint64("seed", 0, "piece sequence seed (0 for random)")
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", "", "write logs to this file (the terminal is owned by the game)")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if *scorePath == "" {
		path, err := highscore.DefaultPath()
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("Failed to locate high score file: %v", err)
		}
		*scorePath = path
	}
	store := highscore.NewStore(*scorePath)

	best, err := store.Load()
	if err != nil {
		log.Printf("Warning: could not load high score: %v", err)
	}

	opts := []tetris.RunnerOption{tetris.WithDifficulty(difficulty)}
	if *seed != 0 {
		opts = append(opts, tetris.WithSource(rand.New(rand.NewPCG(*seed, *seed))))
	}
	runner := tetris.NewRunner(opts...)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	snd := newSound()
	if !*mute {
		if err := snd.Initialize(); err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	game := NewGame(screen, runner, snd, best)
	defer game.cleanup()

	runner.OnChange(game.OnChange)
	runner.OnChange(func(prev, next tetris.State) {
		if prev.GameOver || !next.GameOver {
			return
		}
		saved, err := store.Record(next.Score)
		if err != nil {
			log.Printf("Warning: could not save high score: %v", err)
			return
		}
		if saved {
			game.SetBest(next.Score)
			log.Printf("New high score: %d", next.Score)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Runner stopped: %v", err)
		}
	}()

	log.Printf("Starting on %s (fall every %s)", difficulty, difficulty.Interval())
	game.run(ctx)
}
