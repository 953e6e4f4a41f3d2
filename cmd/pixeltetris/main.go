package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pixeltetris/highscore"
	"github.com/plus3/pixeltetris/tetris"
	"github.com/plus3/pixeltetris/tetris/debugui"
	debugui_ebiten "github.com/plus3/pixeltetris/tetris/debugui/ebiten"
)

const (
	ScreenWidth  = 480
	ScreenHeight = 680
	DebugWidth   = 1280
	DebugHeight  = 720
)

func main() {
	difficulty := tetris.Easy
	flag.Var(&difficulty, "difficulty", "fall speed: easy, hard or god-tier")
	scorePath := flag.String("highscore", "", "high score file (default: user config dir)")
	seed := flag.Uint64("seed", 0, "piece sequence seed (0 for random)")
	debug := flag.Bool("debug", false, "show the Dear ImGui debug overlay")
	flag.Parse()

	store, err := openStore(*scorePath)
	if err != nil {
		log.Fatalf("Failed to open high score store: %v", err)
	}

	best, err := store.Load()
	if err != nil {
		log.Printf("Warning: could not load high score: %v", err)
	}

	opts := []tetris.RunnerOption{tetris.WithDifficulty(difficulty)}
	if *seed != 0 {
		opts = append(opts, tetris.WithSource(rand.New(rand.NewPCG(*seed, *seed))))
	}
	runner := tetris.NewRunner(opts...)

	game := NewGame(runner, best)
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

	if *debug {
		overlay := debugui.NewOverlay(runner, 120)
		game.imgui = debugui_ebiten.New("Pixel Tetris (debug)", DebugWidth, DebugHeight, overlay)
		game.originX = DebugOffsetX
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("Pixel Tetris")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Runner stopped: %v", err)
		}
	}()

	log.Printf("Starting on %s (fall every %s)", difficulty, difficulty.Interval())
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}

func openStore(path string) (*highscore.Store, error) {
	if path == "" {
		var err error
		if path, err = highscore.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return highscore.NewStore(path), nil
}
