package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pixeltetris/tetris"
	"github.com/plus3/pixeltetris/tetris/debugui"
	debugui_ebiten "github.com/plus3/pixeltetris/tetris/debugui/ebiten"
)

// Game drives a runner and draws the debug overlay on top of the board.
type Game struct {
	runner *tetris.Runner
	imgui  *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	g.imgui.Frame()

	if !g.imgui.WantsKeyboard() && ebiten.IsKeyPressed(ebiten.KeyP) {
		_ = g.runner.Apply(tetris.TogglePause)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the board from g.runner.Snapshot()
	// ...

	// Draw ImGui overlay on top
	g.imgui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imgui.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	runner := tetris.NewRunner(tetris.WithDifficulty(tetris.Hard))
	overlay := debugui.NewOverlay(runner, 120)

	game := &Game{
		runner: runner,
		imgui:  debugui_ebiten.New("Tetris Debug", 1280, 720, overlay),
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
