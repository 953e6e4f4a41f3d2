package main

import (
	"fmt"
	"image/color"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/pixeltetris/tetris"
	debugui_ebiten "github.com/plus3/pixeltetris/tetris/debugui/ebiten"
)

const (
	CellSize = 30
	OffsetX  = 20
	OffsetY  = 20

	// With the overlay on, the board sits right of the imgui windows.
	DebugOffsetX = 660

	// Held movement keys repeat after repeatDelay ticks, every repeatEvery ticks.
	repeatDelay = 12
	repeatEvery = 4
)

var (
	backgroundColor = color.RGBA{30, 30, 36, 255}
	gridColor       = color.RGBA{45, 45, 54, 255}
	frameColor      = color.RGBA{128, 128, 128, 255}
)

type binding struct {
	keys    []ebiten.Key
	command tetris.Command
	repeat  bool
}

var bindings = []binding{
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, tetris.MoveLeft, true},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, tetris.MoveRight, true},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, tetris.SoftDrop, true},
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, tetris.RotateCW, false},
	{[]ebiten.Key{ebiten.KeyP, ebiten.KeySpace}, tetris.TogglePause, false},
	{[]ebiten.Key{ebiten.KeyR}, tetris.Reset, false},
}

// Game implements ebiten.Game. It only reads runner snapshots and turns key
// presses into commands.
type Game struct {
	runner  *tetris.Runner
	best    atomic.Int64
	imgui   *debugui_ebiten.ImguiBackend
	originX int
}

func NewGame(runner *tetris.Runner, best int) *Game {
	g := &Game{runner: runner, originX: OffsetX}
	g.best.Store(int64(best))
	return g
}

func (g *Game) SetBest(score int) {
	g.best.Store(int64(score))
}

func triggered(key ebiten.Key, repeat bool) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return repeat && d >= repeatDelay && (d-repeatDelay)%repeatEvery == 0
}

func (g *Game) Update() error {
	if g.imgui != nil {
		g.imgui.Frame()
		if g.imgui.WantsKeyboard() {
			return nil
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	for _, b := range bindings {
		for _, key := range b.keys {
			if triggered(key, b.repeat) {
				if err := g.runner.Apply(b.command); err != nil {
					return err
				}
				break
			}
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	s := g.runner.Snapshot()
	g.drawBoard(screen, s)
	g.drawPanel(screen, s)

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) drawBoard(screen *ebiten.Image, s tetris.State) {
	w, h := float32(s.Board.Width()*CellSize), float32(s.Board.Height()*CellSize)
	vector.StrokeRect(screen, float32(g.originX-2), OffsetY-2, w+4, h+4, 2, frameColor, false)

	for y := range s.Board.Height() {
		for x := range s.Board.Width() {
			drawCell(screen, g.originX, OffsetY, x, y, gridColor)
		}
	}
	for cell, c := range s.Cells() {
		drawCell(screen, g.originX, OffsetY, cell.X(), cell.Y(), c)
	}

	switch s.Phase() {
	case tetris.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED - press P", g.originX+90, OffsetY+int(h)/2)
	case tetris.GameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", g.originX+115, OffsetY+int(h)/2-10)
		ebitenutil.DebugPrintAt(screen, "Press R to restart", g.originX+90, OffsetY+int(h)/2+10)
	}
}

func (g *Game) drawPanel(screen *ebiten.Image, s tetris.State) {
	textX := g.originX + s.Board.Width()*CellSize + 30

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE\n%d", s.Score), textX, OffsetY)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HIGH\n%d", max(int(g.best.Load()), s.Score)), textX, OffsetY+40)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES\n%d", s.Lines), textX, OffsetY+80)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SPEED\n%s", g.runner.Difficulty()), textX, OffsetY+120)
	ebitenutil.DebugPrintAt(screen, "NEXT", textX, OffsetY+170)

	const preview = CellSize / 2
	for x, y := range s.Next.WithRotation(0).Translate(-s.Next.X, -s.Next.Y).Blocks() {
		vector.DrawFilledRect(screen,
			float32(textX+x*preview), float32(OffsetY+190+y*preview),
			preview-1, preview-1, s.Next.Color, false)
	}
}

func drawCell(screen *ebiten.Image, offsetX, offsetY, x, y int, c color.Color) {
	vector.DrawFilledRect(screen,
		float32(offsetX+x*CellSize+1), float32(offsetY+y*CellSize+1),
		CellSize-2, CellSize-2, c, false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return ScreenWidth, ScreenHeight
}
