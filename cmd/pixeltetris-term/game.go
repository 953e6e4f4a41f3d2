package main

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/pixeltetris/tetris"
)

const (
	// Each board cell is two terminal columns wide so blocks look square.
	cellWidth = 2
	offsetX   = 2
	offsetY   = 1
)

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 60, 70))
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Game renders runner snapshots to a terminal and forwards key presses.
type Game struct {
	screen tcell.Screen
	runner *tetris.Runner
	sound  *sound
	best   atomic.Int64
	redraw chan struct{}
}

func NewGame(screen tcell.Screen, runner *tetris.Runner, snd *sound, best int) *Game {
	g := &Game{
		screen: screen,
		runner: runner,
		sound:  snd,
		redraw: make(chan struct{}, 1),
	}
	g.best.Store(int64(best))
	return g
}

func (g *Game) SetBest(score int) {
	g.best.Store(int64(score))
}

// OnChange schedules a redraw and plays the line clear sound.
func (g *Game) OnChange(prev, next tetris.State) {
	if cleared := next.Lines - prev.Lines; cleared > 0 {
		g.sound.PlayClear(cleared)
	}
	select {
	case g.redraw <- struct{}{}:
	default:
	}
}

func styleFor(c tetris.Color) tcell.Style {
	v := c.Value()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(v.R), int32(v.G), int32(v.B)))
}

func (g *Game) putStr(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (g *Game) putCell(x, y int, r rune, style tcell.Style) {
	sx := offsetX + x*cellWidth
	g.screen.SetContent(sx, offsetY+y, r, nil, style)
	g.screen.SetContent(sx+1, offsetY+y, r, nil, style)
}

func (g *Game) draw() {
	s := g.runner.Snapshot()
	w, h := s.Board.Width(), s.Board.Height()

	g.screen.Clear()

	for y := -1; y <= h; y++ {
		g.screen.SetContent(offsetX-1, offsetY+y, '│', nil, frameStyle)
		g.screen.SetContent(offsetX+w*cellWidth, offsetY+y, '│', nil, frameStyle)
	}
	for x := range w * cellWidth {
		g.screen.SetContent(offsetX+x, offsetY-1, '─', nil, frameStyle)
		g.screen.SetContent(offsetX+x, offsetY+h, '─', nil, frameStyle)
	}

	for y := range h {
		for x := range w {
			g.putCell(x, y, '·', emptyStyle)
		}
	}
	for cell, c := range s.Cells() {
		g.putCell(cell.X(), cell.Y(), '█', styleFor(c))
	}

	panelX := offsetX + w*cellWidth + 3
	g.putStr(panelX, offsetY, fmt.Sprintf("SCORE %d", s.Score), textStyle)
	g.putStr(panelX, offsetY+1, fmt.Sprintf("HIGH  %d", max(int(g.best.Load()), s.Score)), textStyle)
	g.putStr(panelX, offsetY+2, fmt.Sprintf("LINES %d", s.Lines), textStyle)
	g.putStr(panelX, offsetY+3, fmt.Sprintf("SPEED %s", g.runner.Difficulty()), textStyle)
	g.putStr(panelX, offsetY+5, "NEXT", textStyle)

	next := s.Next.WithRotation(0).Translate(-s.Next.X, -s.Next.Y)
	for x, y := range next.Blocks() {
		sx := panelX + x*cellWidth
		g.screen.SetContent(sx, offsetY+6+y, '█', nil, styleFor(s.Next.Color))
		g.screen.SetContent(sx+1, offsetY+6+y, '█', nil, styleFor(s.Next.Color))
	}

	switch s.Phase() {
	case tetris.Paused:
		g.putStr(panelX, offsetY+11, "PAUSED (p)", alertStyle)
	case tetris.GameOver:
		g.putStr(panelX, offsetY+11, "GAME OVER", alertStyle)
		g.putStr(panelX, offsetY+12, "r to restart", textStyle)
	}
	g.putStr(panelX, offsetY+h-1, "←→↓ move  ↑ rotate  q quit", emptyStyle)

	g.screen.Show()
}

// handleInput applies the command bound to ev. It returns false when the
// player asked to quit.
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		if cmd, ok := commandFor(ev); ok {
			// Bound commands are always valid.
			_ = g.runner.Apply(cmd)
		}

	case *tcell.EventResize:
		g.screen.Sync()
		g.draw()
	}
	return true
}

// run draws on every state change and handles input until ctx is done or the
// player quits.
func (g *Game) run(ctx context.Context) {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	g.draw()
	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case <-g.redraw:
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	g.sound.Close()
	g.screen.Fini()
}
