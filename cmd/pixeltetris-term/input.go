package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/pixeltetris/tetris"
)

var keyCommands = map[tcell.Key]tetris.Command{
	tcell.KeyLeft:  tetris.MoveLeft,
	tcell.KeyRight: tetris.MoveRight,
	tcell.KeyDown:  tetris.SoftDrop,
	tcell.KeyUp:    tetris.RotateCW,
}

var runeCommands = map[rune]tetris.Command{
	'a': tetris.MoveLeft,
	'h': tetris.MoveLeft,
	'd': tetris.MoveRight,
	'l': tetris.MoveRight,
	's': tetris.SoftDrop,
	'j': tetris.SoftDrop,
	'w': tetris.RotateCW,
	'k': tetris.RotateCW,
	'p': tetris.TogglePause,
	' ': tetris.TogglePause,
	'r': tetris.Reset,
}

// isQuit reports whether ev should end the program.
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// commandFor maps a key event to a game command.
func commandFor(ev *tcell.EventKey) (tetris.Command, bool) {
	if ev.Key() == tcell.KeyRune {
		cmd, ok := runeCommands[ev.Rune()]
		return cmd, ok
	}
	cmd, ok := keyCommands[ev.Key()]
	return cmd, ok
}
