package tetris

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCommand is returned for input that does not name a known command.
var ErrInvalidCommand = errors.New("invalid command")

// Command is a player input. Each maps to one State transition.
type Command int

const (
	MoveLeft Command = iota
	MoveRight
	SoftDrop
	RotateCW
	TogglePause
	Reset
)

var commandNames = map[Command]string{
	MoveLeft:    "left",
	MoveRight:   "right",
	SoftDrop:    "down",
	RotateCW:    "rotate",
	TogglePause: "pause",
	Reset:       "reset",
}

var commandAliases = map[string]Command{
	"moveleft":    MoveLeft,
	"moveright":   MoveRight,
	"softdrop":    SoftDrop,
	"rotatecw":    RotateCW,
	"togglepause": TogglePause,
}

// Commands lists every valid command.
func Commands() []Command {
	return []Command{MoveLeft, MoveRight, SoftDrop, RotateCW, TogglePause, Reset}
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Valid reports whether c is one of the defined commands.
func (c Command) Valid() bool {
	_, ok := commandNames[c]
	return ok
}

// ParseCommand maps a command name, case-insensitively, to a Command.
func ParseCommand(s string) (Command, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for cmd, n := range commandNames {
		if n == name {
			return cmd, nil
		}
	}
	if cmd, ok := commandAliases[strings.ReplaceAll(name, "_", "")]; ok {
		return cmd, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCommand, s)
}
