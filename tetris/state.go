package tetris

import (
	"fmt"
	"iter"
)

// Phase describes whether the fall timer should be running.
type Phase int

const (
	Running Phase = iota
	Paused
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is a complete game snapshot. Transitions return a new State and
// leave the receiver untouched, so a State can be handed to renderers while
// the next one is computed.
type State struct {
	Board    Board
	Current  Piece
	Next     Piece
	Score    int
	Lines    int
	GameOver bool
	Paused   bool
}

// NewState starts a game on an empty standard board with two drawn pieces.
func NewState(src Source) State {
	return NewStateSize(src, GridWidth, GridHeight)
}

// NewStateSize starts a game on an empty width×height board.
func NewStateSize(src Source, width, height int) State {
	current := Draw(src, width)
	next := Draw(src, width)
	return State{
		Board:   NewBoard(width, height),
		Current: current,
		Next:    next,
	}
}

func (s State) Phase() Phase {
	switch {
	case s.GameOver:
		return GameOver
	case s.Paused:
		return Paused
	default:
		return Running
	}
}

// Cells yields every visible occupied cell: the locked board followed by the
// in-bounds blocks of the falling piece. Renderers draw exactly this.
func (s State) Cells() iter.Seq2[Cell, Color] {
	return func(yield func(Cell, Color) bool) {
		for cell, color := range s.Board.Cells() {
			if !yield(cell, color) {
				return
			}
		}
		if s.GameOver {
			return
		}
		for x, y := range s.Current.Blocks() {
			if !s.Board.inBounds(x, y) {
				continue
			}
			if !yield(NewCell(x, y), s.Current.Color) {
				return
			}
		}
	}
}

func (s State) active() bool {
	return !s.GameOver && !s.Paused
}

// Tick advances the fall by one row. When the piece cannot fall it is locked,
// full rows are cleared and scored, the next piece is promoted and a new one
// drawn from src. The game ends if the promoted piece does not fit.
func (s State) Tick(src Source) State {
	if !s.active() {
		return s
	}

	candidate := s.Current.Translate(0, 1)
	if s.Board.Valid(candidate) {
		s.Current = candidate
		return s
	}

	board, cleared := s.Board.Lock(s.Current).ClearLines()
	s.Board = board
	s.Score += LineScore(cleared)
	s.Lines += cleared

	s.Current = s.Next
	s.Next = Draw(src, s.Board.Width())
	if !s.Board.Valid(s.Current) {
		s.GameOver = true
	}
	return s
}

// Move shifts the piece horizontally when the target position is free.
func (s State) Move(dx int) State {
	return s.adopt(s.Current.Translate(dx, 0))
}

// SoftDrop moves the piece down one row when possible. It never locks.
func (s State) SoftDrop() State {
	return s.adopt(s.Current.Translate(0, 1))
}

// Rotate turns the piece clockwise in place. There are no wall kicks; a
// rotation that collides is dropped.
func (s State) Rotate() State {
	return s.adopt(s.Current.WithRotation(s.Current.Rotation + 1))
}

func (s State) SetPaused(paused bool) State {
	s.Paused = paused
	return s
}

func (s State) adopt(candidate Piece) State {
	if !s.active() || !s.Board.Valid(candidate) {
		return s
	}
	s.Current = candidate
	return s
}

// Apply runs the transition for cmd. Unknown commands leave the state
// untouched and return ErrInvalidCommand.
func (s State) Apply(cmd Command, src Source) (State, error) {
	switch cmd {
	case MoveLeft:
		return s.Move(-1), nil
	case MoveRight:
		return s.Move(1), nil
	case SoftDrop:
		return s.SoftDrop(), nil
	case RotateCW:
		return s.Rotate(), nil
	case TogglePause:
		return s.SetPaused(!s.Paused), nil
	case Reset:
		if s.Board.Width() == 0 || s.Board.Height() == 0 {
			return NewState(src), nil
		}
		return NewStateSize(src, s.Board.Width(), s.Board.Height()), nil
	default:
		return s, fmt.Errorf("%w: %v", ErrInvalidCommand, cmd)
	}
}
