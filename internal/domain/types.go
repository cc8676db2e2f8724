package domain

import (
	"fmt"

	"github.com/iamasit07/power-connect-four/internal/container"
)

// Token identifies which player owns a cell. The zero value is an empty cell.
type Token int

const (
	Empty  Token = 0
	Red    Token = 1
	Yellow Token = 2
)

// Red always moves first.
const (
	FirstPlayer  = Red
	SecondPlayer = Yellow
)

// for board representation
const (
	NumCols = 7
	// MinRows is the smallest row capacity the board shrinks back to.
	MinRows = 6
	ToWin   = 4
	// MarginRows is the number of empty rows kept above the tallest column.
	MarginRows = 1
)

// EmptySymbol is the default glyph for an empty cell.
const EmptySymbol = '-'

func (t Token) Symbol() rune {
	switch t {
	case Red:
		return 'R'
	case Yellow:
		return 'Y'
	default:
		return EmptySymbol
	}
}

func (t Token) String() string {
	switch t {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	default:
		return "Empty"
	}
}

// Opponent returns the other player's token, or Empty for Empty.
func (t Token) Opponent() Token {
	switch t {
	case Red:
		return Yellow
	case Yellow:
		return Red
	default:
		return Empty
	}
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

type MoveKind string

const (
	MoveDrop      MoveKind = "drop"
	MovePop       MoveKind = "pop"
	MovePowerDrop MoveKind = "power_drop"
	MovePowerPop  MoveKind = "power_pop"
)

// Move is a single action by the current player. Row is ignored by drop and pop.
type Move struct {
	Kind MoveKind
	Col  int
	Row  int
}

func (m Move) String() string {
	switch m.Kind {
	case MovePowerDrop, MovePowerPop:
		return fmt.Sprintf("%s(%d,%d)", m.Kind, m.Col, m.Row)
	default:
		return fmt.Sprintf("%s(%d)", m.Kind, m.Col)
	}
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrIllegalMove     Error = "illegal move"
	ErrUnknownMove     Error = "unknown move kind"
	ErrGameOver        Error = "game is over"
	ErrSessionNotFound Error = "session not found"

	// ErrOutOfRange is shared with the column storage so callers can match
	// either layer with a single errors.Is.
	ErrOutOfRange = container.ErrOutOfRange
)
