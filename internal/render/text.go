// Package render draws game snapshots as text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/iamasit07/power-connect-four/internal/domain"
)

type Options struct {
	// EmptySymbol is drawn for unoccupied cells.
	EmptySymbol rune
}

func DefaultOptions() Options {
	return Options{EmptySymbol: domain.EmptySymbol}
}

// Text writes the grid with the top row first, followed by a status line:
//
//	|   || 0 || 1 || 2 || 3 || 4 || 5 || 6 |
//	| 5 || - || - || - || - || - || - || - |
//	...
//	| 0 || - || - || Y || Y || - || - || - |
//	Player R's turn
func Text(w io.Writer, snap domain.Snapshot, opts Options) error {
	var sb strings.Builder

	sb.WriteString("|   |")
	for col := range snap.Cells {
		fmt.Fprintf(&sb, "| %d |", col)
	}
	sb.WriteByte('\n')

	for row := snap.Rows - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "|%2d |", row)
		for _, column := range snap.Cells {
			fmt.Fprintf(&sb, "| %c |", symbol(column[row], opts))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(StatusLine(snap))
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// StatusLine reports whose turn it is, or how the game ended.
func StatusLine(snap domain.Snapshot) string {
	switch snap.Status {
	case domain.StatusWon:
		return fmt.Sprintf("Player %c wins after %d moves!", snap.Winner.Symbol(), snap.MoveCount)
	case domain.StatusDraw:
		return fmt.Sprintf("Draw after %d moves: both players connected four.", snap.MoveCount)
	default:
		return fmt.Sprintf("Player %c's turn", snap.CurrentPlayer.Symbol())
	}
}

func symbol(t domain.Token, opts Options) rune {
	if t == domain.Empty && opts.EmptySymbol != 0 {
		return opts.EmptySymbol
	}
	return t.Symbol()
}
