package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/iamasit07/power-connect-four/internal/domain"
	"github.com/iamasit07/power-connect-four/internal/render"
	"github.com/iamasit07/power-connect-four/internal/service/game"
)

type Options struct {
	Render       render.Options
	Prompt       string
	HistoryLimit int
	// ShowBoard prints the board after every successful move.
	ShowBoard bool
}

// Handler runs an interactive game over a line-oriented stream.
type Handler struct {
	Sessions *game.SessionManager
	opts     Options
	session  *game.Session
}

func NewHandler(sm *game.SessionManager, opts Options) *Handler {
	return &Handler{
		Sessions: sm,
		opts:     opts,
	}
}

// Run reads commands from in until EOF, a quit command or ctx is done.
func (h *Handler) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	h.startGame(out)

	done := make(chan struct{})
	defer close(done)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		h.prompt(out)

		select {
		case <-ctx.Done():
			log.Printf("[CLI] Stopping: %v", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if quit := h.handleLine(line, out); quit {
				return nil
			}
		}
	}
}

func (h *Handler) startGame(out io.Writer) {
	if h.session != nil {
		if err := h.Sessions.RemoveSession(h.session.GameID); err != nil {
			log.Printf("[CLI] %v", err)
		}
	}
	h.session = h.Sessions.CreateSession()
	fmt.Fprintf(out, "New game %s\n", h.session.GameID)
	h.show(out)
}

func (h *Handler) handleLine(line string, out io.Writer) bool {
	cmd, err := ParseCommand(line)
	if err != nil {
		fmt.Fprintf(out, "%v (type 'help' for commands)\n", err)
		return false
	}

	if move, ok := cmd.Move(); ok {
		h.play(move, out)
		return false
	}

	switch cmd.Name {
	case "":
	case "show":
		h.show(out)
	case "count":
		h.count(cmd.Args[0], cmd.Args[1], out)
	case "history":
		h.history(out)
	case "new":
		h.startGame(out)
	case "help":
		fmt.Fprintln(out, usage)
	case "quit":
		fmt.Fprintln(out, "Bye!")
		return true
	}
	return false
}

func (h *Handler) play(move domain.Move, out io.Writer) {
	res, err := h.session.HandleMove(move)
	switch {
	case errors.Is(err, domain.ErrGameOver):
		fmt.Fprintln(out, "The game is over, type 'new' to play again.")
		return
	case errors.Is(err, domain.ErrIllegalMove):
		fmt.Fprintf(out, "Illegal move: %s\n", move)
		return
	case err != nil:
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	if h.opts.ShowBoard || res.Status != domain.StatusActive {
		h.show(out)
	}
}

func (h *Handler) show(out io.Writer) {
	if err := render.Text(out, h.session.Snapshot(), h.opts.Render); err != nil {
		log.Printf("[CLI] Render failed: %v", err)
	}
}

func (h *Handler) count(col, row int, out io.Writer) {
	tok, counts, err := h.session.Counts(col, row)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	if tok == domain.Empty {
		fmt.Fprintf(out, "(%d,%d) is empty\n", col, row)
		return
	}
	fmt.Fprintf(out, "(%d,%d) %c: row=%d column=%d major=%d minor=%d\n",
		col, row, tok.Symbol(), counts.Row, counts.Column, counts.MajorDiagonal, counts.MinorDiagonal)
}

func (h *Handler) history(out io.Writer) {
	records := h.session.History(h.opts.HistoryLimit)
	if len(records) == 0 {
		fmt.Fprintln(out, "No moves yet.")
		return
	}
	for _, r := range records {
		fmt.Fprintf(out, "%3d. %c %-16s rows=%d\n", r.Number, r.Player.Symbol(), r.Move, r.RowCapacity)
	}
}

func (h *Handler) prompt(out io.Writer) {
	if h.opts.Prompt != "" {
		fmt.Fprint(out, h.opts.Prompt)
	}
}
