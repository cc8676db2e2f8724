package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/iamasit07/power-connect-four/internal/config"
	"github.com/iamasit07/power-connect-four/internal/render"
	"github.com/iamasit07/power-connect-four/internal/service/cleanup"
	"github.com/iamasit07/power-connect-four/internal/service/game"
	"github.com/iamasit07/power-connect-four/internal/transport/cli"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[CONFIG] No .env file found")
	}

	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	emptySymbol := string(cfg.EmptySymbol)

	cmd := &cobra.Command{
		Use:          "powerconnect",
		Short:        "Play Power Connect Four in the terminal",
		Long:         "Two players take turns dropping, popping, power-dropping and power-popping tokens.\nThe board grows and shrinks as columns fill and empty.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if r, size := utf8.DecodeRuneInString(emptySymbol); size > 0 && size == len(emptySymbol) {
				cfg.EmptySymbol = r
			} else {
				log.Printf("[CONFIG] --empty-symbol must be a single character, keeping %q", cfg.EmptySymbol)
			}
			if !cfg.Verbose {
				log.SetOutput(io.Discard)
			}
			return run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&emptySymbol, "empty-symbol", emptySymbol, "glyph drawn for empty cells")
	flags.StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "prompt printed before each command")
	flags.BoolVar(&cfg.ShowBoard, "show-board", cfg.ShowBoard, "print the board after every move")
	flags.IntVar(&cfg.HistoryLimit, "history-limit", cfg.HistoryLimit, "moves listed by 'history', 0 for all")
	flags.BoolVar(&cfg.LogMoves, "log-moves", cfg.LogMoves, "log every move")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "write logs to stderr")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sessionManager := game.NewSessionManager(cfg.LogMoves)

	worker := cleanup.NewWorker(sessionManager, cfg.SessionTTL, time.Minute)
	worker.Start(ctx)

	handler := cli.NewHandler(sessionManager, cli.Options{
		Render:       render.Options{EmptySymbol: cfg.EmptySymbol},
		Prompt:       cfg.Prompt,
		HistoryLimit: cfg.HistoryLimit,
		ShowBoard:    cfg.ShowBoard,
	})
	return handler.Run(ctx, in, out)
}
