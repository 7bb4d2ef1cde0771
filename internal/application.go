package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/knucklebones/internal/config"
	"github.com/rocketscienceinc/knucklebones/internal/dice"
	"github.com/rocketscienceinc/knucklebones/internal/knucklebones"
	"github.com/rocketscienceinc/knucklebones/internal/usecase"
	"github.com/rocketscienceinc/knucklebones/transport/terminal"
)

// RunApp - runs the terminal game on stdin/stdout until quit, EOF or a signal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires dice, engine, game manager and terminal over the given streams.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	scoring, err := conf.ScoringPolicy()
	if err != nil {
		return fmt.Errorf("could not configure scoring: %w", err)
	}

	engine, err := knucklebones.NewEngine(
		dice.NewSeeded(conf.Seed),
		knucklebones.WithPlayers(conf.Players...),
		knucklebones.WithScoring(scoring),
	)
	if err != nil {
		return fmt.Errorf("could not create game engine: %w", err)
	}

	gameManager, err := usecase.NewGameManager(logger, engine)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	log.Info("Starting terminal", "players", conf.Players, "scoring", scoring)

	server := terminal.New(logger, gameManager, out, !conf.NoColor)
	if err = server.Start(ctx, in); err != nil {
		return fmt.Errorf("terminal error: %w", err)
	}

	log.Info("Terminal closed, shutting down")

	return nil
}
