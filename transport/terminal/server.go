package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/logrusorgru/aurora"
	"github.com/rocketscienceinc/knucklebones/internal/entity"
)

type gameUseCase interface {
	Roll(ctx context.Context) (int, error)
	Place(ctx context.Context, column int) (int, error)
	NewGame(ctx context.Context) error
	State() *entity.GameState
}

// Server reads commands line by line and redraws the game after each one.
type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase

	out io.Writer
	au  aurora.Aurora
}

func New(logger *slog.Logger, gameUseCase gameUseCase, out io.Writer, colors bool) *Server {
	return &Server{
		logger:      logger.With("component", "terminal"),
		gameUseCase: gameUseCase,
		out:         out,
		au:          aurora.NewAurora(colors),
	}
}

// Start - runs until "quit", end of input or ctx cancellation.
func (that *Server) Start(ctx context.Context, in io.Reader) error {
	log := that.logger.With("method", "Start")

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	if err := that.render(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("terminal stopped", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				return that.inputClosed(scanErr)
			}

			stop, err := that.processMessage(ctx, line)
			if err != nil {
				return err
			}

			if stop {
				log.Info("player quit")
				return nil
			}
		}
	}
}

func (that *Server) inputClosed(scanErr <-chan error) error {
	select {
	case err := <-scanErr:
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	default:
	}

	that.logger.Info("input closed")

	return nil
}

// processMessage - returns stop=true on quit. Only output failures are returned as errors.
func (that *Server) processMessage(ctx context.Context, line string) (bool, error) {
	msg, err := parseMessage(line)
	if errors.Is(err, ErrEmptyCommand) {
		return false, nil
	}

	if err != nil {
		return false, that.sendError(err)
	}

	switch msg.Action {
	case actionQuit:
		return true, that.write("Bye!\n")
	case actionRoll:
		return false, that.handleRoll(ctx)
	case actionPlace:
		return false, that.handlePlace(ctx, msg.Column)
	case actionNew:
		return false, that.handleNewGame(ctx)
	case actionHelp:
		return false, that.write(helpText)
	default:
		return false, that.render()
	}
}

func (that *Server) write(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
