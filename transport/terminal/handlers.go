package terminal

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/knucklebones/internal/apperror"
)

const helpText = `Commands:
  r, roll           roll the die
  1, 2, 3, p N      place the rolled die in column N
  n, new            start a new game
  s, show           redraw the board
  h, help           show this help
  q, quit           leave
`

func (that *Server) handleRoll(ctx context.Context) error {
	log := that.logger.With("method", "handleRoll")

	if _, err := that.gameUseCase.Roll(ctx); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}

		log.Debug("roll rejected", "error", err)
		return that.sendError(err)
	}

	return that.render()
}

func (that *Server) handlePlace(ctx context.Context, column int) error {
	log := that.logger.With("method", "handlePlace", "column", column)

	if _, err := that.gameUseCase.Place(ctx, column); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}

		log.Debug("placement rejected", "error", err)
		if sendErr := that.sendError(err); sendErr != nil {
			return sendErr
		}

		if !errors.Is(err, apperror.ErrInconsistentState) {
			return nil
		}
	}

	return that.render()
}

func (that *Server) handleNewGame(ctx context.Context) error {
	if err := that.gameUseCase.NewGame(ctx); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}

		return that.sendError(err)
	}

	return that.render()
}

// sendError - prints a rejected command. The loop keeps running.
func (that *Server) sendError(err error) error {
	return that.write(that.au.Yellow(that.describeError(err)).String() + "\n")
}

func (that *Server) describeError(err error) string {
	state := that.gameUseCase.State()

	switch {
	case errors.Is(err, apperror.ErrColumnFull):
		return "That column is full, choose another column."
	case errors.Is(err, apperror.ErrInvalidColumn), errors.Is(err, ErrBadColumn):
		return "Column must be a number from 1 to 3."
	case errors.Is(err, ErrUnknownCommand):
		return "Unknown command. Type 'h' for help."
	case errors.Is(err, apperror.ErrInvalidStateTransition) && state.IsFinished():
		return "The game is over. Type 'n' for a new game or 'q' to quit."
	case errors.Is(err, apperror.ErrInvalidStateTransition) && state.IsAwaitingPlacement():
		return fmt.Sprintf("You rolled %d, place it in a column first.", state.PendingRoll)
	case errors.Is(err, apperror.ErrInvalidStateTransition):
		return "Roll the die first. Press 'r' to roll."
	default:
		return fmt.Sprintf("Something went wrong: %v", err)
	}
}
