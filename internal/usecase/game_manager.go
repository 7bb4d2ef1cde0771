package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/knucklebones/internal/apperror"
	"github.com/rocketscienceinc/knucklebones/internal/entity"
	"github.com/rocketscienceinc/knucklebones/internal/pkg"
)

type gameEngine interface {
	RequestRoll() (int, error)
	ChoosePlacement(column int) (int, error)
	Outcome() (entity.Outcome, error)
	Reset()
	Snapshot() *entity.GameState
}

// GameManager owns one engine for the lifetime of a session and logs every command.
type GameManager struct {
	base   *slog.Logger
	logger *slog.Logger
	engine gameEngine
	gameID string
}

func NewGameManager(logger *slog.Logger, engine gameEngine) (*GameManager, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that := &GameManager{
		base:   logger,
		engine: engine,
		gameID: gameID,
	}
	that.setLogger()

	that.logger.Info("game created")

	return that, nil
}

func (that *GameManager) setLogger() {
	that.logger = that.base.With("component", "game_manager", "gameID", that.gameID)
}

func (that *GameManager) GameID() string {
	return that.gameID
}

// Roll - rolls the die for the active player.
func (that *GameManager) Roll(ctx context.Context) (int, error) {
	log := that.logger.With("method", "Roll")

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("roll cancelled: %w", err)
	}

	face, err := that.engine.RequestRoll()
	if err != nil {
		log.Warn("roll rejected", "error", err)
		return 0, fmt.Errorf("failed to roll: %w", err)
	}

	log.Debug("dice rolled", "face", face)

	return face, nil
}

// Place - places the pending roll into column and returns the row it landed in.
func (that *GameManager) Place(ctx context.Context, column int) (int, error) {
	log := that.logger.With("method", "Place", "column", column)

	if err := ctx.Err(); err != nil {
		return -1, fmt.Errorf("placement cancelled: %w", err)
	}

	row, err := that.engine.ChoosePlacement(column)
	if errors.Is(err, apperror.ErrInconsistentState) {
		log.Error("engine state is inconsistent", "error", err)
		return row, fmt.Errorf("failed to place: %w", err)
	}

	if err != nil {
		log.Warn("placement rejected", "error", err)
		return -1, fmt.Errorf("failed to place: %w", err)
	}

	log.Debug("dice placed", "row", row)

	if outcome, err := that.engine.Outcome(); err == nil {
		log.Info("game finished", "winner", outcome.Winner, "scores", outcome.Scores)
	}

	return row, nil
}

// NewGame - clears the board and starts a new session id.
func (that *GameManager) NewGame(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("new game cancelled: %w", err)
	}

	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return fmt.Errorf("failed to start new game: %w", err)
	}

	previous := that.gameID
	that.engine.Reset()
	that.gameID = gameID
	that.setLogger()

	that.logger.Info("game restarted", "previousGameID", previous)

	return nil
}

func (that *GameManager) Outcome() (entity.Outcome, error) {
	outcome, err := that.engine.Outcome()
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("failed to get outcome: %w", err)
	}

	return outcome, nil
}

// State - snapshot of the engine tagged with the session id.
func (that *GameManager) State() *entity.GameState {
	state := that.engine.Snapshot()
	state.ID = that.gameID

	return state
}
