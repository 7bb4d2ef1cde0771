package knucklebones

import (
	"fmt"

	"github.com/rocketscienceinc/knucklebones/internal/apperror"
	"github.com/rocketscienceinc/knucklebones/internal/entity"
)

// TurnsPerPlayer - one placement per cell of a grid.
const TurnsPerPlayer = entity.GridCells

var DefaultPlayerNames = []string{"Player 1", "Player 2"}

// Roller supplies one die face in [1,6] per call.
type Roller interface {
	Roll() int
}

type Option func(*Engine)

func WithPlayers(names ...string) Option {
	return func(that *Engine) {
		that.names = names
	}
}

func WithScoring(policy entity.ScoringPolicy) Option {
	return func(that *Engine) {
		that.scoring = policy
	}
}

// Engine sequences roll and placement turns over one grid per player.
// It is not safe for concurrent use; one driving loop owns an instance.
type Engine struct {
	roller  Roller
	scoring entity.ScoringPolicy
	names   []string

	players []*entity.Player
	grids   []*entity.Grid

	turn        int
	phase       entity.Phase
	pendingRoll int
}

func NewEngine(roller Roller, opts ...Option) (*Engine, error) {
	that := &Engine{
		roller:  roller,
		scoring: entity.DefaultScoring,
		names:   DefaultPlayerNames,
	}

	for _, opt := range opts {
		opt(that)
	}

	if len(that.names) < 2 {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrNotEnoughPlayers, len(that.names))
	}

	that.players = make([]*entity.Player, len(that.names))
	that.grids = make([]*entity.Grid, len(that.names))
	for i, name := range that.names {
		that.players[i] = entity.NewPlayer(name)
		that.grids[i] = entity.NewGrid(that.scoring)
	}

	that.phase = entity.PhaseAwaitingRoll

	return that, nil
}

// RequestRoll - rolls the die for the active player.
func (that *Engine) RequestRoll() (int, error) {
	if that.phase != entity.PhaseAwaitingRoll {
		return 0, fmt.Errorf("%w: roll requested in %s", apperror.ErrInvalidStateTransition, that.phase)
	}

	face := that.roller.Roll()
	if face < entity.MinFace || face > entity.MaxFace {
		return 0, fmt.Errorf("%w: dice rolled %d", apperror.ErrInvalidFace, face)
	}

	that.pendingRoll = face
	that.phase = entity.PhaseAwaitingPlacement

	return face, nil
}

// ChoosePlacement - puts the pending roll into column of the active player's grid.
// A rejected column keeps the roll pending and the turn unchanged.
func (that *Engine) ChoosePlacement(column int) (int, error) {
	if that.phase != entity.PhaseAwaitingPlacement {
		return -1, fmt.Errorf("%w: placement requested in %s", apperror.ErrInvalidStateTransition, that.phase)
	}

	active := that.ActivePlayer()
	grid := that.grids[active]

	before := grid.TotalScore()
	row, err := grid.Place(column, that.pendingRoll)
	if err != nil {
		return -1, fmt.Errorf("invalid placement: %w", err)
	}

	that.players[active].AddToScore(grid.TotalScore() - before)
	that.pendingRoll = 0
	that.turn++
	that.phase = entity.PhaseAwaitingRoll

	finished, err := that.checkTermination()
	if err != nil {
		return row, err
	}

	if finished {
		that.phase = entity.PhaseGameOver
	}

	return row, nil
}

// checkTermination - the turn budget and grid fullness must agree.
func (that *Engine) checkTermination() (bool, error) {
	turnsElapsed := that.turn >= that.TotalTurns()

	allFull := true
	for _, grid := range that.grids {
		if !grid.IsFull() {
			allFull = false
			break
		}
	}

	if turnsElapsed != allFull {
		return false, fmt.Errorf("%w: turn %d of %d, all grids full: %t",
			apperror.ErrInconsistentState, that.turn, that.TotalTurns(), allFull)
	}

	return allFull, nil
}

// Outcome - final scores and the winner. Only available once the game is over.
func (that *Engine) Outcome() (entity.Outcome, error) {
	if that.phase != entity.PhaseGameOver {
		return entity.Outcome{}, apperror.ErrGameNotFinished
	}

	return that.outcome(), nil
}

func (that *Engine) outcome() entity.Outcome {
	result := entity.Outcome{
		Winner: entity.Draw,
		Scores: make([]int, len(that.grids)),
	}

	best := -1
	for i, grid := range that.grids {
		score := grid.TotalScore()
		result.Scores[i] = score

		switch {
		case score > best:
			best = score
			result.Winner = i
		case score == best:
			result.Winner = entity.Draw
		}
	}

	return result
}

// Reset - clears every grid and score and starts again from the first player.
func (that *Engine) Reset() {
	for i := range that.grids {
		that.grids[i].Clear()
		that.players[i].ResetScore()
	}

	that.turn = 0
	that.pendingRoll = 0
	that.phase = entity.PhaseAwaitingRoll
}

func (that *Engine) Phase() entity.Phase {
	return that.phase
}

func (that *Engine) TurnIndex() int {
	return that.turn
}

func (that *Engine) NumPlayers() int {
	return len(that.players)
}

func (that *Engine) TotalTurns() int {
	return TurnsPerPlayer * len(that.players)
}

// ActivePlayer - index of the player whose turn it is.
func (that *Engine) ActivePlayer() int {
	return that.turn % len(that.players)
}

// PendingRoll - the rolled face waiting for a column; ok is false outside placement.
func (that *Engine) PendingRoll() (int, bool) {
	if that.phase != entity.PhaseAwaitingPlacement {
		return 0, false
	}
	return that.pendingRoll, true
}

// Grid - read access to player i's grid. Callers must not mutate it.
func (that *Engine) Grid(i int) *entity.Grid {
	return that.grids[i]
}

func (that *Engine) Player(i int) *entity.Player {
	return that.players[i]
}

func (that *Engine) Scoring() entity.ScoringPolicy {
	return that.scoring
}

// Snapshot - copies the query surface into a GameState.
func (that *Engine) Snapshot() *entity.GameState {
	state := &entity.GameState{
		Phase:        that.phase,
		Turn:         that.turn,
		ActivePlayer: that.ActivePlayer(),
		Scoring:      that.scoring.String(),
		Boards:       make([]entity.Board, len(that.players)),
	}

	if roll, ok := that.PendingRoll(); ok {
		state.PendingRoll = roll
	}

	for i := range that.players {
		state.Boards[i] = entity.NewBoard(that.players[i], that.grids[i])
	}

	if that.phase == entity.PhaseGameOver {
		outcome := that.outcome()
		state.Outcome = &outcome
	}

	return state
}
