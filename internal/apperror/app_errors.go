package apperror

import "errors"

var (
	ErrInvalidColumn          = errors.New("invalid column index")
	ErrInvalidFace            = errors.New("invalid die face")
	ErrColumnFull             = errors.New("column is full")
	ErrInvalidStateTransition = errors.New("command not allowed in current phase")
	ErrGameNotFinished        = errors.New("game is not finished")
	ErrInconsistentState      = errors.New("turn count and grid state disagree")
	ErrNotEnoughPlayers       = errors.New("at least two players are required")
	ErrUnknownScoringPolicy   = errors.New("unknown scoring policy")
)
