package terminal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/knucklebones/internal/entity"
)

const (
	actionRoll  = "roll"
	actionPlace = "place"
	actionNew   = "new"
	actionShow  = "show"
	actionHelp  = "help"
	actionQuit  = "quit"
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadColumn      = errors.New("column must be a number from 1 to 3")
)

var aliases = map[string]string{
	"r":     actionRoll,
	"roll":  actionRoll,
	"p":     actionPlace,
	"place": actionPlace,
	"n":     actionNew,
	"new":   actionNew,
	"s":     actionShow,
	"show":  actionShow,
	"h":     actionHelp,
	"help":  actionHelp,
	"?":     actionHelp,
	"q":     actionQuit,
	"quit":  actionQuit,
	"exit":  actionQuit,
}

// Message is one parsed input line. Column is zero based.
type Message struct {
	Action string
	Column int
}

// parseMessage - accepts "r", "2", "p 2", "place 2" and the other aliases.
func parseMessage(line string) (*Message, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, ErrEmptyCommand
	}

	if column, err := strconv.Atoi(fields[0]); err == nil && len(fields) == 1 {
		return newPlaceMessage(column)
	}

	action, ok := aliases[fields[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}

	if action != actionPlace {
		return &Message{Action: action}, nil
	}

	if len(fields) != 2 {
		return nil, ErrBadColumn
	}

	column, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, ErrBadColumn
	}

	return newPlaceMessage(column)
}

func newPlaceMessage(column int) (*Message, error) {
	if column < 1 || column > entity.GridSize {
		return nil, ErrBadColumn
	}

	return &Message{Action: actionPlace, Column: column - 1}, nil
}
