package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMessage(t *testing.T) {
	tests := []struct {
		line string
		want Message
	}{
		{"r", Message{Action: actionRoll}},
		{"  ROLL ", Message{Action: actionRoll}},
		{"1", Message{Action: actionPlace, Column: 0}},
		{"3", Message{Action: actionPlace, Column: 2}},
		{"p 2", Message{Action: actionPlace, Column: 1}},
		{"place 3", Message{Action: actionPlace, Column: 2}},
		{"n", Message{Action: actionNew}},
		{"show", Message{Action: actionShow}},
		{"?", Message{Action: actionHelp}},
		{"q", Message{Action: actionQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			msg, err := parseMessage(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *msg)
		})
	}
}

func TestParseMessage_Errors(t *testing.T) {
	_, err := parseMessage("   ")
	assert.ErrorIs(t, err, ErrEmptyCommand)

	_, err = parseMessage("jump")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	for _, line := range []string{"0", "4", "p", "p x", "place 1 2", "-1"} {
		_, err = parseMessage(line)
		assert.ErrorIs(t, err, ErrBadColumn, "line %q", line)
	}
}
