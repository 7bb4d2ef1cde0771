package application

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rocketscienceinc/knucklebones/internal/apperror"
	"github.com/rocketscienceinc/knucklebones/internal/config"
	"github.com/rocketscienceinc/knucklebones/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("Runs a session over the given streams", func(t *testing.T) {
		// Given: a seeded config without colors
		ctx, st := suite.New(t)
		conf := &config.Config{
			LogLevel: "info",
			Scoring:  "product",
			Seed:     17,
			NoColor:  true,
			Players:  []string{"Ann", "Bob"},
		}
		var out bytes.Buffer

		// When: one roll and one placement are typed in
		err := Run(ctx, st.Logger, conf, strings.NewReader("r\n3\nq\n"), &out)

		// Then: the board is drawn for both players and the turn passes to Bob
		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, "scoring: product")
		assert.Contains(t, output, "Ann")
		assert.Contains(t, output, "Bob's turn. Press 'r' to roll.")
		assert.NotContains(t, output, "\x1b[")
	})

	t.Run("Bad scoring policy stops before the game starts", func(t *testing.T) {
		ctx, st := suite.New(t)
		conf := &config.Config{Scoring: "sum", Players: []string{"A", "B"}}

		err := Run(ctx, st.Logger, conf, strings.NewReader(""), &bytes.Buffer{})

		require.ErrorIs(t, err, apperror.ErrUnknownScoringPolicy)
	})

	t.Run("Single player is rejected", func(t *testing.T) {
		ctx, st := suite.New(t)
		conf := &config.Config{Players: []string{"A"}}

		err := Run(ctx, st.Logger, conf, strings.NewReader(""), &bytes.Buffer{})

		require.ErrorIs(t, err, apperror.ErrNotEnoughPlayers)
	})
}
