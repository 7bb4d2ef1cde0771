package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// Dice - returns a roller that yields faces in order and then starts over.
func (that *Suite) Dice(faces ...int) *ScriptedDice {
	that.Helper()

	if len(faces) == 0 {
		that.Fatalf("scripted dice need at least one face")
	}

	return &ScriptedDice{faces: faces}
}

type ScriptedDice struct {
	faces []int
	next  int
	rolls int
}

func (that *ScriptedDice) Roll() int {
	face := that.faces[that.next]
	that.next = (that.next + 1) % len(that.faces)
	that.rolls++

	return face
}

// Rolls - how many times Roll was called.
func (that *ScriptedDice) Rolls() int {
	return that.rolls
}
