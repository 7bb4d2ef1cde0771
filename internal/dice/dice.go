package dice

import (
	"math/rand"
	"time"

	"github.com/rocketscienceinc/knucklebones/internal/entity"
)

// Pool rolls one six-sided die per call from its own random source.
type Pool struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Pool {
	return &Pool{rng: rng}
}

// NewSeeded - builds a pool with a private source. Seed 0 seeds from the clock.
func NewSeeded(seed int64) *Pool {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return New(rand.New(rand.NewSource(seed))) //nolint: gosec // game dice, not crypto
}

func (that *Pool) Roll() int {
	return that.rng.Intn(entity.MaxFace) + entity.MinFace
}
