package usecase

import (
	"github.com/rocketscienceinc/knucklebones/internal/entity"
	"github.com/stretchr/testify/mock"
)

type mockGameEngine struct {
	mock.Mock
}

func (that *mockGameEngine) RequestRoll() (int, error) {
	args := that.Called()
	return args.Int(0), args.Error(1)
}

func (that *mockGameEngine) ChoosePlacement(column int) (int, error) {
	args := that.Called(column)
	return args.Int(0), args.Error(1)
}

func (that *mockGameEngine) Outcome() (entity.Outcome, error) {
	args := that.Called()
	return args.Get(0).(entity.Outcome), args.Error(1)
}

func (that *mockGameEngine) Reset() {
	that.Called()
}

func (that *mockGameEngine) Snapshot() *entity.GameState {
	args := that.Called()
	return args.Get(0).(*entity.GameState)
}
