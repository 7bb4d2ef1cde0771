package entity

import (
	"fmt"

	"github.com/rocketscienceinc/knucklebones/internal/apperror"
)

const (
	GridSize  = 3
	GridCells = GridSize * GridSize

	EmptyCell = 0
	MinFace   = 1
	MaxFace   = 6
)

// Grid is one player's 3x3 board. Row 0 is the top row; columns fill from row 2 upward.
type Grid struct {
	cells   [GridSize][GridSize]int
	scoring ScoringPolicy
}

func NewGrid(scoring ScoringPolicy) *Grid {
	return &Grid{scoring: scoring}
}

// Place - drops value into the lowest empty cell of column and returns the row it landed in.
func (that *Grid) Place(column, value int) (int, error) {
	if column < 0 || column >= GridSize {
		return -1, fmt.Errorf("%w: column %d", apperror.ErrInvalidColumn, column)
	}

	if value < MinFace || value > MaxFace {
		return -1, fmt.Errorf("%w: %d", apperror.ErrInvalidFace, value)
	}

	for row := GridSize - 1; row >= 0; row-- {
		if that.cells[row][column] == EmptyCell {
			that.cells[row][column] = value
			return row, nil
		}
	}

	return -1, fmt.Errorf("%w: column %d", apperror.ErrColumnFull, column)
}

// Column - returns the occupied values of column, bottom-up.
func (that *Grid) Column(column int) []int {
	if column < 0 || column >= GridSize {
		return nil
	}

	values := make([]int, 0, GridSize)
	for row := GridSize - 1; row >= 0; row-- {
		if value := that.cells[row][column]; value != EmptyCell {
			values = append(values, value)
		}
	}

	return values
}

func (that *Grid) ColumnScore(column int) int {
	return that.scoring.Score(that.Column(column))
}

func (that *Grid) ColumnScores() [GridSize]int {
	var scores [GridSize]int
	for column := range scores {
		scores[column] = that.ColumnScore(column)
	}
	return scores
}

func (that *Grid) TotalScore() int {
	total := 0
	for _, score := range that.ColumnScores() {
		total += score
	}
	return total
}

// Occupied - number of filled cells.
func (that *Grid) Occupied() int {
	occupied := 0
	for _, row := range that.cells {
		for _, cell := range row {
			if cell != EmptyCell {
				occupied++
			}
		}
	}
	return occupied
}

func (that *Grid) IsFull() bool {
	return that.Occupied() == GridCells
}

func (that *Grid) Clear() {
	that.cells = [GridSize][GridSize]int{}
}

// Cells - copy of the matrix, indexed [row][column].
func (that *Grid) Cells() [GridSize][GridSize]int {
	return that.cells
}

func (that *Grid) Scoring() ScoringPolicy {
	return that.scoring
}
