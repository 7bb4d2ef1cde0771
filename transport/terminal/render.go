package terminal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/rocketscienceinc/knucklebones/internal/entity"
)

const (
	boardWidth = 4*entity.GridSize + 1
	boardGap   = "    "
	rowBorder  = "+---+---+---+"
)

func (that *Server) palette() []func(interface{}) aurora.Value {
	return []func(interface{}) aurora.Value{that.au.Red, that.au.Blue, that.au.Green, that.au.Magenta}
}

func (that *Server) colorFor(player int, text string) string {
	colors := that.palette()
	return colors[player%len(colors)](text).String()
}

// render - draws every board side by side followed by the prompt.
func (that *Server) render() error {
	return that.write(that.renderState(that.gameUseCase.State()))
}

func (that *Server) renderState(state *entity.GameState) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s  game %s  scoring: %s\n\n", that.au.Bold("Knucklebones"), state.ID, state.Scoring)

	that.renderLine(&b, state, func(board entity.Board) string {
		return board.Player
	})
	that.renderLine(&b, state, func(entity.Board) string {
		return rowBorder
	})

	for row := 0; row < entity.GridSize; row++ {
		that.renderLine(&b, state, func(board entity.Board) string {
			return renderRow(board.Cells[row])
		})
		that.renderLine(&b, state, func(entity.Board) string {
			return rowBorder
		})
	}

	that.renderLine(&b, state, func(board entity.Board) string {
		var line strings.Builder
		for _, score := range board.ColumnScores {
			fmt.Fprintf(&line, "%3d ", score)
		}
		return line.String()
	})
	that.renderLine(&b, state, func(board entity.Board) string {
		return fmt.Sprintf("Total: %d", board.TotalScore)
	})

	b.WriteString("\n")
	b.WriteString(that.renderPrompt(state))

	return b.String()
}

// renderLine - one text line across all boards, padded before coloring so escapes do not break alignment.
func (that *Server) renderLine(b *strings.Builder, state *entity.GameState, cell func(entity.Board) string) {
	parts := make([]string, len(state.Boards))
	for i, board := range state.Boards {
		parts[i] = that.colorFor(i, fmt.Sprintf("%-*s", boardWidth, cell(board)))
	}

	b.WriteString(strings.TrimRight(" "+strings.Join(parts, boardGap), " "))
	b.WriteString("\n")
}

func renderRow(cells [entity.GridSize]int) string {
	var b strings.Builder
	for _, cell := range cells {
		if cell == entity.EmptyCell {
			b.WriteString("|   ")
			continue
		}
		fmt.Fprintf(&b, "| %d ", cell)
	}
	b.WriteString("|")

	return b.String()
}

func (that *Server) renderPrompt(state *entity.GameState) string {
	if state.IsFinished() && state.Outcome != nil {
		return that.renderGameOver(state)
	}

	name := that.colorFor(state.ActivePlayer, state.Boards[state.ActivePlayer].Player)

	if state.IsAwaitingPlacement() {
		return fmt.Sprintf("%s's turn. Rolled: %d, choose a column 1-3.\n", name, state.PendingRoll)
	}

	return fmt.Sprintf("%s's turn. Press 'r' to roll.\n", name)
}

func (that *Server) renderGameOver(state *entity.GameState) string {
	var b strings.Builder

	b.WriteString(that.au.Bold("Game Over!").String())
	b.WriteString("\n")

	for i, score := range state.Outcome.Scores {
		fmt.Fprintf(&b, "%s: %d\n", that.colorFor(i, state.Boards[i].Player), score)
	}

	if state.Outcome.IsDraw() {
		b.WriteString("It's a Draw!\n")
	} else {
		winner := state.Outcome.Winner
		fmt.Fprintf(&b, "%s Wins!\n", that.colorFor(winner, state.Boards[winner].Player))
	}

	b.WriteString("Type 'n' for a new game or 'q' to quit.\n")

	return b.String()
}
