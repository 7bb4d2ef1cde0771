package entity

type Phase string

const (
	PhaseAwaitingRoll      Phase = "awaiting_roll"
	PhaseAwaitingPlacement Phase = "awaiting_placement"
	PhaseGameOver          Phase = "game_over"
)

// Draw is the Outcome.Winner value when the top score is shared.
const Draw = -1

type Outcome struct {
	Winner int   `json:"winner"`
	Scores []int `json:"scores"`
}

func (that Outcome) IsDraw() bool {
	return that.Winner == Draw
}

// Board is the rendered view of one player's grid.
type Board struct {
	Player       string                  `json:"player"`
	CachedScore  int                     `json:"cached_score"`
	TotalScore   int                     `json:"total_score"`
	ColumnScores [GridSize]int           `json:"column_scores"`
	Cells        [GridSize][GridSize]int `json:"cells"`
}

// GameState is everything a presentation layer needs after a command.
type GameState struct {
	ID           string   `json:"id,omitempty"`
	Phase        Phase    `json:"phase"`
	Turn         int      `json:"turn"`
	ActivePlayer int      `json:"active_player"`
	PendingRoll  int      `json:"pending_roll,omitempty"`
	Scoring      string   `json:"scoring"`
	Boards       []Board  `json:"boards"`
	Outcome      *Outcome `json:"outcome,omitempty"`
}

func (that *GameState) IsFinished() bool {
	return that.Phase == PhaseGameOver
}

func (that *GameState) IsAwaitingRoll() bool {
	return that.Phase == PhaseAwaitingRoll
}

func (that *GameState) IsAwaitingPlacement() bool {
	return that.Phase == PhaseAwaitingPlacement
}

func NewBoard(player *Player, grid *Grid) Board {
	return Board{
		Player:       player.Name(),
		CachedScore:  player.Score(),
		TotalScore:   grid.TotalScore(),
		ColumnScores: grid.ColumnScores(),
		Cells:        grid.Cells(),
	}
}
