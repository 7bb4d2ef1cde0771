package entity

type Player struct {
	name  string
	score int
}

func NewPlayer(name string) *Player {
	return &Player{name: name}
}

// AddToScore - accumulates into the cached score. The grid total stays authoritative.
func (that *Player) AddToScore(points int) {
	that.score += points
}

func (that *Player) ResetScore() {
	that.score = 0
}

func (that *Player) Score() int {
	return that.score
}

func (that *Player) Name() string {
	return that.name
}
