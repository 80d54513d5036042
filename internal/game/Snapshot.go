package game

type EnemyView struct {
	Body         []Cell
	Color        EnemyColor
	TargetLength int
	Heading      Direction
}

// Snapshot is a read-only copy of a game for renderers. Nothing in it aliases
// simulation memory.
type Snapshot struct {
	Player       []Cell
	Direction    Direction
	Enemies      []EnemyView
	Food         Cell
	Score        int
	Terminal     bool
	Cause        DeathCause
	Tick         uint64
	EnemiesEaten int

	// Filled in by GameManager.
	Status Status
	RunID  string
}

func (s *Simulation) Snapshot() Snapshot {
	gs := s.state
	snap := Snapshot{
		Player:       copyCells(gs.Player.Body),
		Direction:    gs.Player.Direction,
		Food:         gs.Food,
		Score:        gs.Score,
		Terminal:     gs.Terminal,
		Cause:        gs.Cause,
		Tick:         gs.Tick,
		EnemiesEaten: gs.EnemiesEaten,
	}
	for _, enemy := range gs.Enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{
			Body:         copyCells(enemy.Body),
			Color:        enemy.Color,
			TargetLength: enemy.TargetLength,
			Heading:      enemy.Heading,
		})
	}
	return snap
}
