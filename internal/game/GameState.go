package game

// GameState is everything one run of the game owns. It is built whole by
// newGameState and never patched back to a starting position.
type GameState struct {
	Player       *PlayerSnake
	Food         Cell
	Enemies      []*EnemySnake
	Score        int
	Terminal     bool
	Cause        DeathCause
	Tick         uint64
	EnemiesEaten int
}

func newGameState(rng RandomSource) *GameState {
	gs := &GameState{
		Player: CreateNewPlayer(),
	}
	for _, color := range EnemyColors {
		gs.spawnEnemy(color, rng)
	}
	gs.Food = gs.placeFood(rng)
	return gs
}

// spawnEnemy appends a fresh enemy unless the roster is full or the color is
// already on the board.
func (gs *GameState) spawnEnemy(color EnemyColor, rng RandomSource) {
	if len(gs.Enemies) >= EnemyMaxPopulation {
		return
	}
	for _, enemy := range gs.Enemies {
		if enemy.Color == color {
			return
		}
	}
	gs.Enemies = append(gs.Enemies, CreateNewEnemy(color, rng))
}

func (gs *GameState) removeEnemy(target *EnemySnake) {
	for i, enemy := range gs.Enemies {
		if enemy == target {
			gs.Enemies = append(gs.Enemies[:i], gs.Enemies[i+1:]...)
			return
		}
	}
}

func (gs *GameState) respawnEnemy(enemy *EnemySnake, rng RandomSource) {
	gs.removeEnemy(enemy)
	gs.spawnEnemy(enemy.Color, rng)
}

func (gs *GameState) isOccupied(c Cell) bool {
	if containsCell(gs.Player.Body, c) {
		return true
	}
	for _, enemy := range gs.Enemies {
		if enemy.occupies(c) {
			return true
		}
	}
	return false
}

// placeFood samples uniformly random cells until one is free. With at most a
// few dozen occupied cells on a 400 cell board this terminates quickly.
func (gs *GameState) placeFood(rng RandomSource) Cell {
	for {
		candidate := Cell{
			X: rng.Intn(GridSize),
			Y: rng.Intn(GridSize),
		}
		if !gs.isOccupied(candidate) {
			return candidate
		}
	}
}
