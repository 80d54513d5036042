package game

// Simulation advances a single game one tick at a time. It is not safe for
// concurrent use; GameManager serialises access to it.
type Simulation struct {
	rng   RandomSource
	state *GameState
}

func NewSimulation(rng RandomSource) *Simulation {
	s := &Simulation{rng: rng}
	s.Reset()
	return s
}

// Reset throws the current run away and starts a new one.
func (s *Simulation) Reset() {
	s.state = newGameState(s.rng)
}

// SetIntent buffers a heading for the next Step. It reports whether the
// heading was accepted.
func (s *Simulation) SetIntent(dir Direction) bool {
	if s.state.Terminal {
		return false
	}
	return s.state.Player.UpdateDirection(dir)
}

func (s *Simulation) Score() int {
	return s.state.Score
}

func (s *Simulation) Terminal() bool {
	return s.state.Terminal
}

// Step runs one tick: player move and food, enemy moves, then collisions
// against the post-move board. Calling Step on a finished game does nothing.
func (s *Simulation) Step() StepResult {
	gs := s.state
	if gs.Terminal {
		return StepResult{Tick: gs.Tick, Terminal: true}
	}

	gs.Tick++
	result := StepResult{Tick: gs.Tick}

	head := gs.Player.advance()
	if head == gs.Food {
		gs.Score += FoodScore
		gs.Food = gs.placeFood(s.rng)
		result.add(Event{Kind: EventFoodEaten, Cell: head, Points: FoodScore})
	} else {
		gs.Player.dropTail()
	}

	s.moveEnemies(&result)
	s.resolveCollisions(&result)

	result.Terminal = gs.Terminal
	return result
}

// moveEnemies advances every enemy that was on the board when the phase
// started. Replacements spawned here wait for the next tick.
func (s *Simulation) moveEnemies(result *StepResult) {
	gs := s.state
	moving := append([]*EnemySnake(nil), gs.Enemies...)

	for _, enemy := range moving {
		if s.rng.Float64() < EnemyFlipProbability {
			enemy.flipHeading()
		}

		next := enemy.nextHead()
		if IsWall(next) {
			gs.respawnEnemy(enemy, s.rng)
			result.add(Event{Kind: EventEnemyRespawned, Cell: next, Color: enemy.Color})
			continue
		}

		enemy.advanceTo(next)
	}
}

func (s *Simulation) resolveCollisions(result *StepResult) {
	gs := s.state
	body := copyCells(gs.Player.Body)
	head := body[0]

	if IsWall(head) {
		s.terminate(CauseWall, head, result)
		return
	}

	if containsCell(body[1:], head) {
		s.terminate(CauseSelf, head, result)
		return
	}

	for _, enemy := range gs.Enemies {
		if enemy.occupies(head) {
			s.terminate(CauseEnemy, head, result)
			return
		}
	}

	// Every enemy is judged against the same body snapshot, so two enemies
	// can be eaten on the same tick.
	var eaten []*EnemySnake
	for _, enemy := range gs.Enemies {
		if containsCell(body[1:], enemy.Head()) {
			eaten = append(eaten, enemy)
		}
	}

	for _, enemy := range eaten {
		points := enemy.Points()
		gs.Score += points
		gs.EnemiesEaten++
		gs.respawnEnemy(enemy, s.rng)
		result.add(Event{Kind: EventEnemyEaten, Cell: enemy.Head(), Color: enemy.Color, Points: points})
	}
}

func (s *Simulation) terminate(cause DeathCause, at Cell, result *StepResult) {
	s.state.Terminal = true
	s.state.Cause = cause
	result.add(Event{Kind: EventPlayerDied, Cell: at, Cause: cause})
}
