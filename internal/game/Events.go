package game

type EventKind int

const (
	EventFoodEaten EventKind = iota
	EventEnemyEaten
	EventEnemyRespawned
	EventPlayerDied
)

func (k EventKind) String() string {
	switch k {
	case EventFoodEaten:
		return "food-eaten"
	case EventEnemyEaten:
		return "enemy-eaten"
	case EventEnemyRespawned:
		return "enemy-respawned"
	case EventPlayerDied:
		return "player-died"
	}
	return "unknown"
}

type DeathCause string

const (
	CauseNone  DeathCause = ""
	CauseWall  DeathCause = "wall-collision"
	CauseSelf  DeathCause = "self-collision"
	CauseEnemy DeathCause = "enemy-collision"
)

// Event describes one thing that happened during a tick. Color is only
// meaningful for enemy events, Cause only for EventPlayerDied.
type Event struct {
	Kind   EventKind
	Cell   Cell
	Color  EnemyColor
	Points int
	Cause  DeathCause
}

type StepResult struct {
	Tick     uint64
	Events   []Event
	Terminal bool
}

func (r *StepResult) add(ev Event) {
	r.Events = append(r.Events, ev)
}

// Count returns how many events of kind k happened in the tick.
func (r StepResult) Count(k EventKind) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Kind == k {
			n++
		}
	}
	return n
}
