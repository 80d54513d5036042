package game

type EnemyColor int

const (
	Blue EnemyColor = iota
	Yellow
)

// EnemyColors is the spawn order used when a game starts.
var EnemyColors = []EnemyColor{Blue, Yellow}

func (c EnemyColor) String() string {
	switch c {
	case Blue:
		return "BLUE"
	case Yellow:
		return "YELLOW"
	}
	return "UNKNOWN"
}

// enemyHeadings are the only two headings an enemy can ever take.
var enemyHeadings = []Direction{Up, Left}

// EnemySnake wanders from the bottom-right corner towards the top-left one.
type EnemySnake struct {
	Body         []Cell
	TargetLength int
	Heading      Direction
	Color        EnemyColor
}

// CreateNewEnemy rolls length then heading, and lays the body out from the
// spawn corner so it trails away from the direction of travel.
func CreateNewEnemy(color EnemyColor, rng RandomSource) *EnemySnake {
	length := EnemyMinLength + rng.Intn(EnemyMaxLength-EnemyMinLength+1)
	heading := enemyHeadings[rng.Intn(len(enemyHeadings))]
	trail := heading.Opposite()

	body := make([]Cell, 0, length)
	for i := 0; i < length; i++ {
		body = append(body, Cell{
			X: EnemySpawnCorner.X + trail.Dx*i,
			Y: EnemySpawnCorner.Y + trail.Dy*i,
		})
	}

	return &EnemySnake{
		Body:         body,
		TargetLength: length,
		Heading:      heading,
		Color:        color,
	}
}

func (e *EnemySnake) Head() Cell {
	return e.Body[0]
}

func (e *EnemySnake) flipHeading() {
	if e.Heading == Up {
		e.Heading = Left
	} else {
		e.Heading = Up
	}
}

func (e *EnemySnake) nextHead() Cell {
	return e.Head().Translate(e.Heading)
}

func (e *EnemySnake) advanceTo(head Cell) {
	e.Body = append([]Cell{head}, e.Body...)
	if len(e.Body) > e.TargetLength {
		e.Body = e.Body[:e.TargetLength]
	}
}

func (e *EnemySnake) occupies(c Cell) bool {
	return containsCell(e.Body, c)
}

// Points is what the player earns for eating this enemy.
func (e *EnemySnake) Points() int {
	return e.TargetLength * EnemyScorePerSegment
}
