package game

import "time"

const (
	GridSize     = 20
	TickDuration = 200 * time.Millisecond

	EnemyMaxPopulation   = 2
	EnemyMinLength       = 1
	EnemyMaxLength       = 3
	EnemyFlipProbability = 0.10

	FoodScore            = 10
	EnemyScorePerSegment = 10

	commandChannelSize = 10
	updateChannelSize  = 16
)

var (
	// PlayerStartBody is head-first, trailing to the left of the head.
	PlayerStartBody  = []Cell{{X: 5, Y: 10}, {X: 4, Y: 10}, {X: 3, Y: 10}}
	PlayerStartDir   = Right
	EnemySpawnCorner = Cell{X: GridSize - 1, Y: GridSize - 1}
)
