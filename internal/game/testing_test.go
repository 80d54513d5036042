package game

import (
	"strings"
	"sync/atomic"
	"time"
)

// scriptedRandom replays fixed draws. Once a script runs dry Intn returns 0
// and Float64 returns a value that never triggers a heading flip.
type scriptedRandom struct {
	ints   []int
	floats []float64
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// manualScheduler only fires when a test pushes to ch.
type manualScheduler struct {
	ch      chan time.Time
	stopped atomic.Bool
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{ch: make(chan time.Time)}
}

func (m *manualScheduler) C() <-chan time.Time { return m.ch }
func (m *manualScheduler) Stop()               { m.stopped.Store(true) }

// dumpBoard renders a snapshot for failure messages: P/p player head/body,
// B/b and Y/y enemies, * food.
func dumpBoard(snap Snapshot) string {
	grid := make([][]byte, GridSize)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", GridSize))
	}
	put := func(c Cell, b byte) {
		if c.InBounds() {
			grid[c.Y][c.X] = b
		}
	}
	put(snap.Food, '*')
	for _, enemy := range snap.Enemies {
		sym := byte('b')
		if enemy.Color == Yellow {
			sym = 'y'
		}
		for i, c := range enemy.Body {
			if i == 0 {
				put(c, sym-32)
			} else {
				put(c, sym)
			}
		}
	}
	for i, c := range snap.Player {
		if i == 0 {
			put(c, 'P')
		} else {
			put(c, 'p')
		}
	}
	var sb strings.Builder
	for _, row := range grid {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func enemyByColor(gs *GameState, color EnemyColor) *EnemySnake {
	for _, enemy := range gs.Enemies {
		if enemy.Color == color {
			return enemy
		}
	}
	return nil
}
