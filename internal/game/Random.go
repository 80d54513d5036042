package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// RandomSource is every random draw the simulation makes: food cells and
// enemy length/heading go through Intn, the enemy heading flip through Float64.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

func NewRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

func NewTimeSeededSource() RandomSource {
	return NewRandomSource(uint64(time.Now().UnixNano()))
}
