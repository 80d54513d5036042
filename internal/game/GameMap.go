package game

import "fmt"

// Cell is a single grid coordinate. Cells outside the grid are legal values;
// they only exist transiently (a head that just left the board, an enemy
// tail still trailing in from the spawn corner).
type Cell struct {
	X int
	Y int
}

func (c Cell) Translate(dir Direction) Cell {
	return Cell{X: c.X + dir.Dx, Y: c.Y + dir.Dy}
}

func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < GridSize && c.Y >= 0 && c.Y < GridSize
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
