package game

// Directions lists every heading the player may take.
var Directions = []Direction{Up, Down, Left, Right}

func IsWall(c Cell) bool {
	return !c.InBounds()
}

func containsCell(cells []Cell, target Cell) bool {
	for _, c := range cells {
		if c == target {
			return true
		}
	}
	return false
}

func copyCells(cells []Cell) []Cell {
	out := make([]Cell, len(cells))
	copy(out, cells)
	return out
}
