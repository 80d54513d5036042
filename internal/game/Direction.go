package game

type Direction struct {
	Dx, Dy int
}

var (
	Up    = Direction{Dx: 0, Dy: -1}
	Down  = Direction{Dx: 0, Dy: 1}
	Left  = Direction{Dx: -1, Dy: 0}
	Right = Direction{Dx: 1, Dy: 0}
)

// IsValid reports whether d is one of the four unit headings.
func (d Direction) IsValid() bool {
	return (d.Dx == 0) != (d.Dy == 0) && d.Dx*d.Dx+d.Dy*d.Dy == 1
}

func (d Direction) Opposite() Direction {
	return Direction{Dx: -d.Dx, Dy: -d.Dy}
}

func (d Direction) IsOpposite(other Direction) bool {
	return d.IsValid() && other.IsValid() && d.Dx+other.Dx == 0 && d.Dy+other.Dy == 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "invalid"
}
