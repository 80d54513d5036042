package game

// PlayerSnake is the user-controlled snake. Body is head-first and never empty.
type PlayerSnake struct {
	Body          []Cell
	Direction     Direction
	NextDirection Direction
}

func CreateNewPlayer() *PlayerSnake {
	return &PlayerSnake{
		Body:          copyCells(PlayerStartBody),
		Direction:     PlayerStartDir,
		NextDirection: PlayerStartDir,
	}
}

func (p *PlayerSnake) Head() Cell {
	return p.Body[0]
}

// UpdateDirection buffers newDir until the next tick. Invalid headings and
// reversals of the committed heading are dropped.
func (p *PlayerSnake) UpdateDirection(newDir Direction) bool {
	if !newDir.IsValid() || newDir.IsOpposite(p.Direction) {
		return false
	}
	p.NextDirection = newDir
	return true
}

// advance commits the buffered heading and pushes the new head. The tail is
// left in place; the caller decides whether the snake grows.
func (p *PlayerSnake) advance() Cell {
	p.Direction = p.NextDirection
	head := p.Head().Translate(p.Direction)
	p.Body = append([]Cell{head}, p.Body...)
	return head
}

func (p *PlayerSnake) dropTail() {
	p.Body = p.Body[:len(p.Body)-1]
}
