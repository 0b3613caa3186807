package types

// Direction is a cardinal heading.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// ToPoint converts a Direction into a one-cell displacement in board units.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -CellSize}
	case Right:
		return Point{X: CellSize, Y: 0}
	case Down:
		return Point{X: 0, Y: CellSize}
	case Left:
		return Point{X: -CellSize, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the 180 degree turn of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

// IsOpposite reports whether d and o point in exactly opposite directions.
func (d Direction) IsOpposite(o Direction) bool {
	return d != None && d.Opposite() == o
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}
