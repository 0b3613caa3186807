package types

// Board geometry. The board is fixed at 30x20 cells of 20 units each.
const (
	CellSize = 20
	Columns  = 30
	Rows     = 20

	BoardWidth  = Columns * CellSize
	BoardHeight = Rows * CellSize
)

// Point is a cell position in board units (not cell indices).
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Grid represents the board dimensions in units
type Grid struct {
	Width  int
	Height int
}

// DefaultGrid is the only board size the game supports.
var DefaultGrid = Grid{Width: BoardWidth, Height: BoardHeight}

// Contains reports whether p lies inside [0,Width)x[0,Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cell slots along each axis.
func (g Grid) Cells() (cols, rows int) {
	return g.Width / CellSize, g.Height / CellSize
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}
