package types

// Point is a cell coordinate on the grid. It doubles as a movement vector.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Direction is one of the four movement directions, or None.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// ToPoint converts a Direction into its unit movement vector.
// y grows downwards, as on screen.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
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

// BoundaryPolicy decides which head positions count as outside the grid.
type BoundaryPolicy int

const (
	// BoundaryExclusive treats x >= Width or y >= Height as a wall hit.
	BoundaryExclusive BoundaryPolicy = iota
	// BoundaryLenient only treats x > Width or y > Height as a wall hit,
	// letting the head sit one cell past the last visible column/row.
	BoundaryLenient
)

// FoodPolicy decides whether food may spawn under the snake.
type FoodPolicy int

const (
	// FoodResample draws again until the food lands on a free cell.
	FoodResample FoodPolicy = iota
	// FoodAnywhere accepts any cell of the grid.
	FoodAnywhere
)
