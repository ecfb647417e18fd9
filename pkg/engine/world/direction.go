package world

// Direction is one of the four unit moves allowed on the grid
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// NeighborOrder is the order adjacency lists are built in: down, up, right, left.
// Expansion order, and so the choice between equal-cost paths, follows it.
func NeighborOrder() []Direction {
	return []Direction{South, North, East, West}
}

// String returns the name of the direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Step returns the position one move away from p in this direction.
// The result may lie outside the grid.
func (d Direction) Step(p Pos) Pos {
	dr, dc := d.Delta()
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// DirectionBetween returns the direction leading from a to an adjacent b.
// ok is false when the two positions are not orthogonal neighbours.
func DirectionBetween(a, b Pos) (dir Direction, ok bool) {
	for _, d := range NeighborOrder() {
		if d.Step(a) == b {
			return d, true
		}
	}
	return 0, false
}
