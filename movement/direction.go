package movement

// Direction is the heading of the most recent move.
type Direction uint8

const (
	// None marks a state that has not moved yet.
	None Direction = iota
	// North decreases the row.
	North
	// East increases the column.
	East
	// South increases the row.
	South
	// West decreases the column.
	West
)

// Directions lists the four real directions in a fixed order.
var Directions = [4]Direction{North, East, South, West}

// Opposite returns the reverse heading. None is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return None
	}
}

// Offset returns the unit (row, col) displacement of one step in d.
// None yields (0, 0).
func (d Direction) Offset() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Perpendicular reports whether d and e are a 90° turn apart.
func (d Direction) Perpendicular(e Direction) bool {
	if d == None || e == None {
		return false
	}

	return d != e && d != e.Opposite()
}

// String returns the lower-case name of d.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "none"
	}
}
