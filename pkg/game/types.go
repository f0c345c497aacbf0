package game

// Point represents a cell coordinate on the game board
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns p shifted by v
func (p Point) Add(v Point) Point {
	return Point{Row: p.Row + v.Row, Col: p.Col + v.Col}
}

// Cell is what a board position currently holds
type Cell int

const (
	CellEmpty Cell = iota
	CellBorder
	CellBody
	CellHead
	CellFood
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellBorder:
		return "border"
	case CellBody:
		return "body"
	case CellHead:
		return "head"
	case CellFood:
		return "food"
	default:
		return "unknown"
	}
}

// Direction is a requested movement. DirNone means no key arrived in time.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirUp
	DirRight
	DirDown
)

// Directions is the canonical fallback order used by the autopilot
var Directions = [4]Direction{DirLeft, DirUp, DirRight, DirDown}

// Vector returns the unit movement of the direction
func (d Direction) Vector() Point {
	switch d {
	case DirLeft:
		return Point{Row: 0, Col: -1}
	case DirUp:
		return Point{Row: -1, Col: 0}
	case DirRight:
		return Point{Row: 0, Col: 1}
	case DirDown:
		return Point{Row: 1, Col: 0}
	}
	return Point{}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	}
	return "none"
}

// ParseDirection maps a wire name ("up", "left", ...) to a direction
func ParseDirection(name string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == name {
			return d, true
		}
	}
	return DirNone, false
}

// Outcome is the result of a tick
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeCaught          // The snake's head reached the food
	OutcomeStuck           // The snake has no legal move, the player wins
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCaught:
		return "caught"
	case OutcomeStuck:
		return "stuck"
	}
	return "running"
}
