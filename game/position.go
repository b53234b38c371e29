package game

import "fmt"

// Position is a grid cell, row 0 being the top line of the layout.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Less orders positions lexicographically by (row, col).
func (p Position) Less(o Position) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

// Add returns p moved by the action's direction vector.
func (p Position) Add(a Action) Position {
	dr, dc := a.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Location is a position that may not be observable.
type Location struct {
	Pos   Position
	Known bool
}

// Unknown is the location of an agent that cannot be observed.
var Unknown = Location{}

// At returns a known location.
func At(p Position) Location {
	return Location{Pos: p, Known: true}
}

func (l Location) String() string {
	if !l.Known {
		return "unknown"
	}
	return l.Pos.String()
}

// Opponent describes one opposing agent slot as seen by an observer.
type Opponent struct {
	Index    int
	Location Location
	Invading bool // inside the observer's territory
	Scared   bool
}
