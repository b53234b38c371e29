package game

// Action is a single-step move on the grid.
type Action int

const (
	Stop Action = iota
	North
	South
	East
	West
)

// Actions lists every action in enumeration order.
var Actions = []Action{Stop, North, South, East, West}

// Delta returns the (row, col) offset of the action.
func (a Action) Delta() (int, int) {
	switch a {
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

func (a Action) String() string {
	switch a {
	case Stop:
		return "Stop"
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Invalid"
	}
}
