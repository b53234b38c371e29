package game

import (
	"fmt"
	"math"
)

// MazeDistance is the length of the shortest path from a to b that avoids
// walls, found by breadth-first search over the state's board.
func MazeDistance(a, b Position, s State) (int, error) {
	board := s.Board()
	if board.IsWall(a) || board.IsWall(b) {
		return 0, fmt.Errorf("maze distance %v to %v: %w", a, b, ErrUnreachable)
	}
	if a == b {
		return 0, nil
	}

	width := board.Width()
	dist := make([]int, width*board.Height())
	for i := range dist {
		dist[i] = -1
	}
	dist[a.Row*width+a.Col] = 0

	queue := []Position{a}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		d := dist[current.Row*width+current.Col]

		for _, action := range Actions[1:] {
			next := current.Add(action)
			if board.IsWall(next) || dist[next.Row*width+next.Col] >= 0 {
				continue
			}
			if next == b {
				return d + 1, nil
			}
			dist[next.Row*width+next.Col] = d + 1
			queue = append(queue, next)
		}
	}
	return 0, fmt.Errorf("maze distance %v to %v: %w", a, b, ErrUnreachable)
}

// EuclideanDistance is the straight-line distance between two cells.
func EuclideanDistance(a, b Position) float64 {
	return math.Hypot(float64(a.Row-b.Row), float64(a.Col-b.Col))
}

// ManhattanDistance is the grid distance between two cells ignoring walls.
func ManhattanDistance(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
