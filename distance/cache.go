package distance

import "capture/game"

// Solver computes the maze distance between two cells of the state's board.
type Solver func(a, b game.Position, s game.State) (int, error)

type pair struct {
	lo, hi game.Position
}

func key(a, b game.Position) pair {
	if b.Less(a) {
		return pair{lo: b, hi: a}
	}
	return pair{lo: a, hi: b}
}

// Cache memoizes a Solver over unordered position pairs. Entries are never
// evicted: the board is fixed for the lifetime of a match.
type Cache struct {
	solve  Solver
	table  map[pair]int
	hits   int
	misses int
}

func NewCache(solve Solver) *Cache {
	if solve == nil {
		solve = game.MazeDistance
	}
	return &Cache{
		solve: solve,
		table: make(map[pair]int),
	}
}

// Distance returns the cached distance between a and b, computing and
// storing it on a miss. Solver errors are returned unchanged and not cached.
func (c *Cache) Distance(a, b game.Position, s game.State) (int, error) {
	k := key(a, b)
	if d, ok := c.table[k]; ok {
		c.hits++
		return d, nil
	}
	c.misses++
	d, err := c.solve(a, b, s)
	if err != nil {
		return 0, err
	}
	c.table[k] = d
	return d, nil
}

func (c *Cache) Len() int {
	return len(c.table)
}

// Stats returns the number of lookups answered from the table and the
// number forwarded to the solver.
func (c *Cache) Stats() (hits, misses int) {
	return c.hits, c.misses
}
