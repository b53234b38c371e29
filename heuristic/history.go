package heuristic

import "capture/game"

// History is a fixed-size ring of an agent's own past locations.
type History struct {
	buf  []game.Location
	next int
	n    int
}

func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{buf: make([]game.Location, size)}
}

func (h *History) Push(l game.Location) {
	h.buf[h.next] = l
	h.next = (h.next + 1) % len(h.buf)
	if h.n < len(h.buf) {
		h.n++
	}
}

func (h *History) Len() int {
	return h.n
}

// Recent returns the location pushed i pushes ago, 0 being the latest.
func (h *History) Recent(i int) (game.Location, bool) {
	if i < 0 || i >= h.n {
		return game.Unknown, false
	}
	return h.buf[(h.next-1-i+len(h.buf))%len(h.buf)], true
}
