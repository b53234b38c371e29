package game

import (
	"fmt"
	"strings"
)

// Layout is the static description of a capture board: walls, initial
// food and capsules, and one start cell per agent.
type Layout struct {
	width    int
	height   int
	walls    []bool
	food     []Position
	capsules []Position
	starts   []Position
}

// ParseLayout reads a layout from text. '%' is a wall, '.' food, 'o' a
// capsule and the digits 0-9 are agent start cells.
func ParseLayout(text string) (*Layout, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("empty layout")
	}

	l := &Layout{
		width:  len(lines[0]),
		height: len(lines),
	}
	l.walls = make([]bool, l.width*l.height)
	starts := map[int]Position{}

	for row, line := range lines {
		if len(line) != l.width {
			return nil, fmt.Errorf("layout row %d has width %d, expected %d", row, len(line), l.width)
		}
		for col, ch := range line {
			p := Position{Row: row, Col: col}
			switch {
			case ch == '%':
				l.walls[l.index(p)] = true
			case ch == '.':
				l.food = append(l.food, p)
			case ch == 'o':
				l.capsules = append(l.capsules, p)
			case ch >= '0' && ch <= '9':
				agent := int(ch - '0')
				if _, ok := starts[agent]; ok {
					return nil, fmt.Errorf("duplicate start for agent %d", agent)
				}
				starts[agent] = p
			case ch == ' ':
			default:
				return nil, fmt.Errorf("unexpected layout character %q at %v", ch, p)
			}
		}
	}

	if len(starts) == 0 || len(starts)%2 != 0 {
		return nil, fmt.Errorf("layout needs an even, non-zero number of agents, got %d", len(starts))
	}
	l.starts = make([]Position, len(starts))
	for i := range l.starts {
		p, ok := starts[i]
		if !ok {
			return nil, fmt.Errorf("layout is missing a start for agent %d", i)
		}
		l.starts[i] = p
	}
	return l, nil
}

// MustParseLayout is ParseLayout for layouts known to be valid.
func MustParseLayout(text string) *Layout {
	l, err := ParseLayout(text)
	if err != nil {
		panic(err)
	}
	return l
}

// DefaultLayout returns a 20x9 maze for four agents, symmetric under a
// half turn so neither team has an advantage.
func DefaultLayout() *Layout {
	return MustParseLayout(defaultLayout)
}

const defaultLayout = `
%%%%%%%%%%%%%%%%%%%%
%0  .  % .   .    .%
%2%% %%% ..% % %%% %
% . o .    % .   . %
%%% %% %%  %% %% %%%
% .   . %    . o . %
% %%% % %.. %%% %%3%
%.    .   . %  .  1%
%%%%%%%%%%%%%%%%%%%%
`

func (l *Layout) Width() int  { return l.width }
func (l *Layout) Height() int { return l.height }

// IsWall reports whether p is a wall. Cells outside the board count as walls.
func (l *Layout) IsWall(p Position) bool {
	if !l.InBounds(p) {
		return true
	}
	return l.walls[l.index(p)]
}

func (l *Layout) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < l.height && p.Col >= 0 && p.Col < l.width
}

// NumAgents is the number of start cells in the layout.
func (l *Layout) NumAgents() int {
	return len(l.starts)
}

// Start returns the respawn cell of an agent.
func (l *Layout) Start(agent int) Position {
	return l.starts[agent]
}

func (l *Layout) index(p Position) int {
	return p.Row*l.width + p.Col
}
