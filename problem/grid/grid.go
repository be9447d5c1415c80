// Package grid is a maze on a rectangular grid of cells, used to exercise the
// graph searches from the command line.
//
// Cells are '#' for walls, 'S' for the start, 'G' for goals, '.' for open
// cells and digits 1 to 9 for open cells that cost that much to enter. 'S'
// and 'G' cost 1.
package grid

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"statesearch/problem"

	"gopkg.in/yaml.v3"
)

var ErrInvalidMaze = errors.New("invalid maze")

type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

type Direction string

const (
	North Direction = "N"
	East  Direction = "E"
	South Direction = "S"
	West  Direction = "W"
)

// Directions is the order in which actions are generated.
var Directions = []Direction{North, East, South, West}

var offsets = map[Direction]Point{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

const wall = 0

// Maze is immutable once built and safe for concurrent searches.
type Maze struct {
	name  string
	costs [][]int // Entry cost per cell, wall for blocked cells
	start Point
	goals map[Point]bool
}

var _ problem.Problem[Point, Direction] = (*Maze)(nil)

type document struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

func Parse(data []byte) (*Maze, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode maze: %w", err)
	}
	return New(doc.Name, doc.Rows)
}

func LoadFile(path string) (*Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read maze: %w", err)
	}
	maze, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return maze, nil
}

func New(name string, rows []string) (*Maze, error) {
	m := &Maze{
		name:  name,
		costs: make([][]int, len(rows)),
		goals: make(map[Point]bool),
	}
	starts := 0
	for r, row := range rows {
		m.costs[r] = make([]int, len(row))
		for c, cell := range row {
			cost := 1
			switch {
			case cell == '#':
				cost = wall
			case cell == 'S':
				m.start = Point{r, c}
				starts++
			case cell == 'G':
				m.goals[Point{r, c}] = true
			case cell == '.':
			case cell >= '1' && cell <= '9':
				cost = int(cell - '0')
			default:
				return nil, fmt.Errorf("cell %q at %v: %w", cell, Point{r, c}, ErrInvalidMaze)
			}
			m.costs[r][c] = cost
		}
	}

	if starts != 1 {
		return nil, fmt.Errorf("%d start cells: %w", starts, ErrInvalidMaze)
	}
	if len(m.goals) == 0 {
		return nil, fmt.Errorf("no goal cell: %w", ErrInvalidMaze)
	}
	return m, nil
}

func (m *Maze) Name() string {
	return m.name
}

func (m *Maze) InitialState() Point {
	return m.start
}

func (m *Maze) IsGoal(state Point) bool {
	return m.goals[state]
}

func (m *Maze) Actions(state Point) []Direction {
	var actions []Direction
	for _, d := range Directions {
		if m.open(m.move(state, d)) {
			actions = append(actions, d)
		}
	}
	return actions
}

func (m *Maze) Successor(state Point, action Direction) Point {
	next := m.move(state, action)
	if !m.open(next) {
		panic(fmt.Sprintf("cannot move %s from %v", action, state))
	}
	return next
}

func (m *Maze) Cost(state Point, action Direction) float64 {
	next := m.move(state, action)
	return float64(m.costs[next.Row][next.Col])
}

func (m *Maze) move(p Point, d Direction) Point {
	offset := offsets[d]
	return Point{p.Row + offset.Row, p.Col + offset.Col}
}

func (m *Maze) open(p Point) bool {
	if p.Row < 0 || p.Row >= len(m.costs) || p.Col < 0 || p.Col >= len(m.costs[p.Row]) {
		return false
	}
	return m.costs[p.Row][p.Col] != wall
}

// Render draws the maze with path marked by '*'.
func (m *Maze) Render(path []Direction) string {
	marked := make(map[Point]bool)
	state := m.start
	for _, d := range path {
		state = m.move(state, d)
		marked[state] = true
	}

	var b strings.Builder
	for r, row := range m.costs {
		for c, cost := range row {
			p := Point{r, c}
			switch {
			case p == m.start:
				b.WriteByte('S')
			case m.goals[p]:
				b.WriteByte('G')
			case marked[p]:
				b.WriteByte('*')
			case cost == wall:
				b.WriteByte('#')
			case cost == 1:
				b.WriteByte('.')
			default:
				b.WriteByte(byte('0' + cost))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Manhattan is the distance to the nearest goal. Every move costs at least 1,
// so it never overestimates and is consistent.
func Manhattan(p problem.Problem[Point, Direction], state Point) float64 {
	m, ok := p.(*Maze)
	if !ok {
		return 0
	}
	best := math.MaxInt
	for goal := range m.goals {
		best = min(best, abs(goal.Row-state.Row)+abs(goal.Col-state.Col))
	}
	return float64(best)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Heuristics maps the names accepted on the command line.
var Heuristics = map[string]problem.Heuristic[Point, Direction]{
	"null":      problem.NullHeuristic[Point, Direction],
	"manhattan": Manhattan,
}
