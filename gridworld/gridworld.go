// Package gridworld implements a 2D grid world MDP with obstacles
// and a single absorbing target cell.
package gridworld

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/timpalpant/go-mdp"
)

const (
	DefaultObstacleReward = -2.0
	DefaultIdleReward     = -1.0
	DefaultTargetReward   = 1.0
)

// State is a cell of the grid. X increases rightwards from 0 at the left
// edge, Y increases downwards from 0 at the top edge.
type State struct {
	X, Y int
}

// String implements fmt.Stringer.
func (s State) String() string {
	return fmt.Sprintf("(%d, %d)", s.X, s.Y)
}

// Action is a compass direction. Actions compare case-insensitively.
type Action string

const (
	East  Action = "E"
	West  Action = "W"
	North Action = "N"
	South Action = "S"
)

var actions = []Action{East, West, North, South}

// GridWorld implements mdp.Environment.
//
// Moving off the edge of the grid leaves the agent in place with the idle
// reward. Moving into an obstacle leaves the agent in place with the
// obstacle reward. Moving onto the target yields the target reward. Once at
// the target, every action yields zero reward and no change in state.
type GridWorld struct {
	rows, cols int

	ObstacleReward float64
	IdleReward     float64
	TargetReward   float64

	agent     State
	target    State
	obstacles []State
}

var _ mdp.Environment[State, Action] = &GridWorld{}

// New creates an empty grid with the given dimensions, with the target
// and agent both at (0, 0). Negative dimensions are treated as zero.
func New(rows, cols int) *GridWorld {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	return &GridWorld{
		rows:           rows,
		cols:           cols,
		ObstacleReward: DefaultObstacleReward,
		IdleReward:     DefaultIdleReward,
		TargetReward:   DefaultTargetReward,
	}
}

// Dims returns the number of rows and columns of the grid.
func (g *GridWorld) Dims() (rows, cols int) {
	return g.rows, g.cols
}

func (g *GridWorld) Contains(s State) bool {
	return s.X >= 0 && s.X < g.cols && s.Y >= 0 && s.Y < g.rows
}

// SetAgent places the agent. The agent location does not affect the
// transition model; it is tracked for drivers that display it.
func (g *GridWorld) SetAgent(s State) {
	g.agent = s
}

func (g *GridWorld) Agent() State {
	return g.agent
}

func (g *GridWorld) SetTarget(s State) {
	g.target = s
}

func (g *GridWorld) Target() State {
	return g.target
}

// AddObstacles adds the given cells as obstacles, skipping any that
// are already obstacles.
func (g *GridWorld) AddObstacles(cells ...State) {
	for _, c := range cells {
		if g.IsObstacle(c) {
			continue
		}

		g.obstacles = append(g.obstacles, c)
	}
}

// RemoveObstacle removes the obstacle at the given cell, if there is one.
func (g *GridWorld) RemoveObstacle(cell State) {
	if i := slices.Index(g.obstacles, cell); i >= 0 {
		g.obstacles = slices.Delete(g.obstacles, i, i+1)
	}
}

func (g *GridWorld) Obstacles() []State {
	return append([]State(nil), g.obstacles...)
}

func (g *GridWorld) IsObstacle(s State) bool {
	return slices.Index(g.obstacles, s) >= 0
}

// Simulate implements mdp.Environment.
func (g *GridWorld) Simulate(s State, a Action) (float64, State) {
	if s == g.target {
		return 0, s
	}

	next := s
	switch Action(strings.ToUpper(string(a))) {
	case East:
		next.X++
	case West:
		next.X--
	case North:
		next.Y--
	case South:
		next.Y++
	default:
		return g.IdleReward, s
	}

	switch {
	case !g.Contains(next):
		return g.IdleReward, s
	case g.IsObstacle(next):
		return g.ObstacleReward, s
	case next == g.target:
		return g.TargetReward, next
	default:
		return g.IdleReward, next
	}
}

func (g *GridWorld) StatesEqual(a, b State) bool {
	return a == b
}

func (g *GridWorld) ActionsEqual(a, b Action) bool {
	return strings.EqualFold(string(a), string(b))
}

// IsTerminal returns true only for the target cell.
func (g *GridWorld) IsTerminal(s State) bool {
	return s == g.target
}

// States returns every cell of the grid in row-major order: state i
// is at (i % cols, i / cols).
func (g *GridWorld) States() []State {
	states := make([]State, 0, g.rows*g.cols)
	for i := 0; i < g.rows*g.cols; i++ {
		states = append(states, State{X: i % g.cols, Y: i / g.cols})
	}

	return states
}

// Actions returns East, West, North, South, in that order.
func (g *GridWorld) Actions() []Action {
	return append([]Action(nil), actions...)
}

func (g *GridWorld) StateKey(s State) string {
	return strconv.Itoa(s.X) + "," + strconv.Itoa(s.Y)
}

func (g *GridWorld) ActionKey(a Action) string {
	return strings.ToUpper(string(a))
}

// Index returns the position of s in States, or -1 if s is outside the grid.
func (g *GridWorld) Index(s State) int {
	if !g.Contains(s) {
		return -1
	}

	return s.Y*g.cols + s.X
}
