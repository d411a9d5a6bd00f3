package mdp

import (
	"strconv"
	"strings"
)

const (
	left  = "Left"
	right = "Right"
)

// corridor is a 1-D chain of n states where the last state is terminal.
// Every move costs -1; the terminal state loops back to itself with reward 0.
type corridor struct {
	n       int
	actions []string
}

func newCorridor(n int) *corridor {
	return &corridor{n: n, actions: []string{left, right}}
}

func (c *corridor) Simulate(s int, a string) (float64, int) {
	if c.IsTerminal(s) {
		return 0, s
	}

	switch a {
	case right:
		if s+1 < c.n {
			return -1, s + 1
		}
		return -1, s
	default:
		if s > 0 {
			return -1, s - 1
		}
		return -1, 0
	}
}

func (c *corridor) StatesEqual(a, b int) bool     { return a == b }
func (c *corridor) ActionsEqual(a, b string) bool { return a == b }
func (c *corridor) IsTerminal(s int) bool         { return s == c.n-1 }
func (c *corridor) StateKey(s int) string         { return strconv.Itoa(s) }
func (c *corridor) ActionKey(a string) string     { return a }
func (c *corridor) Actions() []string             { return c.actions }

func (c *corridor) States() []int {
	states := make([]int, c.n)
	for i := range states {
		states[i] = i
	}
	return states
}

// leakyCorridor transitions out of the declared state universe
// when moving right from the last state.
type leakyCorridor struct {
	corridor
}

func (c *leakyCorridor) IsTerminal(s int) bool { return false }

func (c *leakyCorridor) Simulate(s int, a string) (float64, int) {
	if a == right {
		return -1, s + 1
	}
	return c.corridor.Simulate(s, a)
}

// tieEnv has two states: 0, from which "A" and "B" both reach the
// terminal state 1 with reward -1, and "Stay" loops with reward -5.
type tieEnv struct {
	actions []string
}

func (e *tieEnv) Simulate(s int, a string) (float64, int) {
	if s == 1 {
		return 0, 1
	}
	if a == "Stay" {
		return -5, 0
	}
	return -1, 1
}

func (e *tieEnv) StatesEqual(a, b int) bool     { return a == b }
func (e *tieEnv) ActionsEqual(a, b string) bool { return a == b }
func (e *tieEnv) IsTerminal(s int) bool         { return s == 1 }
func (e *tieEnv) StateKey(s int) string         { return strconv.Itoa(s) }
func (e *tieEnv) ActionKey(a string) string     { return a }
func (e *tieEnv) States() []int                 { return []int{0, 1} }
func (e *tieEnv) Actions() []string             { return e.actions }

// caseInsensitiveKeyer treats actions that differ only in case as equal.
type caseInsensitiveKeyer struct{}

func (caseInsensitiveKeyer) StateKey(s int) string     { return strconv.Itoa(s) }
func (caseInsensitiveKeyer) ActionKey(a string) string { return strings.ToUpper(a) }

// scriptedRand returns a fixed sequence of draws, cycling when exhausted.
type scriptedRand struct {
	draws []int
	i     int
}

func (r *scriptedRand) Intn(n int) int {
	x := r.draws[r.i%len(r.draws)] % n
	r.i++
	return x
}

// stringKeyer uses states and actions verbatim as keys.
type stringKeyer struct{}

func (stringKeyer) StateKey(s string) string  { return s }
func (stringKeyer) ActionKey(a string) string { return a }
