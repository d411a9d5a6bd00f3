package main

import (
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/timpalpant/go-mdp/gridworld"
)

var arrows = map[gridworld.Action]string{
	gridworld.North: "↑",
	gridworld.South: "↓",
	gridworld.East:  "→",
	gridworld.West:  "←",
}

// formatPolicy draws the policy as a grid of arrows, one row per line.
// Obstacles are drawn as '#' and the target as '*'.
func formatPolicy(g *gridworld.GridWorld, policy []gridworld.Action) string {
	rows, cols := g.Dims()
	var sb strings.Builder
	for y := 0; y < rows; y++ {
		cells := make([]string, cols)
		for x := 0; x < cols; x++ {
			s := gridworld.State{X: x, Y: y}
			switch {
			case g.IsTerminal(s):
				cells[x] = "*"
			case g.IsObstacle(s):
				cells[x] = "#"
			default:
				cells[x] = arrows[gridworld.Action(g.ActionKey(policy[g.Index(s)]))]
			}
		}

		sb.WriteString(strings.Join(cells, " "))
		sb.WriteString("\n")
	}

	return sb.String()
}

// plotPolicyChanges saves a line plot of the number of states whose
// action changed at each iteration.
func plotPolicyChanges(title string, changes []int, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "States changed"

	points := make(plotter.XYs, len(changes))
	for i, n := range changes {
		points[i] = plotter.XY{
			X: float64(i + 1),
			Y: float64(n),
		}
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return err
	}

	p.Add(line)
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
