package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/timpalpant/go-mdp/gridworld"
)

// Layout describes a grid world. Layouts are JSON serializable; cells are
// given as [x, y] pairs.
type Layout struct {
	Rows      int      `json:"rows"`
	Cols      int      `json:"cols"`
	Target    [2]int   `json:"target"`
	Agent     [2]int   `json:"agent"`
	Obstacles [][2]int `json:"obstacles"`

	ObstacleReward *float64 `json:"obstacle_reward,omitempty"`
	IdleReward     *float64 `json:"idle_reward,omitempty"`
	TargetReward   *float64 `json:"target_reward,omitempty"`
}

func LoadLayout(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var layout Layout
	if err := json.NewDecoder(f).Decode(&layout); err != nil {
		return nil, errors.Wrapf(err, "decoding layout %s", path)
	}

	return &layout, nil
}

// Build creates the grid world described by the layout.
func (l *Layout) Build() (*gridworld.GridWorld, error) {
	if l.Rows <= 0 || l.Cols <= 0 {
		return nil, errors.Errorf("invalid grid dimensions %dx%d", l.Rows, l.Cols)
	}

	g := gridworld.New(l.Rows, l.Cols)
	target := cell(l.Target)
	if !g.Contains(target) {
		return nil, errors.Errorf("target %v is outside the grid", target)
	}
	g.SetTarget(target)
	g.SetAgent(cell(l.Agent))

	for _, c := range l.Obstacles {
		obstacle := cell(c)
		if !g.Contains(obstacle) {
			return nil, errors.Errorf("obstacle %v is outside the grid", obstacle)
		}
		if obstacle == target {
			return nil, errors.Errorf("obstacle %v is on the target", obstacle)
		}
		g.AddObstacles(obstacle)
	}

	if l.ObstacleReward != nil {
		g.ObstacleReward = *l.ObstacleReward
	}
	if l.IdleReward != nil {
		g.IdleReward = *l.IdleReward
	}
	if l.TargetReward != nil {
		g.TargetReward = *l.TargetReward
	}

	return g, nil
}

func cell(c [2]int) gridworld.State {
	return gridworld.State{X: c[0], Y: c[1]}
}
