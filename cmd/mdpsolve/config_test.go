package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/timpalpant/go-mdp/gridworld"
)

func TestLoadLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	data := `{
		"rows": 4, "cols": 6,
		"target": [5, 3],
		"agent": [0, 0],
		"obstacles": [[2, 0], [2, 1], [2, 1]],
		"idle_reward": -0.5
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	layout, err := LoadLayout(path)
	if err != nil {
		t.Fatal(err)
	}

	g, err := layout.Build()
	if err != nil {
		t.Fatal(err)
	}

	if rows, cols := g.Dims(); rows != 4 || cols != 6 {
		t.Errorf("expected 4x6 grid, got %dx%d", rows, cols)
	}
	if g.Target() != (gridworld.State{X: 5, Y: 3}) {
		t.Errorf("unexpected target %v", g.Target())
	}
	if n := len(g.Obstacles()); n != 2 {
		t.Errorf("expected 2 obstacles, got %d", n)
	}
	if g.IdleReward != -0.5 || g.ObstacleReward != gridworld.DefaultObstacleReward {
		t.Errorf("unexpected rewards: idle=%v obstacle=%v", g.IdleReward, g.ObstacleReward)
	}
}

func TestLayout_BuildInvalid(t *testing.T) {
	testCases := []Layout{
		{Rows: 0, Cols: 3},
		{Rows: 3, Cols: 3, Target: [2]int{3, 0}},
		{Rows: 3, Cols: 3, Obstacles: [][2]int{{-1, 0}}},
		{Rows: 3, Cols: 3, Target: [2]int{1, 1}, Obstacles: [][2]int{{1, 1}}},
	}

	for _, layout := range testCases {
		if _, err := layout.Build(); err == nil {
			t.Errorf("expected error for layout %+v", layout)
		}
	}
}

func TestFormatPolicy(t *testing.T) {
	g := gridworld.New(2, 2)
	g.SetTarget(gridworld.State{X: 1, Y: 1})
	g.AddObstacles(gridworld.State{X: 1, Y: 0})
	policy := []gridworld.Action{gridworld.South, gridworld.West, gridworld.East, gridworld.North}

	expected := "↓ #\n→ *\n"
	if got := formatPolicy(g, policy); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}
