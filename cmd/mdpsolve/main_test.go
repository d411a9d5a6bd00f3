package main

import (
	"path/filepath"
	"testing"

	"github.com/timpalpant/go-mdp/gridworld"
)

func TestCountChanged(t *testing.T) {
	g := gridworld.New(1, 3)
	previous := initialPolicy(g)
	current := []gridworld.Action{"e", gridworld.West, gridworld.North}
	if n := countChanged(g, previous, current); n != 2 {
		t.Errorf("expected 2 changed states, got %d", n)
	}
}

func TestRootCommand(t *testing.T) {
	dir := t.TempDir()
	testCases := [][]string{
		{"policy-iteration", "--rows", "3", "--cols", "4"},
		{"mc", "--rows", "2", "--cols", "3", "--episodes", "100", "--seed", "5"},
		{"mc", "--rows", "2", "--cols", "2", "--episodes", "50", "--leveldb", filepath.Join(dir, "q")},
		{"pi", "--rows", "3", "--cols", "3", "--plot", filepath.Join(dir, "changes.png")},
	}

	for _, args := range testCases {
		cmd := rootCommand()
		cmd.SetArgs(args)
		if err := cmd.Execute(); err != nil {
			t.Errorf("%v: %v", args, err)
		}
	}
}

func TestSummarize(t *testing.T) {
	g := gridworld.New(3, 3)
	g.SetTarget(gridworld.State{X: 2, Y: 2})
	g.AddObstacles(gridworld.State{X: 1, Y: 0}, gridworld.State{X: 1, Y: 1}, gridworld.State{X: 1, Y: 2})

	expected := "9 states, 1 terminal, 3 reachable from agent (0, 0)"
	if got := summarize(g); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}
