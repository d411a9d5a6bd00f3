package ldbtable

import (
	"math"
	"math/rand"
	"os"
	"testing"

	"github.com/timpalpant/go-mdp"
	"github.com/timpalpant/go-mdp/gridworld"
)

func openTestTable(t *testing.T) *Table {
	tmpDir, err := os.MkdirTemp("", "mdp-test-")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	table, err := Open(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { table.Close() })

	return table
}

func TestTable_GetPut(t *testing.T) {
	table := openTestTable(t)
	if _, ok := table.Get("missing"); ok {
		t.Error("expected missing key to be absent")
	}

	for _, v := range []float64{0, -1.25, 99.5, math.Inf(-1)} {
		table.Put("k", v)
		got, ok := table.Get("k")
		if !ok || got != v {
			t.Errorf("expected %v, got %v (ok=%v)", v, got, ok)
		}
	}
}

func TestTable_Clear(t *testing.T) {
	table := openTestTable(t)
	table.Put("a", 1)
	table.Put("b", 2)
	if n := table.Len(); n != 2 {
		t.Fatalf("expected 2 values, got %d", n)
	}

	table.Clear()
	if n := table.Len(); n != 0 {
		t.Errorf("expected 0 values after clear, got %d", n)
	}
	if _, ok := table.Get("a"); ok {
		t.Error("expected cleared key to be absent")
	}
}

func TestTable_MonteCarlo(t *testing.T) {
	table := openTestTable(t)
	g := gridworld.New(2, 3)
	g.SetTarget(gridworld.State{X: 2, Y: 1})

	solver, err := mdp.NewMonteCarlo[gridworld.State, gridworld.Action](
		g, table, mdp.DefaultParams(), rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}

	result, err := mdp.Solve[gridworld.Action](solver, mdp.DriverParams{
		EvaluationsPerImprove: 100,
		MaxIterations:         50,
	})
	if err != nil {
		t.Fatal(err)
	}

	t.Logf("Result: %+v, %d stored values", result, table.Len())
	if table.Len() == 0 {
		t.Error("expected action values to be stored in LevelDB")
	}

	if err := solver.Initialize(); err != nil {
		t.Fatal(err)
	}
	if n := table.Len(); n != 0 {
		t.Errorf("expected Initialize to clear the table, got %d values", n)
	}
}
