// Command mdpsolve finds an optimal policy for a grid world using
// policy iteration or Monte Carlo exploring starts.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/timpalpant/go-mdp"
	"github.com/timpalpant/go-mdp/gridworld"
	"github.com/timpalpant/go-mdp/ldbtable"
	"github.com/timpalpant/go-mdp/statespace"
)

var (
	rows          int
	cols          int
	layoutPath    string
	gamma         float64
	maxIterations int
	plotPath      string
)

func main() {
	err := rootCommand().Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "mdpsolve",
		Short:        "Solve a grid world MDP",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().IntVar(&rows, "rows", 20, "Number of rows in the grid")
	cmd.PersistentFlags().IntVar(&cols, "cols", 20, "Number of columns in the grid")
	cmd.PersistentFlags().StringVar(&layoutPath, "config", "", "JSON grid layout; overrides --rows and --cols")
	cmd.PersistentFlags().Float64Var(&gamma, "gamma", mdp.DefaultDiscountGamma, "Discount factor")
	cmd.PersistentFlags().IntVar(&maxIterations, "max-iterations", mdp.DefaultMaxIterations, "Maximum number of policy improvements")
	cmd.PersistentFlags().StringVar(&plotPath, "plot", "", "Save a plot of policy changes per iteration to this file")
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	cmd.AddCommand(policyIterationCommand())
	cmd.AddCommand(monteCarloCommand())
	return cmd
}

func policyIterationCommand() *cobra.Command {
	var evaluations int
	cmd := &cobra.Command{
		Use:     "policy-iteration",
		Aliases: []string{"pi"},
		Short:   "Solve with policy iteration",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGrid()
			if err != nil {
				return err
			}

			solver, err := mdp.NewPolicyIteration[gridworld.State, gridworld.Action](g, params())
			if err != nil {
				return err
			}

			if err := run(cmd.Name(), g, solver, evaluations); err != nil {
				return err
			}

			values := solver.Values()
			fmt.Printf("Values: min %.3f, max %.3f\n", floats.Min(values), floats.Max(values))
			return nil
		},
	}

	cmd.Flags().IntVar(&evaluations, "evaluations", mdp.DefaultEvaluationsPerImprove, "Evaluation sweeps per improvement")
	return cmd
}

func monteCarloCommand() *cobra.Command {
	var episodes int
	var maxSteps int
	var seed int64
	var ldbDir string
	cmd := &cobra.Command{
		Use:     "monte-carlo",
		Aliases: []string{"mc"},
		Short:   "Solve with Monte Carlo exploring starts",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGrid()
			if err != nil {
				return err
			}

			var table mdp.ValueTable = mdp.NewMemoryTable()
			if ldbDir != "" {
				ldb, err := ldbtable.Open(ldbDir)
				if err != nil {
					return err
				}
				defer ldb.Close()
				table = ldb
			}

			p := params()
			p.MaxSteps = maxSteps
			rng := rand.New(rand.NewSource(seed))
			solver, err := mdp.NewMonteCarlo[gridworld.State, gridworld.Action](g, table, p, rng)
			if err != nil {
				return err
			}

			return run(cmd.Name(), g, solver, episodes)
		},
	}

	cmd.Flags().IntVar(&episodes, "episodes", 1000, "Episodes sampled per improvement")
	cmd.Flags().IntVar(&maxSteps, "max-steps", mdp.DefaultMaxSteps, "Maximum steps per episode")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed for exploring starts")
	cmd.Flags().StringVar(&ldbDir, "leveldb", "", "Keep action values in a LevelDB database in this directory")
	return cmd
}

func params() mdp.Params {
	p := mdp.DefaultParams()
	p.DiscountGamma = gamma
	return p
}

func buildGrid() (*gridworld.GridWorld, error) {
	layout := &Layout{
		Rows:   rows,
		Cols:   cols,
		Target: [2]int{cols - 1, rows - 1},
	}

	if layoutPath != "" {
		var err error
		if layout, err = LoadLayout(layoutPath); err != nil {
			return nil, err
		}
	}

	g, err := layout.Build()
	if err != nil {
		return nil, err
	}

	if err := statespace.CheckClosed[gridworld.State, gridworld.Action](g); err != nil {
		return nil, err
	}

	glog.Infof("Grid %dx%d, target %v, %d obstacles",
		layout.Rows, layout.Cols, g.Target(), len(g.Obstacles()))
	glog.Info(summarize(g))
	return g, nil
}

// summarize describes the state space of g as seen from the agent.
func summarize(g *gridworld.GridWorld) string {
	return fmt.Sprintf("%d states, %d terminal, %d reachable from agent %v",
		len(g.States()),
		statespace.CountTerminalStates[gridworld.State, gridworld.Action](g),
		statespace.CountReachable[gridworld.State, gridworld.Action](g, g.Agent()),
		g.Agent())
}

func run(name string, g *gridworld.GridWorld, solver mdp.Solver[gridworld.Action], evaluations int) error {
	var changes []int
	previous := initialPolicy(g)
	driverParams := mdp.DriverParams{
		EvaluationsPerImprove: evaluations,
		MaxIterations:         maxIterations,
		OnIteration: func(iter int, changed bool) {
			policy := solver.Policy()
			changes = append(changes, countChanged(g, previous, policy))
			previous = policy
		},
	}

	result, err := mdp.Solve(solver, driverParams)
	if err != nil {
		return err
	}

	fmt.Print(formatPolicy(g, solver.Policy()))
	if result.Converged {
		fmt.Printf("Converged after %d iterations\n", result.Iterations)
	} else {
		fmt.Printf("Did not converge within %d iterations\n", result.Iterations)
	}

	if plotPath != "" {
		if err := plotPolicyChanges(name, changes, plotPath); err != nil {
			return err
		}
		glog.Infof("Saved plot to %s", plotPath)
	}

	return nil
}

// initialPolicy is the policy every solver starts from after Initialize.
func initialPolicy(g *gridworld.GridWorld) []gridworld.Action {
	policy := make([]gridworld.Action, len(g.States()))
	for i := range policy {
		policy[i] = g.Actions()[0]
	}

	return policy
}

// countChanged returns the number of states whose action differs between
// the two policies.
func countChanged(g *gridworld.GridWorld, previous, current []gridworld.Action) int {
	n := 0
	for i := range current {
		if !g.ActionsEqual(previous[i], current[i]) {
			n++
		}
	}

	return n
}
