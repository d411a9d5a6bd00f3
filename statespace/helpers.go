// Package statespace walks the transition graph of an mdp.Environment.
package statespace

import (
	"github.com/pkg/errors"

	"github.com/timpalpant/go-mdp"
)

// Transition is one application of the environment's transition model.
type Transition[S, A any] struct {
	State  S
	Action A
	Reward float64
	Next   S
}

// Visit calls visitor for every (state, action) pair of env, in state
// enumeration order and then action enumeration order.
func Visit[S, A any](env mdp.Environment[S, A], visitor func(t Transition[S, A])) {
	for _, s := range env.States() {
		for _, a := range env.Actions() {
			reward, next := env.Simulate(s, a)
			visitor(Transition[S, A]{
				State:  s,
				Action: a,
				Reward: reward,
				Next:   next,
			})
		}
	}
}

func CountTerminalStates[S, A any](env mdp.Environment[S, A]) int {
	total := 0
	for _, s := range env.States() {
		if env.IsTerminal(s) {
			total++
		}
	}

	return total
}

// CheckClosed verifies that every transition of env lands on a state in the
// declared state enumeration. The returned error wraps mdp.ErrStateNotFound.
func CheckClosed[S, A any](env mdp.Environment[S, A]) error {
	known := make(map[string]struct{})
	for _, s := range env.States() {
		known[env.StateKey(s)] = struct{}{}
	}

	var err error
	Visit(env, func(t Transition[S, A]) {
		if err != nil {
			return
		}

		if _, ok := known[env.StateKey(t.Next)]; !ok {
			err = errors.Wrapf(mdp.ErrStateNotFound, "transition %s -%s-> %s",
				env.StateKey(t.State), env.ActionKey(t.Action), env.StateKey(t.Next))
		}
	})

	return err
}

// CountReachable returns the number of distinct states reachable from
// start by any sequence of actions, including start itself.
func CountReachable[S, A any](env mdp.Environment[S, A], start S) int {
	seen := map[string]struct{}{env.StateKey(start): {}}
	queue := []S{start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, a := range env.Actions() {
			_, next := env.Simulate(s, a)
			key := env.StateKey(next)
			if _, ok := seen[key]; ok {
				continue
			}

			seen[key] = struct{}{}
			queue = append(queue, next)
		}
	}

	return len(seen)
}
