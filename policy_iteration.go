package mdp

import (
	"math"

	"github.com/golang/glog"
)

// PolicyIteration is a model-based solver that alternates Bellman backups
// of the state values under the current policy with greedy one-step
// lookahead policy extraction.
type PolicyIteration[S, A any] struct {
	env           Environment[S, A]
	states        []S
	actions       []A
	discountGamma float64

	// These are the same length as states after Initialize.
	policy []A
	values []float64
}

var _ Solver[int] = &PolicyIteration[int, int]{}

// NewPolicyIteration creates a PolicyIteration solver bound to env.
// The state and action enumerations are read once, here.
func NewPolicyIteration[S, A any](env Environment[S, A], params Params) (*PolicyIteration[S, A], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &PolicyIteration[S, A]{
		env:           env,
		states:        env.States(),
		actions:       env.Actions(),
		discountGamma: params.DiscountGamma,
	}, nil
}

// Initialize sets the policy to the first action for every state and
// all values to zero.
func (pi *PolicyIteration[S, A]) Initialize() error {
	if len(pi.actions) == 0 {
		return ErrEmptyActionSet
	}

	pi.policy = make([]A, len(pi.states))
	pi.values = make([]float64, len(pi.states))
	for i := range pi.policy {
		pi.policy[i] = pi.actions[0]
	}

	return nil
}

// PolicyEvaluate performs one sweep of Bellman backups over all states,
// in enumeration order.
//
// Values are updated in place: a backup from state i to a next state j < i
// uses the value already computed in this sweep. Call PolicyEvaluate
// repeatedly to evaluate the policy to convergence.
func (pi *PolicyIteration[S, A]) PolicyEvaluate() error {
	if !pi.initialized() {
		return ErrNotInitialized
	}

	for i, state := range pi.states {
		v, err := pi.backup(state, pi.policy[i])
		if err != nil {
			return err
		}

		pi.values[i] = v
	}

	glog.V(2).Infof("Evaluated %d states", len(pi.states))
	return nil
}

// PolicyImprove updates the policy at each state to the action with the
// greatest one-step lookahead value. Ties go to the action that comes first
// in the environment's action enumeration.
func (pi *PolicyIteration[S, A]) PolicyImprove() (bool, error) {
	if !pi.initialized() {
		return false, ErrNotInitialized
	}

	changed := false
	nChanged := 0
	for i, state := range pi.states {
		current := pi.policy[i]
		bestAction := current
		bestValue := math.Inf(-1)
		for _, action := range pi.actions {
			v, err := pi.backup(state, action)
			if err != nil {
				return changed, err
			}

			if v > bestValue {
				bestValue = v
				bestAction = action
			}
		}

		if !pi.env.ActionsEqual(bestAction, current) {
			pi.policy[i] = bestAction
			changed = true
			nChanged++
		}
	}

	glog.V(2).Infof("Policy changed at %d of %d states", nChanged, len(pi.states))
	return changed, nil
}

// backup computes reward + gamma * V(next) for taking action in state.
func (pi *PolicyIteration[S, A]) backup(state S, action A) (float64, error) {
	reward, next := pi.env.Simulate(state, action)
	j, err := indexOfState(pi.env, pi.states, next)
	if err != nil {
		return 0, err
	}

	return reward + pi.discountGamma*pi.values[j], nil
}

func (pi *PolicyIteration[S, A]) initialized() bool {
	return pi.policy != nil && len(pi.policy) == len(pi.states)
}

// Policy returns a copy of the current policy.
func (pi *PolicyIteration[S, A]) Policy() []A {
	return append([]A(nil), pi.policy...)
}

// Values returns a copy of the current state values.
func (pi *PolicyIteration[S, A]) Values() []float64 {
	return append([]float64(nil), pi.values...)
}
