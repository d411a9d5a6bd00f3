package mdp

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var (
	// ErrEmptyActionSet is returned by Initialize when the environment
	// declares no actions, so that no policy can be formed.
	ErrEmptyActionSet = errors.New("action set is empty")
	// ErrStateNotFound is returned when a transition produces a state that
	// is not part of the environment's declared state enumeration.
	ErrStateNotFound = errors.New("state not found")
	// ErrNotInitialized is returned when a solver is evaluated or improved
	// before Initialize has been called.
	ErrNotInitialized = errors.New("solver is not initialized")
)

// indexOfState returns the position of state in states, as determined by
// the environment's equality function.
func indexOfState[S, A any](env Environment[S, A], states []S, state S) (int, error) {
	i := slices.IndexFunc(states, func(s S) bool {
		return env.StatesEqual(s, state)
	})

	if i < 0 {
		return -1, errors.Wrapf(ErrStateNotFound, "state %q", env.StateKey(state))
	}

	return i, nil
}

func indexOfAction[S, A any](env Environment[S, A], actions []A, action A) int {
	return slices.IndexFunc(actions, func(a A) bool {
		return env.ActionsEqual(a, action)
	})
}
