package mdp

// Keyer maps states and actions to canonical string keys.
//
// Keys must agree with the environment's equality functions: two states
// for which StatesEqual returns true must produce the same StateKey, and
// likewise for actions. Keys are used to look up values in a QFunction.
type Keyer[S, A any] interface {
	StateKey(state S) string
	ActionKey(action A) string
}

// Environment is a finite Markov decision process that a Solver optimizes
// a policy against. States and actions are opaque to the solvers; all
// comparisons are delegated to the environment.
type Environment[S, A any] interface {
	Keyer[S, A]

	// Simulate returns the immediate reward obtained by taking the given
	// action from the given state, and the resulting next state.
	Simulate(state S, action A) (reward float64, next S)

	StatesEqual(a, b S) bool
	ActionsEqual(a, b A) bool

	// IsTerminal returns true exactly for absorbing states.
	IsTerminal(state S) bool

	// States returns the full, fixed state universe. The order defines the
	// index of each state in a Policy and must be stable for the lifetime
	// of a Solver bound to this environment.
	States() []S
	// Actions returns the fixed action universe. Its order is used for
	// initial policies and for breaking ties between equally valued actions.
	Actions() []A
}

// Solver learns a deterministic policy for an Environment.
//
// A driver calls Initialize once, then alternates zero or more calls to
// PolicyEvaluate with a call to PolicyImprove until PolicyImprove reports
// that the policy did not change.
type Solver[A any] interface {
	Initialize() error
	PolicyEvaluate() error
	// PolicyImprove updates the policy greedily and returns true
	// if the action at any state changed.
	PolicyImprove() (bool, error)
	// Policy returns the current action for each state, indexed by the
	// position of the state in the environment's enumeration.
	Policy() []A
}

// Rand is the source of randomness for sampling solvers.
// It is satisfied by *math/rand.Rand.
type Rand interface {
	Intn(n int) int
}
