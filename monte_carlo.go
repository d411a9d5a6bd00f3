package mdp

import (
	"math"
	"math/rand"

	"github.com/golang/glog"
)

// MonteCarlo is a model-free solver using Monte Carlo control with
// exploring starts.
//
// Each call to PolicyEvaluate samples one episode from a uniformly random
// (state, action) pair, following the current policy after the first step.
// PolicyImprove averages the sampled returns per pair into a QFunction and
// extracts the greedy policy from it. The QFunction persists across
// improvement cycles, so pairs not sampled in a cycle keep their last
// average; it is reset only by Initialize.
type MonteCarlo[S, A any] struct {
	env           Environment[S, A]
	states        []S
	actions       []A
	discountGamma float64
	maxSteps      int
	rng           Rand

	policy     []A
	experience experienceBuffer[S, A]
	averageQ   *QFunction[S, A]
}

var _ Solver[int] = &MonteCarlo[int, int]{}

// NewMonteCarlo creates a MonteCarlo solver bound to env, storing average
// action values in table. If rng is nil, a randomly seeded source is used.
func NewMonteCarlo[S, A any](env Environment[S, A], table ValueTable, params Params, rng Rand) (*MonteCarlo[S, A], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if table == nil {
		table = NewMemoryTable()
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	return &MonteCarlo[S, A]{
		env:           env,
		states:        env.States(),
		actions:       env.Actions(),
		discountGamma: params.DiscountGamma,
		maxSteps:      params.MaxSteps,
		rng:           rng,
		averageQ:      NewQFunction[S, A](env, table),
	}, nil
}

// Initialize sets the policy to the first action for every state and
// discards all sampled returns and average action values.
func (mc *MonteCarlo[S, A]) Initialize() error {
	if len(mc.actions) == 0 {
		return ErrEmptyActionSet
	}

	mc.policy = make([]A, len(mc.states))
	for i := range mc.policy {
		mc.policy[i] = mc.actions[0]
	}

	mc.experience.reset()
	mc.averageQ.Reset()
	return nil
}

// PolicyEvaluate samples one episode and records its return.
func (mc *MonteCarlo[S, A]) PolicyEvaluate() error {
	if !mc.initialized() {
		return ErrNotInitialized
	}

	if len(mc.states) == 0 {
		return nil
	}

	sample, err := mc.sampleEpisode()
	if err != nil {
		return err
	}

	mc.experience.add(sample)
	return nil
}

// sampleEpisode rolls out one episode from a random starting (state, action)
// pair. The returned sample is attributed to the starting pair, not to the
// state where the rollout ended.
func (mc *MonteCarlo[S, A]) sampleEpisode() (ReturnSample[S, A], error) {
	startState := mc.states[mc.rng.Intn(len(mc.states))]
	startAction := mc.actions[mc.rng.Intn(len(mc.actions))]

	state, action := startState, startAction
	var ret float64
	nSteps := 0
	for step := 0; step < mc.maxSteps; step++ {
		reward, next := mc.env.Simulate(state, action)
		state = next
		i, err := indexOfState(mc.env, mc.states, state)
		if err != nil {
			return ReturnSample[S, A]{}, err
		}

		action = mc.policy[i]
		ret += math.Pow(mc.discountGamma, float64(step)) * reward
		nSteps++
		if mc.env.IsTerminal(state) {
			break
		}
	}

	if glog.V(2) {
		glog.Infof("Episode from %s/%s: %d steps, return %.4f",
			mc.env.StateKey(startState), mc.env.ActionKey(startAction), nSteps, ret)
	}

	return ReturnSample[S, A]{
		State:  startState,
		Action: startAction,
		Return: ret,
	}, nil
}

// PolicyImprove averages the returns sampled since the last improvement
// into the action-value function, then sets the policy at each state to
// the action with the greatest average value. States for which no return
// has ever been sampled keep their current action.
func (mc *MonteCarlo[S, A]) PolicyImprove() (bool, error) {
	if !mc.initialized() {
		return false, ErrNotInitialized
	}

	means, ok, err := mc.experience.averageReturns(mc.env, mc.states, mc.actions)
	if err != nil {
		return false, err
	}

	for i, state := range mc.states {
		for j, action := range mc.actions {
			if ok[i][j] {
				mc.averageQ.Set(state, action, means[i][j])
			}
		}
	}

	changed := false
	nChanged := 0
	for i, state := range mc.states {
		best, _, found := mc.averageQ.ArgMax(state)
		if !found {
			best = mc.policy[i]
		}

		if !mc.env.ActionsEqual(mc.policy[i], best) {
			mc.policy[i] = best
			changed = true
			nChanged++
		}
	}

	glog.V(2).Infof("Improved policy from %d samples, changed %d of %d states",
		len(mc.experience.samples), nChanged, len(mc.states))
	mc.experience.reset()
	return changed, nil
}

func (mc *MonteCarlo[S, A]) initialized() bool {
	return mc.policy != nil && len(mc.policy) == len(mc.states)
}

// Policy returns a copy of the current policy.
func (mc *MonteCarlo[S, A]) Policy() []A {
	return append([]A(nil), mc.policy...)
}

// MaxSteps returns the maximum number of transitions per episode.
func (mc *MonteCarlo[S, A]) MaxSteps() int {
	return mc.maxSteps
}

// SetMaxSteps changes the episode step limit for subsequently
// sampled episodes.
func (mc *MonteCarlo[S, A]) SetMaxSteps(maxSteps int) {
	mc.maxSteps = maxSteps
}

// ActionValues returns the average action-value function.
func (mc *MonteCarlo[S, A]) ActionValues() *QFunction[S, A] {
	return mc.averageQ
}

// Experience returns a copy of the return samples collected since
// the last policy improvement.
func (mc *MonteCarlo[S, A]) Experience() []ReturnSample[S, A] {
	return append([]ReturnSample[S, A](nil), mc.experience.samples...)
}
