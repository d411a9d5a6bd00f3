package mdp

import (
	"gonum.org/v1/gonum/stat"
)

// ReturnSample is the discounted return observed in one episode that
// started by taking Action in State.
type ReturnSample[S, A any] struct {
	State  S
	Action A
	Return float64
}

// experienceBuffer collects the return samples gathered since the
// last policy improvement.
type experienceBuffer[S, A any] struct {
	samples []ReturnSample[S, A]
}

func (b *experienceBuffer[S, A]) add(s ReturnSample[S, A]) {
	b.samples = append(b.samples, s)
}

// reset empties the buffer, but retains allocated capacity for reuse.
func (b *experienceBuffer[S, A]) reset() {
	b.samples = b.samples[:0]
}

// averageReturns computes the mean return of all samples for each
// (state, action) pair, indexed by [state][action] position in the given
// enumerations. Pairs with no samples have ok[i][j] == false.
func (b *experienceBuffer[S, A]) averageReturns(env Environment[S, A], states []S, actions []A) (means [][]float64, ok [][]bool, err error) {
	returns := make([][][]float64, len(states))
	for i := range returns {
		returns[i] = make([][]float64, len(actions))
	}

	for _, s := range b.samples {
		i, err := indexOfState(env, states, s.State)
		if err != nil {
			return nil, nil, err
		}

		j := indexOfAction(env, actions, s.Action)
		if j < 0 {
			continue
		}

		returns[i][j] = append(returns[i][j], s.Return)
	}

	means = make([][]float64, len(states))
	ok = make([][]bool, len(states))
	for i := range returns {
		means[i] = make([]float64, len(actions))
		ok[i] = make([]bool, len(actions))
		for j, r := range returns[i] {
			if len(r) > 0 {
				means[i][j] = stat.Mean(r, nil)
				ok[i][j] = true
			}
		}
	}

	return means, ok, nil
}
