package mdp

import (
	"github.com/pkg/errors"
)

const (
	DefaultDiscountGamma = 0.99
	DefaultMaxSteps      = 500

	DefaultEvaluationsPerImprove = 10
	DefaultMaxIterations         = 100
)

// Params are the configuration options shared by the solvers.
type Params struct {
	// DiscountGamma is the per-step decay applied to future rewards.
	// Must be in (0, 1].
	DiscountGamma float64
	// MaxSteps is the maximum number of transitions in one sampled
	// episode. Only used by MonteCarlo.
	MaxSteps int
}

// DefaultParams returns Params with a discount of 0.99 and episodes
// capped at 500 steps.
func DefaultParams() Params {
	return Params{
		DiscountGamma: DefaultDiscountGamma,
		MaxSteps:      DefaultMaxSteps,
	}
}

func (p Params) Validate() error {
	if !(p.DiscountGamma > 0 && p.DiscountGamma <= 1) {
		return errors.Errorf("discount gamma must be in (0, 1], got %v", p.DiscountGamma)
	}

	if p.MaxSteps < 0 {
		return errors.Errorf("max steps must be non-negative, got %d", p.MaxSteps)
	}

	return nil
}

// DriverParams configure the evaluate/improve loop run by Solve.
type DriverParams struct {
	// EvaluationsPerImprove is the number of PolicyEvaluate calls
	// made before each PolicyImprove.
	EvaluationsPerImprove int
	// MaxIterations caps the number of PolicyImprove calls.
	MaxIterations int
	// OnIteration, if set, is called after each PolicyImprove with the
	// 1-based iteration number and whether the policy changed.
	OnIteration func(iter int, changed bool)
}

func DefaultDriverParams() DriverParams {
	return DriverParams{
		EvaluationsPerImprove: DefaultEvaluationsPerImprove,
		MaxIterations:         DefaultMaxIterations,
	}
}
