package mdp

import (
	"github.com/golang/glog"
)

// Result summarizes a run of Solve.
type Result struct {
	// Iterations is the number of PolicyImprove calls made.
	Iterations int
	// Converged is true if the last PolicyImprove left the policy unchanged.
	Converged bool
}

// Solve initializes the solver and alternates policy evaluation and
// improvement until the policy stops changing or params.MaxIterations
// improvements have been made. Hitting the iteration cap is not an error;
// it is reported by Result.Converged == false.
func Solve[A any](solver Solver[A], params DriverParams) (Result, error) {
	if err := solver.Initialize(); err != nil {
		return Result{}, err
	}

	var result Result
	for result.Iterations < params.MaxIterations {
		for i := 0; i < params.EvaluationsPerImprove; i++ {
			if err := solver.PolicyEvaluate(); err != nil {
				return result, err
			}
		}

		changed, err := solver.PolicyImprove()
		if err != nil {
			return result, err
		}

		result.Iterations++
		glog.V(1).Infof("[iter=%d] policy changed: %v", result.Iterations, changed)
		if params.OnIteration != nil {
			params.OnIteration(result.Iterations, changed)
		}

		if !changed {
			result.Converged = true
			glog.Infof("Policy converged after %d iterations", result.Iterations)
			return result, nil
		}
	}

	glog.Warningf("Policy did not converge within %d iterations", params.MaxIterations)
	return result, nil
}
