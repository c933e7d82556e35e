// Package logistic provides the core numeric kernel for exploring the
// logistic map x[n+1] = r*x[n]*(1-x[n]).
//
// The package has two components:
//
//   - [Iterate]: produces a single deterministic trajectory for a fixed
//     growth-rate parameter and initial condition
//   - [Sweep]: iterates the map across a dense parameter range, discards
//     the transient prefix of every trajectory, and aggregates the stable
//     samples into a flat (parameter, state) point cloud for plotting
//
// # Example
//
//	cfg := logistic.SweepConfig{
//	    RMin: 2.6, RMax: 4.0,
//	    NumR: 1401, NIter: 250, NDiscard: 100,
//	    X0: 0.5,
//	}
//	res, err := logistic.Sweep(cfg)
//
// # Numeric Semantics
//
// All arithmetic is plain float64. Out-of-domain inputs (r outside [0,4],
// x0 outside [0,1]) are not validated; diverging trajectories propagate
// whatever values result, including Inf, without clamping or error.
//
// # Thread Safety
//
// Iterate and Sweep are pure functions. [SweepParallel] distributes the
// parameter range across workers with disjoint output regions, so the
// aggregated result is bit-identical to the sequential sweep.
package logistic
