package logistic

// Trajectory is an ordered sequence of map states indexed by iteration count.
type Trajectory []float64

// Iterate produces the orbit of the logistic map for growth rate r starting
// at x0. The result has length nIter with element 0 equal to x0 and each
// subsequent element computed as r*x*(1-x) of its predecessor.
//
// x0 is not validated: values outside [0,1] are allowed and may diverge.
// nIter < 1 returns nil.
func Iterate(r, x0 float64, nIter int) Trajectory {
	if nIter < 1 {
		return nil
	}
	x := make(Trajectory, nIter)
	x[0] = x0
	for i := 1; i < nIter; i++ {
		x[i] = r * x[i-1] * (1 - x[i-1])
	}
	return x
}

// IterateInto fills buf with the orbit starting at x0 and returns it.
// The buffer's length fixes the iteration count, so a single allocation
// can be reused across many parameter values.
func IterateInto(buf []float64, r, x0 float64) []float64 {
	if len(buf) == 0 {
		return buf
	}
	buf[0] = x0
	for i := 1; i < len(buf); i++ {
		buf[i] = r * buf[i-1] * (1 - buf[i-1])
	}
	return buf
}

// FixedPoint returns the nontrivial fixed point x* = 1 - 1/r of the map,
// meaningful for r > 1. Starting a trajectory there holds the state constant.
func FixedPoint(r float64) float64 {
	return 1 - 1/r
}
