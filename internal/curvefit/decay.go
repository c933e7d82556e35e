// Package curvefit provides small closed-form fitting utilities: a
// two-term exponential decay model and a least-squares line fit. These are
// independent of the logistic-map kernel and share no state with it.
package curvefit

import "math"

// DecayModel is the two-term exponential decay A*e^(-alpha*t) + B*e^(-beta*t),
// used to describe viral-load measurements over time.
type DecayModel struct {
	A     float64
	Alpha float64
	B     float64
	Beta  float64
}

// Eval returns the model value at time t.
func (m DecayModel) Eval(t float64) float64 {
	return m.A*math.Exp(-m.Alpha*t) + m.B*math.Exp(-m.Beta*t)
}

// Curve evaluates the model over a time series.
func (m DecayModel) Curve(ts []float64) []float64 {
	ys := make([]float64, len(ts))
	for i, t := range ts {
		ys[i] = m.Eval(t)
	}
	return ys
}

// Linspace returns n evenly spaced values over [lo, hi], endpoints inclusive.
// n == 1 collapses to lo; n < 1 returns nil.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	vs := make([]float64, n)
	if n == 1 {
		vs[0] = lo
		return vs
	}
	step := (hi - lo) / float64(n-1)
	for i := range vs {
		vs[i] = lo + float64(i)*step
	}
	return vs
}
