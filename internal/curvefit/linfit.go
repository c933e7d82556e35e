package curvefit

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for fitting. Check with errors.Is.
var (
	ErrLengthMismatch = errors.New("curvefit: x and y must have equal length")
	ErrTooFewPoints   = errors.New("curvefit: at least 2 data points required")
	ErrZeroVariance   = errors.New("curvefit: x values have zero variance")
	ErrBadSlope       = errors.New("curvefit: slope must be finite and positive")
)

const (
	elementaryCharge = 1.602e-19      // C
	planckReference  = 6.62607015e-34 // J·s, CODATA
)

// FitLine computes the least-squares line y = m*x + c through the data,
// using population covariance over variance for the slope.
func FitLine(xs, ys []float64) (m, c float64, err error) {
	if len(xs) != len(ys) {
		return 0, 0, fmt.Errorf("%w (got %d and %d)", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return 0, 0, fmt.Errorf("%w (got %d)", ErrTooFewPoints, len(xs))
	}

	n := float64(len(xs))
	var ex, ey float64
	for i := range xs {
		ex += xs[i]
		ey += ys[i]
	}
	ex /= n
	ey /= n

	var cov, varX float64
	for i := range xs {
		dx := xs[i] - ex
		cov += dx * (ys[i] - ey)
		varX += dx * dx
	}
	cov /= n
	varX /= n

	if math.Abs(varX) < 1e-15 {
		return 0, 0, ErrZeroVariance
	}

	m = cov / varX
	c = ey - m*ex
	return m, c, nil
}

// PlanckConstant derives Planck's constant from the slope of a stopping
// voltage vs. frequency line (h = m*e) and reports the relative error
// against the CODATA reference value, in percent.
func PlanckConstant(slope float64) (h, relErr float64, err error) {
	if !(slope > 0) || math.IsInf(slope, 0) {
		return 0, 0, fmt.Errorf("%w (got %g)", ErrBadSlope, slope)
	}
	h = slope * elementaryCharge
	relErr = math.Abs(h-planckReference) / planckReference * 100
	return h, relErr, nil
}
