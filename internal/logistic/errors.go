package logistic

import "errors"

// Sentinel errors for sweep configuration. Check with errors.Is.
var (
	// ErrSampleCount indicates NumR < 1.
	ErrSampleCount = errors.New("logistic: parameter sample count must be at least 1")

	// ErrIterationCount indicates NIter < 1.
	ErrIterationCount = errors.New("logistic: iterations per trajectory must be at least 1")

	// ErrDiscardWindow indicates NDiscard outside [0, NIter).
	ErrDiscardWindow = errors.New("logistic: discard window must satisfy 0 <= NDiscard < NIter")

	// ErrParamRange indicates RMax < RMin.
	ErrParamRange = errors.New("logistic: parameter range must satisfy RMax >= RMin")
)
