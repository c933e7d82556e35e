// Package analysis provides inspection tools for post-transient trajectories.
//
// The package characterizes the attractor a trajectory has settled onto:
//
//   - [Attractor]: distinct quantized values visited by a trajectory tail
//     (one value for a fixed point, 2/4/8... for period-doubled cycles)
//   - [PowerSpectrum]: FFT magnitude spectrum of a trajectory tail
//   - [DominantFrequency]: strongest non-DC spectral line
//
// These are descriptive tools only; they do not detect bifurcations or
// estimate chaos statistics.
package analysis
