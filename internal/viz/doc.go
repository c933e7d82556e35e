// Package viz provides an interactive terminal explorer for logistic-map
// orbits, built on the Bubble Tea framework.
//
// # Key Bindings
//
//	Space - Pause/Resume iteration
//	←/→   - Decrease/increase the growth rate r (fine: 0.001 with shift via ,/.)
//	↑/↓   - Adjust the initial condition x0 and restart the orbit
//	r     - Restart the orbit from x0
//	?     - Toggle help overlay
//	q     - Quit
package viz
