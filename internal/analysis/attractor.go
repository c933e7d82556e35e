package analysis

import (
	"math"
	"sort"
)

// Attractor returns the distinct values visited by a post-transient
// trajectory tail, quantized to the given resolution and sorted ascending.
// A period-n cycle yields n values once the transient has died out.
// quantum <= 0 defaults to 1e-3.
func Attractor(tail []float64, quantum float64) []float64 {
	if len(tail) == 0 {
		return nil
	}
	if quantum <= 0 {
		quantum = 1e-3
	}

	seen := make(map[int64]bool)
	values := make([]float64, 0, 8)

	for _, v := range tail {
		key := int64(math.Round(v / quantum))
		if !seen[key] {
			seen[key] = true
			values = append(values, v)
		}
	}

	sort.Float64s(values)
	return values
}
