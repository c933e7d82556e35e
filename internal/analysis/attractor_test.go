package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/logimap/internal/logistic"
)

func tail(r float64) []float64 {
	traj := logistic.Iterate(r, 0.5, 1000)
	return traj[900:]
}

func TestAttractorPeriods(t *testing.T) {
	tests := []struct {
		name string
		r    float64
		want int
	}{
		{"fixed point", 2.5, 1},
		{"period 2", 3.2, 2},
		{"period 4", 3.5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := Attractor(tail(tt.r), 1e-3)
			if len(values) != tt.want {
				t.Errorf("r=%g: expected %d attractor values, got %d (%v)",
					tt.r, tt.want, len(values), values)
			}
		})
	}
}

func TestAttractorFixedPointValue(t *testing.T) {
	values := Attractor(tail(2.5), 1e-3)
	if len(values) != 1 {
		t.Fatalf("expected single value, got %v", values)
	}
	if math.Abs(values[0]-0.6) > 1e-6 {
		t.Errorf("expected 0.6, got %v", values[0])
	}
}

func TestAttractorSorted(t *testing.T) {
	values := Attractor(tail(3.5), 1e-3)
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			t.Fatalf("values not sorted: %v", values)
		}
	}
}

func TestAttractorEmpty(t *testing.T) {
	if got := Attractor(nil, 1e-3); got != nil {
		t.Errorf("expected nil for empty tail, got %v", got)
	}
}

func TestAttractorDefaultQuantum(t *testing.T) {
	values := Attractor(tail(3.2), 0)
	if len(values) != 2 {
		t.Errorf("expected 2 values with default quantum, got %v", values)
	}
}
