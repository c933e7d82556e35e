package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/logimap/internal/logistic"
)

func TestPowerSpectrumSine(t *testing.T) {
	n := 64
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 8 * float64(i) / float64(n))
	}

	ps := PowerSpectrum(data)
	if len(ps) != n/2+1 {
		t.Fatalf("expected %d bins, got %d", n/2+1, len(ps))
	}
	if idx := DominantFrequency(ps); idx != 8 {
		t.Errorf("expected dominant bin 8, got %d", idx)
	}
}

func TestPowerSpectrumPeriodTwoOrbit(t *testing.T) {
	// A period-2 orbit alternates between two values, which is the Nyquist
	// component of the sampled signal.
	traj := logistic.Iterate(3.2, 0.5, 640)
	ps := PowerSpectrum(traj[128:640])

	if idx := DominantFrequency(ps); idx != len(ps)-1 {
		t.Errorf("expected Nyquist bin %d, got %d", len(ps)-1, idx)
	}
}

func TestPowerSpectrumPadding(t *testing.T) {
	ps := PowerSpectrum(make([]float64, 100))
	if len(ps) != 65 {
		t.Errorf("expected zero-padding to 128 (65 bins), got %d bins", len(ps))
	}
}

func TestPowerSpectrumEmpty(t *testing.T) {
	if ps := PowerSpectrum(nil); ps != nil {
		t.Errorf("expected nil for empty input, got %v", ps)
	}
}

func TestDominantFrequencyDegenerate(t *testing.T) {
	if idx := DominantFrequency(nil); idx != 0 {
		t.Errorf("expected 0 for empty spectrum, got %d", idx)
	}
	if idx := DominantFrequency([]float64{5.0}); idx != 0 {
		t.Errorf("expected 0 for DC-only spectrum, got %d", idx)
	}
}
