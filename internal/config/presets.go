package config

var Presets = map[string]*Config{
	// Full Feigenbaum diagram; step 0.001 over [2.6, 4.0].
	"classic": {
		Sweep: SweepSection{
			RMin: 2.6, RMax: 4.0, NumR: 1401, NIter: 250, NDiscard: 100, X0: 0.5,
		},
		Series: SeriesSection{
			RValues: []float64{2.0, 3.2, 3.45, 3.6}, NIter: 60, X0: 0.5,
		},
	},
	// Zoom on the period-doubling cascade before chaos onset.
	"cascade": {
		Sweep: SweepSection{
			RMin: 2.9, RMax: 3.57, NumR: 1341, NIter: 400, NDiscard: 200, X0: 0.5,
		},
		Series: SeriesSection{
			RValues: []float64{3.2, 3.5, 3.55, 3.565}, NIter: 120, X0: 0.5,
		},
	},
	// Chaotic regime with periodic windows (period-3 window near r=3.83).
	"chaos": {
		Sweep: SweepSection{
			RMin: 3.57, RMax: 4.0, NumR: 861, NIter: 300, NDiscard: 150, X0: 0.5,
		},
		Series: SeriesSection{
			RValues: []float64{3.6, 3.7, 3.83, 3.99}, NIter: 100, X0: 0.5,
		},
	},
	// Coarse, fast preview for terminal rendering.
	"preview": {
		Sweep: SweepSection{
			RMin: 2.6, RMax: 4.0, NumR: 281, NIter: 150, NDiscard: 100, X0: 0.5,
		},
		Series: SeriesSection{
			RValues: []float64{2.0, 3.2, 3.45, 3.6}, NIter: 60, X0: 0.5,
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
