package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Sweep.NumR != 1401 {
		t.Errorf("expected 1401 parameter samples, got %d", cfg.Sweep.NumR)
	}
	if err := cfg.Sweep.SweepConfig().Validate(); err != nil {
		t.Errorf("default sweep config should validate: %v", err)
	}
	if len(cfg.Series.RValues) != 4 {
		t.Errorf("expected 4 series panels, got %d", len(cfg.Series.RValues))
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Sweep.RMin != 2.6 || cfg.Sweep.RMax != 4.0 {
		t.Errorf("unexpected classic range [%g, %g]", cfg.Sweep.RMin, cfg.Sweep.RMax)
	}
	if cfg.Sweep.NDiscard >= cfg.Sweep.NIter {
		t.Error("preset discard window must be shorter than trajectory")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	found := false
	for _, n := range names {
		if n == "classic" {
			found = true
		}
	}
	if !found {
		t.Error("expected classic preset in list")
	}
}

func TestAllPresetsValidate(t *testing.T) {
	for name, cfg := range Presets {
		if err := cfg.Sweep.SweepConfig().Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Sweep.RMin = 3.0
	cfg.Sweep.NumR = 500
	cfg.Series.RValues = []float64{3.1, 3.9}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Sweep.RMin != 3.0 || loaded.Sweep.NumR != 500 {
		t.Errorf("sweep section not preserved: %+v", loaded.Sweep)
	}
	if len(loaded.Series.RValues) != 2 || loaded.Series.RValues[1] != 3.9 {
		t.Errorf("series section not preserved: %+v", loaded.Series)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
