package store

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/san-kum/logimap/internal/logistic"
)

func sweepFixture(t *testing.T) (logistic.SweepConfig, *logistic.Result) {
	t.Helper()
	cfg := logistic.SweepConfig{RMin: 2.6, RMax: 3.0, NumR: 5, NIter: 30, NDiscard: 20, X0: 0.5}
	res, err := logistic.Sweep(cfg)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	return cfg, res
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg, res := sweepFixture(t)
	runID, err := st.Save(cfg, res)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.ID != runID {
		t.Errorf("expected id %s, got %s", runID, meta.ID)
	}
	if meta.NumR != cfg.NumR || meta.NIter != cfg.NIter || meta.NDiscard != cfg.NDiscard {
		t.Errorf("metadata does not match config: %+v", meta)
	}
	if meta.Samples != res.Len() {
		t.Errorf("expected %d samples, got %d", res.Len(), meta.Samples)
	}

	points, err := st.LoadPoints(runID)
	if err != nil {
		t.Fatalf("load points failed: %v", err)
	}
	if points.Len() != res.Len() {
		t.Fatalf("expected %d points, got %d", res.Len(), points.Len())
	}
	for i := range res.States {
		if points.Params[i] != res.Params[i] || points.States[i] != res.States[i] {
			t.Fatalf("point %d not preserved: (%v,%v) != (%v,%v)",
				i, points.Params[i], points.States[i], res.Params[i], res.States[i])
		}
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	cfg, res := sweepFixture(t)
	runID, err := st.Save(cfg, res)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != runID {
		t.Errorf("expected run %s, got %+v", runID, runs)
	}
}

func TestListMissingDir(t *testing.T) {
	st := New("/nonexistent/path/for/test")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list should tolerate missing dir: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	cfg, res := sweepFixture(t)
	meta := &RunMetadata{ID: "sweep_test", RMin: cfg.RMin, RMax: cfg.RMax,
		NumR: cfg.NumR, NIter: cfg.NIter, NDiscard: cfg.NDiscard, X0: cfg.X0}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, res); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if data.ID != "sweep_test" || data.Samples != res.Len() {
		t.Errorf("unexpected export payload: id=%s samples=%d", data.ID, data.Samples)
	}
	if len(data.Params) != len(data.States) {
		t.Error("exported sequences must stay parallel")
	}
}
