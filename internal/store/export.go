package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/logimap/internal/logistic"
)

type ExportData struct {
	ID       string    `json:"id"`
	RMin     float64   `json:"r_min"`
	RMax     float64   `json:"r_max"`
	NumR     int       `json:"num_r"`
	NIter    int       `json:"n_iter"`
	NDiscard int       `json:"n_discard"`
	X0       float64   `json:"x0"`
	Samples  int       `json:"samples"`
	Params   []float64 `json:"params_sampled"`
	States   []float64 `json:"states_sampled"`
}

// ExportJSON writes a run's metadata and point cloud to w as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, result *logistic.Result) error {
	data := ExportData{
		ID:       meta.ID,
		RMin:     meta.RMin,
		RMax:     meta.RMax,
		NumR:     meta.NumR,
		NIter:    meta.NIter,
		NDiscard: meta.NDiscard,
		X0:       meta.X0,
		Samples:  result.Len(),
		Params:   result.Params,
		States:   result.States,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportJSONFile writes a run to the given path.
func ExportJSONFile(path string, meta *RunMetadata, result *logistic.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return ExportJSON(file, meta, result)
}
