// Package store persists sweep results under a base directory. It is the
// only component that touches the filesystem; the numeric kernel never
// creates directories or files itself.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/logimap/internal/logistic"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	RMin      float64   `json:"r_min"`
	RMax      float64   `json:"r_max"`
	NumR      int       `json:"num_r"`
	NIter     int       `json:"n_iter"`
	NDiscard  int       `json:"n_discard"`
	X0        float64   `json:"x0"`
	Samples   int       `json:"samples"`
}

// Save writes one sweep run as metadata.json plus points.csv and returns
// the generated run id.
func (s *Store) Save(cfg logistic.SweepConfig, result *logistic.Result) (string, error) {
	runID := fmt.Sprintf("sweep_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		RMin:      cfg.RMin,
		RMax:      cfg.RMax,
		NumR:      cfg.NumR,
		NIter:     cfg.NIter,
		NDiscard:  cfg.NDiscard,
		X0:        cfg.X0,
		Samples:   result.Len(),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "points.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"r", "x"}); err != nil {
		return "", err
	}
	for i := range result.States {
		row := []string{
			strconv.FormatFloat(result.Params[i], 'g', -1, 64),
			strconv.FormatFloat(result.States[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadPoints reads the persisted point cloud of a run.
func (s *Store) LoadPoints(runID string) (*logistic.Result, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "points.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	result := &logistic.Result{
		Params: make([]float64, 0, len(records)),
		States: make([]float64, 0, len(records)),
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}

		p, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		x, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}

		result.Params = append(result.Params, p)
		result.States = append(result.States, x)
	}

	return result, nil
}
