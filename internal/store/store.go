package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/reactionnet/internal/driver"
)

// Store persists finished runs under a base directory, one subdirectory
// per run named by the run's ID (see NewRunID).
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata records the parameters a run was executed with, alongside
// its samples, so a saved run can be re-plotted or audited later without
// re-running the integrator.
type RunMetadata struct {
	ID                string    `json:"id"`
	Timestamp         time.Time `json:"timestamp"`
	ParticleDatasheet string    `json:"particle_datasheet"`
	DecaysDatasheet   string    `json:"decays_datasheet"`
	Tau0              float64   `json:"tau0"`
	Dtau              float64   `json:"dtau"`
	Tauf              float64   `json:"tauf"`
	T0                float64   `json:"t0"`
	Track             []int64   `json:"track"`
}

// Save writes metadata.json and samples.csv into a fresh run directory under
// the store's base directory and returns that directory's path.
func (s *Store) Save(meta RunMetadata, samples []driver.Sample) (string, error) {
	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		metaFile.Close()
		return "", err
	}
	if err := metaFile.Close(); err != nil {
		return "", err
	}

	if err := writeSamplesCSV(filepath.Join(runDir, "samples.csv"), meta.Track, samples); err != nil {
		return "", err
	}

	return runDir, nil
}

// NewRunID builds a deterministic-shape run identifier from a label and
// a timestamp: "<label>_<unix-seconds>".
func NewRunID(label string, ts time.Time) string {
	return fmt.Sprintf("%s_%d", label, ts.Unix())
}

func writeSamplesCSV(path string, track []int64, samples []driver.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := make([]string, 0, len(track)+2)
	header = append(header, "tau", "temperature")
	for _, pid := range track {
		header = append(header, strconv.FormatInt(pid, 10))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, s := range samples {
		row := make([]string, 0, len(header))
		row = append(row,
			strconv.FormatFloat(s.Tau, 'g', -1, 64),
			strconv.FormatFloat(s.Temperature, 'g', -1, 64),
		)
		for _, pid := range track {
			row = append(row, strconv.FormatFloat(s.Densities[pid], 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
