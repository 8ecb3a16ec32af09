// Package storage persists analysis runs under a data directory, one
// directory per run holding metadata.json and profile.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/beamlab/internal/beam"
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
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Length    float64            `json:"length"`
	Samples   int                `json:"samples"`
	Points    []beam.PointLoad   `json:"points,omitempty"`
	UDLs      []beam.UDL         `json:"udls,omitempty"`
	Ra        float64            `json:"ra"`
	Rb        float64            `json:"rb"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(b *beam.Beam, res *beam.Result, metrics map[string]float64) (string, error) {
	runID := fmt.Sprintf("beam_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Length:    b.Length,
		Samples:   len(res.Profile),
		Points:    b.PointLoads(),
		UDLs:      b.UDLs(),
		Ra:        res.Reactions.Ra,
		Rb:        res.Reactions.Rb,
		Metrics:   metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "profile.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"x", "shear", "moment"}); err != nil {
		return "", err
	}
	for _, sample := range res.Profile {
		row := []string{
			strconv.FormatFloat(sample.X, 'f', 6, 64),
			strconv.FormatFloat(sample.V, 'f', 6, 64),
			strconv.FormatFloat(sample.M, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for every readable run; corrupt entries are
// skipped.
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
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
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadProfile(runID string) (beam.Profile, error) {
	csvPath := filepath.Join(s.baseDir, runID, "profile.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return beam.Profile{}, nil
	}

	prof := make(beam.Profile, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 3 {
			continue
		}
		x, errX := strconv.ParseFloat(record[0], 64)
		v, errV := strconv.ParseFloat(record[1], 64)
		m, errM := strconv.ParseFloat(record[2], 64)
		if errX != nil || errV != nil || errM != nil {
			continue
		}
		prof = append(prof, beam.Sample{X: x, V: v, M: m})
	}

	return prof, nil
}
