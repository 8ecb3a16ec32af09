package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/beamlab/internal/beam"
)

type ExportData struct {
	ID      string             `json:"id"`
	Length  float64            `json:"length"`
	Samples int                `json:"samples"`
	Ra      float64            `json:"ra"`
	Rb      float64            `json:"rb"`
	X       []float64          `json:"x"`
	Shear   []float64          `json:"shear"`
	Moment  []float64          `json:"moment"`
	Metrics map[string]float64 `json:"metrics"`
}

// ExportJSON writes a run's metadata and full profile as one indented
// JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, prof beam.Profile) error {
	data := ExportData{
		ID:      meta.ID,
		Length:  meta.Length,
		Samples: len(prof),
		Ra:      meta.Ra,
		Rb:      meta.Rb,
		X:       prof.Positions(),
		Shear:   prof.Shears(),
		Moment:  prof.Moments(),
		Metrics: meta.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
