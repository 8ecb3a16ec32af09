// Package export serializes internal-force profiles for use outside
// the tool: CSV for spreadsheets, SVG for documents.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/beamlab/internal/beam"
)

// ProfileCSV writes the profile as x,shear,moment rows with a header.
func ProfileCSV(w io.Writer, p beam.Profile) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"x", "shear", "moment"}); err != nil {
		return err
	}
	for _, s := range p {
		row := []string{
			strconv.FormatFloat(s.X, 'f', 6, 64),
			strconv.FormatFloat(s.V, 'f', 6, 64),
			strconv.FormatFloat(s.M, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
