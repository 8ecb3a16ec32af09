// Package report produces a PDF summary of a beam analysis: setup,
// reactions, extremes and a sampled station table.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/san-kum/beamlab/internal/beam"
	"github.com/san-kum/beamlab/internal/metrics"
)

// stationRows caps the table length so the report stays readable; the
// full profile belongs in the CSV export.
const stationRows = 21

// Write renders the analysis report for the beam and its solved result.
func Write(w io.Writer, b *beam.Beam, res *beam.Result) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Beam Analysis Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Span: %.2f m (simply supported)", b.Length))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Loading")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, p := range b.PointLoads() {
		pdf.Cell(0, 6, fmt.Sprintf("Point load: %.2f kN at x = %.2f m", p.Magnitude, p.Position))
		pdf.Ln(6)
	}
	for _, u := range b.UDLs() {
		pdf.Cell(0, 6, fmt.Sprintf("UDL: %.2f kN/m from x = %.2f m to x = %.2f m", u.Intensity, u.Start, u.End))
		pdf.Ln(6)
	}
	if len(b.PointLoads()) == 0 && len(b.UDLs()) == 0 {
		pdf.Cell(0, 6, "No applied loads")
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Results")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Ra = %.3f kN    Rb = %.3f kN", res.Reactions.Ra, res.Reactions.Rb))
	pdf.Ln(6)

	maxV := &metrics.MaxShear{}
	maxM := &metrics.MaxMoment{}
	metrics.Collect(res.Profile, maxV, maxM)
	pdf.Cell(0, 6, fmt.Sprintf("|V|max = %.3f kN    Mmax = %.3f kN·m at x = %.2f m",
		maxV.Value(), maxM.Value(), maxM.At()))
	pdf.Ln(10)

	writeStationTable(pdf, res.Profile)

	return pdf.Output(w)
}

// WriteFile renders the report to a file path.
func WriteFile(path string, b *beam.Beam, res *beam.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, b, res)
}

func writeStationTable(pdf *gofpdf.Fpdf, p beam.Profile) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Station Table")
	pdf.Ln(8)

	pdf.SetFont("Courier", "B", 9)
	pdf.Cell(40, 5, "x (m)")
	pdf.Cell(40, 5, "V (kN)")
	pdf.Cell(40, 5, "M (kN·m)")
	pdf.Ln(5)

	pdf.SetFont("Courier", "", 9)
	for _, s := range thin(p, stationRows) {
		pdf.Cell(40, 5, fmt.Sprintf("%10.3f", s.X))
		pdf.Cell(40, 5, fmt.Sprintf("%10.3f", s.V))
		pdf.Cell(40, 5, fmt.Sprintf("%10.3f", s.M))
		pdf.Ln(5)
	}
}

// thin picks at most n evenly spaced samples, always keeping both ends.
func thin(p beam.Profile, n int) beam.Profile {
	if len(p) <= n || n < 2 {
		return p
	}
	out := make(beam.Profile, 0, n)
	for i := 0; i < n; i++ {
		idx := i * (len(p) - 1) / (n - 1)
		out = append(out, p[idx])
	}
	return out
}
