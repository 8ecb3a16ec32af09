// Package plotimg exports shear and moment diagrams as image files
// (PNG, SVG or PDF, chosen by extension).
package plotimg

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/beamlab/internal/beam"
)

var (
	shearColor  = color.RGBA{R: 0, G: 120, B: 60, A: 255}
	momentColor = color.RGBA{R: 220, G: 120, B: 0, A: 255}
	axisColor   = color.Gray{Y: 128}
)

// ExportSFD writes the shear force diagram to filename.
func ExportSFD(p beam.Profile, filename string) error {
	return exportCurve(p.Positions(), p.Shears(),
		"Shear Force Diagram", "x (m)", "V (kN)", shearColor, filename)
}

// ExportBMD writes the bending moment diagram to filename.
func ExportBMD(p beam.Profile, filename string) error {
	return exportCurve(p.Positions(), p.Moments(),
		"Bending Moment Diagram", "x (m)", "M (kN·m)", momentColor, filename)
}

// ExportDiagrams writes both diagrams next to each other, deriving
// `<base>_sfd.<ext>` and `<base>_bmd.<ext>` from the given filename.
func ExportDiagrams(p beam.Profile, filename string) error {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	if ext == "" {
		ext = ".png"
	}

	if err := ExportSFD(p, base+"_sfd"+ext); err != nil {
		return fmt.Errorf("export sfd: %w", err)
	}
	if err := ExportBMD(p, base+"_bmd"+ext); err != nil {
		return fmt.Errorf("export bmd: %w", err)
	}
	return nil
}

func exportCurve(xs, ys []float64, title, xLabel, yLabel string, c color.Color, filename string) error {
	if len(xs) < 2 {
		return fmt.Errorf("profile too short to plot: %d samples", len(xs))
	}

	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = xLabel
	pl.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = c
	pl.Add(line)

	// Zero reference line across the span.
	zero, err := plotter.NewLine(plotter.XYs{
		{X: xs[0], Y: 0},
		{X: xs[len(xs)-1], Y: 0},
	})
	if err != nil {
		return err
	}
	zero.LineStyle.Width = vg.Points(1)
	zero.LineStyle.Color = axisColor
	zero.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	pl.Add(zero)

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return pl.Save(8*vg.Inch, 4*vg.Inch, filename)
	default:
		return pl.Save(8*vg.Inch, 4*vg.Inch, filename+".png")
	}
}
