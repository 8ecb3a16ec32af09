// Package diagram renders free-body, shear and moment diagrams for the
// terminal.
package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/beamlab/internal/beam"
)

const defaultFBDWidth = 60

// FBD draws the free-body diagram: loads above the beam line, supports
// and reactions below. Pass nil reactions to render the quiz variant
// with the reactions hidden.
func FBD(b *beam.Beam, r *beam.Reactions) string {
	return FBDWidth(b, r, defaultFBDWidth)
}

func FBDWidth(b *beam.Beam, r *beam.Reactions, width int) string {
	if width < 20 {
		width = 20
	}
	col := func(x float64) int {
		c := int(x / b.Length * float64(width-1))
		if c < 0 {
			c = 0
		}
		if c > width-1 {
			c = width - 1
		}
		return c
	}

	var sb strings.Builder

	// Point load labels and arrows.
	if pts := b.PointLoads(); len(pts) > 0 {
		labels := blankRow(width)
		arrows := blankRow(width)
		for _, p := range pts {
			c := col(p.Position)
			placeCentered(labels, c, fmt.Sprintf("P=%.1f kN", p.Magnitude))
			arrows[c] = '↓'
		}
		sb.WriteString("  " + strings.TrimRight(string(labels), " ") + "\n")
		sb.WriteString("  " + strings.TrimRight(string(arrows), " ") + "\n")
	}

	// UDL band: a label above a run of small arrows.
	for _, u := range b.UDLs() {
		if u.Intensity == 0 || u.Start == u.End {
			continue
		}
		s, e := col(u.Start), col(u.End)
		labels := blankRow(width)
		placeCentered(labels, (s+e)/2, fmt.Sprintf("w=%.1f kN/m", u.Intensity))
		band := blankRow(width)
		for c := s; c <= e; c++ {
			band[c] = '▼'
		}
		sb.WriteString("  " + strings.TrimRight(string(labels), " ") + "\n")
		sb.WriteString("  " + strings.TrimRight(string(band), " ") + "\n")
	}

	// Beam line and supports: pin left, roller right.
	sb.WriteString("  " + strings.Repeat("━", width) + "\n")
	supports := blankRow(width)
	supports[0] = '▲'
	supports[width-1] = '◯'
	sb.WriteString("  " + strings.TrimRight(string(supports), " ") + "\n")

	raLabel, rbLabel := "Ra=?", "Rb=?"
	if r != nil {
		raLabel = fmt.Sprintf("Ra=%.1f kN", r.Ra)
		rbLabel = fmt.Sprintf("Rb=%.1f kN", r.Rb)
	}
	gap := width - len(raLabel) - len(rbLabel)
	if gap < 1 {
		gap = 1
	}
	sb.WriteString("  " + raLabel + strings.Repeat(" ", gap) + rbLabel + "\n")

	return sb.String()
}

// SFD plots the shear curve.
func SFD(p beam.Profile, width, height int) string {
	return asciigraph.Plot(p.Shears(),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("shear V (kN)"),
	)
}

// BMD plots the moment curve.
func BMD(p beam.Profile, width, height int) string {
	return asciigraph.Plot(p.Moments(),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("moment M (kN·m)"),
	)
}

// SummaryBox frames a titled list of result lines.
func SummaryBox(title string, lines []string) string {
	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	var sb strings.Builder
	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))
	return sb.String()
}

func blankRow(width int) []rune {
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	return row
}

func placeCentered(row []rune, center int, text string) {
	start := center - len(text)/2
	if start < 0 {
		start = 0
	}
	if start+len(text) > len(row) {
		start = len(row) - len(text)
	}
	for i, c := range text {
		row[start+i] = c
	}
}
