package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/beamlab/internal/beam"
)

// ProfileSVG renders the shear and moment curves as two stacked
// polylines in one standalone SVG document, shear on top.
func ProfileSVG(p beam.Profile, width, height int) string {
	if len(p) < 2 {
		return ""
	}

	half := height / 2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	writeCurve(&sb, p.Positions(), p.Shears(), width, half, 0, "#00cc66")
	writeCurve(&sb, p.Positions(), p.Moments(), width, half, half, "#ff9933")

	sb.WriteString("</svg>")
	return sb.String()
}

// writeCurve emits one path scaled into a horizontal band, with a
// dashed zero axis for reference.
func writeCurve(sb *strings.Builder, xs, ys []float64, width, bandHeight, bandTop int, stroke string) {
	minX, maxX := xs[0], xs[len(xs)-1]
	minY, maxY := ys[0], ys[0]
	for _, y := range ys {
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	scaleY := func(y float64) float64 {
		return float64(bandTop) + float64(bandHeight) - (y-minY)/rangeY*float64(bandHeight)
	}

	// Zero axis, if it falls inside the band.
	if minY <= 0 && maxY >= 0 {
		zy := scaleY(0)
		fmt.Fprintf(sb, `<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#444444" stroke-dasharray="4 3"/>
`, zy, width, zy)
	}

	fmt.Fprintf(sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke)
	for i := range xs {
		px := (xs[i] - minX) / rangeX * float64(width)
		py := scaleY(ys[i])
		if i == 0 {
			fmt.Fprintf(sb, "%.1f,%.1f", px, py)
		} else {
			fmt.Fprintf(sb, " L%.1f,%.1f", px, py)
		}
	}
	sb.WriteString("\"/>\n")
}
