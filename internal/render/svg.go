package render

import (
	"fmt"
	"strings"
)

// ScatterSVG renders the (xs[i], ys[i]) point cloud as an SVG document of
// small dots, suitable for dense bifurcation diagrams.
func ScatterSVG(xs, ys []float64, width, height int) string {
	if len(xs) == 0 || len(xs) != len(ys) {
		return ""
	}

	minX, maxX := bounds(xs)
	minY, maxY := bounds(ys)
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff88" fill-opacity="0.3">
`, width, height, width, height))

	for i := range xs {
		cx := (xs[i] - minX) / rangeX * float64(width)
		cy := float64(height) - (ys[i]-minY)/rangeY*float64(height)
		sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"0.5\"/>\n", cx, cy))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// PolylineSVG renders the (xs[i], ys[i]) sequence as a connected path,
// suitable for time series and fitted curves.
func PolylineSVG(xs, ys []float64, width, height int, strokeColor string) string {
	if len(xs) < 2 || len(xs) != len(ys) {
		return ""
	}

	minX, maxX := bounds(xs)
	minY, maxY := bounds(ys)
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.05
	maxX += rangeX * 0.05
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i := range xs {
		x := (xs[i] - minX) / rangeX * float64(width)
		y := float64(height) - (ys[i]-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
