package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/dancecube/internal/viz"
)

const defaultDotColor = "#d0d0d0"

// CanvasToSVG converts a braille canvas to SVG, one circle per dot, using the
// canvas cell tints.
func CanvasToSVG(canvas *viz.Canvas, scale float64, background string) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	dotRadius := scale * 0.4
	w, h := canvas.SubSize()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !canvas.Dot(x, y) {
				continue
			}
			fill := canvas.Colors[y/4][x/2]
			if fill == "" {
				fill = defaultDotColor
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, fill))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// Point is a 2-D sample of a path.
type Point struct{ X, Y float64 }

// PathToSVG draws a polyline fitted into width x height with 10% padding.
func PathToSVG(points []Point, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)
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

// WriteFile writes an SVG document to path.
func WriteFile(path, svg string) error {
	if svg == "" {
		return fmt.Errorf("nothing to write to %s", path)
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
