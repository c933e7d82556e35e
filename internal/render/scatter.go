package render

// Scatter plots the (xs[i], ys[i]) point cloud onto a Braille canvas of the
// given character dimensions and returns it as a string. The plot is scaled
// to the data bounds; the input sequences are never mutated.
func Scatter(xs, ys []float64, width, height int) string {
	if len(xs) == 0 || len(xs) != len(ys) || width <= 0 || height <= 0 {
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

	canvas := NewCanvas(width, height)
	pw := width*2 - 1
	ph := height*4 - 1

	for i := range xs {
		px := int((xs[i] - minX) / rangeX * float64(pw))
		py := ph - int((ys[i]-minY)/rangeY*float64(ph))
		canvas.Set(px, py)
	}

	return canvas.String()
}

func bounds(vs []float64) (min, max float64) {
	min, max = vs[0], vs[0]
	for _, v := range vs {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
