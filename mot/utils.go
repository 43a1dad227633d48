package mot

// IoU calculates Intersection over Union between two boxes using inclusive pixel convention.
// Intersection sides are clamped at zero, box areas are not: degenerate boxes are scored as is.
// Zero denominator gives 0.
func IoU(boxA, boxB BoundingBox) float64 {
	xA := maxFloat64(boxA.X1, boxB.X1)
	yA := maxFloat64(boxA.Y1, boxB.Y1)
	xB := minFloat64(boxA.X2, boxB.X2)
	yB := minFloat64(boxA.Y2, boxB.Y2)

	interArea := maxFloat64(0, xB-xA+1) * maxFloat64(0, yB-yA+1)

	union := boxA.Area() + boxB.Area() - interArea
	if union == 0 {
		return 0.0
	}
	return interArea / union
}

func maxFloat64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
