package render

// ChartDimensions applies the width/height clamp rules used for figures.
// Zero values pick the defaults; small sizes are raised to keep axis labels
// legible and very tall charts are capped.
func ChartDimensions(rawW, rawH int) (int, int) {
	w := rawW
	if w <= 0 {
		w = 1024
	}
	if w < 800 {
		w = 800
	}
	h := rawH
	if h <= 0 {
		h = int(float64(w) * 0.62)
	}
	if h < 280 {
		h = 280
	}
	if h > 800 {
		h = 800
	}
	return w, h
}
