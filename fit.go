package dusk

// FitTargetSize returns the internal render resolution for an output of
// imageSize. With a zero limit the output size is used as is. Otherwise the
// output aspect ratio is kept while the dimension that exceeds the limit's
// aspect is capped: wider outputs cap the width, taller outputs cap the
// height, and equal aspects cap both.
func FitTargetSize(imageSize, limit Point) Point {
	if limit.Empty() || imageSize.Empty() {
		return imageSize
	}

	limitRatio := float64(limit.X) / float64(limit.Y)
	ratio := float64(imageSize.X) / float64(imageSize.Y)

	var w, h int
	switch {
	case ratio > limitRatio:
		w = min(limit.X, imageSize.X)
		h = int(float64(w) / ratio)
	case ratio < limitRatio:
		h = min(limit.Y, imageSize.Y)
		w = int(float64(h) * ratio)
	default:
		w = min(limit.X, imageSize.X)
		h = min(limit.Y, imageSize.Y)
	}
	return Point{max(w, 1), max(h, 1)}
}
