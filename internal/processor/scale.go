package processor

// Size is a width and height in page units (millimetres).
type Size struct {
	Width  float64
	Height float64
}

// Scaled reports whether s differs from the original pixel size.
func (s Size) Scaled(width, height int) bool {
	return s.Width != float64(width) || s.Height != float64(height)
}

// ComputeScaledImageSize fits an image of width x height into the
// maxWidth x maxHeight box. Only the axis that overflows given the image's
// aspect ratio relative to the box is considered, and images are never
// enlarged. When the aspect ratios are equal nothing is scaled, even if the
// image is larger than the box. Non-positive input is returned unchanged.
func ComputeScaledImageSize(maxWidth, maxHeight, width, height float64) Size {
	if maxWidth <= 0 || maxHeight <= 0 || width <= 0 || height <= 0 {
		return Size{Width: width, Height: height}
	}

	pageAspect := maxWidth / maxHeight
	imageAspect := width / height

	factor := 1.0
	if imageAspect > pageAspect && width > maxWidth {
		factor = maxWidth / width
	} else if imageAspect < pageAspect && height > maxHeight {
		factor = maxHeight / height
	}

	return Size{Width: width * factor, Height: height * factor}
}
