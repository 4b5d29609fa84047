package imageutil

// Fit scales (srcWidth, srcHeight) to fit within (maxWidth, maxHeight)
// while preserving aspect ratio. Sources already inside the bounds are
// returned unchanged; degenerate inputs collapse to zero.
func Fit(srcWidth, srcHeight, maxWidth, maxHeight int) (width, height int) {
	if srcWidth <= 0 || srcHeight <= 0 || maxWidth <= 0 || maxHeight <= 0 {
		return 0, 0
	}
	if srcWidth <= maxWidth && srcHeight <= maxHeight {
		return srcWidth, srcHeight
	}

	scaleW := float64(maxWidth) / float64(srcWidth)
	scaleH := float64(maxHeight) / float64(srcHeight)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	width = int(float64(srcWidth) * scale)
	height = int(float64(srcHeight) * scale)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}
