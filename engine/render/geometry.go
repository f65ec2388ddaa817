package render

// textGeometry pins where the mode abbreviation lands on a composite of a
// given size. ScaleX and ScaleY are glyph scale factors, X and Y the pixel
// anchor of the text's top left corner.
type textGeometry struct {
	ScaleX float64
	ScaleY float64
	X      int
	Y      int
}

// overlayGeometry derives the text placement from the image dimensions
// alone. ScaleX truncates to a whole number before widening; the anchor
// coordinates truncate after division.
func overlayGeometry(width, height int) textGeometry {
	return textGeometry{
		ScaleX: float64(width / 3),
		ScaleY: float64(height) / 1.7,
		X:      int(float64(width) / 3.5),
		Y:      int(float64(height) / 4.8),
	}
}
