package render

import "image/color"

// Canvas is the minimal drawing surface the compositor needs. Both the
// raster (gg) and SVG backends implement it, so every diagram is composed
// by the same code regardless of output format.
type Canvas interface {
	// Clear fills the whole surface with one color.
	Clear(c color.Color)
	// Line strokes a segment from (x1,y1) to (x2,y2).
	Line(x1, y1, x2, y2, width float64, c color.Color)
	// FillCircle draws a filled disc centered at (x,y).
	FillCircle(x, y, r float64, c color.Color)
	// StrokeCircle draws a circle outline centered at (x,y).
	StrokeCircle(x, y, r, width float64, c color.Color)
	// FillRect draws a filled axis-aligned rectangle.
	FillRect(x, y, w, h float64, c color.Color)
	// Text draws s centered horizontally and vertically on (x,y).
	Text(x, y float64, s string, size float64, c color.Color)
}
