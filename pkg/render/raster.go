package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Raster is the pixel-based canvas backend built on fogleman/gg. Labels use
// the embedded Go Regular face, so output is identical across machines.
type Raster struct {
	dc    *gg.Context
	faces map[float64]font.Face
}

// NewRaster allocates a raster canvas of the given size in pixels.
func NewRaster(width, height float64) *Raster {
	return &Raster{
		dc:    gg.NewContext(int(width), int(height)),
		faces: make(map[float64]font.Face),
	}
}

// Image returns the underlying pixel buffer.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// Clear implements [Canvas].
func (r *Raster) Clear(c color.Color) {
	r.dc.SetColor(c)
	r.dc.Clear()
}

// Line implements [Canvas].
func (r *Raster) Line(x1, y1, x2, y2, width float64, c color.Color) {
	r.dc.SetColor(c)
	r.dc.SetLineWidth(width)
	r.dc.DrawLine(x1, y1, x2, y2)
	r.dc.Stroke()
}

// FillCircle implements [Canvas].
func (r *Raster) FillCircle(x, y, radius float64, c color.Color) {
	r.dc.SetColor(c)
	r.dc.DrawCircle(x, y, radius)
	r.dc.Fill()
}

// StrokeCircle implements [Canvas].
func (r *Raster) StrokeCircle(x, y, radius, width float64, c color.Color) {
	r.dc.SetColor(c)
	r.dc.SetLineWidth(width)
	r.dc.DrawCircle(x, y, radius)
	r.dc.Stroke()
}

// FillRect implements [Canvas].
func (r *Raster) FillRect(x, y, w, h float64, c color.Color) {
	r.dc.SetColor(c)
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.Fill()
}

// Text implements [Canvas].
func (r *Raster) Text(x, y float64, s string, size float64, c color.Color) {
	r.dc.SetFontFace(r.face(size))
	r.dc.SetColor(c)
	r.dc.DrawStringAnchored(s, x, y, 0.5, 0.4)
}

// face returns a Go Regular face at the given size, building it on first use.
func (r *Raster) face(size float64) font.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(err) // embedded font, cannot fail
	}
	f, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(err)
	}
	r.faces[size] = f
	return f
}
