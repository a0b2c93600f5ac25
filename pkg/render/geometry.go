package render

import (
	"math"

	"github.com/timoleistner/plotrna/pkg/layout"
)

// schemeScale converts a layout engine's abstract units to canvas units.
// The circular layout places nucleotides on a unit circle, so it needs a
// far larger factor than the graphviz engines, which already space nodes
// roughly one unit apart.
var schemeScale = map[layout.Scheme]float64{
	layout.SchemeSimple:   72,
	layout.SchemeNaview:   72,
	layout.SchemeTurtle:   72,
	layout.SchemePuzzler:  72,
	layout.SchemeCircular: 160,
}

const defaultScale = 72

// Geometry holds normalized drawing coordinates together with the canvas
// size that fits them. X and Y are centered on the origin; Point translates
// them into the canvas coordinate system (origin top-left, y down).
type Geometry struct {
	X, Y          []float64
	Width, Height float64
}

// Len returns the number of positions.
func (g Geometry) Len() int { return len(g.X) }

// Point returns the canvas position of nucleotide i.
func (g Geometry) Point(i int) (x, y float64) {
	return g.Width/2 + g.X[i], g.Height/2 + g.Y[i]
}

// Normalize scales raw layout coordinates to canvas units, recenters them
// on their centroid, and derives a canvas just large enough to hold every
// nucleotide circle plus padding. The same coordinates always produce the
// same geometry.
func Normalize(coords layout.Coordinates, scheme layout.Scheme, th Theme) Geometry {
	n := coords.Len()
	scale, ok := schemeScale[scheme]
	if !ok {
		scale = defaultScale
	}

	g := Geometry{X: make([]float64, n), Y: make([]float64, n)}
	if n == 0 {
		side := 2 * (th.BaseRadius + th.Padding)
		g.Width, g.Height = side, side
		return g
	}

	var cx, cy float64
	for i := 0; i < n; i++ {
		g.X[i] = coords.X[i] * scale
		g.Y[i] = coords.Y[i] * scale
		cx += g.X[i]
		cy += g.Y[i]
	}
	cx /= float64(n)
	cy /= float64(n)

	var maxX, maxY float64
	for i := 0; i < n; i++ {
		g.X[i] -= cx
		g.Y[i] -= cy
		maxX = math.Max(maxX, math.Abs(g.X[i]))
		maxY = math.Max(maxY, math.Abs(g.Y[i]))
	}

	g.Width = 2 * (math.Ceil(maxX) + th.BaseRadius + th.Padding)
	g.Height = 2 * (math.Ceil(maxY) + th.BaseRadius + th.Padding)
	return g
}
