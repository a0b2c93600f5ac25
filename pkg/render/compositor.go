package render

import (
	"image/color"

	"github.com/timoleistner/plotrna/pkg/rna"
)

// Diagram collects everything the compositor needs for one drawing.
// Labels and Fills are optional; when set they must match the geometry
// length (the public API validates this before composing).
type Diagram struct {
	Geometry Geometry
	Pairs    rna.PairList
	Labels   []string      // nucleotide letters, empty means bare circles
	Fills    []color.Color // per-nucleotide fill, nil means background fill
}

// Compose draws a full diagram onto the canvas. Layer order is fixed:
// background, backbone, base pairs, then nucleotide glyphs. Glyphs come
// last so every line terminates cleanly under a circle instead of poking
// into it.
func Compose(c Canvas, d Diagram, th Theme) {
	c.Clear(th.Background)

	g := d.Geometry
	for i := 0; i+1 < g.Len(); i++ {
		x1, y1 := g.Point(i)
		x2, y2 := g.Point(i + 1)
		c.Line(x1, y1, x2, y2, th.LineWidth, th.Backbone)
	}

	for _, p := range d.Pairs {
		x1, y1 := g.Point(p.I - 1)
		x2, y2 := g.Point(p.J - 1)
		c.Line(x1, y1, x2, y2, th.LineWidth, th.Basepair)
	}

	for i := 0; i < g.Len(); i++ {
		x, y := g.Point(i)
		label := ""
		if i < len(d.Labels) {
			label = d.Labels[i]
		}
		fill := color.Color(th.Background)
		if i < len(d.Fills) {
			fill = d.Fills[i]
		}
		DrawNucleotide(c, x, y, label, fill, th)
	}
}

// DrawNucleotide renders one glyph in four steps: an erase disc in the
// background color, the fill disc, the outline, then the centered label.
// The erase step guarantees translucent or light fills never show line
// ends underneath.
func DrawNucleotide(c Canvas, x, y float64, label string, fill color.Color, th Theme) {
	c.FillCircle(x, y, th.BaseRadius, th.Background)
	c.FillCircle(x, y, th.BaseRadius, fill)
	c.StrokeCircle(x, y, th.BaseRadius, th.LineWidth, th.Outline)
	if label != "" {
		c.Text(x, y, label, th.FontSize, th.Text)
	}
}
