// Package colormap maps scalar values in [0,1] to concrete colors.
//
// A [Scale] is a pure lookup: the compositor never knows how a fill color
// was produced, and new scales can be registered without touching any
// drawing code. Gradients interpolate in Lab space via go-colorful, which
// keeps perceived brightness monotonic along the scale.
package colormap

import (
	"image/color"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/timoleistner/plotrna/pkg/errors"
)

// Scale maps a value in [0,1] to a color. Callers validate the range
// before mapping; out-of-range input is a precondition violation.
type Scale interface {
	Name() string
	Map(value float64) color.Color
}

// DefaultName is the scale used when the caller does not pick one. Its
// value at 0 is plain white, so an all-zero value array renders as
// uncolored nucleotides.
const DefaultName = "purples"

// stop anchors a gradient color at a position in [0,1].
type stop struct {
	pos float64
	col colorful.Color
}

// gradient is a piecewise-linear color scale blended in Lab space.
type gradient struct {
	name  string
	stops []stop
}

func (g gradient) Name() string { return g.name }

func (g gradient) Map(value float64) color.Color {
	if value <= g.stops[0].pos {
		return toRGBA(g.stops[0].col)
	}
	last := g.stops[len(g.stops)-1]
	if value >= last.pos {
		return toRGBA(last.col)
	}
	for i := 0; i < len(g.stops)-1; i++ {
		a, b := g.stops[i], g.stops[i+1]
		if value <= b.pos {
			t := (value - a.pos) / (b.pos - a.pos)
			return toRGBA(a.col.BlendLab(b.col, t).Clamped())
		}
	}
	return toRGBA(last.col)
}

// toRGBA converts a colorful.Color to a premultiplied-friendly RGBA.
func toRGBA(c colorful.Color) color.Color {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// constant is a scale that ignores the value entirely.
type constant struct {
	name string
	col  color.Color
}

func (c constant) Name() string            { return c.name }
func (c constant) Map(float64) color.Color { return c.col }

func hex(s string) colorful.Color {
	c, _ := colorful.Hex(s)
	return c
}

// scales is the registry of built-in color scales.
var scales = map[string]Scale{
	"purples": gradient{name: "purples", stops: []stop{
		{0.0, hex("#ffffff")},
		{0.5, hex("#9e9ac8")},
		{1.0, hex("#3f007d")},
	}},
	"blues": gradient{name: "blues", stops: []stop{
		{0.0, hex("#ffffff")},
		{0.5, hex("#6baed6")},
		{1.0, hex("#08306b")},
	}},
	"heat": gradient{name: "heat", stops: []stop{
		{0.0, hex("#ffffff")},
		{0.4, hex("#fed976")},
		{0.7, hex("#fd8d3c")},
		{1.0, hex("#bd0026")},
	}},
	"viridis": gradient{name: "viridis", stops: []stop{
		{0.0, hex("#440154")},
		{0.25, hex("#3b528b")},
		{0.5, hex("#21918c")},
		{0.75, hex("#5ec962")},
		{1.0, hex("#fde725")},
	}},
	"plain": constant{name: "plain", col: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
}

// Get returns the named scale, or an INVALID_COLORMAP error listing the
// available names. An empty name resolves to the default scale.
func Get(name string) (Scale, error) {
	if name == "" {
		name = DefaultName
	}
	if s, ok := scales[name]; ok {
		return s, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidColormap,
		"unknown colormap %q (available: %v)", name, Names())
}

// Names returns the registered scale names in sorted order.
func Names() []string {
	names := make([]string, 0, len(scales))
	for n := range scales {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
