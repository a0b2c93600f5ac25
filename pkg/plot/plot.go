// Package plot is the public entry point: it validates inputs, runs the
// layout, folding, and rendering stages, and optionally writes the result
// to disk. Everything here is a pure function of its arguments, so the
// same call always produces the same bytes.
package plot

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/timoleistner/plotrna/pkg/colormap"
	"github.com/timoleistner/plotrna/pkg/errors"
	"github.com/timoleistner/plotrna/pkg/fold"
	"github.com/timoleistner/plotrna/pkg/layout"
	"github.com/timoleistner/plotrna/pkg/render"
	"github.com/timoleistner/plotrna/pkg/render/sink"
	"github.com/timoleistner/plotrna/pkg/rna"
)

// Option configures a single render call.
type Option func(*renderer)

type renderer struct {
	sequence string
	savePath string
	scheme   layout.Scheme
	values   []float64
	colormap string
	theme    render.Theme
	provider layout.Provider
	folder   fold.Folder
	svgOut   *bytes.Buffer
}

// WithSequence sets the nucleotide letters drawn inside the glyphs. Must
// match the structure length.
func WithSequence(seq string) Option { return func(r *renderer) { r.sequence = seq } }

// WithSavePath writes the finished diagram to the given file. An empty
// path (the default) keeps the result in memory only.
func WithSavePath(path string) Option { return func(r *renderer) { r.savePath = path } }

// WithLayout selects the layout scheme. Defaults to [layout.SchemeNaview].
func WithLayout(s layout.Scheme) Option { return func(r *renderer) { r.scheme = s } }

// WithBaseColors supplies one value in [0,1] per nucleotide, mapped to a
// fill color through the active colormap.
func WithBaseColors(values []float64) Option { return func(r *renderer) { r.values = values } }

// WithColormap selects the color scale by name. Defaults to
// [colormap.DefaultName].
func WithColormap(name string) Option { return func(r *renderer) { r.colormap = name } }

// WithTheme replaces the default visual theme.
func WithTheme(th render.Theme) Option { return func(r *renderer) { r.theme = th } }

// WithLayoutProvider replaces the coordinate provider, e.g. to add
// caching or to stub layouts in tests.
func WithLayoutProvider(p layout.Provider) Option { return func(r *renderer) { r.provider = p } }

// WithFolder replaces the pairing-probability engine used by
// [RenderStructureProbabilities].
func WithFolder(f fold.Folder) Option { return func(r *renderer) { r.folder = f } }

// WithSVGOutput additionally captures the vector rendition of the diagram
// into buf, independent of any save path.
func WithSVGOutput(buf *bytes.Buffer) Option { return func(r *renderer) { r.svgOut = buf } }

func newRenderer(opts ...Option) renderer {
	r := renderer{
		scheme: layout.SchemeNaview,
		theme:  render.DefaultTheme(),
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.provider == nil {
		r.provider = layout.Default()
	}
	if r.folder == nil {
		r.folder = &fold.McCaskill{}
	}
	return r
}

// RenderStructure draws a secondary structure diagram and returns it as an
// image. With [WithSavePath] the diagram is additionally written as PNG;
// only the .png extension is accepted.
func RenderStructure(ctx context.Context, structure string, opts ...Option) (image.Image, error) {
	r := newRenderer(opts...)
	if err := r.validate(structure, ".png"); err != nil {
		return nil, err
	}
	return r.draw(ctx, structure, false)
}

// RenderStructureProbabilities draws the structure with each nucleotide
// filled by its pairing probability and a gradient legend underneath.
// When no explicit values are given, probabilities are computed from the
// sequence with the configured folding engine. Save paths may end in
// .png or .svg.
func RenderStructureProbabilities(ctx context.Context, structure, sequence string, opts ...Option) (image.Image, error) {
	r := newRenderer(opts...)
	r.sequence = sequence
	if sequence == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"probability rendering requires a sequence")
	}
	if err := r.validate(structure, ".png", ".svg"); err != nil {
		return nil, err
	}

	if r.values == nil {
		result, err := r.folder.PairProbabilities(sequence)
		if err != nil {
			return nil, err
		}
		r.values = result.BaseProbabilities()
	}
	return r.draw(ctx, structure, true)
}

// validate runs every input check before any layout or folding work, so
// a bad save path can never waste a render.
func (r *renderer) validate(structure string, allowedExt ...string) error {
	if _, err := rna.ParsePairs(structure); err != nil {
		return err
	}
	if err := errors.ValidateSequence(structure, r.sequence); err != nil {
		return err
	}
	if err := errors.ValidateValues(structure, r.values); err != nil {
		return err
	}
	if _, err := colormap.Get(r.colormap); err != nil {
		return err
	}
	return errors.ValidateSavePath(r.savePath, allowedExt...)
}

func (r *renderer) draw(ctx context.Context, structure string, legend bool) (image.Image, error) {
	pairs, err := rna.ParsePairs(structure)
	if err != nil {
		return nil, err
	}
	coords, err := r.provider.Layout(ctx, structure, pairs, r.scheme)
	if err != nil {
		return nil, err
	}
	if coords.Len() != len(structure) {
		return nil, errors.New(errors.ErrCodeLayout,
			"layout returned %d positions for %d nucleotides", coords.Len(), len(structure))
	}

	geom := render.Normalize(coords, r.scheme, r.theme)
	diagram := render.Diagram{
		Geometry: geom,
		Pairs:    pairs,
		Labels:   rna.Labels(structure, r.sequence),
		Fills:    r.fills(len(structure)),
	}

	scale, err := colormap.Get(r.colormap)
	if err != nil {
		return nil, err
	}

	height := geom.Height
	if legend {
		height += render.LegendHeight(r.theme)
	}

	raster := render.NewRaster(geom.Width, height)
	render.Compose(raster, diagram, r.theme)
	if legend {
		render.DrawLegend(raster, geom.Width, height, scale, r.theme)
	}
	img := raster.Image()

	composeSVG := func() []byte {
		svg := render.NewSVG(geom.Width, height)
		render.Compose(svg, diagram, r.theme)
		if legend {
			render.DrawLegend(svg, geom.Width, height, scale, r.theme)
		}
		return svg.Bytes()
	}
	if r.svgOut != nil {
		r.svgOut.Write(composeSVG())
	}

	if r.savePath == "" {
		return img, nil
	}

	var data []byte
	if strings.EqualFold(filepath.Ext(r.savePath), ".svg") {
		data = composeSVG()
	} else {
		if data, err = sink.EncodePNG(img); err != nil {
			return nil, err
		}
	}
	if err := sink.Write(r.savePath, data); err != nil {
		return nil, err
	}
	return img, nil
}

// fills maps the configured values through the colormap, one fill color
// per nucleotide. Nil values mean no color override.
func (r *renderer) fills(n int) []color.Color {
	if r.values == nil {
		return nil
	}
	scale, err := colormap.Get(r.colormap)
	if err != nil {
		return nil // validated earlier, unreachable
	}
	fills := make([]color.Color, n)
	for i, v := range r.values {
		fills[i] = scale.Map(v)
	}
	return fills
}
