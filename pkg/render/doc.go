// Package render turns layout coordinates into finished RNA diagrams.
//
// # Overview
//
// The package is split along three seams:
//
//   - [Normalize] maps a layout engine's abstract units onto a tightly
//     fitting canvas, recentered on the structure's centroid.
//   - [Canvas] abstracts the drawing surface. [Raster] draws pixels via
//     fogleman/gg; [SVG] emits vector markup into a buffer.
//   - [Compose] paints a [Diagram] onto any canvas in a fixed layer
//     order: background, backbone, base pairs, nucleotide glyphs.
//
// # Usage
//
//	geom := render.Normalize(coords, scheme, theme)
//	c := render.NewRaster(geom.Width, geom.Height)
//	render.Compose(c, render.Diagram{Geometry: geom, Pairs: pairs}, theme)
//	img := c.Image()
//
// Because both backends share the compositor, PNG and SVG output of the
// same diagram differ only in encoding, never in content or layering.
//
// # Themes
//
// A [Theme] bundles the visual constants (radii, padding, colors, font
// size). [DefaultTheme] is the built-in look; [LoadTheme] overlays a TOML
// file on top of it.
package render
