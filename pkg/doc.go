// Package pkg provides the core libraries for plotrna secondary structure
// rendering.
//
// # Overview
//
// plotrna turns a dot-bracket secondary structure into a 2D diagram. The
// pkg directory is organized along the pipeline stages:
//
//  1. [rna] - Dot-bracket parsing into base-pair lists
//  2. [layout] - 2D coordinate computation (local circular, Graphviz engines)
//  3. [fold] - McCaskill base-pairing probabilities
//  4. [colormap] - Scalar-to-color scales
//  5. [render] - Geometry normalization, compositing, raster and SVG canvases
//  6. [plot] - The public rendering API tying the stages together
//  7. [server] - HTTP frontend for the renderer
//  8. [cache] - File-backed layout memoization
//
// # Quick Start
//
// Render a hairpin to a PNG file:
//
//	import (
//	    "context"
//	    "github.com/timoleistner/plotrna/pkg/plot"
//	)
//
//	img, err := plot.RenderStructure(context.Background(), "(((...)))",
//	    plot.WithSequence("GGGAAACCC"),
//	    plot.WithSavePath("hairpin.png"),
//	)
//
// Probability rendering folds the sequence first and adds a legend:
//
//	img, err := plot.RenderStructureProbabilities(ctx, "(((...)))", "GGGAAACCC",
//	    plot.WithColormap("heat"),
//	    plot.WithSavePath("hairpin.svg"),
//	)
//
// [rna]: github.com/timoleistner/plotrna/pkg/rna
// [layout]: github.com/timoleistner/plotrna/pkg/layout
// [fold]: github.com/timoleistner/plotrna/pkg/fold
// [colormap]: github.com/timoleistner/plotrna/pkg/colormap
// [render]: github.com/timoleistner/plotrna/pkg/render
// [plot]: github.com/timoleistner/plotrna/pkg/plot
// [server]: github.com/timoleistner/plotrna/pkg/server
// [cache]: github.com/timoleistner/plotrna/pkg/cache
package pkg
