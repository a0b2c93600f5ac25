// Package layout produces 2D nucleotide coordinates for a secondary
// structure. The rendering pipeline treats layout as an external
// graph-embedding capability: it consumes whatever coordinates a [Provider]
// returns and never runs an embedding algorithm itself.
//
// Two providers ship with the package: [Circular] places nucleotides on a
// circle locally, and [Graphviz] delegates every other scheme to the
// Graphviz engines bundled with goccy/go-graphviz.
package layout

import (
	"context"

	"github.com/timoleistner/plotrna/pkg/rna"
)

// Scheme names a layout algorithm.
type Scheme string

// Built-in layout schemes. Unrecognized scheme names are forwarded to the
// Graphviz engine verbatim; its error (if any) propagates as LAYOUT_ERROR.
const (
	SchemeSimple   Scheme = "simple"
	SchemeNaview   Scheme = "naview"
	SchemeCircular Scheme = "circular"
	SchemeTurtle   Scheme = "turtle"
	SchemePuzzler  Scheme = "puzzler"
)

// Coordinates holds one (x, y) position per nucleotide, in the layout
// engine's natural units. Parallel slices, same length as the structure.
type Coordinates struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// Len returns the number of positioned nucleotides.
func (c Coordinates) Len() int { return len(c.X) }

// Provider computes raw layout coordinates for a structure.
type Provider interface {
	Layout(ctx context.Context, structure string, pairs rna.PairList, scheme Scheme) (Coordinates, error)
}

// dispatcher routes circular layouts to the local provider and everything
// else to Graphviz.
type dispatcher struct {
	circular Circular
	graphviz *Graphviz
}

// Default returns the standard provider: circular handled locally, all
// other schemes delegated to Graphviz.
func Default() Provider {
	return &dispatcher{graphviz: NewGraphviz()}
}

func (d *dispatcher) Layout(ctx context.Context, structure string, pairs rna.PairList, scheme Scheme) (Coordinates, error) {
	if scheme == SchemeCircular {
		return d.circular.Layout(ctx, structure, pairs, scheme)
	}
	return d.graphviz.Layout(ctx, structure, pairs, scheme)
}
