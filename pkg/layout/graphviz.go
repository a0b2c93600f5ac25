package layout

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/timoleistner/plotrna/pkg/errors"
	"github.com/timoleistner/plotrna/pkg/rna"
)

// formatPlain is the Graphviz "plain" output format: one line per node with
// its layout position, trivially parseable.
const formatPlain = graphviz.Format("plain")

// engines maps layout schemes to Graphviz layout engines. Schemes missing
// from the map are forwarded verbatim, so the engine decides whether the
// name is valid.
var engines = map[Scheme]string{
	SchemeSimple:  "dot",
	SchemeNaview:  "neato",
	SchemeTurtle:  "sfdp",
	SchemePuzzler: "fdp",
}

// Graphviz delegates graph embedding to the Graphviz engines. The RNA is
// modeled as an undirected graph with backbone edges between consecutive
// nucleotides and one edge per base pair; the engine's node positions come
// back through the plain output format.
type Graphviz struct{}

// NewGraphviz returns a Graphviz-backed layout provider.
func NewGraphviz() *Graphviz {
	return &Graphviz{}
}

// Layout implements [Provider].
func (g *Graphviz) Layout(ctx context.Context, structure string, pairs rna.PairList, scheme Scheme) (Coordinates, error) {
	n := len(structure)
	if n == 0 {
		return Coordinates{}, errors.New(errors.ErrCodeStructure, "structure is empty")
	}

	dot := buildDOT(n, pairs, engineFor(scheme))

	gv, err := graphviz.New(ctx)
	if err != nil {
		return Coordinates{}, errors.Wrap(errors.ErrCodeLayout, err, "init graphviz")
	}
	defer gv.Close()

	graph, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return Coordinates{}, errors.Wrap(errors.ErrCodeLayout, err, "parse DOT")
	}
	defer graph.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, formatPlain, &buf); err != nil {
		return Coordinates{}, errors.Wrap(errors.ErrCodeLayout, err, "layout scheme %q", scheme)
	}

	coords, err := parsePlain(buf.String(), n)
	if err != nil {
		return Coordinates{}, err
	}
	return coords, nil
}

// engineFor resolves a scheme to a Graphviz engine name, forwarding
// unrecognized schemes unchanged.
func engineFor(scheme Scheme) string {
	if e, ok := engines[scheme]; ok {
		return e
	}
	return string(scheme)
}

// buildDOT emits the RNA graph in DOT form. Backbone edges are kept short
// and stiff relative to pair edges so helices read as parallel strands.
func buildDOT(n int, pairs rna.PairList, engine string) string {
	var buf bytes.Buffer
	buf.WriteString("graph RNA {\n")
	fmt.Fprintf(&buf, "  layout=%s;\n", engine)
	buf.WriteString("  node [shape=point, width=0.1, height=0.1];\n")
	buf.WriteString("\n")

	for i := 1; i < n; i++ {
		fmt.Fprintf(&buf, "  n%d -- n%d [len=1.0];\n", i, i+1)
	}
	for _, p := range pairs {
		fmt.Fprintf(&buf, "  n%d -- n%d [len=1.0, weight=2];\n", p.I, p.J)
	}
	// Isolated single nucleotide still needs a node statement.
	if n == 1 {
		buf.WriteString("  n1;\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

// parsePlain extracts node positions from Graphviz plain output:
//
//	graph <scale> <width> <height>
//	node <name> <x> <y> <width> <height> <label> ...
//	...
//	stop
func parsePlain(out string, n int) (Coordinates, error) {
	coords := Coordinates{
		X: make([]float64, n),
		Y: make([]float64, n),
	}
	seen := 0

	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 || fields[0] != "node" {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimPrefix(fields[1], "n"))
		if err != nil || idx < 1 || idx > n {
			return Coordinates{}, errors.New(errors.ErrCodeLayout,
				"unexpected node %q in layout output", fields[1])
		}
		x, errX := strconv.ParseFloat(fields[2], 64)
		y, errY := strconv.ParseFloat(fields[3], 64)
		if errX != nil || errY != nil {
			return Coordinates{}, errors.New(errors.ErrCodeLayout,
				"malformed position for node %q", fields[1])
		}
		coords.X[idx-1] = x
		coords.Y[idx-1] = y
		seen++
	}

	if seen != n {
		return Coordinates{}, errors.New(errors.ErrCodeLayout,
			"layout output has %d node positions, expected %d", seen, n)
	}
	return coords, nil
}
