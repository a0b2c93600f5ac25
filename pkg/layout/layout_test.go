package layout

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/timoleistner/plotrna/pkg/cache"
	"github.com/timoleistner/plotrna/pkg/errors"
	"github.com/timoleistner/plotrna/pkg/rna"
)

func TestCircularLayout(t *testing.T) {
	structure := "(((...)))"
	coords, err := Circular{}.Layout(context.Background(), structure, nil, SchemeCircular)
	if err != nil {
		t.Fatal(err)
	}
	if coords.Len() != len(structure) {
		t.Fatalf("Len = %d, want %d", coords.Len(), len(structure))
	}

	// Every nucleotide sits on the unit circle.
	for i := 0; i < coords.Len(); i++ {
		r := math.Hypot(coords.X[i], coords.Y[i])
		if math.Abs(r-1) > 1e-9 {
			t.Errorf("radius at %d = %g, want 1", i, r)
		}
	}

	// 5' end at the top, y increasing downward afterwards.
	if math.Abs(coords.X[0]) > 1e-9 || math.Abs(coords.Y[0]+1) > 1e-9 {
		t.Errorf("first nucleotide at (%g, %g), want (0, -1)", coords.X[0], coords.Y[0])
	}
}

func TestCircularLayoutSingleBase(t *testing.T) {
	coords, err := Circular{}.Layout(context.Background(), ".", nil, SchemeCircular)
	if err != nil {
		t.Fatal(err)
	}
	if coords.Len() != 1 {
		t.Fatalf("Len = %d, want 1", coords.Len())
	}
}

func TestEngineFor(t *testing.T) {
	tests := []struct {
		scheme Scheme
		want   string
	}{
		{SchemeSimple, "dot"},
		{SchemeNaview, "neato"},
		{SchemeTurtle, "sfdp"},
		{SchemePuzzler, "fdp"},
		{Scheme("twopi"), "twopi"}, // unknown schemes forward verbatim
	}
	for _, tt := range tests {
		if got := engineFor(tt.scheme); got != tt.want {
			t.Errorf("engineFor(%q) = %q, want %q", tt.scheme, got, tt.want)
		}
	}
}

func TestBuildDOT(t *testing.T) {
	dot := buildDOT(4, rna.PairList{{I: 1, J: 4}}, "neato")

	for _, want := range []string{
		"graph RNA {",
		"layout=neato;",
		"n1 -- n2",
		"n2 -- n3",
		"n3 -- n4",
		"n1 -- n4",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestParsePlain(t *testing.T) {
	out := "graph 1.0 2.5 2.5\n" +
		"node n1 0.1 0.2 0.1 0.1 \"\" solid point black lightgrey\n" +
		"node n3 2.0 1.5 0.1 0.1 \"\" solid point black lightgrey\n" +
		"node n2 1.0 0.8 0.1 0.1 \"\" solid point black lightgrey\n" +
		"stop\n"

	coords, err := parsePlain(out, 3)
	if err != nil {
		t.Fatal(err)
	}
	if coords.X[0] != 0.1 || coords.Y[0] != 0.2 {
		t.Errorf("n1 = (%g, %g)", coords.X[0], coords.Y[0])
	}
	if coords.X[1] != 1.0 || coords.Y[1] != 0.8 {
		t.Errorf("n2 = (%g, %g)", coords.X[1], coords.Y[1])
	}
	if coords.X[2] != 2.0 || coords.Y[2] != 1.5 {
		t.Errorf("n3 = (%g, %g)", coords.X[2], coords.Y[2])
	}
}

func TestParsePlainErrors(t *testing.T) {
	tests := []struct {
		name string
		out  string
	}{
		{"missing node", "graph 1 1 1\nnode n1 0 0 0.1 0.1\nstop\n"},
		{"unknown node", "graph 1 1 1\nnode n9 0 0 0.1 0.1\nnode n1 0 0 0.1 0.1\nstop\n"},
		{"bad position", "graph 1 1 1\nnode n1 zero 0 0.1 0.1\nnode n2 0 0 0.1 0.1\nstop\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePlain(tt.out, 2)
			if !errors.Is(err, errors.ErrCodeLayout) {
				t.Errorf("error = %v, want LAYOUT_ERROR", err)
			}
		})
	}
}

// recordingProvider counts Layout invocations for cache tests.
type recordingProvider struct {
	calls  int
	coords Coordinates
}

func (p *recordingProvider) Layout(context.Context, string, rna.PairList, Scheme) (Coordinates, error) {
	p.calls++
	return p.coords, nil
}

func TestCachedProvider(t *testing.T) {
	ctx := context.Background()
	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	inner := &recordingProvider{coords: Coordinates{X: []float64{0, 1}, Y: []float64{0, 1}}}
	p := NewCached(inner, store)

	first, err := p.Layout(ctx, "..", nil, SchemeNaview)
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Layout(ctx, "..", nil, SchemeNaview)
	if err != nil {
		t.Fatal(err)
	}

	if inner.calls != 1 {
		t.Errorf("inner provider called %d times, want 1", inner.calls)
	}
	if first.Len() != second.Len() || first.X[1] != second.X[1] {
		t.Errorf("cached coordinates differ: %v vs %v", first, second)
	}

	// Different scheme misses the cache.
	if _, err := p.Layout(ctx, "..", nil, SchemeCircular); err != nil {
		t.Fatal(err)
	}
	if inner.calls != 2 {
		t.Errorf("inner provider called %d times, want 2", inner.calls)
	}
}

func TestCachedProviderNilStore(t *testing.T) {
	inner := &recordingProvider{coords: Coordinates{X: []float64{0}, Y: []float64{0}}}
	p := NewCached(inner, nil)

	for i := 0; i < 2; i++ {
		if _, err := p.Layout(context.Background(), ".", nil, SchemeNaview); err != nil {
			t.Fatal(err)
		}
	}
	if inner.calls != 2 {
		t.Errorf("null cache should never hit; calls = %d", inner.calls)
	}
}
