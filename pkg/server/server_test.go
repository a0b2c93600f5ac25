package server

import (
	"context"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/timoleistner/plotrna/pkg/layout"
	"github.com/timoleistner/plotrna/pkg/rna"
)

// lineProvider avoids the graphviz dependency in handler tests.
type lineProvider struct{}

func (lineProvider) Layout(_ context.Context, structure string, _ rna.PairList, _ layout.Scheme) (layout.Coordinates, error) {
	n := len(structure)
	c := layout.Coordinates{X: make([]float64, n), Y: make([]float64, n)}
	for i := 0; i < n; i++ {
		c.X[i] = float64(i)
	}
	return c, nil
}

func testServer() *httptest.Server {
	return httptest.NewServer(New(WithProvider(lineProvider{})).Handler())
}

func TestHealthz(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRenderPNG(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/render?structure=" + "%28%28..%29%29" + "&sequence=GGAACC")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if _, err := png.Decode(resp.Body); err != nil {
		t.Errorf("body is not a PNG: %v", err)
	}
}

func TestRenderProbabilitiesSVG(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL +
		"/render?structure=%28%28..%29%29&sequence=GGAACC&probabilities=true&format=svg")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "<svg") {
		t.Error("body does not look like SVG")
	}
}

func TestRenderErrors(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	tests := []struct {
		name  string
		query string
		code  string
	}{
		{"unbalanced structure", "structure=%28%28%28", "STRUCTURE_ERROR"},
		{"bad format", "structure=..&format=gif", "INVALID_FORMAT"},
		{"svg without probabilities", "structure=..&format=svg", "INVALID_FORMAT"},
		{"bad colormap", "structure=..&colormap=nope", "INVALID_COLORMAP"},
		{"probabilities without sequence", "structure=..&probabilities=true", "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/render?" + tt.query)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			var body struct {
				Code string `json:"code"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body.Code != tt.code {
				t.Errorf("code = %q, want %q", body.Code, tt.code)
			}
		})
	}
}

func TestColormaps(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/colormaps")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body struct {
		Colormaps []string `json:"colormaps"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Colormaps) < 4 {
		t.Errorf("colormaps = %v, want the built-in scales", body.Colormaps)
	}
}
