package layout

import (
	"context"
	"math"

	"github.com/timoleistner/plotrna/pkg/rna"
)

// Circular places the backbone on the unit circle, 5' end at the top,
// proceeding clockwise. Base-pair chords are left to the renderer; the
// pair list only matters to the force-directed providers.
type Circular struct{}

// Layout implements [Provider]. Coordinates land in [-1, 1] on both axes;
// the geometry normalizer applies the scheme's scale factor.
func (Circular) Layout(_ context.Context, structure string, _ rna.PairList, _ Scheme) (Coordinates, error) {
	n := len(structure)
	coords := Coordinates{
		X: make([]float64, n),
		Y: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		coords.X[i] = math.Sin(theta)
		coords.Y[i] = -math.Cos(theta)
	}
	return coords, nil
}
