// Package fold computes base-pairing probabilities for RNA sequences.
//
// The renderer treats folding as an injected capability: anything that can
// produce per-pair probabilities for a sequence satisfies [Folder]. The
// default implementation, [McCaskill], runs a partition function over a
// simple canonical-pair energy model. It is not a competitor to a full
// thermodynamic engine; it exists so the probability-annotated renderer
// works out of the box and stays testable with small sequences.
package fold

import (
	"strings"

	"github.com/timoleistner/plotrna/pkg/errors"
)

// Folder computes base-pairing probabilities for a sequence.
// Implementations must reject sequences they cannot fold with a FOLD_ERROR.
type Folder interface {
	PairProbabilities(sequence string) (*Result, error)
}

// Result holds the pairing probabilities for one sequence.
type Result struct {
	// N is the sequence length.
	N int
	// Pair[i][j] is the probability that bases i and j (1-based, i < j)
	// form a pair. Entries with j <= i are zero.
	Pair [][]float64
}

// BaseProbabilities returns, per base, the probability that the base is
// paired with any partner. Values are clamped to [0,1] against floating
// point drift so they can feed the color mapper directly.
func (r *Result) BaseProbabilities() []float64 {
	probs := make([]float64, r.N)
	for i := 1; i <= r.N; i++ {
		var p float64
		for j := 1; j <= r.N; j++ {
			if j > i {
				p += r.Pair[i][j]
			} else if j < i {
				p += r.Pair[j][i]
			}
		}
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
		probs[i-1] = p
	}
	return probs
}

// normalizeSequence uppercases the sequence and maps DNA T to U.
// Returns a FOLD_ERROR for an empty sequence or a non-nucleotide character.
func normalizeSequence(sequence string) (string, error) {
	if sequence == "" {
		return "", errors.New(errors.ErrCodeFold, "cannot fold an empty sequence")
	}
	s := strings.ToUpper(sequence)
	s = strings.ReplaceAll(s, "T", "U")
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'U', 'C', 'G':
		default:
			return "", errors.New(errors.ErrCodeFold,
				"invalid nucleotide %q at position %d", string(sequence[i]), i+1)
		}
	}
	return s, nil
}
