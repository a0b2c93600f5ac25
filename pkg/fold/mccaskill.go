package fold

import "math"

// McCaskill is the built-in folding engine: a partition function over a
// canonical-pair energy model (GC, AU and GU wobble pairs, minimum hairpin
// loop of 3 unpaired bases). The inside recursion follows Nussinov-style
// decomposition; pair probabilities come from the matching outside pass.
type McCaskill struct {
	// RT is the thermal energy in kcal/mol. The zero value uses 37C.
	RT float64
}

// Energy contributions per closing pair, kcal/mol.
const (
	energyGC = -3.0
	energyAU = -2.0
	energyGU = -1.0

	// minLoop is the minimum number of unpaired bases in a hairpin loop.
	minLoop = 3

	// rt37 is RT at 37C.
	rt37 = 0.6163
)

// pairEnergy returns the stabilizing energy of pairing bases a and b,
// or 0 with ok=false when the two bases cannot pair.
func pairEnergy(a, b byte) (float64, bool) {
	switch {
	case (a == 'G' && b == 'C') || (a == 'C' && b == 'G'):
		return energyGC, true
	case (a == 'A' && b == 'U') || (a == 'U' && b == 'A'):
		return energyAU, true
	case (a == 'G' && b == 'U') || (a == 'U' && b == 'G'):
		return energyGU, true
	}
	return 0, false
}

// PairProbabilities implements [Folder].
func (m McCaskill) PairProbabilities(sequence string) (*Result, error) {
	seq, err := normalizeSequence(sequence)
	if err != nil {
		return nil, err
	}

	rt := m.RT
	if rt == 0 {
		rt = rt37
	}

	n := len(seq)

	// Boltzmann weight of pairing positions i and j, zero if unpairable
	// or the hairpin loop would be too short.
	weight := func(i, j int) float64 {
		if j-i <= minLoop {
			return 0
		}
		e, ok := pairEnergy(seq[i-1], seq[j-1])
		if !ok {
			return 0
		}
		return math.Exp(-e / rt)
	}

	// Inside pass.
	//
	//   z[i][j]  = partition function of subsequence i..j
	//   zb[i][j] = partition function of i..j given that i pairs j
	//
	// z[i][j] = z[i][j-1] + sum_k z[i][k-1] * zb[k][j]
	// zb[i][j] = weight(i,j) * z[i+1][j-1]
	//
	// Index 0 rows/columns act as the empty subsequence with z = 1.
	z := newMatrix(n + 2)
	zb := newMatrix(n + 2)
	for i := 0; i <= n+1; i++ {
		for j := 0; j <= n+1; j++ {
			if j < i {
				z[i][j] = 1 // empty span
			}
		}
	}
	for i := 1; i <= n; i++ {
		z[i][i] = 1
	}

	for span := 2; span <= n; span++ {
		for i := 1; i+span-1 <= n; i++ {
			j := i + span - 1
			if w := weight(i, j); w > 0 {
				zb[i][j] = w * z[i+1][j-1]
			}
			sum := z[i][j-1]
			for k := i; k <= j-minLoop-1; k++ {
				if zb[k][j] == 0 {
					continue
				}
				sum += z[i][k-1] * zb[k][j]
			}
			z[i][j] = sum
		}
	}

	total := z[1][n]

	// Outside pass, largest spans first. A pair (i,j) is either exterior
	// or enclosed by some pair (h,l); in the enclosed case the factor
	// z[h+1][l-1] cancels out of zb[h][l].
	p := newMatrix(n + 2)
	for span := n; span >= minLoop+2; span-- {
		for i := 1; i+span-1 <= n; i++ {
			j := i + span - 1
			if zb[i][j] == 0 {
				continue
			}
			prob := zb[i][j] * z[1][i-1] * z[j+1][n] / total
			for h := 1; h < i; h++ {
				for l := j + 1; l <= n; l++ {
					if p[h][l] == 0 || z[h+1][l-1] == 0 {
						continue
					}
					prob += p[h][l] * z[h+1][i-1] * zb[i][j] * z[j+1][l-1] / z[h+1][l-1]
				}
			}
			p[i][j] = prob
		}
	}

	// Trim the working margins down to the documented n+1 square shape.
	pair := make([][]float64, n+1)
	for i := 0; i <= n; i++ {
		pair[i] = make([]float64, n+1)
		if i >= 1 {
			copy(pair[i], p[i][:n+1])
		}
	}

	return &Result{N: n, Pair: pair}, nil
}

func newMatrix(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}
