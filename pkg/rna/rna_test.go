package rna

import (
	"sort"
	"testing"

	"github.com/timoleistner/plotrna/pkg/errors"
)

func sortPairs(p PairList) {
	sort.Slice(p, func(a, b int) bool { return p[a].I < p[b].I })
}

func TestParsePairs(t *testing.T) {
	tests := []struct {
		name      string
		structure string
		want      PairList
	}{
		{
			name:      "hairpin",
			structure: "(((...)))",
			want:      PairList{{1, 9}, {2, 8}, {3, 7}},
		},
		{
			name:      "unpaired only",
			structure: "....",
			want:      nil,
		},
		{
			name:      "single pair",
			structure: "(.)",
			want:      PairList{{1, 3}},
		},
		{
			name:      "pseudoknot brackets",
			structure: "((..[[..))..]]",
			want:      PairList{{1, 10}, {2, 9}, {5, 14}, {6, 13}},
		},
		{
			name:      "multiloop",
			structure: "((..)(..))",
			want:      PairList{{1, 10}, {2, 5}, {6, 9}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePairs(tt.structure)
			if err != nil {
				t.Fatalf("ParsePairs(%q) error: %v", tt.structure, err)
			}
			sortPairs(got)
			sortPairs(tt.want)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d pairs, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("pair %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParsePairsErrors(t *testing.T) {
	tests := []struct {
		name      string
		structure string
	}{
		{"empty", ""},
		{"unmatched open", "((."},
		{"unmatched close", ".))"},
		{"unknown token", "(.x.)"},
		{"mismatched knot close", "([.)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePairs(tt.structure)
			if !errors.Is(err, errors.ErrCodeStructure) {
				t.Errorf("ParsePairs(%q) = %v, want STRUCTURE_ERROR", tt.structure, err)
			}
		})
	}
}

func TestParsePairsEachPositionOnce(t *testing.T) {
	pairs, err := ParsePairs("((((....))))")
	if err != nil {
		t.Fatal(err)
	}
	seen := map[int]bool{}
	for _, p := range pairs {
		if p.I >= p.J {
			t.Errorf("pair %v not ordered", p)
		}
		for _, idx := range []int{p.I, p.J} {
			if seen[idx] {
				t.Errorf("position %d paired twice", idx)
			}
			seen[idx] = true
		}
	}
}

func TestLabels(t *testing.T) {
	labels := Labels("(((...)))", "GGGAAACCC")
	if len(labels) != 9 {
		t.Fatalf("len = %d, want 9", len(labels))
	}
	if labels[0] != "G" || labels[8] != "C" {
		t.Errorf("labels = %v", labels)
	}

	blank := Labels("....", "")
	for i, l := range blank {
		if l != "" {
			t.Errorf("blank label %d = %q", i, l)
		}
	}
}
