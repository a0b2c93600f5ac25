// Package rna provides the secondary structure data model shared by the
// rendering pipeline: dot-bracket structures, sequences, and base-pair lists.
//
// The pairing extractor here plays the role of an external collaborator for
// the renderer: the drawing code never inspects bracket syntax itself, it
// only consumes the PairList produced by [ParsePairs]. Malformed structures
// surface as STRUCTURE_ERROR and propagate unchanged through the pipeline.
package rna

import (
	"github.com/timoleistner/plotrna/pkg/errors"
)

// Pair is an unordered base pair between two 1-based nucleotide positions.
// Invariant: 1 <= I < J <= n.
type Pair struct {
	I, J int
}

// PairList is the set of base pairs extracted from a structure. Each
// position appears in at most one pair.
type PairList []Pair

// bracketPairs maps every supported opening token to its closing token.
// Round brackets encode the nested backbone structure; the square, curly
// and angle variants encode pseudoknotted pairs, each tracked on its own
// stack so knots do not have to nest with respect to each other.
var bracketPairs = map[byte]byte{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

var closingBrackets = map[byte]byte{
	')': '(',
	']': '[',
	'}': '{',
	'>': '<',
}

// ParsePairs extracts the base-pair list from a dot-bracket structure.
// Unpaired positions are '.', paired positions use matching bracket tokens
// ('()' plus the pseudoknot variants '[]', '{}', '<>').
//
// Returns a STRUCTURE_ERROR for an empty structure, an unknown token, or
// unbalanced brackets.
func ParsePairs(structure string) (PairList, error) {
	if structure == "" {
		return nil, errors.New(errors.ErrCodeStructure, "structure is empty")
	}

	stacks := make(map[byte][]int, len(bracketPairs))
	var pairs PairList

	for i := 0; i < len(structure); i++ {
		c := structure[i]
		switch {
		case c == '.':
			// unpaired
		case bracketPairs[c] != 0:
			stacks[c] = append(stacks[c], i+1)
		case closingBrackets[c] != 0:
			open := closingBrackets[c]
			stack := stacks[open]
			if len(stack) == 0 {
				return nil, errors.New(errors.ErrCodeStructure,
					"unbalanced %q at position %d", string(c), i+1)
			}
			j := stack[len(stack)-1]
			stacks[open] = stack[:len(stack)-1]
			pairs = append(pairs, Pair{I: j, J: i + 1})
		default:
			return nil, errors.New(errors.ErrCodeStructure,
				"unknown structure token %q at position %d", string(c), i+1)
		}
	}

	for open, stack := range stacks {
		if len(stack) > 0 {
			return nil, errors.New(errors.ErrCodeStructure,
				"unmatched %q opened at position %d", string(open), stack[len(stack)-1])
		}
	}

	return pairs, nil
}

// Labels returns the per-nucleotide label characters for a render: the
// sequence characters when a sequence is given, blank placeholders
// otherwise. The caller validates the length match beforehand.
func Labels(structure, sequence string) []string {
	labels := make([]string, len(structure))
	for i := range labels {
		if sequence != "" {
			labels[i] = string(sequence[i])
		} else {
			labels[i] = ""
		}
	}
	return labels
}
