package errors

import (
	"path/filepath"
	"strings"
)

// ValidateSequence checks that an optional sequence matches the structure
// length. An empty sequence is always valid; callers substitute blank labels.
//
// Well-formedness of the structure string itself is deliberately not checked
// here; that is the pairing extractor's job and its errors propagate as
// STRUCTURE_ERROR.
func ValidateSequence(structure, sequence string) error {
	if sequence == "" {
		return nil
	}
	if len(sequence) != len(structure) {
		return New(ErrCodeInvalidLength,
			"sequence length %d does not match structure length %d",
			len(sequence), len(structure))
	}
	return nil
}

// ValidateValues checks a per-base value array against the structure length
// and the [0,1] range. A nil slice is valid and means "no color override".
func ValidateValues(structure string, values []float64) error {
	if values == nil {
		return nil
	}
	if len(values) != len(structure) {
		return New(ErrCodeInvalidLength,
			"value array length %d does not match structure length %d",
			len(values), len(structure))
	}
	for i, v := range values {
		if v < 0 || v > 1 {
			return New(ErrCodeInvalidValue,
				"value %g at position %d outside [0,1]", v, i+1)
		}
	}
	return nil
}

// ValidateSavePath checks that a destination path carries one of the allowed
// extensions (e.g. ".png", ".svg"). An empty path is valid and means
// "return the image in memory only". The check runs before any drawing so a
// bad destination never produces partial render work.
func ValidateSavePath(path string, allowed ...string) error {
	if path == "" {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, a := range allowed {
		if ext == a {
			return nil
		}
	}
	if ext == "" {
		return New(ErrCodeInvalidFormat,
			"save path %q has no extension (expected %s)", path, strings.Join(allowed, " or "))
	}
	return New(ErrCodeInvalidFormat,
		"unsupported save path extension %q (expected %s)", ext, strings.Join(allowed, " or "))
}
