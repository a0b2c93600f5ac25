// Package sink encodes finished diagrams and writes them to disk. The
// write is single-shot: the whole artifact is encoded in memory first, so
// a failed render never leaves a truncated file behind.
package sink

import (
	"bytes"
	"image"
	"image/png"
	"os"

	"github.com/timoleistner/plotrna/pkg/errors"
)

// EncodePNG serializes an image to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// Write stores encoded bytes at path in one call. The path itself is
// validated long before rendering starts, so a failure here is an IO
// problem, not bad input.
func Write(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
