package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValues(t *testing.T) {
	values, err := parseValues("0, 0.5,1")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, values)

	_, err = parseValues("0.5,high")
	assert.Error(t, err)
}

func TestReadBatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.txt")
	content := `# hairpins
(((...)))  GGGAAACCC

....
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	entries, err := readBatchFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "(((...)))", entries[0].structure)
	assert.Equal(t, "GGGAAACCC", entries[0].sequence)
	assert.Equal(t, "....", entries[1].structure)
	assert.Empty(t, entries[1].sequence)
}

func TestReadBatchFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("# only comments\n"), 0o644))

	_, err := readBatchFile(path)
	assert.Error(t, err)
}

func TestReadBatchFileMissing(t *testing.T) {
	_, err := readBatchFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
