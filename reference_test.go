package minimizersa

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReferenceDiscardsHeaderAndConcatenates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ref.fa")
	content := ">chr1 test reference\nACGT\nACGT\nAC\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r, err := LoadReference(path)
	require.NoError(t, err)
	assert.Equal(t, "ACGTACGTAC", r)
}

func TestLoadReferenceMissingFile(t *testing.T) {
	_, err := LoadReference(filepath.Join(t.TempDir(), "missing.fa"))
	assert.Error(t, err)
}

func TestLoadReferenceEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.fa")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	r, err := LoadReference(path)
	require.NoError(t, err)
	assert.Equal(t, "", r)
}
