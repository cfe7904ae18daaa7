package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "api.ts")

	require.NoError(t, WriteFileAtomic(path, []byte("first"), ReadableByAll))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, ReadableByAll, info.Mode().Perm())

	require.NoError(t, WriteFileAtomic(path, []byte("second"), ReadableByAll))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestWriteFileAtomic_DirectoryIsAFile(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, nil, ReadableByAll))

	err := WriteFileAtomic(filepath.Join(parent, "api.ts"), []byte("x"), ReadableByAll)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create directory")
}
