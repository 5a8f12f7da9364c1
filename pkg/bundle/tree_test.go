package bundle

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriteTree(t *testing.T) {
	fsys := newTestFs(t, map[string]string{
		"src/a.txt":     "hello",
		"src/sub/b.txt": "world\n",
		"src/zed.txt":   "last",
	})

	require.NoError(t, WriteTree(fsys, "src", "tree.txt", zap.NewNop()))

	data, err := afero.ReadFile(fsys, "tree.txt")
	require.NoError(t, err)
	assert.Equal(t, "src/\n  sub/\n    b.txt\n  a.txt\n  zed.txt\n", string(data))
}

func TestWriteTreeMissingRoot(t *testing.T) {
	fsys := afero.NewMemMapFs()

	err := WriteTree(fsys, "gone", "tree.txt", nil)
	require.Error(t, err)

	exists, statErr := afero.Exists(fsys, "tree.txt")
	require.NoError(t, statErr)
	assert.False(t, exists)
}
