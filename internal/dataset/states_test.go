package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateName(t *testing.T) {
	assert.Equal(t, "California", StateName("CA"))
	assert.Equal(t, "District of Columbia", StateName("DC"))
	assert.Equal(t, "Puerto Rico", StateName("PR"))

	// Unknown codes fall back to the code itself.
	assert.Equal(t, "ZZ", StateName("ZZ"))
	assert.Equal(t, "", StateName(""))
}

func TestLoadStateNames(t *testing.T) {
	t.Run("overlays embedded table", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "states.yaml")
		require.NoError(t, os.WriteFile(path, []byte("XX: Test Territory\n"), 0o644))

		require.NoError(t, LoadStateNames(path))
		assert.Equal(t, "Test Territory", StateName("XX"))
		assert.Equal(t, "California", StateName("CA"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := LoadStateNames(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read state names")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

		err := LoadStateNames(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse state names")
	})
}
