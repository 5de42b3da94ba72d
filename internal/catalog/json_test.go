package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_ValidCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ship_data.json")
	data := `{
		"destroyers": {
			"shimakaze": {"max_speed": 39.0, "acceleration": 2.2, "shell_velocity": 850}
		},
		"cruisers": {
			"mogami": {"max_speed": 35.0, "acceleration": 1.9, "shell_velocity": 920}
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	c := LoadFile(path, testLogger())
	assert.Equal(t, 2, c.Len())

	r := c.Resolve("cruiser", "mogami")
	assert.Equal(t, BranchCatalog, r.Branch)
	assert.Equal(t, 920.0, r.Params.ShellVelocity)
}

func TestLoadFile_MissingFileDegrades(t *testing.T) {
	c := LoadFile(filepath.Join(t.TempDir(), "nope.json"), testLogger())
	require.NotNil(t, c)
	assert.Zero(t, c.Len())

	// All lookups hit the fallback chain.
	assert.Equal(t, BranchClassDefault, c.Resolve("cruiser", "mogami").Branch)
}

func TestLoadFile_MalformedFileDegrades(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ship_data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"destroyers": [1,2,3]`), 0644))

	c := LoadFile(path, testLogger())
	require.NotNil(t, c)
	assert.Zero(t, c.Len())
}
