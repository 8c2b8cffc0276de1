package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledIdentifiers(t *testing.T) {
	ids := BundledIdentifiers()
	assert.ElementsMatch(t, []string{"c", "c++", "go", "html", "java", "php", "python", "rust"}, ids)
}

func TestInstallBundled(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "templates")
	require.NoError(t, InstallBundled(dir))

	store := NewStore(dir)
	listed, err := store.List("")
	require.NoError(t, err)
	assert.ElementsMatch(t, BundledIdentifiers(), listed)

	for _, id := range listed {
		record, err := store.Load(id)
		require.NoError(t, err, "bundled template %s", id)
		assert.NotEmpty(t, record.Structure.Files, "bundled template %s has no files", id)
		assert.NotEmpty(t, record.StartCommand, "bundled template %s has no start command", id)
	}
}

func TestInstallBundled_Overwrites(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.yaml"), []byte("garbage: ["), 0644))

	require.NoError(t, InstallBundled(dir))

	_, err := NewStore(dir).Load("go")
	assert.NoError(t, err)
}
