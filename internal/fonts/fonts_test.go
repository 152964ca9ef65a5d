package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Inter", "Inter-Bold.ttf"))
	touch(t, filepath.Join(dir, "Mono.OTF"))
	touch(t, filepath.Join(dir, "README.md"))

	list, err := ScanDir(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Inter/Inter-Bold.ttf", "Mono.OTF"}, list)

	list, err = ScanDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFindPrefersRegular(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Roboto_Mono", "RobotoMono-Bold.ttf"))
	touch(t, filepath.Join(dir, "Roboto_Mono", "RobotoMono-Regular.ttf"))

	path, err := Find("Roboto Mono", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Roboto_Mono", "RobotoMono-Regular.ttf"), path)
}

func TestFindExistingPath(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "x.ttf")
	touch(t, p)

	path, err := Find(p, filepath.Join(dir, "nowhere"))
	require.NoError(t, err)
	assert.Equal(t, p, path)
}

func TestFindMissing(t *testing.T) {
	_, err := Find("Nope", t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = Find("  ")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
