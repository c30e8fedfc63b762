package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectSidecarsRecursive(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.yml"))
	touch(t, filepath.Join(root, "2020", "b.yaml"))
	touch(t, filepath.Join(root, "2020", "trip", "c.YML"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "2020", "photo.jpg"))

	got, err := CollectSidecars(root)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		filepath.Join(root, "a.yml"),
		filepath.Join(root, "2020", "b.yaml"),
		filepath.Join(root, "2020", "trip", "c.YML"),
	}, got)
}

func TestCollectSidecarsRootMustBeDirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "a.yml")
	touch(t, file)

	_, err := CollectSidecars(file)
	require.Error(t, err)

	_, err = CollectSidecars(filepath.Join(root, "missing"))
	require.Error(t, err)
}

func TestIsSidecar(t *testing.T) {
	require.True(t, IsSidecar("x/y.yml"))
	require.True(t, IsSidecar("x/y.YAML"))
	require.False(t, IsSidecar("x/y.jpg"))
	require.False(t, IsSidecar("x/yml"))
}

func TestReadCameraInfoRejectsGarbage(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "junk.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := ReadCameraInfo(path)
	require.Error(t, err)
}
