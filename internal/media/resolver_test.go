package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestResolveImageMirrorsRelativePath(t *testing.T) {
	sidecars := t.TempDir()
	images := t.TempDir()

	side := filepath.Join(sidecars, "2020", "a.yml")
	touch(t, side)
	touch(t, filepath.Join(images, "2020", "a.jpg"))

	got, err := ResolveImage(sidecars, images, side)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(images, "2020", "a.jpg"), got)
}

func TestResolveImageFirstMatchInPriorityOrder(t *testing.T) {
	sidecars := t.TempDir()
	images := t.TempDir()

	side := filepath.Join(sidecars, "a.yml")
	touch(t, side)
	touch(t, filepath.Join(images, "a.jpg"))
	touch(t, filepath.Join(images, "a.jpeg"))
	touch(t, filepath.Join(images, "a.png"))

	// .jpeg wins over .jpg and .png even though all exist.
	got, err := ResolveImage(sidecars, images, side)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(images, "a.jpeg"), got)
}

func TestResolveImageNotFound(t *testing.T) {
	sidecars := t.TempDir()
	images := t.TempDir()

	side := filepath.Join(sidecars, "2020", "a.yml")
	touch(t, side)
	touch(t, filepath.Join(images, "2020", "a.gif"))

	_, err := ResolveImage(sidecars, images, side)
	require.ErrorIs(t, err, ErrImageNotFound)
}

func TestResolveImageStripsYamlExtensionToo(t *testing.T) {
	sidecars := t.TempDir()
	images := t.TempDir()

	side := filepath.Join(sidecars, "b.yaml")
	touch(t, side)
	touch(t, filepath.Join(images, "b.heic"))

	got, err := ResolveImage(sidecars, images, side)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(images, "b.heic"), got)
}
