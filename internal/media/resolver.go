package media

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrImageNotFound is returned when no candidate image exists for a sidecar.
var ErrImageNotFound = errors.New("no matching image")

// candidateExt is the fixed probe order. The first existing candidate wins;
// if several exist, the earlier extension takes priority.
var candidateExt = []string{".jpeg", ".jpg", ".png", ".heic", ".tiff"}

// ResolveImage maps a sidecar path under sidecarRoot to its image under
// imageRoot: same relative path, sidecar extension stripped, candidate
// extensions probed in priority order.
func ResolveImage(sidecarRoot, imageRoot, sidecarPath string) (string, error) {
	rel, err := filepath.Rel(sidecarRoot, sidecarPath)
	if err != nil {
		return "", fmt.Errorf("relativize %s: %w", sidecarPath, err)
	}

	stem := strings.TrimSuffix(rel, filepath.Ext(rel))
	base := filepath.Join(imageRoot, stem)
	for _, ext := range candidateExt {
		candidate := base + ext
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w for %s", ErrImageNotFound, sidecarPath)
}
