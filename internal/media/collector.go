package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// sidecarExt lists the extensions treated as metadata sidecars.
var sidecarExt = map[string]bool{
	".yml":  true,
	".yaml": true,
}

// IsSidecar reports whether the provided path has a sidecar extension.
func IsSidecar(path string) bool {
	return sidecarExt[strings.ToLower(filepath.Ext(path))]
}

// CollectSidecars walks root recursively and returns every sidecar file in
// walk order.
func CollectSidecars(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	var results []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && IsSidecar(path) {
			results = append(results, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return results, nil
}
