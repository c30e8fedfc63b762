package app

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/nir0k/SidecarSync/internal/exiftool"
)

// Options represents user-provided CLI parameters.
type Options struct {
	ImageRoot    string
	SidecarRoot  string
	Workers      int
	Timeout      time.Duration
	ExifTool     string
	LogLevel     string
	LogFile      string
	PrintSummary bool
}

// Validate performs basic validation and assigns defaults where needed.
func (o *Options) Validate() error {
	o.ImageRoot = strings.TrimSpace(o.ImageRoot)
	o.SidecarRoot = strings.TrimSpace(o.SidecarRoot)
	o.ExifTool = strings.TrimSpace(o.ExifTool)
	o.LogLevel = strings.TrimSpace(o.LogLevel)
	o.LogFile = strings.TrimSpace(o.LogFile)

	if o.ImageRoot == "" {
		return fmt.Errorf("image root is required")
	}
	if o.SidecarRoot == "" {
		return fmt.Errorf("sidecar root is required")
	}
	for _, root := range []string{o.ImageRoot, o.SidecarRoot} {
		info, err := os.Stat(root)
		if err != nil {
			return fmt.Errorf("stat %s: %w", root, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%s is not a directory", root)
		}
	}
	if o.Workers <= 0 {
		o.Workers = 2 * runtime.NumCPU()
	}
	if o.Timeout <= 0 {
		o.Timeout = exiftool.DefaultTimeout
	}
	if o.ExifTool == "" {
		o.ExifTool = "exiftool"
	}
	if o.LogLevel == "" {
		o.LogLevel = "info"
	}
	if o.LogFile == "" {
		defaultPath, err := defaultLogPath()
		if err != nil {
			return err
		}
		o.LogFile = defaultPath
	}
	return nil
}

func defaultLogPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	dir := filepath.Dir(exe)
	// When running via `go run`, executable resides in temp; prefer current working dir then.
	if strings.HasPrefix(dir, os.TempDir()) {
		cwd, err := os.Getwd()
		if err == nil {
			dir = cwd
		}
	}
	return filepath.Join(dir, "sidecarsync.log"), nil
}
