package media

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/evanoberholster/imagemeta"
	"github.com/evanoberholster/imagemeta/exif2"
)

// CameraInfo is the subset of image metadata surfaced in log lines.
type CameraInfo struct {
	Make  string
	Model string
}

func (c CameraInfo) String() string {
	switch {
	case c.Make == "" && c.Model == "":
		return ""
	case c.Make == "":
		return c.Model
	case c.Model == "":
		return c.Make
	}
	return c.Make + " " + c.Model
}

// ReadCameraInfo extracts camera make and model from an image file.
func ReadCameraInfo(path string) (CameraInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return CameraInfo{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	exif, err := decodeExifSafe(file, path)
	if err != nil {
		return CameraInfo{}, fmt.Errorf("decode metadata: %w", err)
	}

	return CameraInfo{
		Make:  strings.TrimSpace(exif.Make),
		Model: strings.TrimSpace(exif.Model),
	}, nil
}

// decodeExifSafe protects against panics from the decoder on malformed files.
func decodeExifSafe(r io.ReadSeeker, path string) (ex exif2.Exif, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic while decoding %s: %v", path, rec)
		}
	}()

	ex, err = imagemeta.Decode(r)
	return ex, err
}
