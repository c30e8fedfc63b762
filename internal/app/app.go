package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nir0k/SidecarSync/internal/exiftool"
	"github.com/nir0k/SidecarSync/internal/media"
	"github.com/nir0k/SidecarSync/internal/sidecar"
	"github.com/nir0k/logger"
)

// Per-file terminal statuses.
const (
	StatusEmbedded    = "embedded"
	StatusNoImage     = "no_image"
	StatusDecodeError = "decode_error"
	StatusTimeout     = "timeout"
	StatusFailed      = "failed"
)

// FileResult is the outcome of one sidecar unit of work.
type FileResult struct {
	Sidecar string
	Image   string
	Status  string
	Message string
	Camera  string
	Issues  []exiftool.FieldIssue
}

// Summary aggregates per-file outcomes of one run.
type Summary struct {
	Total       int
	Embedded    int
	NoImage     int
	DecodeError int
	Failed      int
	FieldIssues int
	Results     []FileResult
}

// Run is the main entry point for the CLI workflow. It verifies the external
// tool, enumerates sidecars and pushes each one through a bounded worker pool
// where it is independently resolved, decoded and embedded. One file's
// failure never aborts the batch; the only fatal conditions are unusable
// roots and a missing tool.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cfg := logger.LogConfig{
		FilePath:       opts.LogFile,
		Format:         "standard",
		FileLevel:      opts.LogLevel,
		ConsoleLevel:   "fatal",
		ConsoleOutput:  false,
		EnableRotation: true,
		RotationConfig: logger.RotationConfig{
			MaxSize:    25,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		},
	}
	logInstance, err := logger.NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	infof := logInstance.Infof
	warnf := logInstance.Warningf
	errorf := logInstance.Errorf

	infof("Starting SidecarSync with images=%s sidecars=%s workers=%d timeout=%s tool=%s",
		opts.ImageRoot, opts.SidecarRoot, opts.Workers, opts.Timeout, opts.ExifTool)

	embedder, err := exiftool.NewEmbedder(opts.ExifTool, opts.Timeout)
	if err != nil {
		return nil, err
	}
	infof("Using exiftool at %s", embedder.Bin)

	paths, err := media.CollectSidecars(opts.SidecarRoot)
	if err != nil {
		return nil, err
	}
	// An empty tree is a valid no-op run, not a failure.
	if len(paths) == 0 {
		warnf("No sidecar files found under %s", opts.SidecarRoot)
	} else {
		infof("Found %d sidecar files under %s", len(paths), opts.SidecarRoot)
	}

	jobs := make(chan string)
	results := make(chan FileResult)

	var wg sync.WaitGroup
	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- processSidecar(ctx, opts, embedder, path)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range paths {
			select {
			case <-ctx.Done():
				return
			case jobs <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	summary := &Summary{Total: len(paths)}
	for res := range results {
		summary.Results = append(summary.Results, res)
		summary.FieldIssues += len(res.Issues)
		for _, issue := range res.Issues {
			warnf("Skipped field %s=%q from %s: %s", issue.Key, issue.Value, res.Sidecar, issue.Reason)
		}

		switch res.Status {
		case StatusEmbedded:
			summary.Embedded++
			if res.Camera != "" {
				infof("Embedded %s -> %s (%s)", res.Sidecar, res.Image, res.Camera)
			} else {
				infof("Embedded %s -> %s", res.Sidecar, res.Image)
			}
		case StatusNoImage:
			summary.NoImage++
			warnf("No matching image for %s", res.Sidecar)
		case StatusDecodeError:
			summary.DecodeError++
			warnf("Failed to decode %s: %s", res.Sidecar, res.Message)
		case StatusTimeout:
			summary.Failed++
			errorf("Embedding timed out for %s -> %s: %s", res.Sidecar, res.Image, res.Message)
		default:
			summary.Failed++
			errorf("Embedding failed for %s -> %s: %s", res.Sidecar, res.Image, res.Message)
		}
	}

	line := fmt.Sprintf("Finished. embedded=%d no_image=%d decode_errors=%d failed=%d field_issues=%d",
		summary.Embedded, summary.NoImage, summary.DecodeError, summary.Failed, summary.FieldIssues)
	if opts.PrintSummary {
		fmt.Println(line)
	}
	infof("%s", line)
	return summary, nil
}

// resolveImage is swappable in tests.
var resolveImage = media.ResolveImage

// processSidecar runs one full unit of work: resolve the image, decode the
// sidecar, embed. A panic anywhere inside the unit is contained here so it
// cannot take sibling units down with it.
func processSidecar(ctx context.Context, opts Options, embedder *exiftool.Embedder, path string) (res FileResult) {
	res = FileResult{Sidecar: path}
	defer func() {
		if rec := recover(); rec != nil {
			res.Status = StatusFailed
			res.Message = fmt.Sprintf("panic: %v", rec)
		}
	}()

	image, err := resolveImage(opts.SidecarRoot, opts.ImageRoot, path)
	if err != nil {
		if errors.Is(err, media.ErrImageNotFound) {
			res.Status = StatusNoImage
		} else {
			res.Status = StatusFailed
			res.Message = err.Error()
		}
		return res
	}
	res.Image = image

	rec, err := sidecar.DecodeFile(path)
	if err != nil {
		res.Status = StatusDecodeError
		res.Message = err.Error()
		return res
	}

	out := embedder.Embed(ctx, image, rec)
	res.Issues = out.Issues
	switch out.Status {
	case exiftool.StatusOK:
		res.Status = StatusEmbedded
		// Camera details are log garnish only; unreadable EXIF is not an error.
		if info, err := media.ReadCameraInfo(image); err == nil {
			res.Camera = info.String()
		}
	case exiftool.StatusTimedOut:
		res.Status = StatusTimeout
		res.Message = out.Err.Error()
	default:
		res.Status = StatusFailed
		msg := out.Err.Error()
		if out.Stderr != "" {
			msg += ": " + out.Stderr
		}
		res.Message = msg
	}
	return res
}
