package exiftool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/nir0k/SidecarSync/internal/sidecar"
)

// DefaultTimeout bounds a single exiftool invocation.
const DefaultTimeout = 120 * time.Second

// Status classifies the outcome of one embed attempt.
type Status int

const (
	StatusOK Status = iota
	StatusToolFailed
	StatusTimedOut
	StatusInvokeFailed
)

// Result reports the terminal outcome of embedding one image's metadata.
type Result struct {
	Status Status
	Stderr string
	Err    error
	Issues []FieldIssue
}

// Embedder runs exiftool against single images.
type Embedder struct {
	Bin     string
	Timeout time.Duration
	Fields  map[string]string
}

// NewEmbedder resolves the exiftool binary up front so a missing tool fails
// the run before any work is dispatched.
func NewEmbedder(bin string, timeout time.Duration) (*Embedder, error) {
	if bin == "" {
		bin = "exiftool"
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("exiftool not found: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Embedder{Bin: path, Timeout: timeout, Fields: DefaultFieldMap}, nil
}

// Embed flattens rec, builds the argument list and invokes exiftool against
// imagePath with a bounded timeout. All failure modes are reported through
// the Result; nothing escapes as a panic and nothing is retried.
func (e *Embedder) Embed(ctx context.Context, imagePath string, rec sidecar.Record) Result {
	args, issues := BuildArgs(e.Fields, sidecar.Flatten(rec, "."))
	res := Result{Issues: issues}
	if len(args) == len(baseArgs) {
		// Every field was empty or skipped; exiftool would reject an
		// invocation with no assignments, so leave the image untouched.
		res.Status = StatusOK
		return res
	}
	args = append(args, imagePath)

	runCtx, cancel := context.WithTimeout(ctx, e.Timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, e.Bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	res.Stderr = strings.TrimSpace(stderr.String())
	switch {
	case err == nil:
		res.Status = StatusOK
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		res.Status = StatusTimedOut
		res.Err = fmt.Errorf("exiftool timed out after %s", e.Timeout)
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.Status = StatusToolFailed
			res.Err = fmt.Errorf("exiftool exited with code %d", exitErr.ExitCode())
		} else {
			res.Status = StatusInvokeFailed
			res.Err = fmt.Errorf("run exiftool: %w", err)
		}
	}
	return res
}
