package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nir0k/SidecarSync/internal/app"
	"github.com/spf13/pflag"
)

func main() {
	var opts app.Options

	pflag.StringVarP(&opts.ImageRoot, "images", "i", "Images", "Root directory of the image tree")
	pflag.StringVarP(&opts.SidecarRoot, "sidecars", "s", "Sidecar", "Root directory of the metadata sidecar tree")
	pflag.IntVarP(&opts.Workers, "workers", "w", 0, "Worker pool size (0 = twice the number of CPUs)")
	pflag.DurationVar(&opts.Timeout, "timeout", 120*time.Second, "Timeout for a single exiftool invocation")
	pflag.StringVar(&opts.ExifTool, "exiftool", "exiftool", "Name or path of the exiftool binary")
	pflag.StringVarP(&opts.LogLevel, "log-level", "l", "info", "Logging level for file output")
	pflag.StringVar(&opts.LogFile, "log-file", "", "Optional log file path (defaults to a file next to the binary)")

	pflag.Parse()

	opts.PrintSummary = true

	ctx := context.Background()
	if _, err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "sidecarsync failed: %v\n", err)
		os.Exit(1)
	}
}
