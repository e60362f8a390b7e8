package main

import (
	"context"
	"flag"
	"os"

	"github.com/praxislab/lectern/internal/batch"
	"github.com/praxislab/lectern/pkg/logger"
)

func main() {
	var (
		transcript = flag.String("transcript", "", "Path to transcript.json (required)")
		segments   = flag.String("segments", "", "Path to segments.json (optional)")
		output     = flag.String("output", "", "Path to output metrics file (required for json format)")
		format     = flag.String("format", "json", "Output format: json or summary")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		batch.ShowHelp()
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("Failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	config := &batch.Config{
		TranscriptFile: *transcript,
		SegmentsFile:   *segments,
		OutputFile:     *output,
		Format:         *format,
		Verbose:        *verbose,
	}

	if err := batch.Run(context.Background(), config); err != nil {
		os.Stderr.WriteString("Analysis failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
