package batch

import "os"

// ShowHelp prints usage information for the analyze tool.
func ShowHelp() {
	os.Stdout.WriteString(`Lectern Transcript Analyzer
===========================

Analyzes a lecture transcript offline and writes a full metrics report
with actionable teaching insights.

Usage:
  go run cmd/analyze/main.go [options]

Options:
  -transcript string
        Path to transcript.json (required)
  -segments string
        Path to segments.json (optional; transcript is segmented when omitted)
  -output string
        Path to the output metrics file (required for json format)
  -format string
        Output format: json or summary (default "json")
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Full JSON report
  go run cmd/analyze/main.go -transcript transcript.json -output report.json

  # Console summary with precomputed segments
  go run cmd/analyze/main.go -transcript transcript.json -segments segments.json -format summary
`)
}
