package batch

// Config holds batch run configuration.
type Config struct {
	// TranscriptFile is the path to the transcript.json input.
	TranscriptFile string
	// SegmentsFile is the path to a segments.json input. When empty the
	// transcript is segmented before analysis.
	SegmentsFile string
	// OutputFile receives the JSON report. Required for the json format.
	OutputFile string
	// Format selects the output: "json" or "summary".
	Format string
	// Verbose enables debug logging.
	Verbose bool
}
