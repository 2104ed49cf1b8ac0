package processor

// Result represents the outcome of processing a single file.
type Result struct {
	// Input file path
	Input string

	// Output file path
	Output string

	// Lines is the number of lines sealed or opened
	Lines int

	// Output file size in bytes
	OutputSize int64

	// Any error that occurred during processing
	Error error
}

// Summary aggregates the results of a run.
type Summary struct {
	Processed int
	Errored   int
	Lines     int
	TotalSize int64
}
