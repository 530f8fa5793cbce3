// pkg/extract/options.go
package extract

import (
	"runtime"

	"go.uber.org/zap"
)

// Options configures the extraction behavior
type Options struct {
	// Input archive path
	InputPath string

	// Output directory path, created if missing.
	// Files already present at computed target paths are overwritten.
	OutputPath string

	// Maximum number of concurrent writers
	// Default: runtime.NumCPU()
	MaxThreads int

	// Upper bound on payload bytes buffered before writing starts
	// Default: 0 (unlimited)
	MaxMemory uint64

	// Verbose enables detailed logging
	Verbose bool

	// Quiet suppresses all output except errors
	Quiet bool

	// Logger receives diagnostics (optional)
	Logger *zap.Logger
}

// DefaultOptions returns options with sensible defaults
func DefaultOptions() *Options {
	return &Options{
		OutputPath: ".",
		MaxThreads: runtime.NumCPU(),
	}
}

// Validate checks if options are valid
func (o *Options) Validate() error {
	if o.InputPath == "" {
		return ErrInputRequired
	}
	if o.OutputPath == "" {
		o.OutputPath = "."
	}
	if o.MaxThreads <= 0 {
		o.MaxThreads = runtime.NumCPU()
	}
	if o.Quiet {
		o.Verbose = false
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return nil
}
