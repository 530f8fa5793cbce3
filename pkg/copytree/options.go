// pkg/copytree/options.go
package copytree

import (
	"runtime"

	"go.uber.org/zap"
)

// Options configures the copy behavior
type Options struct {
	// Source directory to duplicate
	SourcePath string

	// Destination directory. Anything already there is deleted first.
	DestPath string

	// Maximum number of concurrent file copies
	// Default: runtime.NumCPU()
	MaxThreads int

	// UseGitignore skips paths matched by .gitignore files found in the source tree
	UseGitignore bool

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
		MaxThreads: runtime.NumCPU(),
	}
}

// Validate checks if options are valid
func (o *Options) Validate() error {
	if o.SourcePath == "" {
		return ErrSourceRequired
	}
	if o.DestPath == "" {
		return ErrDestRequired
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
