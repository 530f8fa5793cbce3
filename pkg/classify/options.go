// pkg/classify/options.go
package classify

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

var (
	// DefaultPrimaryExtensions mark legitimate mod content
	DefaultPrimaryExtensions = []string{".package"}

	// DefaultScriptExtensions mark script mods
	DefaultScriptExtensions = []string{".ts4script"}

	// DefaultSuspiciousExtensions mark shortcuts and web pages shipped as decoys
	DefaultSuspiciousExtensions = []string{".url", ".lnk", ".html", ".htm", ".webloc"}

	// DefaultSuspiciousNames are name fragments typical of promotional filler
	DefaultSuspiciousNames = []string{"readme", "patreon", "support", "donate", "link", "discord"}
)

// Options configures the classification
type Options struct {
	// Input archive path
	InputPath string

	// Extensions (with leading dot) of primary payload files
	// Default: DefaultPrimaryExtensions
	PrimaryExtensions []string

	// Extensions of script payload files
	// Default: DefaultScriptExtensions
	ScriptExtensions []string

	// Extensions flagging an entry as suspicious
	// Default: DefaultSuspiciousExtensions
	SuspiciousExtensions []string

	// Substrings of the entry name flagging it as suspicious
	// Default: DefaultSuspiciousNames
	SuspiciousNames []string

	// Extra doublestar patterns (e.g. "**/*.exe") flagging an entry as suspicious
	SuspiciousGlobs []string

	// Logger receives diagnostics (optional)
	Logger *zap.Logger
}

// DefaultOptions returns options with sensible defaults
func DefaultOptions() *Options {
	return &Options{
		PrimaryExtensions:    DefaultPrimaryExtensions,
		ScriptExtensions:     DefaultScriptExtensions,
		SuspiciousExtensions: DefaultSuspiciousExtensions,
		SuspiciousNames:      DefaultSuspiciousNames,
	}
}

// Validate checks if options are valid.
// Nil lists get their defaults; every pattern is lowercased.
func (o *Options) Validate() error {
	if o.InputPath == "" {
		return ErrInputRequired
	}
	if o.PrimaryExtensions == nil {
		o.PrimaryExtensions = DefaultPrimaryExtensions
	}
	if o.ScriptExtensions == nil {
		o.ScriptExtensions = DefaultScriptExtensions
	}
	if o.SuspiciousExtensions == nil {
		o.SuspiciousExtensions = DefaultSuspiciousExtensions
	}
	if o.SuspiciousNames == nil {
		o.SuspiciousNames = DefaultSuspiciousNames
	}

	o.PrimaryExtensions = lowerAll(o.PrimaryExtensions)
	o.ScriptExtensions = lowerAll(o.ScriptExtensions)
	o.SuspiciousExtensions = lowerAll(o.SuspiciousExtensions)
	o.SuspiciousNames = lowerAll(o.SuspiciousNames)
	o.SuspiciousGlobs = lowerAll(o.SuspiciousGlobs)

	for _, pattern := range o.SuspiciousGlobs {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
		}
	}

	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return nil
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}
