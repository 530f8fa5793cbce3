// pkg/classify/rules.go
package classify

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// rules holds the lowercased predicates applied to each file entry
type rules struct {
	primary   []string
	script    []string
	suspExts  []string
	suspNames []string
	suspGlobs []string
}

func newRules(opts *Options) *rules {
	return &rules{
		primary:   opts.PrimaryExtensions,
		script:    opts.ScriptExtensions,
		suspExts:  opts.SuspiciousExtensions,
		suspNames: opts.SuspiciousNames,
		suspGlobs: opts.SuspiciousGlobs,
	}
}

// isPrimary and isScript test the lowercase name; the suspicious test is independent of both.
func (r *rules) isPrimary(lower string) bool {
	return hasAnySuffix(lower, r.primary)
}

func (r *rules) isScript(lower string) bool {
	return hasAnySuffix(lower, r.script)
}

func (r *rules) isSuspicious(lower string) bool {
	if hasAnySuffix(lower, r.suspExts) {
		return true
	}
	for _, fragment := range r.suspNames {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	for _, pattern := range r.suspGlobs {
		if ok, _ := doublestar.Match(pattern, lower); ok {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
