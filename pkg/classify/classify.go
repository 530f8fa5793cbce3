// pkg/classify/classify.go
package classify

import (
	"io"
	"strings"

	"github.com/creativeyann17/go-modkit/internal/format"
	"go.uber.org/zap"
)

// Classify scans the archive at opts.InputPath once, in order, and reports which
// kinds of content it holds. Nothing is written; file content is not decompressed.
//
// Directory entries count toward TotalEntryCount but are neither listed nor
// flagged. Fails only when the archive cannot be opened or is malformed.
func Classify(opts *Options) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.Logger.With(zap.String("archive", opts.InputPath))

	reader, err := format.Open(opts.InputPath)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	r := newRules(opts)
	report := &Report{
		EntryNames:        []string{},
		SuspiciousEntries: []string{},
	}

	for {
		entry, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		report.TotalEntryCount++
		if entry.Kind != format.KindFile {
			continue
		}

		report.EntryNames = append(report.EntryNames, entry.Name)
		lower := strings.ToLower(entry.Name)

		if r.isPrimary(lower) {
			report.HasPrimaryPayload = true
		}
		if r.isScript(lower) {
			report.HasScriptPayload = true
		}
		if r.isSuspicious(lower) {
			report.SuspiciousEntries = append(report.SuspiciousEntries, entry.Name)
		}
	}

	log.Debug("archive classified",
		zap.Stringer("format", reader.Format()),
		zap.Int("entries", report.TotalEntryCount),
		zap.Int("suspicious", len(report.SuspiciousEntries)),
		zap.Bool("likely_fake", report.LikelyFake()))
	return report, nil
}
