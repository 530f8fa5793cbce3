// pkg/extract/extract.go
package extract

import (
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/creativeyann17/go-modkit/internal/format"
	"github.com/creativeyann17/go-modkit/pkg/modkit"
	"go.uber.org/zap"
)

// ProgressCallback is called for various progress events.
// It may be invoked concurrently from several writers.
type ProgressCallback func(event ProgressEvent)

// ProgressEvent contains progress information
type ProgressEvent struct {
	Type         EventType
	FilePath     string
	Current      int64
	Total        int64
	CurrentBytes uint64
	TotalBytes   uint64
}

// EventType indicates the type of progress event
type EventType int

const (
	EventStart EventType = iota
	EventFileStart
	EventFileProgress
	EventFileComplete
	EventComplete
	EventError
)

// plan is the outcome of the sequential metadata pass
type plan struct {
	dirs    []string
	records []Record
	skipped []string
	bytes   uint64
}

// Extract expands the archive at opts.InputPath into opts.OutputPath.
//
// The archive is drained sequentially into memory first, then the complete
// directory skeleton is created, then files are written in parallel. On failure
// the destination may be partially populated; the safe recovery is to delete it
// and extract again.
func Extract(opts *Options, progressCb ProgressCallback) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.Logger.With(zap.String("archive", opts.InputPath))

	reader, err := format.Open(opts.InputPath)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	p, err := collect(reader, opts, log)
	if err != nil {
		return nil, err
	}
	log.Debug("archive drained",
		zap.Stringer("format", reader.Format()),
		zap.Int("files", len(p.records)),
		zap.Int("dirs", len(p.dirs)),
		zap.Uint64("bytes", p.bytes))

	result := &Result{
		FilesTotal: len(p.records),
		Skipped:    p.skipped,
	}

	if progressCb != nil {
		progressCb(ProgressEvent{
			Type:       EventStart,
			Total:      int64(len(p.records)),
			TotalBytes: p.bytes,
		})
		// Every return from here on settles the bars opened by EventStart
		defer func() {
			progressCb(ProgressEvent{
				Type:         EventComplete,
				Current:      int64(result.FilesWritten),
				Total:        int64(result.FilesTotal),
				CurrentBytes: result.BytesWritten,
				TotalBytes:   p.bytes,
			})
		}()
	}

	dirs, err := BuildSkeleton(opts.OutputPath, p.dirs)
	result.DirsCreated = dirs
	if err != nil {
		return result, err
	}
	log.Debug("directory skeleton ready", zap.Int("dirs", dirs))

	written, bytes, err := WriteAll(opts.OutputPath, p.records, opts.MaxThreads, progressCb)
	result.FilesWritten = written
	result.BytesWritten = bytes

	if err != nil {
		log.Debug("extraction failed", zap.Int("written", written), zap.Error(err))
		return result, err
	}
	return result, nil
}

// collect walks the archive once, reading file payloads into memory and
// recording every directory that has to exist before any write starts.
// A name that appears twice keeps its later payload.
func collect(r format.Reader, opts *Options, log *zap.Logger) (*plan, error) {
	p := &plan{}
	index := make(map[string]int)

	for {
		entry, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		rel := entry.RelPath()
		if rel == "" || rel == "." {
			continue
		}
		if err := checkInside(opts.OutputPath, rel); err != nil {
			return nil, &modkit.FormatError{Path: opts.InputPath, Err: fmt.Errorf("%w: %s", err, entry.Name)}
		}

		switch entry.Kind {
		case format.KindDir:
			p.dirs = append(p.dirs, rel)

		case format.KindOther:
			log.Warn("skipping special archive entry", zap.String("entry", entry.Name))
			p.skipped = append(p.skipped, entry.Name)

		default:
			payload, err := entry.ReadAll()
			if err != nil {
				return nil, err
			}
			p.dirs = append(p.dirs, path.Dir(rel))

			if i, seen := index[rel]; seen {
				p.bytes -= uint64(len(p.records[i].Payload))
				p.records[i].Payload = payload
			} else {
				index[rel] = len(p.records)
				p.records = append(p.records, Record{RelPath: rel, Payload: payload})
			}
			p.bytes += uint64(len(payload))

			if opts.MaxMemory > 0 && p.bytes > opts.MaxMemory {
				return nil, fmt.Errorf("%w: %s buffered, limit %s", ErrMemoryLimit,
					modkit.FormatSize(p.bytes), modkit.FormatSize(opts.MaxMemory))
			}
		}
	}

	return p, nil
}

// checkInside rejects entry paths that resolve outside of root
func checkInside(root, rel string) error {
	base := filepath.Clean(root)
	target := filepath.Join(base, filepath.FromSlash(rel))

	inner, err := filepath.Rel(base, target)
	if err != nil || inner == ".." || strings.HasPrefix(inner, ".."+string(filepath.Separator)) {
		return modkit.ErrInsecurePath
	}
	return nil
}
