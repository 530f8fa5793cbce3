// pkg/copytree/copy.go
package copytree

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
	"github.com/creativeyann17/go-modkit/internal/failslot"
	"github.com/creativeyann17/go-modkit/pkg/modkit"
	"go.uber.org/zap"
)

// copier carries the state shared by every level of one Copy call
type copier struct {
	log        *zap.Logger
	ignore     *gitignoreMatcher
	sem        chan struct{} // bounds concurrent file copies
	progressCb ProgressCallback

	filesSeen   atomic.Int64
	filesCopied atomic.Int64
	dirsCreated atomic.Int64
	bytesCopied atomic.Uint64
	linksCopied atomic.Int64

	mu      sync.Mutex
	skipped []string
}

// Copy replaces opts.DestPath with a copy of the directory tree at opts.SourcePath.
//
// The destination is deleted and recreated first. Each directory level is then
// snapshotted once, its subdirectories are created, and its children are copied
// in parallel, subdirectories recursing as units of the same fan-out. The first
// failure observed at a level is returned after all of its units joined; sibling
// work already done is not rolled back.
func Copy(opts *Options, progressCb ProgressCallback) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	src, err := filepath.Abs(opts.SourcePath)
	if err != nil {
		return nil, &modkit.SourceReadError{Path: opts.SourcePath, Err: err}
	}
	dst, err := filepath.Abs(opts.DestPath)
	if err != nil {
		return nil, &modkit.CopyError{Path: opts.DestPath, Err: err}
	}

	info, err := os.Stat(src)
	if err != nil {
		return nil, &modkit.SourceReadError{Path: src, Err: err}
	}
	if !info.IsDir() {
		return nil, &modkit.SourceReadError{Path: src, Err: ErrNotDirectory}
	}
	if isWithin(src, dst) {
		return nil, ErrDestInsideSource
	}
	if isWithin(dst, src) {
		return nil, ErrSourceInsideDest
	}

	log := opts.Logger.With(zap.String("source", src), zap.String("dest", dst))

	c := &copier{
		log:        log,
		sem:        make(chan struct{}, opts.MaxThreads),
		progressCb: progressCb,
	}
	if opts.UseGitignore {
		c.ignore, err = newGitignoreMatcher(src)
		if err != nil {
			return nil, &modkit.SourceReadError{Path: src, Err: err}
		}
	}

	result := &Result{}
	if progressCb != nil {
		totalFiles, totalBytes := c.scan(src)
		progressCb(ProgressEvent{Type: EventStart, Total: totalFiles, TotalBytes: totalBytes})
		// Every return from here on settles the bars opened by EventStart
		defer func() {
			progressCb(ProgressEvent{
				Type:         EventComplete,
				Current:      int64(result.FilesCopied),
				Total:        totalFiles,
				CurrentBytes: result.BytesCopied,
				TotalBytes:   totalBytes,
			})
		}()
	}

	if err := os.RemoveAll(dst); err != nil {
		return result, &modkit.CopyError{Path: dst, Err: err}
	}
	if err := os.MkdirAll(dst, writable(info.Mode().Perm())); err != nil {
		return result, &modkit.CopyError{Path: dst, Err: err}
	}
	c.dirsCreated.Add(1)
	log.Debug("destination reset", zap.Int("threads", opts.MaxThreads))

	err = c.copyDir(src, dst, "", info.Mode().Perm())

	result.FilesTotal = int(c.filesSeen.Load())
	result.FilesCopied = int(c.filesCopied.Load())
	result.DirsCreated = int(c.dirsCreated.Load())
	result.BytesCopied = c.bytesCopied.Load()
	result.LinksCopied = int(c.linksCopied.Load())
	result.Skipped = c.skipped

	if err != nil {
		log.Debug("copy failed", zap.Int("copied", result.FilesCopied), zap.Error(err))
		return result, err
	}
	log.Debug("copy complete",
		zap.Int("files", result.FilesCopied),
		zap.Int("dirs", result.DirsCreated),
		zap.Uint64("bytes", result.BytesCopied))
	return result, nil
}

// copyDir copies the subtree of src into dst, then gives dst the source
// permission bits. Until then dst stays owner-writable so read-only source
// directories can still be filled.
func (c *copier) copyDir(src, dst, rel string, perm fs.FileMode) error {
	if err := c.copyLevel(src, dst, rel); err != nil {
		return err
	}
	if perm == writable(perm) {
		return nil
	}
	if err := os.Chmod(dst, perm); err != nil {
		return &modkit.CopyError{Path: dst, Err: err}
	}
	return nil
}

// fileUnit is one file or link copy of a level
type fileUnit struct {
	from, to, rel string
	link          bool
}

// copyLevel copies the children of src into dst, which must already exist.
// rel is the slash-separated path of src relative to the source root.
func (c *copier) copyLevel(src, dst, rel string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return &modkit.SourceReadError{Path: src, Err: err}
	}

	children := entries[:0]
	for _, entry := range entries {
		if !c.ignore.ShouldIgnore(path.Join(rel, entry.Name()), entry.IsDir()) {
			children = append(children, entry)
		}
	}

	// Subdirectories exist before any unit of this level starts
	perms := make(map[string]fs.FileMode)
	for _, entry := range children {
		if !entry.IsDir() {
			continue
		}
		perm := fs.FileMode(0755)
		if info, err := entry.Info(); err == nil {
			perm = info.Mode().Perm()
		}
		perms[entry.Name()] = perm

		target := filepath.Join(dst, entry.Name())
		if err := os.Mkdir(target, writable(perm)); err != nil && !os.IsExist(err) {
			return &modkit.CopyError{Path: target, Err: err}
		}
		c.dirsCreated.Add(1)
	}

	var slot failslot.Slot
	var wg sync.WaitGroup
	var units []fileUnit

	for _, entry := range children {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())
		childRel := path.Join(rel, entry.Name())

		switch mode := entry.Type(); {
		case mode.IsDir():
			perm := perms[entry.Name()]
			wg.Add(1)
			go func() {
				defer wg.Done()
				slot.Set(c.copyDir(from, to, childRel, perm))
			}()

		case mode&fs.ModeSymlink != 0:
			units = append(units, fileUnit{from: from, to: to, rel: childRel, link: true})

		case mode.IsRegular():
			c.filesSeen.Add(1)
			units = append(units, fileUnit{from: from, to: to, rel: childRel})

		default:
			c.log.Warn("skipping special file", zap.String("path", from), zap.Stringer("mode", mode))
			c.mu.Lock()
			c.skipped = append(c.skipped, from)
			c.mu.Unlock()
		}
	}

	if len(units) > 0 {
		queue := make(chan fileUnit, len(units))
		for _, u := range units {
			queue <- u
		}
		close(queue)

		workers := max(1, min(cap(c.sem), len(units)))
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for u := range queue {
					if slot.Failed() {
						continue
					}
					if u.link {
						slot.Set(c.copyLink(u.from, u.to))
						continue
					}
					c.sem <- struct{}{}
					err := c.copyFile(u.from, u.to, u.rel)
					<-c.sem
					slot.Set(err)
				}
			}()
		}
	}

	wg.Wait()
	return slot.Err()
}

// writable adds owner write and traverse bits so a directory can be filled
func writable(perm fs.FileMode) fs.FileMode {
	return perm | 0700
}

// copyFile copies one regular file byte for byte, keeping its permission bits
func (c *copier) copyFile(from, to, rel string) error {
	in, err := os.Open(from)
	if err != nil {
		return &modkit.CopyError{Path: from, Err: err}
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return &modkit.CopyError{Path: from, Err: err}
	}
	size := info.Size()

	out, err := os.OpenFile(to, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return &modkit.CopyError{Path: to, Err: err}
	}

	if c.progressCb != nil {
		c.progressCb(ProgressEvent{Type: EventFileStart, FilePath: rel, Total: size})
	}

	var w io.Writer = out
	if c.progressCb != nil {
		var current int64
		w = &modkit.ProgressWriter{
			Writer: out,
			OnWrite: func(n int) {
				current += int64(n)
				c.progressCb(ProgressEvent{Type: EventFileProgress, FilePath: rel, Current: current, Total: size})
			},
		}
	}

	buf := getCopyBuffer()
	n, err := io.CopyBuffer(w, in, *buf)
	putCopyBuffer(buf)

	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if c.progressCb != nil {
			c.progressCb(ProgressEvent{Type: EventError, FilePath: rel})
		}
		return &modkit.CopyError{Path: to, Err: err}
	}

	c.filesCopied.Add(1)
	c.bytesCopied.Add(uint64(n))
	if c.progressCb != nil {
		c.progressCb(ProgressEvent{Type: EventFileComplete, FilePath: rel, Current: n, Total: size})
	}
	return nil
}

// copyLink recreates a symbolic link with the same target. Links are never
// followed, so cycles in the source cannot recurse.
func (c *copier) copyLink(from, to string) error {
	target, err := os.Readlink(from)
	if err != nil {
		return &modkit.CopyError{Path: from, Err: err}
	}
	if err := os.Symlink(target, to); err != nil {
		return &modkit.CopyError{Path: to, Err: err}
	}
	c.linksCopied.Add(1)
	return nil
}

// scan counts the regular files and bytes that will be copied, for progress totals
func (c *copier) scan(src string) (int64, uint64) {
	var files atomic.Int64
	var bytes atomic.Uint64

	conf := fastwalk.Config{Follow: false}
	_ = fastwalk.Walk(&conf, src, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(src, p)
		if relErr != nil || rel == "." {
			return nil
		}
		if c.ignore.ShouldIgnore(filepath.ToSlash(rel), d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if info, err := d.Info(); err == nil {
			files.Add(1)
			bytes.Add(uint64(info.Size()))
		}
		return nil
	})

	return files.Load(), bytes.Load()
}

// isWithin reports whether target is dir itself or lies below it
func isWithin(dir, target string) bool {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
