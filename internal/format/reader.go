// internal/format/reader.go
package format

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/creativeyann17/go-modkit/pkg/modkit"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// maxPrealloc caps the buffer reserved up front from a declared entry size
const maxPrealloc = 64 * 1024 * 1024

// EntryKind classifies archive entries
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDir
	KindOther // symlinks, devices and other special tar members
)

// Entry is one item of an archive, produced in archive order by a Reader.
// Content of a tar entry is only readable until the next call to Next.
type Entry struct {
	Name string // name as stored in the archive
	Kind EntryKind
	Size int64 // declared uncompressed size

	archive string
	open    func() (io.ReadCloser, error)
}

// IsDir reports whether the entry is a directory marker
func (e *Entry) IsDir() bool {
	return e.Kind == KindDir
}

// RelPath returns the cleaned entry name with '/' separators and without a
// leading or trailing separator. Spellings of the same path ("a//b", "a/./b")
// map to one value. The archive root yields "".
func (e *Entry) RelPath() string {
	name := strings.ReplaceAll(e.Name, `\`, "/")
	name = strings.TrimLeft(path.Clean(name), "/")
	if name == "." {
		return ""
	}
	return name
}

// ReadAll decompresses the entry content into an owned buffer
func (e *Entry) ReadAll() ([]byte, error) {
	rc, err := e.open()
	if err != nil {
		return nil, &modkit.EntryReadError{Path: e.archive, Entry: e.Name, Err: err}
	}
	defer rc.Close()

	capacity := e.Size
	if capacity < 0 || capacity > maxPrealloc {
		capacity = maxPrealloc
	}
	buf := bytes.NewBuffer(make([]byte, 0, capacity))
	if _, err := io.Copy(buf, rc); err != nil {
		return nil, &modkit.EntryReadError{Path: e.archive, Entry: e.Name, Err: err}
	}
	return buf.Bytes(), nil
}

// Reader walks the entries of an archive once, in order.
// A Reader must not be used from more than one goroutine.
type Reader interface {
	// Next returns the next entry, or io.EOF after the last one
	Next() (*Entry, error)
	Format() ArchiveFormat
	Close() error
}

// Open detects the format of the archive at path and returns a sequential reader.
// Fails with *modkit.OpenError when the file cannot be read and *modkit.FormatError
// when it is not a supported, well-formed archive.
func Open(path string) (Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &modkit.OpenError{Path: path, Err: err}
	}

	header := make([]byte, HeaderSize)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		f.Close()
		return nil, &modkit.OpenError{Path: path, Err: fmt.Errorf("read header: %w", err)}
	}
	header = header[:n]

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, &modkit.OpenError{Path: path, Err: fmt.Errorf("seek to start: %w", err)}
	}

	detected := DetectFormat(header)
	var r Reader
	switch detected {
	case FormatZIP:
		r, err = newZipReader(path, f)
	case FormatTar, FormatTarXZ, FormatTarZstd, FormatTarGzip, FormatTarLZ4:
		r, err = newTarReader(path, f, detected)
	default:
		err = fmt.Errorf("%w (detected %s)", ErrUnsupportedFormat, DescribeContent(header))
	}
	if err != nil {
		f.Close()
		var openErr *modkit.OpenError
		if errors.As(err, &openErr) {
			return nil, err
		}
		return nil, &modkit.FormatError{Path: path, Err: err}
	}
	return r, nil
}

type zipReader struct {
	path  string
	file  *os.File
	zr    *zip.Reader
	index int
}

func newZipReader(path string, f *os.File) (*zipReader, error) {
	stat, err := f.Stat()
	if err != nil {
		return nil, &modkit.OpenError{Path: path, Err: fmt.Errorf("stat: %w", err)}
	}

	zr, err := zip.NewReader(f, stat.Size())
	if err != nil {
		return nil, err
	}
	zr.RegisterDecompressor(zip.Deflate, flate.NewReader)

	return &zipReader{path: path, file: f, zr: zr}, nil
}

func (r *zipReader) Next() (*Entry, error) {
	if r.index >= len(r.zr.File) {
		return nil, io.EOF
	}
	zf := r.zr.File[r.index]
	r.index++

	kind := KindFile
	if isDirName(zf.Name) || zf.FileInfo().IsDir() {
		kind = KindDir
	}

	return &Entry{
		Name:    zf.Name,
		Kind:    kind,
		Size:    int64(zf.UncompressedSize64),
		archive: r.path,
		open:    zf.Open,
	}, nil
}

func (r *zipReader) Format() ArchiveFormat {
	return FormatZIP
}

func (r *zipReader) Close() error {
	return r.file.Close()
}

type tarReader struct {
	path   string
	file   *os.File
	format ArchiveFormat
	stream io.Closer // decompressor, if it needs closing
	tr     *tar.Reader
}

func newTarReader(path string, f *os.File, format ArchiveFormat) (*tarReader, error) {
	r := &tarReader{path: path, file: f, format: format}

	var src io.Reader
	switch format {
	case FormatTarXZ:
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("create xz reader: %w", err)
		}
		src = xr
	case FormatTarZstd:
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("create zstd decoder: %w", err)
		}
		src = dec
		r.stream = dec.IOReadCloser()
	case FormatTarGzip:
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		src = gr
		r.stream = gr
	case FormatTarLZ4:
		src = lz4.NewReader(f)
	default:
		src = f
	}

	r.tr = tar.NewReader(src)
	return r, nil
}

func (r *tarReader) Next() (*Entry, error) {
	hdr, err := r.tr.Next()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, &modkit.FormatError{Path: r.path, Err: fmt.Errorf("read tar header: %w", err)}
	}

	var kind EntryKind
	switch {
	case hdr.Typeflag == tar.TypeDir || isDirName(hdr.Name):
		kind = KindDir
	case hdr.Typeflag == tar.TypeReg:
		kind = KindFile
	default:
		kind = KindOther
	}

	return &Entry{
		Name:    hdr.Name,
		Kind:    kind,
		Size:    hdr.Size,
		archive: r.path,
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(r.tr), nil
		},
	}, nil
}

func (r *tarReader) Format() ArchiveFormat {
	return r.format
}

func (r *tarReader) Close() error {
	if r.stream != nil {
		r.stream.Close()
	}
	return r.file.Close()
}

// isDirName reports whether an entry name denotes a directory marker
func isDirName(name string) bool {
	return strings.HasSuffix(name, "/") || strings.HasSuffix(name, `\`)
}
