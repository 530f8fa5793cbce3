// Package testutil builds archive fixtures for package tests.
package testutil

import (
	"archive/tar"
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// Entry is an archive member. Names ending in '/' are written as directories.
type Entry struct {
	Name string
	Data []byte
}

// Compression selects the stream wrapped around a tar fixture
type Compression string

const (
	None Compression = ""
	XZ   Compression = "xz"
	Zstd Compression = "zstd"
	Gzip Compression = "gzip"
	LZ4  Compression = "lz4"
)

// WriteZip writes entries to a new ZIP archive at path, in order.
func WriteZip(t testing.TB, path string, entries []Entry) {
	t.Helper()

	f := create(t, path)
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, e := range entries {
		method := zip.Deflate
		if strings.HasSuffix(e.Name, "/") {
			method = zip.Store
		}
		w, err := zw.CreateHeader(&zip.FileHeader{Name: e.Name, Method: method})
		if err != nil {
			t.Fatalf("zip header %s: %v", e.Name, err)
		}
		if _, err := w.Write(e.Data); err != nil {
			t.Fatalf("zip write %s: %v", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
}

// WriteTar writes entries to a new tar archive at path, wrapped in the given compression.
func WriteTar(t testing.TB, path string, compression Compression, entries []Entry) {
	t.Helper()

	f := create(t, path)
	defer f.Close()

	var stream io.WriteCloser
	var err error
	switch compression {
	case XZ:
		stream, err = xz.NewWriter(f)
	case Zstd:
		stream, err = zstd.NewWriter(f)
	case Gzip:
		stream = gzip.NewWriter(f)
	case LZ4:
		stream = lz4.NewWriter(f)
	}
	if err != nil {
		t.Fatalf("create %s writer: %v", compression, err)
	}

	var out io.Writer = f
	if stream != nil {
		out = stream
	}

	tw := tar.NewWriter(out)
	for _, e := range entries {
		hdr := &tar.Header{Name: e.Name, Mode: 0644, Size: int64(len(e.Data)), Typeflag: tar.TypeReg}
		if strings.HasSuffix(e.Name, "/") {
			hdr.Typeflag = tar.TypeDir
			hdr.Mode = 0755
			hdr.Size = 0
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("tar header %s: %v", e.Name, err)
		}
		if _, err := tw.Write(e.Data); err != nil {
			t.Fatalf("tar write %s: %v", e.Name, err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("close tar: %v", err)
	}
	if stream != nil {
		if err := stream.Close(); err != nil {
			t.Fatalf("close %s stream: %v", compression, err)
		}
	}
}

// WriteTree creates files (and their parents) under root. Keys ending in '/' create directories.
func WriteTree(t testing.TB, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			if err := os.MkdirAll(full, 0755); err != nil {
				t.Fatalf("mkdir %s: %v", rel, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("mkdir for %s: %v", rel, err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
}

func create(t testing.TB, path string) *os.File {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	return f
}
