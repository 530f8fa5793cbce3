package format

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/creativeyann17/go-modkit/internal/testutil"
	"github.com/creativeyann17/go-modkit/pkg/modkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixture = []testutil.Entry{
	{Name: "a/"},
	{Name: "a/data.bin", Data: []byte("0123456789abcdef")},
	{Name: "b.lnk"},
}

type readEntry struct {
	name string
	kind EntryKind
	data string
}

func readEverything(t *testing.T, r Reader) []readEntry {
	t.Helper()
	var got []readEntry
	for {
		e, err := r.Next()
		if err == io.EOF {
			return got
		}
		require.NoError(t, err)

		var data []byte
		if e.Kind == KindFile {
			data, err = e.ReadAll()
			require.NoError(t, err)
		}
		got = append(got, readEntry{name: e.Name, kind: e.Kind, data: string(data)})
	}
}

func TestOpenReadsEveryFormatInOrder(t *testing.T) {
	want := []readEntry{
		{name: "a/", kind: KindDir},
		{name: "a/data.bin", kind: KindFile, data: "0123456789abcdef"},
		{name: "b.lnk", kind: KindFile},
	}

	cases := []struct {
		name        string
		file        string
		compression testutil.Compression
		zip         bool
		format      ArchiveFormat
	}{
		{name: "zip", file: "mod.zip", zip: true, format: FormatZIP},
		{name: "tar", file: "mod.tar", compression: testutil.None, format: FormatTar},
		{name: "xz", file: "mod.tar.xz", compression: testutil.XZ, format: FormatTarXZ},
		{name: "zstd", file: "mod.tar.zst", compression: testutil.Zstd, format: FormatTarZstd},
		{name: "gzip", file: "mod.tar.gz", compression: testutil.Gzip, format: FormatTarGzip},
		{name: "lz4", file: "mod.tar.lz4", compression: testutil.LZ4, format: FormatTarLZ4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)
			if tc.zip {
				testutil.WriteZip(t, path, fixture)
			} else {
				testutil.WriteTar(t, path, tc.compression, fixture)
			}

			r, err := Open(path)
			require.NoError(t, err)
			defer r.Close()

			assert.Equal(t, tc.format, r.Format())
			assert.Equal(t, want, readEverything(t, r))
		})
	}
}

func TestOpenMissingFileIsOpenError(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.zip"))

	var openErr *modkit.OpenError
	require.ErrorAs(t, err, &openErr)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOpenUnsupportedIsFormatError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("just some plain text\n"), 0644))

	_, err := Open(path)

	var formatErr *modkit.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "text/plain")
}

func TestOpenTruncatedZipIsFormatError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.zip")
	require.NoError(t, os.WriteFile(path, []byte("PK\x03\x04 definitely not a zip"), 0644))

	_, err := Open(path)

	var formatErr *modkit.FormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestTruncatedTarStreamFailsOnNext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mod.tar.gz")
	testutil.WriteTar(t, path, testutil.Gzip, fixture)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data[:len(data)/2], 0644))

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	var failure error
	for failure == nil {
		var e *Entry
		e, failure = r.Next()
		if failure == nil && e.Kind == KindFile {
			_, failure = e.ReadAll()
		}
	}
	assert.NotErrorIs(t, failure, io.EOF)
}

func TestEntryRelPath(t *testing.T) {
	cases := map[string]string{
		"a/b/c.txt":     "a/b/c.txt",
		`a\b\c.txt`:     "a/b/c.txt",
		"./a/":          "a",
		`mods\folder\`:  "mods/folder",
		"plain.package": "plain.package",
		"a//b/./c.txt":  "a/b/c.txt",
		"a/x/../b":      "a/b",
		"/abs/file":     "abs/file",
		"./":            "",
		"../up.txt":     "../up.txt",
	}
	for name, want := range cases {
		e := &Entry{Name: name}
		assert.Equal(t, want, e.RelPath(), name)
	}
}

func TestDetectFormat(t *testing.T) {
	tarHeader := make([]byte, HeaderSize)
	copy(tarHeader[257:], "ustar")

	assert.Equal(t, FormatZIP, DetectFormat([]byte("PK\x03\x04rest")))
	assert.Equal(t, FormatTarXZ, DetectFormat([]byte{0xFD, '7', 'z', 'X', 'Z', 0x00, 0x00}))
	assert.Equal(t, FormatTarZstd, DetectFormat([]byte{0x28, 0xB5, 0x2F, 0xFD, 0x00}))
	assert.Equal(t, FormatTarGzip, DetectFormat([]byte{0x1F, 0x8B, 0x08}))
	assert.Equal(t, FormatTarLZ4, DetectFormat([]byte{0x04, 0x22, 0x4D, 0x18}))
	assert.Equal(t, FormatTar, DetectFormat(tarHeader))
	assert.Equal(t, FormatUnknown, DetectFormat([]byte("PK")))
	assert.Equal(t, FormatUnknown, DetectFormat(nil))
	assert.Equal(t, "TAR.ZST", FormatTarZstd.String())
}
