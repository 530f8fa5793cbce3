// internal/format/detect.go
package format

import (
	"bytes"

	"github.com/gabriel-vasile/mimetype"
)

// HeaderSize is the number of leading bytes needed to detect every supported format
// (the tar magic sits at offset 257).
const HeaderSize = 512

// ArchiveFormat represents the detected archive format
type ArchiveFormat int

const (
	FormatUnknown ArchiveFormat = iota
	FormatZIP
	FormatTar
	FormatTarXZ
	FormatTarZstd
	FormatTarGzip
	FormatTarLZ4
)

var (
	magicZIP  = []byte("PK")
	magicXZ   = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
	magicZstd = []byte{0x28, 0xB5, 0x2F, 0xFD}
	magicGzip = []byte{0x1F, 0x8B}
	magicLZ4  = []byte{0x04, 0x22, 0x4D, 0x18}
	magicTar  = []byte("ustar")
)

// String returns the string representation of the format
func (f ArchiveFormat) String() string {
	switch f {
	case FormatZIP:
		return "ZIP"
	case FormatTar:
		return "TAR"
	case FormatTarXZ:
		return "TAR.XZ"
	case FormatTarZstd:
		return "TAR.ZST"
	case FormatTarGzip:
		return "TAR.GZ"
	case FormatTarLZ4:
		return "TAR.LZ4"
	default:
		return "UNKNOWN"
	}
}

// DetectFormat detects the archive format from the leading bytes of a file.
// Compressed streams are assumed to wrap a tar archive.
func DetectFormat(header []byte) ArchiveFormat {
	switch {
	case bytes.HasPrefix(header, magicZIP) && len(header) >= 4:
		return FormatZIP
	case bytes.HasPrefix(header, magicXZ):
		return FormatTarXZ
	case bytes.HasPrefix(header, magicZstd):
		return FormatTarZstd
	case bytes.HasPrefix(header, magicGzip):
		return FormatTarGzip
	case bytes.HasPrefix(header, magicLZ4):
		return FormatTarLZ4
	case len(header) >= 262 && bytes.Equal(header[257:262], magicTar):
		return FormatTar
	}
	return FormatUnknown
}

// DescribeContent names the content type of an unsupported input, for error messages
func DescribeContent(header []byte) string {
	return mimetype.Detect(header).String()
}
