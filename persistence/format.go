package persistence

import (
	"errors"
	"fmt"
)

const (
	// MagicNumber identifies snapshot blobs (ASCII: "LLD1").
	MagicNumber = 0x4C4C4431
	// Version is the current envelope version.
	Version = 1

	fixedHeaderSize = 4 + 2 + 1 + 1
	lengthsSize     = 4 + 4 + 4
)

var (
	ErrInvalidMagic       = errors.New("persistence: invalid magic number")
	ErrInvalidVersion     = errors.New("persistence: unsupported version")
	ErrTruncated          = errors.New("persistence: truncated snapshot")
	ErrChecksumMismatch   = errors.New("persistence: checksum mismatch")
	ErrUnknownCodec       = errors.New("persistence: unknown codec")
	ErrUnknownCompression = errors.New("persistence: unknown compression")
)

// Compression selects the payload compression algorithm.
type Compression uint8

const (
	// CompressionNone stores the payload as-is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses Zstandard (better ratio).
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// ParseCompression maps a name produced by String back to a Compression.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZSTD, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
	}
}

// Header describes a snapshot without its payload.
type Header struct {
	Version     uint16
	Compression Compression
	Codec       string
	RawLen      uint32
	PayloadLen  uint32
	Checksum    uint32
}

// Size returns the encoded header size in bytes.
func (h Header) Size() int {
	return fixedHeaderSize + len(h.Codec) + lengthsSize
}
