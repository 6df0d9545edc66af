package persistence

import (
	"fmt"
	"hash/crc32"
)

// CRC32Table is the IEEE polynomial table for checksum computation.
var CRC32Table = crc32.MakeTable(crc32.IEEE)

// ComputeChecksum calculates the CRC32 checksum of data.
func ComputeChecksum(data []byte) uint32 {
	return crc32.Checksum(data, CRC32Table)
}

// VerifyChecksum returns a *ChecksumError if data does not hash to want.
func VerifyChecksum(data []byte, want uint32) error {
	if got := ComputeChecksum(data); got != want {
		return &ChecksumError{Expected: want, Actual: got}
	}
	return nil
}

// ChecksumError carries both sides of a failed checksum comparison.
//
// The original sentinel can be matched via errors.Is(err, ErrChecksumMismatch).
type ChecksumError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("%v: expected %#08x, got %#08x", ErrChecksumMismatch, e.Expected, e.Actual)
}

func (e *ChecksumError) Unwrap() error { return ErrChecksumMismatch }
