// Package persistence implements the snapshot envelope used to store run
// results as immutable blobs.
//
// # Layout
//
// All integers are little-endian.
//
//	magic       uint32  "LLD1"
//	version     uint16
//	compression uint8   0=none, 1=lz4, 2=zstd
//	codecLen    uint8
//	codec       [codecLen]byte
//	rawLen      uint32  payload size before compression
//	payloadLen  uint32  stored payload size
//	checksum    uint32  CRC32 (IEEE) of the stored payload
//	payload     [payloadLen]byte
//
// The codec name selects the decoder on load, so snapshots written with
// any built-in codec stay readable after codec.Default changes.
//
// Note: CRC32 detects accidental corruption only; it is not a MAC.
package persistence
