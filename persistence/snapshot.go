package persistence

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hupe1980/lloyd/codec"
)

// Encode serializes v with c, compresses it and wraps it in a snapshot
// envelope. A nil codec selects codec.Default.
func Encode(v any, c codec.Codec, compression Compression) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	name := c.Name()
	if len(name) > math.MaxUint8 {
		return nil, fmt.Errorf("%w: name too long: %q", ErrUnknownCodec, name)
	}

	raw, err := c.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("persistence: marshal with %s: %w", name, err)
	}
	if uint64(len(raw)) > math.MaxUint32 {
		return nil, fmt.Errorf("persistence: payload too large: %d bytes", len(raw))
	}

	payload, used, err := compress(raw, compression)
	if err != nil {
		return nil, fmt.Errorf("persistence: compress with %v: %w", compression, err)
	}

	h := Header{
		Version:     Version,
		Compression: used,
		Codec:       name,
		RawLen:      uint32(len(raw)),
		PayloadLen:  uint32(len(payload)),
		Checksum:    ComputeChecksum(payload),
	}

	buf := make([]byte, 0, h.Size()+len(payload))
	buf = appendHeader(buf, h)
	buf = append(buf, payload...)
	return buf, nil
}

// Decode verifies the envelope in data and unmarshals its payload into v
// with the codec named in the header.
func Decode(data []byte, v any) (Header, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return Header{}, err
	}

	c, ok := codec.ByName(h.Codec)
	if !ok {
		return h, fmt.Errorf("%w: %q", ErrUnknownCodec, h.Codec)
	}

	body := data[h.Size():]
	if uint32(len(body)) < h.PayloadLen {
		return h, ErrTruncated
	}
	payload := body[:h.PayloadLen]

	if err := VerifyChecksum(payload, h.Checksum); err != nil {
		return h, err
	}

	raw, err := decompress(payload, h.Compression, h.RawLen)
	if err != nil {
		return h, err
	}

	if err := c.Unmarshal(raw, v); err != nil {
		return h, fmt.Errorf("persistence: unmarshal with %s: %w", h.Codec, err)
	}
	return h, nil
}

// ReadHeader parses the envelope header at the start of data.
func ReadHeader(data []byte) (Header, error) {
	if len(data) < fixedHeaderSize {
		return Header{}, ErrTruncated
	}
	if binary.LittleEndian.Uint32(data[0:]) != MagicNumber {
		return Header{}, ErrInvalidMagic
	}

	h := Header{
		Version:     binary.LittleEndian.Uint16(data[4:]),
		Compression: Compression(data[6]),
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: %d", ErrInvalidVersion, h.Version)
	}
	if h.Compression > CompressionZSTD {
		return Header{}, fmt.Errorf("%w: %v", ErrUnknownCompression, h.Compression)
	}

	codecLen := int(data[7])
	if len(data) < fixedHeaderSize+codecLen+lengthsSize {
		return Header{}, ErrTruncated
	}
	off := fixedHeaderSize
	h.Codec = string(data[off : off+codecLen])
	off += codecLen

	h.RawLen = binary.LittleEndian.Uint32(data[off:])
	h.PayloadLen = binary.LittleEndian.Uint32(data[off+4:])
	h.Checksum = binary.LittleEndian.Uint32(data[off+8:])
	return h, nil
}

func appendHeader(buf []byte, h Header) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, MagicNumber)
	buf = binary.LittleEndian.AppendUint16(buf, h.Version)
	buf = append(buf, byte(h.Compression), byte(len(h.Codec)))
	buf = append(buf, h.Codec...)
	buf = binary.LittleEndian.AppendUint32(buf, h.RawLen)
	buf = binary.LittleEndian.AppendUint32(buf, h.PayloadLen)
	buf = binary.LittleEndian.AppendUint32(buf, h.Checksum)
	return buf
}
