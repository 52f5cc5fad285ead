// Copyright (c) 2024 Neomantra Corp
//
// STDF record header: a 2-byte length, 1-byte major type, 1-byte minor
// subtype. The byte order of the length field (and of every multi-byte
// field in the rest of the stream) is not fixed; it is discovered from
// the first record, which by stream invariant #1 must be FAR.

package stdf

import "encoding/binary"

const HeaderSize = 4

// Header is the decoded 4-byte record prefix.
type Header struct {
	Length byte2 // payload length in bytes, excluding the header itself
	Major  byte
	Minor  byte
}

// byte2 exists only so Header's doc comment above can describe Length's
// width without importing a dedicated uint16 alias elsewhere.
type byte2 = uint16

// decodeHeader reads a 4-byte header using the given endian.
func decodeHeader(b []byte, endian binary.ByteOrder) (Header, bool) {
	if len(b) < HeaderSize {
		return Header{}, false
	}
	return Header{
		Length: endian.Uint16(b[0:2]),
		Major:  b[2],
		Minor:  b[3],
	}, true
}

// encodeHeader writes a 4-byte header for the given payload length.
func encodeHeader(h Header, payloadLen int, endian binary.ByteOrder) []byte {
	b := make([]byte, HeaderSize)
	endian.PutUint16(b[0:2], uint16(payloadLen))
	b[2] = h.Major
	b[3] = h.Minor
	return b
}

// detectEndian inspects the first 5 bytes of a stream (4-byte header plus
// the FAR record's first payload byte, CPU_TYPE) and returns the byte
// order to use for the rest of the stream. It does not consume the bytes;
// callers pass a peeked slice.
//
// Per stream invariant #1: the first record must be (major=0, minor=10).
// Its CPU_TYPE byte (the first payload byte) selects little-endian when it
// equals 2 (x86) and big-endian for any other value (historically Sun
// SPARC=1, DEC=3).
func detectEndian(first5 []byte) (binary.ByteOrder, error) {
	if len(first5) < 5 {
		return nil, ErrInitialSequence
	}
	// Major and minor are single bytes, so they read the same under
	// either order; the length field is not needed here.
	major, minor := first5[2], first5[3]
	if major != 0 || minor != 10 {
		return nil, ErrInitialSequence
	}
	cpuType := first5[4]
	if cpuType == byte(CPUType_x86) {
		return binary.LittleEndian, nil
	}
	return binary.BigEndian, nil
}
