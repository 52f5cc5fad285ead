// Copyright (c) 2024 Neomantra Corp
//
// Primitive codec: fixed-width scalar fields, read and written against the
// stream's discovered CPU endian. Every function here advances an explicit
// cursor rather than consuming an io.Reader, mirroring the offset-sliced
// decode idiom used throughout this codebase's binary layer.

package stdf

import (
	"encoding/binary"
	"math"
)

// FieldTag identifies a field's wire-format type, per the STDF type-tag
// alphabet: C1/B1/U1/U2/U4/U8/I1/I2/I4/I8/R4/R8/N1 for scalars, Cn/Sn/Bn/Dn/Vn
// for variable-length fields, plus the synthetic TagArray for repeated
// fields (see schema.go).
type FieldTag uint8

const (
	TagInvalid FieldTag = iota
	TagC1               // one ASCII character
	TagB1               // one bitmask byte
	TagU1
	TagU2
	TagU4
	TagU8
	TagI1
	TagI2
	TagI4
	TagI8
	TagR4
	TagR8
	TagN1 // nibble, packed two-per-byte in an array context
	TagCn // 1-byte length + bytes
	TagSn // 2-byte length + bytes
	TagBn // 1-byte count + raw bytes
	TagDn // 2-byte bit count + ceil(bits/8) bytes
	TagVn // self-describing GDR slot
	TagArray
)

// fixedWidth returns the on-wire byte count for scalar tags, or 0 for
// variable-length and array tags.
func fixedWidth(tag FieldTag) int {
	switch tag {
	case TagC1, TagB1, TagU1, TagI1:
		return 1
	case TagU2, TagI2:
		return 2
	case TagU4, TagI4, TagR4:
		return 4
	case TagU8, TagI8, TagR8:
		return 8
	default:
		return 0
	}
}

// cursor walks a record payload left to right, tracking how many bytes
// have been consumed so array-count and width back-references can be
// resolved against already-decoded values.
type cursor struct {
	buf    []byte
	pos    int
	endian binary.ByteOrder
}

func newCursor(buf []byte, endian binary.ByteOrder) *cursor {
	return &cursor{buf: buf, pos: 0, endian: endian}
}

func (c *cursor) remaining() int { return len(c.buf) - c.pos }

func (c *cursor) take(n int) ([]byte, bool) {
	if n < 0 || c.remaining() < n {
		return nil, false
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, true
}

// readFixed decodes one scalar of the given tag. ok is false when the
// buffer is exhausted (the caller treats this as trailing-optional
// truncation, not a fatal error).
func (c *cursor) readFixed(tag FieldTag) (Value, bool) {
	w := fixedWidth(tag)
	if w == 0 {
		return missingValue(), false
	}
	b, ok := c.take(w)
	if !ok {
		return missingValue(), false
	}
	switch tag {
	case TagC1:
		return stringValue(string(b[0])), true
	case TagB1, TagU1:
		return uintValue(uint64(b[0])), true
	case TagI1:
		return intValue(int64(int8(b[0]))), true
	case TagU2:
		return uintValue(uint64(c.endian.Uint16(b))), true
	case TagI2:
		return intValue(int64(int16(c.endian.Uint16(b)))), true
	case TagU4:
		return uintValue(uint64(c.endian.Uint32(b))), true
	case TagI4:
		return intValue(int64(int32(c.endian.Uint32(b)))), true
	case TagU8:
		return uintValue(c.endian.Uint64(b)), true
	case TagI8:
		return intValue(int64(c.endian.Uint64(b))), true
	case TagR4:
		return floatValue(float64(math.Float32frombits(c.endian.Uint32(b)))), true
	case TagR8:
		return floatValue(math.Float64frombits(c.endian.Uint64(b))), true
	default:
		return missingValue(), false
	}
}

// putFixed appends the wire bytes for one scalar value to dst and returns
// the extended slice.
func putFixed(dst []byte, endian binary.ByteOrder, tag FieldTag, v Value) []byte {
	switch tag {
	case TagC1:
		ch := byte(' ')
		if v.Kind == KindString && len(v.Str) > 0 {
			ch = v.Str[0]
		}
		return append(dst, ch)
	case TagB1, TagU1:
		return append(dst, byte(asUint(v)))
	case TagI1:
		return append(dst, byte(int8(asInt(v))))
	case TagU2:
		var b [2]byte
		endian.PutUint16(b[:], uint16(asUint(v)))
		return append(dst, b[:]...)
	case TagI2:
		var b [2]byte
		endian.PutUint16(b[:], uint16(int16(asInt(v))))
		return append(dst, b[:]...)
	case TagU4:
		var b [4]byte
		endian.PutUint32(b[:], uint32(asUint(v)))
		return append(dst, b[:]...)
	case TagI4:
		var b [4]byte
		endian.PutUint32(b[:], uint32(int32(asInt(v))))
		return append(dst, b[:]...)
	case TagU8:
		var b [8]byte
		endian.PutUint64(b[:], asUint(v))
		return append(dst, b[:]...)
	case TagI8:
		var b [8]byte
		endian.PutUint64(b[:], uint64(asInt(v)))
		return append(dst, b[:]...)
	case TagR4:
		var b [4]byte
		endian.PutUint32(b[:], math.Float32bits(float32(asFloat(v))))
		return append(dst, b[:]...)
	case TagR8:
		var b [8]byte
		endian.PutUint64(b[:], math.Float64bits(asFloat(v)))
		return append(dst, b[:]...)
	default:
		return dst
	}
}

func asUint(v Value) uint64 {
	switch v.Kind {
	case KindUint:
		return v.Uint
	case KindInt:
		return uint64(v.Int)
	case KindFloat:
		return uint64(v.Float)
	default:
		return 0
	}
}

func asInt(v Value) int64 {
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindUint:
		return int64(v.Uint)
	case KindFloat:
		return int64(v.Float)
	default:
		return 0
	}
}

func asFloat(v Value) float64 {
	switch v.Kind {
	case KindFloat:
		return v.Float
	case KindInt:
		return float64(v.Int)
	case KindUint:
		return float64(v.Uint)
	default:
		return 0
	}
}
