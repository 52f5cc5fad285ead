// Copyright (c) 2024 Neomantra Corp
//
// The record encoder: the inverse of decoder.go. Walks a record's schema
// and values left to right into a growable buffer, back-patching earlier
// bytes when a later field's actual size or missing-ness changes what an
// earlier count or flag byte must say.

package stdf

import (
	"encoding/binary"
)

// encodeRecord renders rec's payload bytes (without the 4-byte header).
//
// Lazy round-trip shortcut: if rec.Buffer is non-empty and every value is
// missing (the record was never decoded into field values, e.g. retained
// only for a verbatim pass-through), the original buffer is returned
// untouched.
func encodeRecord(rec *Record, endian binary.ByteOrder) ([]byte, error) {
	if len(rec.Buffer) > 0 && allMissing(rec.Values) {
		out := make([]byte, len(rec.Buffer))
		copy(out, rec.Buffer)
		return out, nil
	}

	schema := rec.Schema
	out := make([]byte, 0, 64)
	fieldOffset := make([]int, len(schema.Fields))

	for i, f := range schema.Fields {
		fieldOffset[i] = len(out)
		v := rec.Values[i]

		if v.Missing() {
			resolved, err := resolveMissing(schema, rec.Values, f)
			if err != nil {
				return nil, fieldError(schema.Name, f.Name, err)
			}
			v = resolved
		}

		var err error
		out, err = encodeField(out, endian, schema, rec.Values, fieldOffset, f, v)
		if err != nil {
			return nil, fieldError(schema.Name, f.Name, err)
		}

		// Back-patch the count field with the number of elements written.
		if f.Tag == TagArray && !rec.Values[i].Missing() {
			n := len(v.Ints)
			switch f.ElementTag {
			case TagN1:
				n = len(v.Nibbles)
			case TagR4, TagR8:
				n = len(v.Floats)
			case TagCn:
				n = len(splitStringArray(v))
			}
			countTag := schema.Fields[f.countOrdinal].Tag
			copy(out[fieldOffset[f.countOrdinal]:], putFixed(nil, endian, countTag, uintValue(uint64(n))))
		}

		// A flag byte that already gates this field (any bit of the mask
		// set) is left unchanged, so decoded flags round-trip exactly.
		if f.Sentinel.Kind == SentinelFlagGated && rec.Values[i].Missing() {
			flagOff := fieldOffset[f.Sentinel.flagOrdinal]
			if flagOff < len(out) && out[flagOff]&f.Sentinel.Mask == 0 {
				setFlagBit(out, flagOff, f.Sentinel.Mask)
			}
		}
	}
	return out, nil
}

func allMissing(values []Value) bool {
	for _, v := range values {
		if !v.Missing() {
			return false
		}
	}
	return true
}

// resolveMissing returns the bytes-level stand-in value for a missing
// field: the literal sentinel, or an error if the field is required.
func resolveMissing(schema *RecordSchema, values []Value, f FieldSpec) (Value, error) {
	switch f.Sentinel.Kind {
	case SentinelRequired:
		return missingValue(), ErrRequiredMissing
	case SentinelLiteral:
		return f.Sentinel.Literal, nil
	case SentinelFlagGated:
		return f.Sentinel.Literal, nil
	default:
		return missingValue(), ErrRequiredMissing
	}
}

// setFlagBit ORs mask into the single byte at offset off within out. Flag
// fields in this registry are always B1 (one byte), so no width lookup is
// needed.
func setFlagBit(out []byte, off int, mask uint8) {
	if off < 0 || off >= len(out) {
		return
	}
	out[off] |= mask
}

func encodeField(out []byte, endian binary.ByteOrder, schema *RecordSchema, values []Value, fieldOffset []int, f FieldSpec, v Value) ([]byte, error) {
	switch f.Tag {
	case TagCn:
		return putCn(out, v.Str), nil

	case TagSn:
		return putSn(out, endian, v.Str), nil

	case TagBn:
		return putBn(out, v.Bytes), nil

	case TagDn:
		bits := v.Bytes
		return putDn(out, endian, bits, len(bits)*8), nil

	case TagVn:
		return encodeGeneric(out, endian, v)

	case TagArray:
		return encodeArray(out, endian, f.ElementTag, v)

	default:
		return putFixed(out, endian, f.Tag, v), nil
	}
}

func encodeArray(out []byte, endian binary.ByteOrder, elemTag FieldTag, v Value) ([]byte, error) {
	switch elemTag {
	case TagN1:
		return putNibbles(out, v.Nibbles), nil
	case TagR4, TagR8:
		for _, f64 := range v.Floats {
			out = putFixed(out, endian, elemTag, floatValue(f64))
		}
		return out, nil
	case TagCn:
		for _, s := range splitStringArray(v) {
			out = putCn(out, s)
		}
		return out, nil
	default:
		for _, i64 := range v.Ints {
			out = putFixed(out, endian, elemTag, intValue(i64))
		}
		return out, nil
	}
}

func splitStringArray(v Value) []string {
	if v.Kind != KindBytes {
		return nil
	}
	n := 0
	if len(v.Ints) > 0 {
		n = int(v.Ints[0])
	}
	if n == 0 {
		return nil
	}
	out := make([]string, 0, n)
	start := 0
	for i := 0; i <= len(v.Bytes); i++ {
		if i == len(v.Bytes) || v.Bytes[i] == 0 {
			out = append(out, string(v.Bytes[start:i]))
			start = i + 1
		}
	}
	return out
}

// encodeGeneric is the inverse of decodeGeneric: FLD_CNT counts only the
// non-pad slots, and a pad slot writes its tag byte with no value byte.
func encodeGeneric(out []byte, endian binary.ByteOrder, v Value) ([]byte, error) {
	gens := v.Generics
	count := 0
	for _, g := range gens {
		if g.Tag != GenericPad {
			count++
		}
	}
	out = putFixed(out, endian, TagU2, uintValue(uint64(count)))
	for _, g := range gens {
		out = append(out, byte(g.Tag))
		if g.Tag == GenericPad {
			continue
		}
		var err error
		out, err = encodeGenericSlot(out, endian, g.Tag, g.Value)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func encodeGenericSlot(out []byte, endian binary.ByteOrder, tag GenericTag, v Value) ([]byte, error) {
	switch tag {
	case GenericU1:
		return putFixed(out, endian, TagU1, v), nil
	case GenericU2:
		return putFixed(out, endian, TagU2, v), nil
	case GenericU4:
		return putFixed(out, endian, TagU4, v), nil
	case GenericI1:
		return putFixed(out, endian, TagI1, v), nil
	case GenericI2:
		return putFixed(out, endian, TagI2, v), nil
	case GenericI4:
		return putFixed(out, endian, TagI4, v), nil
	case GenericR4:
		return putFixed(out, endian, TagR4, v), nil
	case GenericR8:
		return putFixed(out, endian, TagR8, v), nil
	case GenericCn:
		return putCn(out, v.Str), nil
	case GenericBn:
		return putBn(out, v.Bytes), nil
	case GenericDn:
		bits := v.Bytes
		return putDn(out, endian, bits, len(bits)*8), nil
	case GenericN1:
		return putNibbles(out, []uint8{uint8(asUint(v))}), nil
	default:
		return out, ErrUnknownFieldTag
	}
}

// encodeHeaderFor wraps payload with its 4-byte header.
func encodeHeaderFor(schema *RecordSchema, payload []byte, endian binary.ByteOrder) []byte {
	h := Header{Major: schema.Major, Minor: schema.Minor}
	hdr := encodeHeader(h, len(payload), endian)
	out := make([]byte, 0, len(hdr)+len(payload))
	out = append(out, hdr...)
	out = append(out, payload...)
	return out
}

// EncodeRecord renders rec (header + payload) as bytes under endian.
func EncodeRecord(rec *Record, endian binary.ByteOrder) ([]byte, error) {
	payload, err := encodeRecord(rec, endian)
	if err != nil {
		return nil, err
	}
	return encodeHeaderFor(rec.Schema, payload, endian), nil
}

// EncodeAndVerify encodes rec and compares the full payload against the
// original buffer captured at decode time, returning ErrMismatch if they
// differ. This is the whole-record form of the round-trip property in
// §8; per-field diagnosis is available by decoding both buffers and
// comparing the two Record.Values slices directly. When rec.Spans were
// recorded (decoded in verify mode), the two bit-count bytes of each Dn
// field are exempt, since the encoder rounds the bit count to whole bytes.
func EncodeAndVerify(rec *Record, endian binary.ByteOrder) error {
	if len(rec.Buffer) == 0 {
		return nil
	}
	payload, err := encodeRecord(rec, endian)
	if err != nil {
		return err
	}
	if len(payload) != len(rec.Buffer) {
		return ErrMismatch
	}
	exempt := map[int]bool{}
	for _, f := range rec.Schema.Fields {
		if sp, ok := rec.Spans[f.Name]; ok && f.Tag == TagDn && sp.Length >= 2 {
			exempt[sp.Offset], exempt[sp.Offset+1] = true, true
		}
	}
	for i := range payload {
		if payload[i] != rec.Buffer[i] && !exempt[i] {
			return ErrMismatch
		}
	}
	return nil
}
