// Copyright (c) 2024 Neomantra Corp
//
// The record decoder: given a header and its payload bytes, walk the
// record's schema left to right and produce a parallel []Value vector.
// This is the one generic engine every record kind decodes through; there
// is no per-record-kind decode function (see schema.go's design note).

package stdf

import "encoding/binary"

// decodeOptions configures one decode pass.
type decodeOptions struct {
	verify bool
}

// decodeRecord decodes payload (the bytes following the 4-byte header)
// according to schema, returning a populated Record.
//
// Trailing-optional truncation (stream invariant support, §4.4): once the
// cursor runs past the end of payload, every remaining field is assigned
// missingValue() rather than raising an error. This is legal STDF: a
// writer may omit trailing optional fields entirely.
func decodeRecord(schema *RecordSchema, header Header, payload []byte, endian binary.ByteOrder, opts decodeOptions) (*Record, error) {
	rec := &Record{Schema: schema, Header: header, Buffer: payload, Values: make([]Value, len(schema.Fields))}
	if opts.verify {
		rec.Spans = make(map[string]FieldSpan, len(schema.Fields))
	}
	c := newCursor(payload, endian)

	for i, f := range schema.Fields {
		startOff := c.pos
		v, err := decodeField(c, schema, rec.Values, f)
		if err != nil {
			return nil, recordError(schema.Name, startOff, err)
		}
		rec.Values[i] = v
		if opts.verify {
			rec.Spans[f.Name] = FieldSpan{Offset: startOff, Length: c.pos - startOff}
		}
	}
	return rec, nil
}

// decodeField decodes one field. prior holds the values decoded so far in
// this record (earlier ordinals only), used to resolve array counts.
func decodeField(c *cursor, schema *RecordSchema, prior []Value, f FieldSpec) (Value, error) {
	if c.remaining() <= 0 {
		// Trailing-optional truncation: legal, not an error.
		return missingValue(), nil
	}

	switch f.Tag {
	case TagCn:
		v, ok := c.readCn()
		if !ok {
			return missingValue(), nil
		}
		return v, nil

	case TagSn:
		v, ok := c.readSn()
		if !ok {
			return missingValue(), nil
		}
		return v, nil

	case TagBn:
		v, ok := c.readBn()
		if !ok {
			return missingValue(), nil
		}
		return v, nil

	case TagDn:
		v, _, ok := c.readDn()
		if !ok {
			return missingValue(), nil
		}
		return v, nil

	case TagVn:
		return decodeGeneric(c)

	case TagArray:
		count := int(asUint(prior[f.countOrdinal]))
		if count < 0 {
			count = 0
		}
		return decodeArray(c, f.ElementTag, count)

	default:
		v, ok := c.readFixed(f.Tag)
		if !ok {
			return missingValue(), nil
		}
		if fieldFlaggedMissing(prior, f) {
			return missingValue(), nil
		}
		return v, nil
	}
}

// fieldFlaggedMissing reports whether f's flag-gated sentinel says this
// field's on-wire value is not meaningful, regardless of what bytes the
// writer put there. The bytes are still consumed (the field occupies
// wire space either way); only the reported Value changes.
func fieldFlaggedMissing(prior []Value, f FieldSpec) bool {
	if f.Sentinel.Kind != SentinelFlagGated {
		return false
	}
	flag := prior[f.Sentinel.flagOrdinal]
	return asUint(flag)&uint64(f.Sentinel.Mask) != 0
}

// decodeArray decodes count repetitions of elemTag. N1 arrays are nibble-
// packed two-per-byte; every other element tag is read as its own fixed
// or Cn/Bn/Dn/variable form.
func decodeArray(c *cursor, elemTag FieldTag, count int) (Value, error) {
	if count == 0 {
		switch elemTag {
		case TagCn:
			return Value{Kind: KindString, Str: ""}, nil
		default:
			return intsValue(nil), nil
		}
	}

	if elemTag == TagN1 {
		nibbles, ok := c.readNibbles(count)
		if !ok {
			return missingValue(), nil
		}
		return nibblesValue(nibbles), nil
	}

	if elemTag == TagCn {
		// An array of Cn is stored as a single comma-joined Value in the
		// STDF sense only for ATDF; in binary form each element is its
		// own length-prefixed string. Represent as a generic slice via
		// Floats/Ints is wrong for strings, so collect into Bytes-joined
		// representation using a NUL separator internal to this codec.
		strs := make([]string, 0, count)
		for i := 0; i < count; i++ {
			v, ok := c.readCn()
			if !ok {
				break
			}
			strs = append(strs, v.Str)
		}
		return stringArrayValue(strs), nil
	}

	if elemTag == TagR4 || elemTag == TagR8 {
		out := make([]float64, 0, count)
		for i := 0; i < count; i++ {
			v, ok := c.readFixed(elemTag)
			if !ok {
				break
			}
			out = append(out, v.Float)
		}
		return floatsValue(out), nil
	}

	out := make([]int64, 0, count)
	for i := 0; i < count; i++ {
		v, ok := c.readFixed(elemTag)
		if !ok {
			break
		}
		if v.Kind == KindUint {
			out = append(out, int64(v.Uint))
		} else {
			out = append(out, v.Int)
		}
	}
	return intsValue(out), nil
}

// decodeGeneric decodes a GDR payload: a U2 field count followed by that
// many (tag byte, value) slots, per the table in §4.4. A type-0 pad is a
// single byte carrying no value and does not count toward the field
// count; the loop runs until FLD_CNT non-pad values have been collected,
// so a pad between two data slots does not shift what FLD_CNT means. An
// unrecognized tag byte is kept as a pad slot (and re-encodes as a 0 byte).
func decodeGeneric(c *cursor) (Value, error) {
	cntVal, ok := c.readFixed(TagU2)
	if !ok {
		return Value{Kind: KindGeneric, Generics: nil}, nil
	}
	count := int(asUint(cntVal))
	out := make([]GenericValue, 0, count)
	collected := 0
	for collected < count {
		tb, ok := c.take(1)
		if !ok {
			break
		}
		tag := GenericTag(tb[0])
		if tag == GenericPad {
			out = append(out, GenericValue{Tag: GenericPad, Value: missingValue()})
			continue
		}
		val, err := decodeGenericSlot(c, tag)
		if err == ErrUnknownFieldTag {
			out = append(out, GenericValue{Tag: GenericPad, Value: missingValue()})
			continue
		}
		if err != nil {
			return missingValue(), err
		}
		out = append(out, GenericValue{Tag: tag, Value: val})
		collected++
	}
	return Value{Kind: KindGeneric, Generics: out}, nil
}

func decodeGenericSlot(c *cursor, tag GenericTag) (Value, error) {
	switch tag {
	case GenericU1:
		v, _ := c.readFixed(TagU1)
		return v, nil
	case GenericU2:
		v, _ := c.readFixed(TagU2)
		return v, nil
	case GenericU4:
		v, _ := c.readFixed(TagU4)
		return v, nil
	case GenericI1:
		v, _ := c.readFixed(TagI1)
		return v, nil
	case GenericI2:
		v, _ := c.readFixed(TagI2)
		return v, nil
	case GenericI4:
		v, _ := c.readFixed(TagI4)
		return v, nil
	case GenericR4:
		v, _ := c.readFixed(TagR4)
		return v, nil
	case GenericR8:
		v, _ := c.readFixed(TagR8)
		return v, nil
	case GenericCn:
		v, _ := c.readCn()
		return v, nil
	case GenericBn:
		v, _ := c.readBn()
		return v, nil
	case GenericDn:
		v, _, _ := c.readDn()
		return v, nil
	case GenericN1:
		nib, ok := c.readNibbles(1)
		if !ok {
			return missingValue(), nil
		}
		return uintValue(uint64(nib[0])), nil
	default:
		return missingValue(), ErrUnknownFieldTag
	}
}

// stringArrayValue packs a []string into a Value: an array-of-Cn is rare
// enough in STDF (only PLR/PSR/NMR/CDR carry them) that this codec stores
// it as KindBytes with NUL separators, with the element count in Ints[0],
// rather than widen the Value sum type for one shape.
func stringArrayValue(strs []string) Value {
	joined := make([]byte, 0, len(strs)*8)
	for i, s := range strs {
		if i > 0 {
			joined = append(joined, 0)
		}
		joined = append(joined, s...)
	}
	return Value{Kind: KindBytes, Bytes: joined, Ints: []int64{int64(len(strs))}}
}
