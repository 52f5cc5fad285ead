// Copyright (c) 2024 Neomantra Corp
//
// Variable-length codec: Cn/Sn (length-prefixed strings), Bn (count-prefixed
// raw bytes), Dn (bit-count-prefixed bit array), and N1 nibble arrays packed
// two values per byte.

package stdf

import "encoding/binary"

// readCn reads a 1-byte length then that many ASCII bytes.
func (c *cursor) readCn() (Value, bool) {
	lb, ok := c.take(1)
	if !ok {
		return missingValue(), false
	}
	n := int(lb[0])
	if n == 0 {
		return stringValue(""), true
	}
	b, ok := c.take(n)
	if !ok {
		return missingValue(), false
	}
	return stringValue(string(b)), true
}

func putCn(dst []byte, s string) []byte {
	n := len(s)
	if n > 255 {
		n = 255
		s = s[:255]
	}
	dst = append(dst, byte(n))
	return append(dst, s...)
}

// readSn reads a 2-byte length then that many ASCII bytes.
func (c *cursor) readSn() (Value, bool) {
	lb, ok := c.take(2)
	if !ok {
		return missingValue(), false
	}
	n := int(c.endian.Uint16(lb))
	if n == 0 {
		return stringValue(""), true
	}
	b, ok := c.take(n)
	if !ok {
		return missingValue(), false
	}
	return stringValue(string(b)), true
}

func putSn(dst []byte, endian binary.ByteOrder, s string) []byte {
	var lb [2]byte
	endian.PutUint16(lb[:], uint16(len(s)))
	dst = append(dst, lb[:]...)
	return append(dst, s...)
}

// readBn reads a 1-byte count then that many raw bytes.
func (c *cursor) readBn() (Value, bool) {
	lb, ok := c.take(1)
	if !ok {
		return missingValue(), false
	}
	n := int(lb[0])
	b, ok := c.take(n)
	if !ok {
		return missingValue(), false
	}
	out := make([]byte, n)
	copy(out, b)
	return bytesValue(out), true
}

func putBn(dst []byte, b []byte) []byte {
	n := len(b)
	if n > 255 {
		n = 255
		b = b[:255]
	}
	dst = append(dst, byte(n))
	return append(dst, b...)
}

// readDn reads a 2-byte *bit* count, then ceil(bits/8) raw bytes. The value
// is returned as the raw byte slice; callers needing individual bits index
// into it directly.
func (c *cursor) readDn() (Value, int, bool) {
	lb, ok := c.take(2)
	if !ok {
		return missingValue(), 0, false
	}
	bits := int(c.endian.Uint16(lb))
	nbytes := (bits + 7) / 8
	b, ok := c.take(nbytes)
	if !ok {
		return missingValue(), bits, false
	}
	out := make([]byte, nbytes)
	copy(out, b)
	return bytesValue(out), bits, true
}

func putDn(dst []byte, endian binary.ByteOrder, bits []byte, bitCount int) []byte {
	var lb [2]byte
	endian.PutUint16(lb[:], uint16(bitCount))
	dst = append(dst, lb[:]...)
	return append(dst, bits...)
}

// readNibbles reads ceil(count/2) bytes and unpacks count nibbles, low
// nibble first per byte.
func (c *cursor) readNibbles(count int) ([]uint8, bool) {
	nbytes := (count + 1) / 2
	b, ok := c.take(nbytes)
	if !ok {
		return nil, false
	}
	out := make([]uint8, count)
	for i := 0; i < count; i++ {
		byt := b[i/2]
		if i%2 == 0 {
			out[i] = byt & 0x0F
		} else {
			out[i] = (byt >> 4) & 0x0F
		}
	}
	return out, true
}

func putNibbles(dst []byte, nibbles []uint8) []byte {
	n := len(nibbles)
	nbytes := (n + 1) / 2
	packed := make([]byte, nbytes)
	for i, v := range nibbles {
		if i%2 == 0 {
			packed[i/2] |= v & 0x0F
		} else {
			packed[i/2] |= (v & 0x0F) << 4
		}
	}
	return append(dst, packed...)
}
