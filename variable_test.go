// Copyright (c) 2024 Neomantra Corp

package stdf

import (
	"encoding/binary"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("variable-length codec", func() {
	Context("Cn", func() {
		DescribeTable("round-trips boundary lengths",
			func(n int) {
				s := strings.Repeat("x", n)
				buf := putCn(nil, s)
				Expect(buf[0]).To(Equal(byte(n)))
				c := newCursor(buf, binary.LittleEndian)
				v, ok := c.readCn()
				Expect(ok).To(BeTrue())
				Expect(v.Str).To(Equal(s))
			},
			Entry("empty", 0),
			Entry("one char", 1),
			Entry("max length", 255),
		)

		It("truncates strings longer than 255 bytes on encode", func() {
			s := strings.Repeat("z", 300)
			buf := putCn(nil, s)
			Expect(buf[0]).To(Equal(byte(255)))
			Expect(len(buf)).To(Equal(256))
		})
	})

	Context("Sn", func() {
		It("round-trips a 2-byte-length string", func() {
			buf := putSn(nil, binary.LittleEndian, "hello world")
			c := newCursor(buf, binary.LittleEndian)
			v, ok := c.readSn()
			Expect(ok).To(BeTrue())
			Expect(v.Str).To(Equal("hello world"))
		})
	})

	Context("Bn", func() {
		It("round-trips raw bytes", func() {
			raw := []byte{0xDE, 0xAD, 0xBE, 0xEF}
			buf := putBn(nil, raw)
			c := newCursor(buf, binary.LittleEndian)
			v, ok := c.readBn()
			Expect(ok).To(BeTrue())
			Expect(v.Bytes).To(Equal(raw))
		})
	})

	Context("Dn", func() {
		DescribeTable("round-trips boundary bit counts",
			func(bitCount int) {
				nbytes := (bitCount + 7) / 8
				bits := make([]byte, nbytes)
				for i := range bits {
					bits[i] = 0xFF
				}
				buf := putDn(nil, binary.LittleEndian, bits, bitCount)
				c := newCursor(buf, binary.LittleEndian)
				_, gotBits, ok := c.readDn()
				Expect(ok).To(BeTrue())
				Expect(gotBits).To(Equal(bitCount))
			},
			Entry("zero bits", 0),
			Entry("one bit", 1),
			Entry("seven bits", 7),
			Entry("eight bits", 8),
			Entry("nine bits", 9),
			Entry("max bits", 65535),
		)
	})

	Context("N1 nibble arrays", func() {
		DescribeTable("round-trips boundary array lengths",
			func(count int) {
				nibbles := make([]uint8, count)
				for i := range nibbles {
					nibbles[i] = uint8(i % 16)
				}
				buf := putNibbles(nil, nibbles)
				c := newCursor(buf, binary.LittleEndian)
				got, ok := c.readNibbles(count)
				Expect(ok).To(BeTrue())
				Expect(got).To(Equal(nibbles))
			},
			Entry("zero", 0),
			Entry("one", 1),
			Entry("two", 2),
			Entry("three", 3),
		)
	})
})
