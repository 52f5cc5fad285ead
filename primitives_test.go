// Copyright (c) 2024 Neomantra Corp

package stdf

import (
	"encoding/binary"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("fixed-width scalar codec", func() {
	DescribeTable("round-trips every scalar tag",
		func(tag FieldTag, v Value) {
			for _, endian := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
				buf := putFixed(nil, endian, tag, v)
				Expect(len(buf)).To(Equal(fixedWidth(tag)))
				c := newCursor(buf, endian)
				got, ok := c.readFixed(tag)
				Expect(ok).To(BeTrue())
				Expect(got.Kind).To(Equal(v.Kind))
			}
		},
		Entry("U1", TagU1, uintValue(250)),
		Entry("I1 negative", TagI1, intValue(-5)),
		Entry("U2 max", TagU2, uintValue(65535)),
		Entry("I2 min", TagI2, intValue(-32768)),
		Entry("U4", TagU4, uintValue(4294967295)),
		Entry("I4 min", TagI4, intValue(-2147483648)),
		Entry("U8", TagU8, uintValue(18446744073709551615)),
		Entry("I8 min", TagI8, intValue(-9223372036854775808)),
		Entry("R4", TagR4, floatValue(3.5)),
		Entry("R8", TagR8, floatValue(-1e300)),
	)

	It("reads C1 as a single ASCII character", func() {
		c := newCursor([]byte{'Y'}, binary.LittleEndian)
		v, ok := c.readFixed(TagC1)
		Expect(ok).To(BeTrue())
		Expect(v.Str).To(Equal("Y"))
	})

	It("signals exhaustion without erroring", func() {
		c := newCursor([]byte{0x01}, binary.LittleEndian)
		_, ok := c.readFixed(TagU2)
		Expect(ok).To(BeFalse())
	})

	It("picks endian correctly for multi-byte reads", func() {
		le := newCursor([]byte{0x01, 0x02}, binary.LittleEndian)
		v, _ := le.readFixed(TagU2)
		Expect(v.Uint).To(Equal(uint64(0x0201)))

		be := newCursor([]byte{0x01, 0x02}, binary.BigEndian)
		v2, _ := be.readFixed(TagU2)
		Expect(v2.Uint).To(Equal(uint64(0x0102)))
	})
})
