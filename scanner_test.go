// Copyright (c) 2024 Neomantra Corp

package stdf

import (
	"bytes"
	"encoding/binary"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func encodeFarMrr(endian binary.ByteOrder) []byte {
	farSchema, _ := lookupSchemaByName("FAR")
	far := NewRecord(farSchema)
	cpu := CPUType_x86
	if endian == binary.BigEndian {
		cpu = CPUType_SunSparc
	}
	far.Set("CPU_TYPE", uintValue(uint64(cpu)))
	far.Set("STDF_VER", uintValue(4))
	farBytes, err := EncodeRecord(far, endian)
	Expect(err).ToNot(HaveOccurred())

	mrrSchema, _ := lookupSchemaByName("MRR")
	mrr := NewRecord(mrrSchema)
	mrr.Set("FINISH_T", uintValue(1234567890))
	mrr.Set("DISP_COD", stringValue(" "))
	mrrBytes, err := EncodeRecord(mrr, endian)
	Expect(err).ToNot(HaveOccurred())

	return append(farBytes, mrrBytes...)
}

var _ = Describe("Scanner", func() {
	It("discovers little-endian from the FAR record and decodes both records", func() {
		stream := encodeFarMrr(binary.LittleEndian)
		sc := NewScanner(bytes.NewReader(stream))

		Expect(sc.Next()).To(BeTrue())
		Expect(sc.Endian()).To(Equal(binary.LittleEndian))
		Expect(sc.Header().Major).To(Equal(byte(0)))
		Expect(sc.Header().Minor).To(Equal(byte(10)))
		rec, err := sc.Decode(false)
		Expect(err).ToNot(HaveOccurred())
		Expect(rec.Get("CPU_TYPE").Uint).To(Equal(uint64(CPUType_x86)))

		Expect(sc.Next()).To(BeTrue())
		Expect(sc.Header().Major).To(Equal(byte(1)))
		Expect(sc.Header().Minor).To(Equal(byte(20)))
		rec2, err := sc.Decode(false)
		Expect(err).ToNot(HaveOccurred())
		Expect(rec2.Get("FINISH_T").Uint).To(Equal(uint64(1234567890)))

		Expect(sc.Next()).To(BeFalse())
		Expect(sc.Error()).To(Equal(io.EOF))
	})

	It("discovers big-endian from a non-x86 CPU_TYPE", func() {
		stream := encodeFarMrr(binary.BigEndian)
		sc := NewScanner(bytes.NewReader(stream))
		Expect(sc.Next()).To(BeTrue())
		Expect(sc.Endian()).To(Equal(binary.BigEndian))
	})

	It("reports an unknown record kind as recoverable", func() {
		endian := binary.LittleEndian
		far := encodeFarMrr(endian)[:0]
		farSchema, _ := lookupSchemaByName("FAR")
		farRec := NewRecord(farSchema)
		farRec.Set("CPU_TYPE", uintValue(uint64(CPUType_x86)))
		farRec.Set("STDF_VER", uintValue(4))
		farBytes, _ := EncodeRecord(farRec, endian)
		far = append(far, farBytes...)

		bogus := encodeHeader(Header{Major: 99, Minor: 99}, 2, endian)
		bogus = append(bogus, 0x00, 0x00)
		stream := append(far, bogus...)

		sc := NewScanner(bytes.NewReader(stream))
		Expect(sc.Next()).To(BeTrue())
		_, err := sc.Decode(false)
		Expect(err).ToNot(HaveOccurred())

		Expect(sc.Next()).To(BeTrue())
		_, err = sc.Decode(false)
		Expect(err).To(MatchError(ErrUnknownRecord))
	})
})
