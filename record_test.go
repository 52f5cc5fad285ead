// Copyright (c) 2024 Neomantra Corp

package stdf

import (
	"encoding/binary"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func buildPTRPayload(optFlag byte, includeHiLimit bool) []byte {
	endian := binary.LittleEndian
	var buf []byte
	buf = putFixed(buf, endian, TagU4, uintValue(1001))     // TEST_NUM
	buf = putFixed(buf, endian, TagU1, uintValue(1))        // HEAD_NUM
	buf = putFixed(buf, endian, TagU1, uintValue(1))        // SITE_NUM
	buf = putFixed(buf, endian, TagB1, uintValue(0))        // TEST_FLG
	buf = putFixed(buf, endian, TagB1, uintValue(0))        // PARM_FLG
	buf = putFixed(buf, endian, TagR4, floatValue(1.25))    // RESULT
	buf = putCn(buf, "Vt")                                  // TEST_TXT
	buf = putCn(buf, "")                                    // ALARM_ID
	buf = putFixed(buf, endian, TagB1, uintValue(uint64(optFlag))) // OPT_FLAG
	buf = putFixed(buf, endian, TagI1, intValue(-3))        // RES_SCAL
	buf = putFixed(buf, endian, TagI1, intValue(-3))        // LLM_SCAL
	buf = putFixed(buf, endian, TagI1, intValue(-3))        // HLM_SCAL
	buf = putFixed(buf, endian, TagR4, floatValue(0))       // LO_LIMIT
	if includeHiLimit {
		buf = putFixed(buf, endian, TagR4, floatValue(0)) // HI_LIMIT, zero-filled
	} else {
		buf = putFixed(buf, endian, TagR4, floatValue(0)) // still on the wire, just flagged invalid
	}
	buf = putCn(buf, "V")  // UNITS
	buf = putCn(buf, "")   // C_RESFMT
	buf = putCn(buf, "")   // C_LLMFMT
	buf = putCn(buf, "")   // C_HLMFMT
	buf = putFixed(buf, endian, TagR4, floatValue(0)) // LO_SPEC
	buf = putFixed(buf, endian, TagR4, floatValue(5))  // HI_SPEC
	return buf
}

var _ = Describe("PTR decode/encode", func() {
	It("decodes and round-trips a fully populated record", func() {
		schema, ok := lookupSchemaByName("PTR")
		Expect(ok).To(BeTrue())
		endian := binary.LittleEndian
		payload := buildPTRPayload(0x00, true)

		rec, err := decodeRecord(schema, Header{Major: 15, Minor: 10}, payload, endian, decodeOptions{})
		Expect(err).ToNot(HaveOccurred())
		Expect(rec.Get("TEST_NUM").Uint).To(Equal(uint64(1001)))
		Expect(rec.Get("RESULT").Float).To(Equal(1.25))
		Expect(rec.Get("HI_LIMIT").Missing()).To(BeFalse())

		err = EncodeAndVerify(rec, endian)
		Expect(err).ToNot(HaveOccurred())
	})

	It("reports a flag-gated field as missing when its OPT_FLAG bit is set", func() {
		schema, _ := lookupSchemaByName("PTR")
		endian := binary.LittleEndian
		payload := buildPTRPayload(1<<OptFlagBit_NoHighLimit, true)

		rec, err := decodeRecord(schema, Header{Major: 15, Minor: 10}, payload, endian, decodeOptions{})
		Expect(err).ToNot(HaveOccurred())
		Expect(rec.Get("HI_LIMIT").Missing()).To(BeTrue())
		Expect(rec.Get("LO_LIMIT").Missing()).To(BeFalse())

		// Zero-filled gated bytes round-trip exactly even though the
		// decoded value is reported as missing.
		err = EncodeAndVerify(rec, endian)
		Expect(err).ToNot(HaveOccurred())
	})

	It("reports HI_LIMIT as missing when only the no-limit-for-test bit (7) is set", func() {
		schema, _ := lookupSchemaByName("PTR")
		endian := binary.LittleEndian
		// Bit 7 set, bit 5 clear: this test has no high limit at all,
		// distinct from bit 5's "omitted on this record" case.
		payload := buildPTRPayload(1<<OptFlagBit_NoHiLimitForTest, true)

		rec, err := decodeRecord(schema, Header{Major: 15, Minor: 10}, payload, endian, decodeOptions{})
		Expect(err).ToNot(HaveOccurred())
		Expect(rec.Get("HI_LIMIT").Missing()).To(BeTrue())
		Expect(rec.Get("LO_LIMIT").Missing()).To(BeFalse())

		err = EncodeAndVerify(rec, endian)
		Expect(err).ToNot(HaveOccurred())
	})

	It("treats a record truncated mid-schema as trailing-optional, not an error", func() {
		schema, _ := lookupSchemaByName("PTR")
		endian := binary.LittleEndian
		full := buildPTRPayload(0x00, true)
		truncated := full[:17] // through OPT_FLAG only

		rec, err := decodeRecord(schema, Header{Major: 15, Minor: 10}, truncated, endian, decodeOptions{})
		Expect(err).ToNot(HaveOccurred())
		Expect(rec.Get("RES_SCAL").Missing()).To(BeTrue())
		Expect(rec.Get("HI_SPEC").Missing()).To(BeTrue())
	})

	It("fails to encode a record missing a required field", func() {
		schema, _ := lookupSchemaByName("PTR")
		rec := NewRecord(schema)
		// TEST_NUM (required) left missing.
		_, err := EncodeRecord(rec, binary.LittleEndian)
		Expect(err).To(MatchError(ErrRequiredMissing))
	})
})

var _ = Describe("PRR PART_FLG bit semantics", func() {
	It("exposes PART_FLG as a raw bitmask, not individually decoded bits", func() {
		schema, ok := lookupSchemaByName("PRR")
		Expect(ok).To(BeTrue())
		endian := binary.LittleEndian
		var buf []byte
		buf = putFixed(buf, endian, TagU1, uintValue(1)) // HEAD_NUM
		buf = putFixed(buf, endian, TagU1, uintValue(1)) // SITE_NUM
		flg := uint64(1<<PartFlagBit_Failed | 1<<PartFlagBit_Abnormal)
		buf = putFixed(buf, endian, TagB1, uintValue(flg)) // PART_FLG
		buf = putFixed(buf, endian, TagU2, uintValue(5))   // NUM_TEST
		buf = putFixed(buf, endian, TagU2, uintValue(1))   // HARD_BIN
		buf = putFixed(buf, endian, TagU2, uintValue(1))   // SOFT_BIN
		buf = putFixed(buf, endian, TagI2, intValue(0))    // X_COORD
		buf = putFixed(buf, endian, TagI2, intValue(0))    // Y_COORD
		buf = putFixed(buf, endian, TagU4, uintValue(100)) // TEST_T
		buf = putCn(buf, "P1")                             // PART_ID
		buf = putCn(buf, "")                               // PART_TXT
		buf = putBn(buf, nil)                              // PART_FIX

		rec, err := decodeRecord(schema, Header{Major: 5, Minor: 20}, buf, endian, decodeOptions{})
		Expect(err).ToNot(HaveOccurred())
		got := uint64(rec.Get("PART_FLG").Uint)
		Expect(got & (1 << PartFlagBit_Failed)).ToNot(BeZero())
		Expect(got & (1 << PartFlagBit_Abnormal)).ToNot(BeZero())
		Expect(got & (1 << PartFlagBit_Supersedes)).To(BeZero())
	})
})

var _ = Describe("GDR generic data record", func() {
	It("round-trips a mixed-type variant payload", func() {
		schema, ok := lookupSchemaByName("GDR")
		Expect(ok).To(BeTrue())
		endian := binary.LittleEndian

		rec := NewRecord(schema)
		rec.Set("GEN_DATA", Value{Kind: KindGeneric, Generics: []GenericValue{
			{Tag: GenericU1, Value: uintValue(7)},
			{Tag: GenericCn, Value: stringValue("hi")},
			{Tag: GenericR8, Value: floatValue(2.5)},
		}})

		wire, err := EncodeRecord(rec, endian)
		Expect(err).ToNot(HaveOccurred())

		header, ok := decodeHeader(wire[:HeaderSize], endian)
		Expect(ok).To(BeTrue())
		decoded, err := decodeRecord(schema, header, wire[HeaderSize:], endian, decodeOptions{})
		Expect(err).ToNot(HaveOccurred())

		gens := decoded.Get("GEN_DATA").Generics
		Expect(gens).To(HaveLen(3))
		Expect(gens[0].Value.Uint).To(Equal(uint64(7)))
		Expect(gens[1].Value.Str).To(Equal("hi"))
		Expect(gens[2].Value.Float).To(Equal(2.5))
	})

	It("decodes the literal FLD_CNT=3 pad scenario byte-for-byte", func() {
		schema, ok := lookupSchemaByName("GDR")
		Expect(ok).To(BeTrue())
		endian := binary.LittleEndian

		payload := []byte{0x03, 0x00, 0x0A, 0x02, 0x41, 0x42, 0x01, 0xFF, 0x00, 0x05, 0xFE, 0x01}
		rec, err := decodeRecord(schema, Header{Major: 50, Minor: 10}, payload, endian, decodeOptions{})
		Expect(err).ToNot(HaveOccurred())

		gens := rec.Get("GEN_DATA").Generics
		Expect(gens).To(HaveLen(4))
		Expect(gens[0].Tag).To(Equal(GenericCn))
		Expect(gens[0].Value.Str).To(Equal("AB"))
		Expect(gens[1].Tag).To(Equal(GenericU1))
		Expect(gens[1].Value.Uint).To(Equal(uint64(255)))
		Expect(gens[2].Tag).To(Equal(GenericPad))
		Expect(gens[2].Value.Missing()).To(BeTrue())
		Expect(gens[3].Tag).To(Equal(GenericI2))
		Expect(gens[3].Value.Int).To(Equal(int64(0x01FE)))

		err = EncodeAndVerify(rec, endian)
		Expect(err).ToNot(HaveOccurred())
	})
})

var _ = Describe("schema registry", func() {
	It("resolves every documented (major, minor) pair", func() {
		for _, tc := range []struct {
			name         string
			major, minor byte
		}{
			{"FAR", 0, 10}, {"ATR", 0, 20}, {"VUR", 0, 30},
			{"MIR", 1, 10}, {"MRR", 1, 20}, {"PCR", 1, 30},
			{"HBR", 1, 40}, {"SBR", 1, 50},
			{"PMR", 1, 60}, {"PGR", 1, 62}, {"PLR", 1, 63},
			{"RDR", 1, 70}, {"SDR", 1, 80}, {"PSR", 1, 90},
			{"NMR", 1, 91}, {"CNR", 1, 92}, {"SSR", 1, 93}, {"CDR", 1, 94},
			{"WIR", 2, 10}, {"WRR", 2, 20}, {"WCR", 2, 30},
			{"PIR", 5, 10}, {"PRR", 5, 20}, {"TSR", 10, 30},
			{"PTR", 15, 10}, {"MPR", 15, 15}, {"FTR", 15, 20}, {"STR", 15, 30},
			{"BPS", 20, 10}, {"EPS", 20, 20},
			{"GDR", 50, 10}, {"DTR", 50, 30},
		} {
			schema, ok := lookupSchema(tc.major, tc.minor)
			Expect(ok).To(BeTrue(), tc.name)
			Expect(schema.Name).To(Equal(tc.name))
		}
	})

	It("rejects an unregistered pair", func() {
		_, ok := lookupSchema(99, 99)
		Expect(ok).To(BeFalse())
	})
})
