// Copyright (c) 2024 Neomantra Corp

package stdf_test

import (
	"bytes"
	"encoding/binary"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dugloon/stdfgo"
)

type capturingVisitor struct {
	names []string
}

func (v *capturingVisitor) OnRecord(record *stdf.Record) error {
	v.names = append(v.names, record.Schema.Name)
	return nil
}
func (v *capturingVisitor) OnStreamEnd() error { return nil }

func buildStream() []byte {
	endian := binary.LittleEndian
	farSchema, _ := stdf.SchemaFor("FAR")
	far := stdf.NewRecord(farSchema)
	far.Set("CPU_TYPE", stdf.Value{Kind: stdf.KindUint, Uint: uint64(stdf.CPUType_x86)})
	far.Set("STDF_VER", stdf.Value{Kind: stdf.KindUint, Uint: 4})
	farBytes, _ := stdf.EncodeRecord(far, endian)

	mrrSchema, _ := stdf.SchemaFor("MRR")
	mrr := stdf.NewRecord(mrrSchema)
	mrr.Set("FINISH_T", stdf.Value{Kind: stdf.KindUint, Uint: 42})
	mrr.Set("DISP_COD", stdf.Value{Kind: stdf.KindString, Str: " "})
	mrrBytes, _ := stdf.EncodeRecord(mrr, endian)

	return append(farBytes, mrrBytes...)
}

var _ = Describe("Parser", func() {
	It("dispatches every decoded record to the visitor in order", func() {
		p := stdf.NewParser(bytes.NewReader(buildStream()))
		v := &capturingVisitor{}
		Expect(p.Run(v)).To(Succeed())
		Expect(v.names).To(Equal([]string{"FAR", "MRR"}))
		Expect(p.Stats().RecordCount).To(Equal(uint64(2)))
	})

	It("skips unknown record kinds and counts them without failing the run", func() {
		endian := binary.LittleEndian
		stream := buildStream()
		bogusHeader := make([]byte, 4)
		endian.PutUint16(bogusHeader[0:2], 2)
		bogusHeader[2] = 99
		bogusHeader[3] = 99
		stream = append(stream, bogusHeader...)
		stream = append(stream, 0x00, 0x00)

		p := stdf.NewParser(bytes.NewReader(stream))
		v := &capturingVisitor{}
		Expect(p.Run(v)).To(Succeed())
		Expect(v.names).To(Equal([]string{"FAR", "MRR"}))
		Expect(p.Stats().SkipCount).To(Equal(uint64(1)))
	})

	It("fans decoded records out to registered sinks", func() {
		sink := stdf.NewJSONSink()
		p := stdf.NewParser(bytes.NewReader(buildStream()), stdf.WithSink(sink))
		v := &capturingVisitor{}
		Expect(p.Run(v)).To(Succeed())

		out := sink.Drain()
		Expect(out).ToNot(BeEmpty())
		val, err := stdf.ParseJSONRecord(bytes.Split(out, []byte("\n"))[0])
		Expect(err).ToNot(HaveOccurred())
		Expect(string(val.GetStringBytes("_record"))).To(Equal("FAR"))
	})

	It("verifies every record round-trips when WithVerify is set", func() {
		p := stdf.NewParser(bytes.NewReader(buildStream()), stdf.WithVerify())
		v := &capturingVisitor{}
		Expect(p.Run(v)).To(Succeed())
	})

	It("skips field decode entirely for record kinds marked lazy", func() {
		p := stdf.NewParser(bytes.NewReader(buildStream()), stdf.WithLazy("MRR"))
		v := &capturingVisitor{}
		Expect(p.Run(v)).To(Succeed())
		Expect(v.names).To(Equal([]string{"FAR"}))
	})
})
