// Copyright (c) 2024 Neomantra Corp

package stdf_test

import (
	"io"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dugloon/stdfgo"
)

var _ = Describe("compressed file transports", func() {
	DescribeTable("round-trips payload bytes through the selected transport",
		func(ext string) {
			dir := GinkgoT().TempDir()
			path := filepath.Join(dir, "sample"+ext)
			payload := []byte("hello stdf world, compressed")

			writer, closeWriter, err := stdf.MakeCompressedWriter(path)
			Expect(err).ToNot(HaveOccurred())
			_, err = writer.Write(payload)
			Expect(err).ToNot(HaveOccurred())
			closeWriter()

			reader, closer, err := stdf.MakeCompressedReader(path)
			Expect(err).ToNot(HaveOccurred())
			defer closer.Close()

			got, err := io.ReadAll(reader)
			Expect(err).ToNot(HaveOccurred())
			Expect(got).To(Equal(payload))
		},
		Entry("gzip", ".gz"),
		Entry("bzip2", ".bz2"),
		Entry("uncompressed", ".stdf"),
	)

	It("passes uncompressed data through unmodified for an unrecognized extension", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "plain.bin")
		Expect(os.WriteFile(path, []byte("raw"), 0o644)).To(Succeed())

		reader, closer, err := stdf.MakeCompressedReader(path)
		Expect(err).ToNot(HaveOccurred())
		defer closer.Close()
		got, err := io.ReadAll(reader)
		Expect(err).ToNot(HaveOccurred())
		Expect(got).To(Equal([]byte("raw")))
	})
})
