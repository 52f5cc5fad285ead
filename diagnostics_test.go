// Copyright (c) 2024 Neomantra Corp

package stdf

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Stats", func() {
	It("accumulates record and byte counts as records are observed", func() {
		var s Stats
		s.observe(Header{Length: 20})
		s.observe(Header{Length: 44})
		Expect(s.RecordCount).To(Equal(uint64(2)))
		Expect(s.ByteCount).To(Equal(uint64(HeaderSize)*2 + 20 + 44))
	})

	It("counts skipped records separately from decoded ones", func() {
		var s Stats
		s.observe(Header{Length: 10})
		s.skip()
		s.skip()
		Expect(s.RecordCount).To(Equal(uint64(1)))
		Expect(s.SkipCount).To(Equal(uint64(2)))
	})

	It("renders a human-readable summary including skip count only when nonzero", func() {
		var s Stats
		s.observe(Header{Length: 996})
		Expect(s.String()).To(Equal("1 records (1.0 kB)"))

		s.skip()
		Expect(s.String()).To(ContainSubstring("1 skipped"))
	})
})
