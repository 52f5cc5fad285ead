// Copyright (c) 2024 Neomantra Corp
//
// Stream diagnostics: a running tally of records and bytes a Parser has
// processed, rendered human-readably the same way the donor's CLI reports
// a job's estimated size before submitting it.

package stdf

import "github.com/dustin/go-humanize"

// Stats accumulates counters over one Parser.Run call.
type Stats struct {
	RecordCount uint64
	ByteCount   uint64
	SkipCount   uint64 // unknown record kinds skipped
}

func (s *Stats) observe(header Header) {
	s.RecordCount++
	s.ByteCount += uint64(HeaderSize) + uint64(header.Length)
}

func (s *Stats) skip() {
	s.SkipCount++
}

// String renders a human-readable one-line summary, e.g.
// "12,345 records (1.2 MB), 3 skipped".
func (s Stats) String() string {
	summary := humanize.Comma(int64(s.RecordCount)) + " records (" + humanize.Bytes(s.ByteCount) + ")"
	if s.SkipCount > 0 {
		summary += ", " + humanize.Comma(int64(s.SkipCount)) + " skipped"
	}
	return summary
}
