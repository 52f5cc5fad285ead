// Copyright (c) 2024 Neomantra Corp

package stdf

import (
	"bytes"
	"time"

	"github.com/neomantra/ymdflag"
)

// TrimNullBytes removes trailing nulls from a byte slice and returns a
// string. STDF payloads are never NUL-padded by this codec (Cn/Sn fields
// are length-prefixed, not C-string terminated), but callers reading
// legacy files written by other tools may still see a stray trailing NUL.
func TrimNullBytes(b []byte) string {
	return string(bytes.TrimRight(b, "\x00"))
}

// EpochSecondsToTime converts an STDF U4 timestamp (seconds since the
// UNIX epoch, as carried by MIR.SETUP_T/START_T, MRR.FINISH_T,
// WIR.START_T, WRR.FINISH_T, PRR.TEST_T) to a time.Time in UTC.
func EpochSecondsToTime(epochSeconds uint32) time.Time {
	return time.Unix(int64(epochSeconds), 0).UTC()
}

// TimeToEpochSeconds is the inverse of EpochSecondsToTime, truncating to
// whole seconds.
func TimeToEpochSeconds(t time.Time) uint32 {
	return uint32(t.Unix())
}

// TimeToYMD returns YYYYMMDD for t in t's own location. A zero time
// returns 0.
func TimeToYMD(t time.Time) uint32 {
	return ymdflag.TimeToYMD(t)
}
