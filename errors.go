// Copyright (c) 2024 Neomantra Corp

package stdf

import "fmt"

var (
	ErrEndOfFile       = fmt.Errorf("end of file")
	ErrEndOfRecord     = fmt.Errorf("end of record")
	ErrInitialSequence = fmt.Errorf("stream does not begin with a FAR record")
	ErrMismatch        = fmt.Errorf("encoded bytes do not match decoded source")
	ErrRequiredMissing = fmt.Errorf("required field has no value")
	ErrUnknownRecord   = fmt.Errorf("unknown record type")
	ErrNoRecord        = fmt.Errorf("no record scanned")
	ErrMalformedRecord = fmt.Errorf("malformed record")
	ErrUnknownFieldTag = fmt.Errorf("unknown field tag")
	ErrNoSink          = fmt.Errorf("no sink registered")
)

func unexpectedBytesError(got int, want int) error {
	return fmt.Errorf("expected %d bytes, got %d", want, got)
}

func fieldError(record string, field string, cause error) error {
	return fmt.Errorf("record %s field %s: %w", record, field, cause)
}

func recordError(record string, offset int, cause error) error {
	return fmt.Errorf("record %s at offset %d: %w", record, offset, cause)
}
