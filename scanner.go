// Copyright (c) 2024 Neomantra Corp

package stdf

import (
	"bufio"
	"encoding/binary"
	"io"
)

// Default buffer sizes for decoding, chosen the same way as the donor
// scanner: a generous read-ahead buffer plus a scratch slice sized larger
// than the overwhelming majority of STDF records (PTR/FTR with small
// arrays; only GDR and pattern records commonly exceed it, and those grow
// the scratch buffer on demand).
const (
	DefaultDecodeBufferSize  = 16 * 1024
	DefaultScratchBufferSize = 512
)

// Scanner scans a raw binary STDF stream, discovering CPU endian from the
// first (FAR) record and handing back one (Header, payload) pair per call
// to Next.
type Scanner struct {
	srcReader  io.Reader
	buffReader *bufio.Reader
	endian     binary.ByteOrder
	lastHeader Header
	lastRecord []byte
	lastError  error
}

// NewScanner creates a Scanner over sourceReader. Endian is not known
// until the first successful Next call.
func NewScanner(sourceReader io.Reader) *Scanner {
	return &Scanner{
		srcReader:  sourceReader,
		buffReader: bufio.NewReaderSize(sourceReader, DefaultDecodeBufferSize),
		lastRecord: make([]byte, DefaultScratchBufferSize),
	}
}

// Endian returns the byte order discovered from the stream's FAR record,
// or nil if Next has not yet been called successfully.
func (s *Scanner) Endian() binary.ByteOrder { return s.endian }

// Error returns the last error from Next. May be io.EOF.
func (s *Scanner) Error() error { return s.lastError }

// Header returns the header of the most recently scanned record.
func (s *Scanner) Header() Header { return s.lastHeader }

// Payload returns the payload bytes of the most recently scanned record.
func (s *Scanner) Payload() []byte { return s.lastRecord[HeaderSize:s.lastHeaderedSize()] }

func (s *Scanner) lastHeaderedSize() int {
	return HeaderSize + int(s.lastHeader.Length)
}

// Next reads the next header+payload from the stream. Returns false on
// error (including io.EOF at a record boundary, the normal termination
// condition) or end of stream.
func (s *Scanner) Next() bool {
	if s.endian == nil {
		endian, err := s.discoverEndian()
		if err != nil {
			s.lastError = err
			return false
		}
		s.endian = endian
	}

	hdrBuf, err := s.peekOrRead(HeaderSize)
	if err != nil {
		s.lastError = err
		return false
	}
	header, ok := decodeHeader(hdrBuf, s.endian)
	if !ok {
		s.lastError = ErrMalformedRecord
		return false
	}

	total := HeaderSize + int(header.Length)
	if cap(s.lastRecord) < total {
		s.lastRecord = make([]byte, total)
	} else {
		s.lastRecord = s.lastRecord[:total]
	}

	if _, err := io.ReadFull(s.buffReader, s.lastRecord); err != nil {
		s.lastError = ErrEndOfRecord
		return false
	}
	s.lastHeader = header
	s.lastError = nil
	return true
}

// discoverEndian peeks the first 5 bytes without consuming them, then
// validates and selects the byte order per header.go's detectEndian.
func (s *Scanner) discoverEndian() (binary.ByteOrder, error) {
	peeked, err := s.buffReader.Peek(5)
	if err != nil {
		return nil, ErrInitialSequence
	}
	return detectEndian(peeked)
}

func (s *Scanner) peekOrRead(n int) ([]byte, error) {
	b, err := s.buffReader.Peek(n)
	if err != nil {
		if err == io.EOF && len(b) == 0 {
			return nil, io.EOF
		}
		return nil, ErrEndOfFile
	}
	return b, nil
}

// Decode decodes the most recently scanned record against the registry,
// returning ErrUnknownRecord (recoverable: the caller should skip and
// continue) for an unregistered (major, minor) pair.
//
// The payload is copied out of the scanner's reusable scratch buffer
// before decoding: s.lastRecord's backing array is overwritten by the
// next Next() call, and a *Record's Buffer is owned exclusively by that
// record instance (§5) — a sink retaining the Record past the next read
// must never see its bytes change underneath it.
func (s *Scanner) Decode(verify bool) (*Record, error) {
	if s.lastError != nil && s.lastError != io.EOF {
		return nil, s.lastError
	}
	schema, ok := lookupSchema(s.lastHeader.Major, s.lastHeader.Minor)
	if !ok {
		return nil, ErrUnknownRecord
	}
	payload := make([]byte, int(s.lastHeader.Length))
	copy(payload, s.lastRecord[HeaderSize:HeaderSize+int(s.lastHeader.Length)])
	return decodeRecord(schema, s.lastHeader, payload, s.endian, decodeOptions{verify: verify})
}
