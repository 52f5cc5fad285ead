// Copyright (c) 2024 Neomantra Corp
//
// ATDF (ASCII Test Data Format) line scanner and record parser/emitter.
// Adapted from the donor codebase's line-oriented JsonScanner, which scans
// one bufio.Scanner token per logical unit; here a "token" is a complete
// ATDF record after continuation lines (a leading space) have been
// reassembled, following the record/parse algorithm of the ATDF reference
// implementation.

package stdf

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// AtdfRecord is one decoded ATDF line: a record name plus its values cast
// according to the record's AtdfSchema.
type AtdfRecord struct {
	Schema *AtdfSchema
	Values []Value
}

// Get returns the named field's value, or missing if not present.
func (r *AtdfRecord) Get(name string) Value {
	for i, f := range r.Schema.Fields {
		if f.Name == name {
			return r.Values[i]
		}
	}
	return missingValue()
}

// AtdfScanner scans a series of logical ATDF records from a text stream,
// reassembling continuation lines (lines beginning with a single space)
// into their parent record before returning it. It keeps a one-line
// lookahead because a record is only known to be complete once the next
// non-continuation line (or EOF) is seen.
type AtdfScanner struct {
	scanner   *bufio.Scanner
	lastError error
	lookahead string
	haveLook  bool
	current   string
}

// NewAtdfScanner creates an AtdfScanner over r.
func NewAtdfScanner(r io.Reader) *AtdfScanner {
	return &AtdfScanner{scanner: bufio.NewScanner(r)}
}

func (s *AtdfScanner) nextLine() (string, bool) {
	if s.haveLook {
		s.haveLook = false
		return s.lookahead, true
	}
	if s.scanner.Scan() {
		return s.scanner.Text(), true
	}
	s.lastError = s.scanner.Err()
	return "", false
}

// Next reassembles the next logical ATDF record into Current. Returns
// false at end of stream or on a read error (see Error).
func (s *AtdfScanner) Next() bool {
	line, ok := s.nextLine()
	if !ok {
		return false
	}
	var record strings.Builder
	record.WriteString(line)

	for {
		next, ok := s.nextLine()
		if !ok {
			break
		}
		if len(next) > 0 && next[0] == ' ' {
			record.WriteString(next[1:])
			continue
		}
		// next is the start of a new record; remember it for the
		// following call to Next.
		s.lookahead = next
		s.haveLook = true
		break
	}

	s.current = record.String()
	return true
}

// Error returns the last scanning error, if any.
func (s *AtdfScanner) Error() error { return s.lastError }

// Record parses the current reassembled line into an AtdfRecord.
func (s *AtdfScanner) Record() (*AtdfRecord, error) {
	return ParseAtdfLine(s.current)
}

///////////////////////////////////////////////////////////////////////////////

// ParseAtdfLine parses one reassembled logical ATDF line ("REC:f1|f2|...")
// into an AtdfRecord, per the ATDF reference implementation's
// recordType/recordData split and field caster dispatch.
func ParseAtdfLine(line string) (*AtdfRecord, error) {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return nil, ErrMalformedRecord
	}
	name := strings.ToUpper(strings.TrimSpace(line[:colon]))
	data := line[colon+1:]

	schema, ok := lookupAtdfSchema(name)
	if !ok {
		return nil, ErrUnknownRecord
	}

	raw := strings.Split(data, "|")
	values := make([]Value, len(schema.Fields))

	if schema.Name == "GDR" {
		values[0] = parseGdrAtdfSlots(raw)
		return &AtdfRecord{Schema: schema, Values: values}, nil
	}

	for i, f := range schema.Fields {
		if i >= len(raw) {
			values[i] = missingValue()
			continue
		}
		values[i] = f.Cast(raw[i])
	}
	return &AtdfRecord{Schema: schema, Values: values}, nil
}

// parseGdrAtdfSlots decodes GDR's ATDF form: each pipe-delimited slot's
// first character is the generic-value type letter, the remainder is the
// value text, cast per gdrTagCaster (the vpr/castMap table).
func parseGdrAtdfSlots(raw []string) Value {
	gens := make([]GenericValue, 0, len(raw))
	for _, slot := range raw {
		if slot == "" {
			continue
		}
		letter := slot[0]
		caster := gdrTagCaster(letter)
		gens = append(gens, GenericValue{Tag: atdfLetterToGenericTag(letter), Value: caster(slot[1:])})
	}
	return Value{Kind: KindGeneric, Generics: gens}
}

func atdfLetterToGenericTag(letter byte) GenericTag {
	switch letter {
	case 'U':
		return GenericU1
	case 'M':
		return GenericU2
	case 'B':
		return GenericU4
	case 'I':
		return GenericI1
	case 'S':
		return GenericI2
	case 'L':
		return GenericI4
	case 'F':
		return GenericR4
	case 'D':
		return GenericR8
	case 'T':
		return GenericCn
	case 'X':
		return GenericBn
	case 'Y':
		return GenericDn
	case 'N':
		return GenericN1
	default:
		return GenericPad
	}
}

///////////////////////////////////////////////////////////////////////////////

// EmitAtdfLine renders rec as a single logical ATDF line (without trailing
// newline; long lines are not wrapped into continuations by this codec,
// mirroring the reference writer's common practice of one physical line
// per record for anything but pattern/GDR-heavy payloads).
func EmitAtdfLine(rec *AtdfRecord) string {
	var b strings.Builder
	b.WriteString(rec.Schema.Name)
	b.WriteByte(':')
	for i, f := range rec.Schema.Fields {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(emitAtdfValue(f, rec.Values[i]))
	}
	return b.String()
}

func emitAtdfValue(f AtdfFieldSpec, v Value) string {
	if v.Missing() {
		return ""
	}
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindUint:
		return strconv.FormatUint(v.Uint, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindInts:
		parts := make([]string, len(v.Ints))
		for i, n := range v.Ints {
			parts[i] = strconv.FormatInt(n, 10)
		}
		return strings.Join(parts, ",")
	case KindFloats:
		parts := make([]string, len(v.Floats))
		for i, n := range v.Floats {
			parts[i] = strconv.FormatFloat(n, 'g', -1, 64)
		}
		return strings.Join(parts, ",")
	case KindBytes:
		return string(v.Bytes)
	default:
		return ""
	}
}
