// Copyright (c) 2024 Neomantra Corp
//
// STDF Record Layout:
//   SEMI E10 / STDF V4-1997 specification, plus the 2007 scan-test
//   addendum (VUR, PSR, NMR, CNR, SSR, CDR, STR).
//
// Schema tables, not classes: every record kind is one RecordSchema value
// in a process-wide registry (see schema_registry.go), not a bespoke Go
// struct with a per-type Fill_Raw method. A decoded record is a generic
// Record carrying a []Value slice indexed by its schema's Fields, walked
// by the single decode/encode engine in decoder.go/encoder.go.

package stdf

import "fmt"

// FieldSpec describes one field slot within a RecordSchema.
type FieldSpec struct {
	Name     string
	Tag      FieldTag
	Sentinel Sentinel

	// Array fields only (Tag == TagArray): the element tag and the name
	// of the earlier field supplying the element count.
	ElementTag  FieldTag
	CountField  string
	countOrdinal int // resolved at registry build time

	// Cf/Uf fields only: name of the earlier field naming the width.
	// Unused by the record set in this registry (no Cf/Uf field is
	// needed by any STDF V4 or 2007-addendum record), kept for schema
	// completeness per §4.1's tag alphabet.
	WidthField string
}

// RecordSchema is the immutable layout for one (major, minor) record kind.
type RecordSchema struct {
	Name   string
	Major  byte
	Minor  byte
	Fields []FieldSpec
}

// FieldSpan records where one field's bytes lived in the original buffer,
// used only when verification mode is enabled.
type FieldSpan struct {
	Offset int
	Length int
}

// Record is one decoded STDF record instance.
type Record struct {
	Schema *RecordSchema
	Header Header
	Buffer []byte // raw payload bytes as read from the stream (nil on construct-then-encode)
	Values []Value
	Spans  map[string]FieldSpan // present only when decoded under WithVerify
}

// Get returns the decoded value for a named field, or a missing Value if
// the field is not part of this record's schema.
func (r *Record) Get(name string) Value {
	if r.Schema == nil {
		return missingValue()
	}
	for i, f := range r.Schema.Fields {
		if f.Name == name {
			return r.Values[i]
		}
	}
	return missingValue()
}

// Set assigns a value by field name, used when building a record to encode.
func (r *Record) Set(name string, v Value) {
	for i, f := range r.Schema.Fields {
		if f.Name == name {
			r.Values[i] = v
			return
		}
	}
}

// NewRecord allocates a record of the given schema with every field
// initialized to missing.
func NewRecord(schema *RecordSchema) *Record {
	return &Record{
		Schema: schema,
		Values: make([]Value, len(schema.Fields)),
	}
}

///////////////////////////////////////////////////////////////////////////////
// Registry
///////////////////////////////////////////////////////////////////////////////

var (
	schemaByKey  = map[[2]byte]*RecordSchema{}
	schemaByName = map[string]*RecordSchema{}
)

// register adds a schema to the process-wide registry, resolving every
// field's cross-reference ordinals (array count fields, flag-gated
// sentinel fields) once so the decode/encode engines never do a name
// lookup per field per record.
func register(s RecordSchema) *RecordSchema {
	for i := range s.Fields {
		f := &s.Fields[i]
		if f.Tag == TagArray && f.CountField != "" {
			f.countOrdinal = fieldOrdinal(s.Fields, f.CountField)
		}
		if f.Sentinel.Kind == SentinelFlagGated {
			f.Sentinel.flagOrdinal = fieldOrdinal(s.Fields, f.Sentinel.FlagField)
		}
	}
	stored := s
	key := [2]byte{s.Major, s.Minor}
	if _, dup := schemaByKey[key]; dup {
		panic(fmt.Sprintf("stdf: duplicate schema registration for (%d,%d)", s.Major, s.Minor))
	}
	schemaByKey[key] = &stored
	schemaByName[s.Name] = &stored
	return &stored
}

func fieldOrdinal(fields []FieldSpec, name string) int {
	for i, f := range fields {
		if f.Name == name {
			return i
		}
	}
	panic(fmt.Sprintf("stdf: schema references unknown field %q", name))
}

// lookupSchema returns the schema registered for (major, minor).
func lookupSchema(major, minor byte) (*RecordSchema, bool) {
	s, ok := schemaByKey[[2]byte{major, minor}]
	return s, ok
}

// lookupSchemaByName returns the schema registered under name (e.g. "PTR").
func lookupSchemaByName(name string) (*RecordSchema, bool) {
	s, ok := schemaByName[name]
	return s, ok
}

// SchemaFor returns the registered schema for a record name (e.g. "PTR"),
// for callers building a Record from scratch to encode rather than
// decoding one from a stream.
func SchemaFor(name string) (*RecordSchema, bool) {
	return lookupSchemaByName(name)
}

// SchemaForKey returns the registered schema for a (major, minor) pair.
func SchemaForKey(major, minor byte) (*RecordSchema, bool) {
	return lookupSchema(major, minor)
}
