// Copyright (c) 2024 Neomantra Corp
//
// JSONSink is the one concurrency-aware component in this codec (§5): it
// renders each record to JSON on the parser's goroutine but buffers the
// output behind a mutex so a separate consumer goroutine can Drain it
// without synchronizing with the parser directly.

package stdf

import (
	"sync"

	"github.com/segmentio/encoding/json"
	"github.com/valyala/fastjson"
)

// JSONSink implements Sink, accumulating one JSON object per AfterSend
// into an internal buffer.
type JSONSink struct {
	BaseSink

	mu  sync.Mutex
	buf []byte
}

// NewJSONSink returns an empty JSONSink.
func NewJSONSink() *JSONSink {
	return &JSONSink{}
}

// AfterSend renders record to JSON and appends it (newline-delimited) to
// the internal buffer.
func (s *JSONSink) AfterSend(record *Record) error {
	obj := recordToJSONObject(record)
	line, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.buf = append(s.buf, line...)
	s.buf = append(s.buf, '\n')
	s.mu.Unlock()
	return nil
}

// Drain atomically swaps the internal buffer for an empty one and returns
// the previous contents.
func (s *JSONSink) Drain() []byte {
	s.mu.Lock()
	out := s.buf
	s.buf = nil
	s.mu.Unlock()
	return out
}

func recordToJSONObject(record *Record) map[string]any {
	obj := make(map[string]any, len(record.Schema.Fields)+1)
	obj["_record"] = record.Schema.Name
	for i, f := range record.Schema.Fields {
		obj[f.Name] = valueToJSON(record.Values[i])
	}
	return obj
}

func valueToJSON(v Value) any {
	switch v.Kind {
	case KindMissing:
		return nil
	case KindInt:
		return v.Int
	case KindUint:
		return v.Uint
	case KindFloat:
		return v.Float
	case KindString:
		return v.Str
	case KindBytes:
		return v.Bytes
	case KindInts:
		return v.Ints
	case KindFloats:
		return v.Floats
	case KindNibbles:
		return v.Nibbles
	case KindGeneric:
		out := make([]any, len(v.Generics))
		for i, g := range v.Generics {
			out[i] = valueToJSON(g.Value)
		}
		return out
	default:
		return nil
	}
}

// ParseJSONRecord parses one line previously produced by JSONSink.Drain
// into a *fastjson.Value, for ad hoc field probing without a full struct
// unmarshal.
func ParseJSONRecord(line []byte) (*fastjson.Value, error) {
	var p fastjson.Parser
	return p.ParseBytes(line)
}
