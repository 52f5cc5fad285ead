// Copyright (c) 2024 Neomantra Corp
//
// Parser ties together the Scanner, the schema registry, and the event
// pipeline. Construction follows the donor codebase's functional-option
// idiom rather than a sprawling config struct passed by the caller.

package stdf

import (
	"errors"
	"io"
)

// Logger is the minimal leveled logging surface a Parser uses to report
// stream lifecycle events (unknown-record skips, cancellation). There is
// no package-level default logger; a Parser with no WithLogger option uses
// NullLogger, matching the donor codebase's preference for explicit
// dependency threading over global state.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NullLogger discards every call.
type NullLogger struct{}

func (NullLogger) Debugf(format string, args ...any) {}
func (NullLogger) Infof(format string, args ...any)  {}
func (NullLogger) Warnf(format string, args ...any)  {}
func (NullLogger) Errorf(format string, args ...any) {}

// Parser reads a binary STDF stream and dispatches decoded records to a
// Visitor through the Sink event pipeline.
type Parser struct {
	scanner *Scanner
	lazy    map[string]bool
	verify  bool
	logger  Logger
	pipe    broadcaster
	stats   Stats
}

// Stats returns the running record/byte counters for this Parser's most
// recent (or in-progress) Run call.
func (p *Parser) Stats() Stats { return p.stats }

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithVerify enables verification mode: every decoded record is
// immediately re-encoded and compared byte-for-byte against its source
// buffer, surfacing ErrMismatch from Run if they differ.
func WithVerify() Option {
	return func(p *Parser) { p.verify = true }
}

// WithLazy marks the named record kinds (e.g. "GDR", "PTR") for lazy
// decoding: the Scanner still reads their bytes and Stats counts them, but
// the Parser skips field-level decode and builds no Record for them, so
// they reach neither the sinks nor the visitor. There is no later
// on-demand decode of a skipped record. This avoids paying the decode cost
// for records a caller's sinks never inspect.
func WithLazy(names ...string) Option {
	return func(p *Parser) {
		if p.lazy == nil {
			p.lazy = make(map[string]bool, len(names))
		}
		for _, n := range names {
			p.lazy[n] = true
		}
	}
}

// WithSink registers a Sink with the Parser's event pipeline, in calling
// order.
func WithSink(sink Sink) Option {
	return func(p *Parser) { p.pipe.sinks = append(p.pipe.sinks, sink) }
}

// WithLogger overrides the Parser's Logger. Default is NullLogger.
func WithLogger(l Logger) Option {
	return func(p *Parser) { p.logger = l }
}

// NewParser constructs a Parser over reader with the given options.
func NewParser(reader io.Reader, opts ...Option) *Parser {
	p := &Parser{
		scanner: NewScanner(reader),
		logger:  NullLogger{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run drives the parse loop to completion, dispatching each decoded
// record to visitor and every registered Sink's BeforeSend/AfterSend, and
// running the begin/complete/cancel lifecycle around it.
//
// Unknown record kinds are logged and skipped (recoverable); a malformed
// header, a failed initial-sequence check, or a sink error cancels the
// parse and returns the causing error after the cancel sequence completes.
func (p *Parser) Run(visitor Visitor) error {
	if err := p.pipe.begin(); err != nil {
		return p.failCancel(err)
	}

	for p.scanner.Next() {
		header := p.scanner.Header()
		schema, ok := lookupSchema(header.Major, header.Minor)
		if !ok {
			p.stats.skip()
			p.logger.Warnf("stdf: skipping unknown record (%d,%d)", header.Major, header.Minor)
			continue
		}
		p.stats.observe(header)

		if p.lazy[schema.Name] {
			continue
		}

		record, err := p.scanner.Decode(p.verify)
		if err != nil {
			return p.failCancel(err)
		}

		if p.verify {
			if verr := EncodeAndVerify(record, p.scanner.Endian()); verr != nil {
				return p.failCancel(verr)
			}
		}

		if err := p.pipe.send(record); err != nil {
			return p.failCancel(err)
		}
		if err := visitor.OnRecord(record); err != nil {
			return p.failCancel(err)
		}
	}

	if err := p.scanner.Error(); err != nil && !errors.Is(err, io.EOF) {
		return p.failCancel(err)
	}

	if err := visitor.OnStreamEnd(); err != nil {
		return p.failCancel(err)
	}
	return p.pipe.complete()
}

func (p *Parser) failCancel(cause error) error {
	p.logger.Errorf("stdf: parse cancelled: %v", cause)
	if cerr := p.pipe.cancel(cause); cerr != nil {
		p.logger.Errorf("stdf: sink error during cancel: %v", cerr)
	}
	return cause
}
