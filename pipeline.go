// Copyright (c) 2024 Neomantra Corp
//
// Event pipeline: a Parser broadcasts stream lifecycle events to a list of
// Sinks in registration order, synchronously. An error from any sink
// converts the running parse into a cancel sequence.

package stdf

// Sink observes a Parser's stream lifecycle. Embed BaseSink to satisfy the
// interface with no-op defaults and override only the hooks needed.
type Sink interface {
	BeforeBegin() error
	AfterBegin() error
	BeforeSend(record *Record) error
	AfterSend(record *Record) error
	BeforeComplete() error
	AfterComplete() error
	BeforeCancel(cause error) error
	AfterCancel(cause error) error
}

// BaseSink implements Sink with no-op methods.
type BaseSink struct{}

func (BaseSink) BeforeBegin() error                  { return nil }
func (BaseSink) AfterBegin() error                   { return nil }
func (BaseSink) BeforeSend(record *Record) error     { return nil }
func (BaseSink) AfterSend(record *Record) error      { return nil }
func (BaseSink) BeforeComplete() error               { return nil }
func (BaseSink) AfterComplete() error                { return nil }
func (BaseSink) BeforeCancel(cause error) error      { return nil }
func (BaseSink) AfterCancel(cause error) error       { return nil }

// broadcaster fans one event out to an ordered list of sinks, stopping at
// the first error.
type broadcaster struct {
	sinks []Sink
}

func (b *broadcaster) begin() error {
	for _, s := range b.sinks {
		if err := s.BeforeBegin(); err != nil {
			return err
		}
	}
	for _, s := range b.sinks {
		if err := s.AfterBegin(); err != nil {
			return err
		}
	}
	return nil
}

func (b *broadcaster) send(record *Record) error {
	for _, s := range b.sinks {
		if err := s.BeforeSend(record); err != nil {
			return err
		}
	}
	for _, s := range b.sinks {
		if err := s.AfterSend(record); err != nil {
			return err
		}
	}
	return nil
}

func (b *broadcaster) complete() error {
	for _, s := range b.sinks {
		if err := s.BeforeComplete(); err != nil {
			return err
		}
	}
	for _, s := range b.sinks {
		if err := s.AfterComplete(); err != nil {
			return err
		}
	}
	return nil
}

// cancel runs the cancel sequence for every sink regardless of individual
// failures, so one misbehaving sink cannot prevent others from observing
// the cancellation; it returns the first error encountered, if any.
func (b *broadcaster) cancel(cause error) error {
	var first error
	for _, s := range b.sinks {
		if err := s.BeforeCancel(cause); err != nil && first == nil {
			first = err
		}
	}
	for _, s := range b.sinks {
		if err := s.AfterCancel(cause); err != nil && first == nil {
			first = err
		}
	}
	return first
}
