// Copyright (c) 2024 Neomantra Corp

package stdf

// PinMap resolves PMR pin indices (as referenced by FTR.RTN_INDX/PGM_INDX
// and MPR.RTN_INDX) to their channel, physical, and logical names. It is a
// point-in-time map: a test program's pin map does not change mid-stream,
// so unlike a timeseries symbol map there is no date dimension, only the
// most recently seen PMR for a given index.
type PinMap struct {
	channel map[uint16]string
	physical map[uint16]string
	logical map[uint16]string
}

// NewPinMap returns an empty PinMap.
func NewPinMap() *PinMap {
	return &PinMap{
		channel:  make(map[uint16]string),
		physical: make(map[uint16]string),
		logical:  make(map[uint16]string),
	}
}

// IsEmpty reports whether any PMR has been observed yet.
func (m *PinMap) IsEmpty() bool { return len(m.channel) == 0 }

// Len returns the number of distinct pin indices seen.
func (m *PinMap) Len() int { return len(m.channel) }

// Channel returns the channel name for a PMR_INDX, or "" if unseen.
func (m *PinMap) Channel(index uint16) string { return m.channel[index] }

// Physical returns the physical pin name for a PMR_INDX, or "" if unseen.
func (m *PinMap) Physical(index uint16) string { return m.physical[index] }

// Logical returns the logical pin name for a PMR_INDX, or "" if unseen.
func (m *PinMap) Logical(index uint16) string { return m.logical[index] }

// OnRecord updates the map when record is a PMR; every other record kind
// is ignored. PinMap satisfies part of the Visitor contract this way so it
// can be driven directly from a Parser's OnRecord dispatch, but it is not
// itself a Visitor (it has no OnStreamEnd obligation) or a Sink (it needs
// no lifecycle hooks), just a plain accumulator a caller's own Visitor or
// Sink delegates to.
func (m *PinMap) OnRecord(record *Record) error {
	if record.Schema == nil || record.Schema.Name != "PMR" {
		return nil
	}
	index := uint16(asUint(record.Get("PMR_INDX")))
	m.channel[index] = record.Get("CHAN_NAM").Str
	m.physical[index] = record.Get("PHY_NAM").Str
	m.logical[index] = record.Get("LOG_NAM").Str
	return nil
}
