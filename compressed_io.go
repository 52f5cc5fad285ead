// Copyright (c) 2025 Neomantra Corp
// Reader/Writer Compression helpers
//
// Adapted from Neomantra's Gist, generalized from zstd-only to the two
// transports STDF files actually ship under (.gz, .bz2):
//
// https://gist.github.com/neomantra/691a6028cdf2ac3fc6ec97d00e8ea802
//

package stdf

import (
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
)

///////////////////////////////////////////////////////////////////////////////

// Transport names the compression selected for a filename.
type Transport uint8

const (
	TransportNone Transport = iota
	TransportGzip
	TransportBzip2
)

// transportFor sniffs the filename extension.
func transportFor(filename string) Transport {
	switch {
	case strings.HasSuffix(filename, ".gz"):
		return TransportGzip
	case strings.HasSuffix(filename, ".bz2"):
		return TransportBzip2
	default:
		return TransportNone
	}
}

// MakeCompressedWriter returns an io.Writer for filename, or os.Stdout if
// filename is "-". Also returns a closing function to defer and any
// error. The filename's extension selects the transport: ".gz" opens a
// gzip writer, ".bz2" a bzip2 writer, anything else passes through
// uncompressed.
func MakeCompressedWriter(filename string) (io.Writer, func(), error) {
	var writer io.Writer
	var closer io.Closer
	fileCloser := func() {
		if closer != nil {
			closer.Close()
		}
	}
	if filename != "-" {
		file, err := os.Create(filename)
		if err != nil {
			return nil, nil, err
		}
		writer, closer = file, file
	} else {
		writer, closer = os.Stdout, nil
	}

	switch transportFor(filename) {
	case TransportGzip:
		gzWriter := gzip.NewWriter(writer)
		return gzWriter, func() { gzWriter.Close(); fileCloser() }, nil
	case TransportBzip2:
		bzWriter, err := bzip2.NewWriter(writer, nil)
		if err != nil {
			fileCloser()
			return nil, nil, err
		}
		return bzWriter, func() { bzWriter.Close(); fileCloser() }, nil
	default:
		return writer, fileCloser, nil
	}
}

///////////////////////////////////////////////////////////////////////////////

// MakeCompressedReader returns an io.Reader for filename, or os.Stdin if
// filename is "-". Also returns a closer to defer. The filename's
// extension selects the transport the same way as MakeCompressedWriter.
func MakeCompressedReader(filename string) (io.Reader, io.Closer, error) {
	var reader io.Reader
	var closer io.Closer

	if filename != "-" {
		file, err := os.Open(filename)
		if err != nil {
			return nil, nil, err
		}
		reader, closer = file, file
	} else {
		reader, closer = os.Stdin, nil
	}

	var err error
	switch transportFor(filename) {
	case TransportGzip:
		reader, err = gzip.NewReader(reader)
	case TransportBzip2:
		reader, err = bzip2.NewReader(reader, nil)
	}

	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, nil, err
	}
	return reader, closer, nil
}
