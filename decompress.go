package iostreams

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	log "github.com/sirupsen/logrus"

	"github.com/trewor92/07-IOStreams/pkg/zip_agnostic"
)

// DecompressionMethod is the compression method a file has been written
// with.
type DecompressionMethod int

// The decompression methods DecompressStream supports.
const (
	MethodNone    DecompressionMethod = iota // no compression
	MethodDeflate                            // raw DEFLATE, no framing
	MethodGZip                               // gzip container
)

func (m DecompressionMethod) String() string {
	switch m {
	case MethodNone:
		return "none"
	case MethodDeflate:
		return "deflate"
	case MethodGZip:
		return "gzip"
	}
	return fmt.Sprintf("DecompressionMethod(%d)", int(m))
}

// ParseDecompressionMethod returns the method named s, one of "none",
// "deflate" or "gzip" (case-insensitive).
func ParseDecompressionMethod(s string) (DecompressionMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return MethodNone, nil
	case "deflate":
		return MethodDeflate, nil
	case "gzip":
		return MethodGZip, nil
	}
	return 0, fmt.Errorf("%w: unknown decompression method %q", ErrInvalidArgument, s)
}

const (
	openFlags = os.O_RDONLY | os.O_CREATE
	openMode  = 0644
)

// DecompressStream opens the file at path, creating it if it doesn't exist,
// and returns a reader of its content decompressed with method.
//
// An unknown method is reported with an error matching ErrInvalidArgument
// before the file is opened. A gzip file with a corrupt header is reported
// with an error matching ErrFormat; an empty file is an empty stream for all
// methods.
//
// The returned stream owns the file: closing it closes the file.
func DecompressStream(path string, method DecompressionMethod) (io.ReadCloser, error) {
	switch method {
	case MethodNone, MethodDeflate, MethodGZip:
	default:
		return nil, fmt.Errorf("%w: check decompression method (%v)", ErrInvalidArgument, method)
	}

	ctx := log.WithFields(log.Fields{"f": "DecompressStream", "fn": path, "method": method})

	f, err := os.OpenFile(path, openFlags, openMode)
	if err != nil {
		return nil, fmt.Errorf("iostreams: can't open %s: %w", path, err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("iostreams: can't stat %s: %w", path, err)
	}

	s := &stream{file: f}
	switch {
	case method == MethodNone:
		s.Reader = f
	case fi.Size() == 0:
		// Nothing to decompress, e.g. a file that has just been created.
		s.Reader = bytes.NewReader(nil)
	case method == MethodDeflate:
		dec := flate.NewReader(f)
		s.Reader, s.dec = dec, dec
	case method == MethodGZip:
		dec, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: %s: %w", ErrFormat, path, err)
		}
		s.Reader, s.dec = dec, dec
	}

	ctx.WithField("size", humanize.Bytes(uint64(fi.Size()))).Debug("stream opened")
	return s, nil
}

// OpenCompressed opens the existing file at path and returns a reader of its
// decompressed content. The compression format (gzip, zstd, lz4 or none) is
// detected from the first bytes of the file.
//
// The returned stream owns the file: closing it closes the file.
func OpenCompressed(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("iostreams: can't open %s: %w", path, err)
	}

	format, r, err := zip_agnostic.DetectFormat(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("iostreams: %s: %w", path, err)
	}

	dec, err := zip_agnostic.Wrap(format, r)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrFormat, path, err)
	}

	log.WithFields(log.Fields{"f": "OpenCompressed", "fn": path, "format": format}).Debug("stream opened")
	return &stream{Reader: dec, dec: dec, file: f}, nil
}

// stream reads from a decoder and owns the file the decoder reads from.
type stream struct {
	io.Reader
	dec  io.Closer // nil if Reader reads the file directly
	file *os.File
}

// Close closes the decoder then the file and returns the first error.
func (s *stream) Close() error {
	var err error
	if s.dec != nil {
		err = s.dec.Close()
	}
	if ferr := s.file.Close(); err == nil {
		err = ferr
	}
	return err
}
