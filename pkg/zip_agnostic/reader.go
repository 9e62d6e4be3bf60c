package zip_agnostic

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v3"
	"github.com/valyala/gozstd"
)

const (
	gzipHeader = "\x1f\x8b"
	zstdHeader = "\x28\xb5\x2f\xfd"
	lz4Header  = "\x04\x22\x4d\x18"
)

// Format is a compression format recognized by its magic bytes.
type Format int

// Recognized formats.
const (
	Raw Format = iota
	Gzip
	Zstd
	LZ4
)

func (f Format) String() string {
	switch f {
	case Raw:
		return "raw"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// DetectFormat reads the first bytes of r to find out its compression
// format. It returns the format and a reader that yields the whole content
// of r, header included.
func DetectFormat(r io.Reader) (Format, io.Reader, error) {
	var hdr [4]byte
	n, err := io.ReadFull(r, hdr[:])
	switch {
	case errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF):
		// r is shorter than any magic number.
		return Raw, bytes.NewReader(hdr[:n]), nil
	case err != nil:
		return Raw, nil, fmt.Errorf("zip_agnostic: can't read: %v", err)
	}

	mr := io.MultiReader(bytes.NewReader(hdr[:]), r)

	switch {
	case bytes.HasPrefix(hdr[:], []byte(gzipHeader)):
		return Gzip, mr, nil
	case bytes.Equal(hdr[:], []byte(zstdHeader)):
		return Zstd, mr, nil
	case bytes.Equal(hdr[:], []byte(lz4Header)):
		return LZ4, mr, nil
	}
	return Raw, mr, nil
}

// Wrap returns an io.ReadCloser decompressing r with format f. Closing it
// releases the decompressor, not r.
func Wrap(f Format, r io.Reader) (io.ReadCloser, error) {
	switch f {
	case Raw:
		return io.NopCloser(r), nil
	case Gzip:
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zip_agnostic (gzip): can't read: %v", err)
		}
		return gzr, nil
	case Zstd:
		zstdr := gozstd.NewReader(r)
		return makeReadCloser(zstdr, func() error { zstdr.Release(); return nil }), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	}
	return nil, fmt.Errorf("zip_agnostic: unknown format %v", f)
}

// NewReader returns an io.ReadCloser that reads from r, whether r is a reader
// over compressed data or not. It supports gzip, zstd and lz4 frames.
//
// Note: NewReader is an utility function provided as a best effort, it's still
// possible to trick it into thinking a reader contains compressed data, while
// in fact it's not.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	f, mr, err := DetectFormat(r)
	if err != nil {
		return nil, err
	}
	return Wrap(f, mr)
}

// makeReadCloser converts an io.Reader and a close function into a ReadCloser.
func makeReadCloser(r io.Reader, close func() error) io.ReadCloser {
	return &readCloser{Reader: r, close: close}
}

type readCloser struct {
	io.Reader
	close func() error
}

func (rc *readCloser) Close() error {
	err := rc.close()
	if err != nil {
		return fmt.Errorf("zip_agnostic: close: %v", err)
	}
	return nil
}
