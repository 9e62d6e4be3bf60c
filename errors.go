package iostreams

import "errors"

var (
	// ErrFormat is returned when a file or one of its parts doesn't have the
	// expected layout.
	ErrFormat = errors.New("iostreams: unexpected format")

	// ErrInvalidArgument is returned for unknown hash algorithm names and
	// decompression methods.
	ErrInvalidArgument = errors.New("iostreams: invalid argument")

	// ErrUnsupportedEncoding is returned when a text encoding name can't be
	// resolved.
	ErrUnsupportedEncoding = errors.New("iostreams: unsupported encoding")
)
