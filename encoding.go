package iostreams

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// lookupEncoding resolves name as a WHATWG label first, then as an IANA
// name or alias.
func lookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		// ianaindex knows about some encodings it has no decoder for.
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
	return enc, nil
}

// ReadEncodedText reads the whole file at path and decodes it with the named
// encoding ("windows-1251", "koi8-r", ...).
//
// The name is resolved before the file is read; an unknown name is reported
// with an error matching ErrUnsupportedEncoding.
func ReadEncodedText(path, encodingName string) (string, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return "", err
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("iostreams: can't read %s: %w", path, err)
	}

	text, err := enc.NewDecoder().Bytes(buf)
	if err != nil {
		return "", fmt.Errorf("%w: %s: can't decode as %s: %w", ErrFormat, path, encodingName, err)
	}

	log.WithFields(log.Fields{"f": "ReadEncodedText", "fn": path, "encoding": encodingName}).
		Debugf("decoded %s", humanize.Bytes(uint64(len(buf))))
	return string(text), nil
}
