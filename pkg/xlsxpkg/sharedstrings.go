package xlsxpkg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// ReadSharedStrings decodes a shared-string table. Each child element of the
// document root is one entry and its value is the concatenation of all the
// text it contains, so that rich-text runs (<si><r><t>..</t></r>...</si>)
// are flattened. Whitespace-only text is dropped unless it's inside an
// xml:space="preserve" element.
//
// The order of the returned slice is the order of the entries in the
// document, which is the index cells use to reference them.
func ReadSharedStrings(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		entries  []string
		cur      strings.Builder
		depth    int
		preserve []bool // xml:space="preserve" scope, one per open element
		seenRoot bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xlsxpkg: shared strings: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 1 {
				seenRoot = true
			}
			if depth == 2 {
				cur.Reset()
			}
			inherit := len(preserve) > 0 && preserve[len(preserve)-1]
			preserve = append(preserve, spacePreserved(t, inherit))
		case xml.EndElement:
			if depth == 2 {
				entries = append(entries, cur.String())
			}
			depth--
			preserve = preserve[:len(preserve)-1]
		case xml.CharData:
			if depth < 2 {
				continue
			}
			if len(strings.TrimSpace(string(t))) == 0 && !preserve[len(preserve)-1] {
				continue
			}
			cur.Write(t)
		}
	}

	if !seenRoot {
		return nil, errors.New("xlsxpkg: shared strings: no root element")
	}
	return entries, nil
}

func spacePreserved(se xml.StartElement, inherit bool) bool {
	for _, a := range se.Attr {
		if a.Name.Local == "space" && (a.Name.Space == "xml" || a.Name.Space == xmlNamespace) {
			return a.Value == "preserve"
		}
	}
	return inherit
}
