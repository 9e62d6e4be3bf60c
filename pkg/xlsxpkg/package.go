package xlsxpkg

import (
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/klauspost/compress/zip"
	log "github.com/sirupsen/logrus"
)

// Well-known part names of a spreadsheet package.
const (
	SharedStringsPart = "xl/sharedStrings.xml"
	FirstSheetPart    = "xl/worksheets/sheet1.xml"
)

// Package is an opened Open Packaging container. Parts can be opened by
// name until the Package is closed.
type Package struct {
	path  string
	zr    *zip.ReadCloser
	parts map[string]*zip.File
}

// Open opens the zip container at path.
func Open(path string) (*Package, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("xlsxpkg: can't open %s: %w", path, err)
	}

	p := &Package{
		path:  path,
		zr:    zr,
		parts: make(map[string]*zip.File, len(zr.File)),
	}
	for _, f := range zr.File {
		p.parts[partName(f.Name)] = f
	}

	log.WithFields(log.Fields{"f": "xlsxpkg.Open", "fn": path, "parts": len(p.parts)}).Debug("package opened")
	return p, nil
}

// partName normalizes a part name so that "/xl/a.xml", "xl/a.xml" and
// "xl\a.xml" all refer to the same part.
func partName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	return strings.TrimPrefix(name, "/")
}

// Part opens the named part for reading. The returned error matches
// fs.ErrNotExist if the package has no such part.
func (p *Package) Part(name string) (io.ReadCloser, error) {
	f, ok := p.parts[partName(name)]
	if !ok {
		return nil, fmt.Errorf("xlsxpkg: part %q in %s: %w", name, p.path, fs.ErrNotExist)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("xlsxpkg: can't open part %q in %s: %w", name, p.path, err)
	}
	return rc, nil
}

// Close releases the underlying archive.
func (p *Package) Close() error {
	if err := p.zr.Close(); err != nil {
		return fmt.Errorf("xlsxpkg: close %s: %w", p.path, err)
	}
	return nil
}
