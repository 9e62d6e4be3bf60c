package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
)

// SpreadsheetNS is the namespace of the SpreadsheetML documents XLSX writes.
const SpreadsheetNS = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"

// WriteZip is a test helper that creates, in a temporary directory, a zip
// archive holding the given parts (part name -> content), and returns its
// path.
func WriteZip(tb testing.TB, parts map[string]string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "book.xlsx")
	f, err := os.Create(path)
	if err != nil {
		tb.Fatalf("can't create archive: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			tb.Fatalf("can't create part %q: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			tb.Fatalf("can't write part %q: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		tb.Fatalf("can't close archive: %v", err)
	}
	return path
}

// SharedStrings returns a shared-string table document holding strs.
func SharedStrings(strs ...string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><sst xmlns="%s" count="%d" uniqueCount="%d">`, SpreadsheetNS, len(strs), len(strs))
	for _, s := range strs {
		fmt.Fprintf(&sb, "<si><t>%s</t></si>", s)
	}
	sb.WriteString("</sst>")
	return sb.String()
}

// Worksheet returns a worksheet document whose sheetData holds rows, which
// must be <row> elements.
func Worksheet(rows ...string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?><worksheet xmlns="%s"><sheetData>%s</sheetData></worksheet>`,
		SpreadsheetNS, strings.Join(rows, ""))
}

// XLSX is a test helper that writes a spreadsheet archive made of the given
// shared-string table and worksheet documents, and returns its path.
func XLSX(tb testing.TB, sharedStrings, worksheet string) string {
	tb.Helper()

	return WriteZip(tb, map[string]string{
		"[Content_Types].xml":      `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
		"xl/sharedStrings.xml":     sharedStrings,
		"xl/worksheets/sheet1.xml": worksheet,
	})
}
