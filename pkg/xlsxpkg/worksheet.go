package xlsxpkg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SpreadsheetNS is the SpreadsheetML main namespace.
const SpreadsheetNS = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"

// A Worksheet holds the rows of a sheet, in document order.
type Worksheet struct {
	Rows []Row
}

// A Row is a worksheet row and its cells.
type Row struct {
	Index int // 1-based, from the r attribute
	Cells []Cell
}

// A Cell is a child of a row. Ref and Value are the raw attribute and
// child text; HasValue tells a missing <v> from an empty one.
type Cell struct {
	Ref      string
	Value    string
	HasValue bool
}

// InColumn reports whether the cell reference starts with col, so that
// "B12" and "BA12" are both in column "B". A cell without reference is an
// error.
func (c Cell) InColumn(col string) (bool, error) {
	if c.Ref == "" {
		return false, errors.New("xlsxpkg: cell without reference")
	}
	return strings.HasPrefix(c.Ref, col), nil
}

// Float parses the cell value as a float64.
func (c Cell) Float() (float64, error) {
	if !c.HasValue {
		return 0, fmt.Errorf("xlsxpkg: cell %s has no value", c.Ref)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(c.Value), 64)
	if err != nil {
		return 0, fmt.Errorf("xlsxpkg: cell %s: %w", c.Ref, err)
	}
	return f, nil
}

type xmlWorksheet struct {
	SheetData *struct {
		Rows []xmlRow `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main row"`
	} `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main sheetData"`
}

type xmlRow struct {
	R     *string   `xml:"r,attr"`
	Cells []xmlCell `xml:",any"`
}

type xmlCell struct {
	R *string `xml:"r,attr"`
	V *string `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main v"`
}

// ReadWorksheet decodes a worksheet part. Every row must carry an integer r
// attribute.
func ReadWorksheet(r io.Reader) (*Worksheet, error) {
	var xws xmlWorksheet
	if err := xml.NewDecoder(r).Decode(&xws); err != nil {
		return nil, fmt.Errorf("xlsxpkg: worksheet: %w", err)
	}
	if xws.SheetData == nil {
		return nil, errors.New("xlsxpkg: worksheet: no sheetData element")
	}

	ws := &Worksheet{Rows: make([]Row, 0, len(xws.SheetData.Rows))}
	for i, xr := range xws.SheetData.Rows {
		if xr.R == nil {
			return nil, fmt.Errorf("xlsxpkg: worksheet: row #%d has no index", i+1)
		}
		idx, err := strconv.Atoi(strings.TrimSpace(*xr.R))
		if err != nil {
			return nil, fmt.Errorf("xlsxpkg: worksheet: row #%d: bad index: %w", i+1, err)
		}

		row := Row{Index: idx, Cells: make([]Cell, len(xr.Cells))}
		for j, xc := range xr.Cells {
			if xc.R != nil {
				row.Cells[j].Ref = *xc.R
			}
			if xc.V != nil {
				row.Cells[j].Value = *xc.V
				row.Cells[j].HasValue = true
			}
		}
		ws.Rows = append(ws.Rows, row)
	}
	return ws, nil
}
