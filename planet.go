package iostreams

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/trewor92/07-IOStreams/pkg/xlsxpkg"
)

// PlanetEntry is a (name, mean radius) pair read from a spreadsheet.
type PlanetEntry struct {
	Name       string
	MeanRadius float64
}

// String returns the name and the radius separated by a space. The radius is
// formatted with %v, the shortest representation that round-trips, which
// switches to an exponent for very large or small values ("1e+21").
func (p PlanetEntry) String() string {
	return fmt.Sprintf("%s %v", p.Name, p.MeanRadius)
}

// Equal reports whether p and other have the same name and radius.
func (p PlanetEntry) Equal(other PlanetEntry) bool {
	return p == other
}

// SheetConfig describes where ReadPlanetInfo finds names and values inside
// a spreadsheet archive. The zero value describes the default layout.
type SheetConfig struct {
	SharedStringsPart string `help:"Name of the shared-string table part" default:"xl/sharedStrings.xml"`
	WorksheetPart     string `help:"Name of the worksheet part" default:"xl/worksheets/sheet1.xml"`
	ValueColumn       string `help:"Prefix of the references of the cells holding the values" default:"B"`
	FirstDataRow      int    `help:"1-based index of the first row after the header" default:"2"`
}

func (cfg *SheetConfig) fillDefaults() {
	if cfg.SharedStringsPart == "" {
		cfg.SharedStringsPart = xlsxpkg.SharedStringsPart
	}
	if cfg.WorksheetPart == "" {
		cfg.WorksheetPart = xlsxpkg.FirstSheetPart
	}
	if cfg.ValueColumn == "" {
		cfg.ValueColumn = "B"
	}
	if cfg.FirstDataRow == 0 {
		cfg.FirstDataRow = 2
	}
}

// ReadPlanetInfoFromXlsx parses the spreadsheet archive at path and returns
// the planets it lists: the i-th entry of the shared-string table paired with
// the i-th numeric value of column B, skipping the header row.
//
// Any error matches ErrFormat; a missing file or part also matches
// fs.ErrNotExist.
func ReadPlanetInfoFromXlsx(path string) ([]PlanetEntry, error) {
	return ReadPlanetInfo(path, SheetConfig{})
}

// ReadPlanetInfo is like ReadPlanetInfoFromXlsx but reads the parts, column
// and first row described by cfg. Zero fields take their default value.
//
// Names and values are paired in order; if one list is longer than the other,
// the extra items are dropped.
func ReadPlanetInfo(path string, cfg SheetConfig) ([]PlanetEntry, error) {
	cfg.fillDefaults()
	ctx := log.WithFields(log.Fields{"f": "ReadPlanetInfo", "fn": path})

	pkg, err := xlsxpkg.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	defer pkg.Close()

	names, err := readPart(pkg, cfg.SharedStringsPart, xlsxpkg.ReadSharedStrings)
	if err != nil {
		return nil, err
	}

	ws, err := readPart(pkg, cfg.WorksheetPart, xlsxpkg.ReadWorksheet)
	if err != nil {
		return nil, err
	}

	values, err := columnValues(ws, cfg.ValueColumn, cfg.FirstDataRow)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFormat, cfg.WorksheetPart, err)
	}

	n := len(names)
	if len(values) < n {
		n = len(values)
	}
	planets := make([]PlanetEntry, n)
	for i := range planets {
		planets[i] = PlanetEntry{Name: names[i], MeanRadius: values[i]}
	}

	ctx.WithFields(log.Fields{"names": len(names), "values": len(values)}).Debugf("read %d planets", n)
	return planets, nil
}

// readPart opens the named part of pkg, decodes it with decode and closes it.
func readPart[T any](pkg *xlsxpkg.Package, name string, decode func(io.Reader) (T, error)) (T, error) {
	var zero T

	rc, err := pkg.Part(name)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	defer rc.Close()

	v, err := decode(rc)
	if err != nil {
		return zero, fmt.Errorf("%w: %s: %w", ErrFormat, name, err)
	}
	return v, nil
}

// columnValues returns, in document order, the numeric values of the cells
// whose reference starts with col, in the rows whose index is at least first.
func columnValues(ws *xlsxpkg.Worksheet, col string, first int) ([]float64, error) {
	var values []float64
	for _, row := range ws.Rows {
		if row.Index < first {
			continue
		}
		for _, cell := range row.Cells {
			ok, err := cell.InColumn(col)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", row.Index, err)
			}
			if !ok {
				continue
			}
			v, err := cell.Float()
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}
	return values, nil
}
