// Package xlsxpkg reads parts out of an Open Packaging zip container, the
// format used by .xlsx spreadsheets, and decodes the two SpreadsheetML
// structures needed to pull plain values out of a worksheet: the
// shared-string table and the worksheet cell grid.
//
// Only that minimal subset is supported. Styles, formulas, inline strings,
// merged cells and multiple sheets are ignored.
package xlsxpkg
