// Package iostreams provides a handful of independent helpers to read data
// out of files and streams:
//
//   - ReadPlanetInfoFromXlsx extracts (name, value) pairs from a minimal
//     spreadsheet archive.
//   - CalculateHash computes the uppercase hex digest of a stream.
//   - DecompressStream opens a file and wraps it in a deflate or gzip decoder.
//   - ReadEncodedText decodes a whole file with a legacy text encoding.
//
// None of the functions keep state between calls and each one releases the
// resources it acquires before returning, or hands them over to the caller
// through the returned io.ReadCloser.
package iostreams
