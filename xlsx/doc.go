// Package xlsx implements a minimal codec for single-sheet OOXML
// spreadsheet packages: it decodes the first worksheet of an .xlsx
// archive into a grid of string cell values, and encodes a grid back
// into a workbook by splicing freshly generated worksheet XML into an
// embedded template package, leaving every other archive member intact.
//
// The codec is deliberately small. It does not know about formulas,
// styles, or multiple worksheets, and it never interprets cell values:
// numbers, dates, and booleans pass through as their literal XML text.
// Decoding is defensive - per-cell anomalies (a bad shared-string index,
// an unknown cell type) degrade to empty strings rather than failing
// the whole operation, because real-world workbook producers are
// imperfect. Only a broken archive or a missing/unparseable worksheet
// part is fatal.
//
// All operations are pure byte-in/byte-out transformations with no
// shared state, so they are safe to call concurrently.
package xlsx
