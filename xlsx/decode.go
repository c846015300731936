package xlsx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// Grid is a sequence of rows of string cell values. Rows may have
// different lengths; a position beyond a row's length is an empty cell.
type Grid [][]string

// defaultSheetPath is where the overwhelming majority of single-sheet
// workbooks keep their first worksheet. The resolver falls back to it
// whenever workbook metadata cannot be followed.
const defaultSheetPath = "xl/worksheets/sheet1.xml"

// Decode parses an .xlsx package and returns the first worksheet as a
// grid of string cell values.
//
// Rows appear in XML document order: a gap in declared row numbers does
// not produce filler rows, and rows without a single resolvable cell are
// dropped entirely, so fully blank spreadsheet rows never reach the
// caller. The returned grid is rectangular: every row is padded with
// empty strings to the width of the widest row.
//
// Decode fails only when the input is not a zip archive, or when the
// worksheet part is absent or not parseable XML; every per-cell anomaly
// degrades to an empty string.
func Decode(data []byte) (Grid, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &DecodeError{Phase: PhaseArchive, Err: ErrInvalidArchive}
	}

	sheetPath := resolveFirstSheetPath(zr)
	sheetData, err := readPart(zr, sheetPath)
	if err != nil {
		return nil, &DecodeError{Phase: PhasePart, Part: sheetPath, Err: ErrMissingWorksheet}
	}

	strs := parseSharedStrings(zr)

	var ws worksheetXML
	if err := parsePart(sheetData, &ws); err != nil {
		return nil, &DecodeError{Phase: PhaseXMLParse, Part: sheetPath, Err: ErrInvalidWorksheet}
	}

	grid := make(Grid, 0, len(ws.SheetData.Rows))
	for _, row := range ws.SheetData.Rows {
		values := make(map[int]string, len(row.Cells))
		maxCol := 0
		for _, cell := range row.Cells {
			letters := refLetters(cell.R)
			if letters == "" {
				continue
			}
			col := ColumnIndex(letters)
			if col > maxCol {
				maxCol = col
			}
			values[col] = cellValue(cell, strs)
		}
		if maxCol == 0 {
			// No placeable cells; drop the row rather than emit an
			// empty one.
			continue
		}
		out := make([]string, maxCol)
		for col, v := range values {
			out[col-1] = v
		}
		grid = append(grid, out)
	}

	return rectangularize(grid), nil
}

// rectangularize pads every row with empty strings to the width of the
// widest row, so callers always see a rows-by-columns grid.
func rectangularize(grid Grid) Grid {
	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range grid {
		for len(row) < width {
			row = append(row, "")
		}
		grid[i] = row
	}
	return grid
}

// cellValue extracts a cell's string value according to its declared
// type. Unknown types fall through to the raw value text, so numbers,
// booleans, and cached formula results pass through verbatim.
func cellValue(cell cellXML, strs stringTable) string {
	switch cell.T {
	case "s":
		if cell.V == nil {
			return ""
		}
		return strs.at(*cell.V)
	case "inlineStr":
		return cell.Is.text()
	default:
		if cell.V == nil {
			return ""
		}
		return strings.TrimSpace(*cell.V)
	}
}

// stringTable is a parsed shared-string table, indexed by the 0-based
// integer references worksheet cells carry.
type stringTable []string

// at resolves a raw shared-string index. Every defensive check on
// shared-string references lives here: a non-integer or out-of-range
// index yields an empty string instead of an error.
func (t stringTable) at(raw string) string {
	i, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || i < 0 || i >= len(t) {
		return ""
	}
	return t[i]
}

// parseSharedStrings reads xl/sharedStrings.xml into an ordered string
// table. The part is optional; a missing or unparseable table is
// treated as empty rather than as an error.
func parseSharedStrings(zr *zip.Reader) stringTable {
	data, err := readPart(zr, "xl/sharedStrings.xml")
	if err != nil {
		return nil
	}

	var sst sharedStringsXML
	if err := parsePart(data, &sst); err != nil {
		return nil
	}

	strs := make(stringTable, len(sst.Items))
	for i := range sst.Items {
		strs[i] = sst.Items[i].text()
	}
	return strs
}

// resolveFirstSheetPath follows xl/workbook.xml to the first declared
// sheet, looks its relationship id up in xl/_rels/workbook.xml.rels,
// and normalizes the target into an archive path. Resolution never
// fails: any missing or malformed step falls back to the conventional
// sheet1 path, trading strictness for tolerance of producer quirks.
func resolveFirstSheetPath(zr *zip.Reader) string {
	data, err := readPart(zr, "xl/workbook.xml")
	if err != nil {
		return defaultSheetPath
	}

	var wb workbookXML
	if err := parsePart(data, &wb); err != nil {
		return defaultSheetPath
	}
	if len(wb.Sheets.Sheet) == 0 || wb.Sheets.Sheet[0].RID == "" {
		return defaultSheetPath
	}
	rid := wb.Sheets.Sheet[0].RID

	data, err = readPart(zr, "xl/_rels/workbook.xml.rels")
	if err != nil {
		return defaultSheetPath
	}

	var rels relationshipsXML
	if err := parsePart(data, &rels); err != nil {
		return defaultSheetPath
	}

	for _, rel := range rels.Relationship {
		if rel.ID != rid {
			continue
		}
		target := strings.TrimPrefix(rel.Target, "/")
		if target == "" {
			return defaultSheetPath
		}
		if !strings.HasPrefix(target, "xl/") {
			target = "xl/" + target
		}
		return target
	}

	return defaultSheetPath
}

// readPart reads one member of the archive by exact path.
func readPart(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("part not found: %s", name)
}

// parsePart unmarshals an XML part, honoring any declared non-UTF-8
// encoding via a charset-aware decoder.
func parsePart(data []byte, v any) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	return dec.Decode(v)
}
