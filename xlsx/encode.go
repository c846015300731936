package xlsx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/klauspost/compress/flate"
	"github.com/valyala/bytebufferpool"
)

// Encode renders the grid as worksheet XML and splices it into the
// embedded template package, returning the bytes of a complete .xlsx
// workbook. Every archive member other than the first worksheet is
// carried over from the template untouched.
//
// Encode succeeds for any grid, including an empty one, which produces
// a workbook with a single empty row.
func Encode(grid Grid) ([]byte, error) {
	tmpl := Template()

	zr, err := zip.NewReader(bytes.NewReader(tmpl), int64(len(tmpl)))
	if err != nil {
		return nil, ErrInvalidArchive
	}

	return ReplaceWorksheet(tmpl, renderSheetXML(grid), resolveFirstSheetPath(zr))
}

// ReplaceWorksheet rebuilds a workbook package from a template archive,
// substituting sheetXML for the member at sheetPath. All other members
// keep their original compressed bytes (no recompression) and their
// order in the archive, since some consumers are sensitive to member
// ordering. The rewritten worksheet is deflate-compressed.
func ReplaceWorksheet(template, sheetXML []byte, sheetPath string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		return nil, ErrInvalidArchive
	}

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.DefaultCompression)
	})

	replaced := false
	for _, f := range zr.File {
		if f.Name == sheetPath {
			if err := writeSheetMember(zw, sheetPath, sheetXML); err != nil {
				return nil, err
			}
			replaced = true
			continue
		}
		if err := copyMemberRaw(zw, f); err != nil {
			return nil, fmt.Errorf("copying archive member %s: %w", f.Name, err)
		}
	}
	if !replaced {
		// Template without the expected worksheet member; append it so
		// the output is still a usable workbook.
		if err := writeSheetMember(zw, sheetPath, sheetXML); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func writeSheetMember(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// copyMemberRaw transfers one member into the new archive without
// decompressing it, preserving its header verbatim.
func copyMemberRaw(zw *zip.Writer, f *zip.File) error {
	rc, err := f.OpenRaw()
	if err != nil {
		return err
	}

	hdr := f.FileHeader
	w, err := zw.CreateRaw(&hdr)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, rc)
	return err
}

// renderSheetXML serializes a grid into minimal worksheet XML: a
// dimension covering the widest row, then one <row> element per grid
// row with inline-string cells for each non-empty value. Empty values
// are skipped entirely; decoding pads them back. The sheetViews,
// sheetFormatPr, and pageMargins elements carry no data but keep the
// part shaped like the template's original worksheet.
func renderSheetXML(grid Grid) []byte {
	if len(grid) == 0 {
		grid = Grid{{""}}
	}

	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	maxCol := 1
	for _, row := range grid {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}

	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<worksheet xmlns="` + nsSpreadsheetML + `">`)
	b.WriteString(`<dimension ref="A1:` + ColumnLetters(maxCol) + strconv.Itoa(len(grid)) + `" />`)
	b.WriteString(`<sheetViews><sheetView workbookViewId="0">`)
	b.WriteString(`<selection activeCell="A1" sqref="A1" />`)
	b.WriteString(`</sheetView></sheetViews>`)
	b.WriteString(`<sheetFormatPr baseColWidth="8" defaultRowHeight="15" />`)
	b.WriteString(`<sheetData>`)
	for i, row := range grid {
		rowNum := strconv.Itoa(i + 1)
		b.WriteString(`<row r="` + rowNum + `">`)
		for j, value := range row {
			if value == "" {
				continue
			}
			b.WriteString(`<c r="` + CellRef(j+1, i+1) + `" t="inlineStr"><is><t>`)
			_ = xml.EscapeText(b, []byte(value))
			b.WriteString(`</t></is></c>`)
		}
		b.WriteString(`</row>`)
	}
	b.WriteString(`</sheetData>`)
	b.WriteString(`<pageMargins left="0.75" right="0.75" top="1" bottom="1" header="0.5" footer="0.5" />`)
	b.WriteString(`</worksheet>`)

	return append([]byte(nil), b.B...)
}
