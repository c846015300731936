package xlsx

import _ "embed"

// templateXLSX is the fund-snapshot workbook template. It ships with
// the binary and is never modified; Encode splices generated worksheet
// XML into a copy of it.
//
//go:embed template.xlsx
var templateXLSX []byte

// Template returns the embedded ready-to-fill workbook template. The
// result is a fresh copy on every call, so callers may modify it
// freely; two calls always return byte-identical content.
func Template() []byte {
	return append([]byte(nil), templateXLSX...)
}
