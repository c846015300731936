package xlsx

import "encoding/xml"

// XML namespaces used by spreadsheet packages.
const (
	nsSpreadsheetML = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// workbookXML models the parts of xl/workbook.xml the codec needs.
type workbookXML struct {
	XMLName xml.Name  `xml:"workbook"`
	Sheets  sheetsXML `xml:"sheets"`
}

type sheetsXML struct {
	Sheet []sheetRefXML `xml:"sheet"`
}

type sheetRefXML struct {
	Name string `xml:"name,attr"`
	RID  string `xml:"id,attr"` // r:id relationship attribute
}

// relationshipsXML models xl/_rels/workbook.xml.rels.
type relationshipsXML struct {
	XMLName      xml.Name          `xml:"Relationships"`
	Relationship []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Target string `xml:"Target,attr"`
}

// worksheetXML models a xl/worksheets/sheet*.xml part.
type worksheetXML struct {
	XMLName   xml.Name     `xml:"worksheet"`
	SheetData sheetDataXML `xml:"sheetData"`
}

type sheetDataXML struct {
	Rows []rowXML `xml:"row"`
}

type rowXML struct {
	R     string    `xml:"r,attr"` // declared row number; not trusted for identity
	Cells []cellXML `xml:"c"`
}

type cellXML struct {
	R  string        `xml:"r,attr"` // cell reference, e.g. "B3"
	T  string        `xml:"t,attr"` // type: s, inlineStr, b, e, str, n or empty
	V  *string       `xml:"v"`      // value node; nil when absent
	Is *inlineStrXML `xml:"is"`     // inline string node
}

// inlineStrXML holds the text of an inline string or shared string
// item: a plain <t> child, rich-text <r> runs, or both.
type inlineStrXML struct {
	T    *string  `xml:"t"`
	Runs []runXML `xml:"r"`
}

type runXML struct {
	T string `xml:"t"`
}

// text reconstructs the string by concatenating the plain text node
// and every rich-text run in document order, with no separator.
// Dropping runs here would silently corrupt decoded values.
func (is *inlineStrXML) text() string {
	if is == nil {
		return ""
	}
	s := ""
	if is.T != nil {
		s = *is.T
	}
	for _, r := range is.Runs {
		s += r.T
	}
	return s
}

// sharedStringsXML models xl/sharedStrings.xml.
type sharedStringsXML struct {
	XMLName xml.Name       `xml:"sst"`
	Items   []inlineStrXML `xml:"si"`
}
