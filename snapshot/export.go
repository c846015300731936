package snapshot

import "github.com/dkwon/nestegg/xlsx"

// headerRow matches the header of the embedded template so that an
// exported workbook round-trips through ImportRows unchanged. The
// labels are the template's own: reference date, fund category, amount.
var headerRow = []string{"기준일자", "자금구분", "금액"}

// Template returns the ready-to-fill workbook served by the template
// download endpoint, alongside TemplateFilename and ContentType.
func Template() []byte {
	return xlsx.Template()
}

// ExportWorkbook encodes snapshots into a workbook with one row per
// snapshot under the template header. Category names are resolved from
// the supplied categories; snapshots with no (or an unknown) category
// get an empty category cell.
func ExportWorkbook(snaps []Snapshot, categories []Category) ([]byte, error) {
	names := make(map[int64]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	grid := make(xlsx.Grid, 0, len(snaps)+1)
	grid = append(grid, append([]string(nil), headerRow...))
	for _, s := range snaps {
		grid = append(grid, []string{
			s.ReferenceDate.Format(dateFormat),
			names[s.CategoryID],
			s.Amount.String(),
		})
	}

	return xlsx.Encode(grid)
}
