package snapshot

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dkwon/nestegg/xlsx"
)

// ErrNoDataRows indicates the uploaded sheet held nothing importable:
// either the grid had no rows beyond the header, or every data row was
// blank.
var ErrNoDataRows = errors.New("snapshot: no data rows found")

// RowError reports a validation failure on one sheet row. Row is the
// 1-based spreadsheet row number (the header is row 1), so the message
// points the user at the row they see in their spreadsheet program.
type RowError struct {
	Row    int
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// ImportRows converts a decoded workbook grid into snapshots. The
// first row is assumed to be the template header and is skipped.
// Each data row carries reference date (YYYY-MM-DD), category name,
// and amount, in that order; completely blank rows are ignored.
//
// Category names are matched case-insensitively against the supplied
// categories; an empty name imports the row as uncategorized, while an
// unknown one fails the whole import with a *RowError. Import is
// all-or-nothing: the first invalid row aborts it.
func ImportRows(grid xlsx.Grid, categories []Category) ([]Snapshot, error) {
	if len(grid) <= 1 {
		return nil, ErrNoDataRows
	}

	byName := make(map[string]Category, len(categories))
	for _, c := range categories {
		if name := strings.TrimSpace(c.Name); name != "" {
			byName[strings.ToLower(name)] = c
		}
	}

	var snaps []Snapshot
	for i, row := range grid[1:] {
		rowNum := i + 2

		dateVal := field(row, 0)
		catVal := field(row, 1)
		amountVal := field(row, 2)
		if dateVal == "" && catVal == "" && amountVal == "" {
			continue
		}

		refDate, err := parseReferenceDate(dateVal, rowNum)
		if err != nil {
			return nil, err
		}
		amount, err := parseAmount(amountVal, rowNum)
		if err != nil {
			return nil, err
		}

		var categoryID int64
		if catVal != "" {
			c, ok := byName[strings.ToLower(catVal)]
			if !ok {
				return nil, &RowError{Row: rowNum, Reason: fmt.Sprintf("unknown category %q", catVal)}
			}
			categoryID = c.ID
		}

		snaps = append(snaps, Snapshot{
			CategoryID:    categoryID,
			ReferenceDate: refDate,
			Amount:        amount,
		})
	}

	if len(snaps) == 0 {
		return nil, ErrNoDataRows
	}
	return snaps, nil
}

func parseReferenceDate(value string, rowNum int) (time.Time, error) {
	if value == "" {
		return time.Time{}, &RowError{Row: rowNum, Reason: "reference date is required"}
	}
	d, err := time.Parse(dateFormat, value)
	if err != nil {
		return time.Time{}, &RowError{
			Row:    rowNum,
			Reason: fmt.Sprintf("invalid date format %q, use YYYY-MM-DD", value),
		}
	}
	return d, nil
}

func parseAmount(value string, rowNum int) (decimal.Decimal, error) {
	// Tolerate thousands separators the way the original import did.
	value = strings.ReplaceAll(value, ",", "")
	if value == "" {
		return decimal.Decimal{}, &RowError{Row: rowNum, Reason: "amount is required"}
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, &RowError{
			Row:    rowNum,
			Reason: fmt.Sprintf("invalid amount %q", value),
		}
	}
	return amount, nil
}

// field returns the trimmed cell at position i, treating positions
// beyond the row's length as empty.
func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
