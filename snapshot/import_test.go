package snapshot

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dkwon/nestegg/xlsx"
)

func testCategories() []Category {
	return []Category{
		{ID: 1, AssetType: AssetDeposit, Name: "Cash", Active: true},
		{ID: 2, AssetType: AssetStock, Name: "Brokerage", Active: true},
		{ID: 3, AssetType: AssetRealEstate, Name: "Apartment", Active: true},
	}
}

func TestImportRows(t *testing.T) {
	grid := xlsx.Grid{
		{"기준일자", "자금구분", "금액"},
		{"2025-02-01", "Apartment", "12345.67"},
		{"2025-02-02", "", "20000"},
		{"", "", ""}, // blank rows are skipped
		{"2025-02-03", "cash", "1,000,000"}, // case-insensitive, commas stripped
	}

	snaps, err := ImportRows(grid, testCategories())
	if err != nil {
		t.Fatalf("ImportRows: %v", err)
	}
	if len(snaps) != 3 {
		t.Fatalf("got %d snapshots, want 3", len(snaps))
	}

	if snaps[0].CategoryID != 3 {
		t.Errorf("snapshot 0 category = %d, want 3", snaps[0].CategoryID)
	}
	if want := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC); !snaps[0].ReferenceDate.Equal(want) {
		t.Errorf("snapshot 0 date = %v, want %v", snaps[0].ReferenceDate, want)
	}
	if want := decimal.RequireFromString("12345.67"); !snaps[0].Amount.Equal(want) {
		t.Errorf("snapshot 0 amount = %v, want %v", snaps[0].Amount, want)
	}

	if snaps[1].CategoryID != 0 {
		t.Errorf("snapshot 1 category = %d, want 0 (uncategorized)", snaps[1].CategoryID)
	}

	if snaps[2].CategoryID != 1 {
		t.Errorf("snapshot 2 category = %d, want 1", snaps[2].CategoryID)
	}
	if want := decimal.RequireFromString("1000000"); !snaps[2].Amount.Equal(want) {
		t.Errorf("snapshot 2 amount = %v, want %v", snaps[2].Amount, want)
	}
}

func TestImportRowsErrors(t *testing.T) {
	header := []string{"기준일자", "자금구분", "금액"}

	tests := []struct {
		name    string
		grid    xlsx.Grid
		wantRow int // 0 = expect ErrNoDataRows instead of a RowError
	}{
		{
			name:    "header only",
			grid:    xlsx.Grid{header},
			wantRow: 0,
		},
		{
			name:    "only blank data rows",
			grid:    xlsx.Grid{header, {"", "", ""}},
			wantRow: 0,
		},
		{
			name:    "bad date",
			grid:    xlsx.Grid{header, {"02/01/2025", "Cash", "100"}},
			wantRow: 2,
		},
		{
			name:    "missing date",
			grid:    xlsx.Grid{header, {"", "Cash", "100"}},
			wantRow: 2,
		},
		{
			name:    "bad amount",
			grid:    xlsx.Grid{header, {"2025-02-01", "Cash", "lots"}},
			wantRow: 2,
		},
		{
			name:    "missing amount",
			grid:    xlsx.Grid{header, {"2025-02-01", "Cash", ""}},
			wantRow: 2,
		},
		{
			name:    "unknown category",
			grid:    xlsx.Grid{header, {"2025-02-01", "Cash", "100"}, {"2025-02-02", "Yacht", "100"}},
			wantRow: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportRows(tt.grid, testCategories())
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantRow == 0 {
				if !errors.Is(err, ErrNoDataRows) {
					t.Fatalf("error = %v, want ErrNoDataRows", err)
				}
				return
			}
			var re *RowError
			if !errors.As(err, &re) {
				t.Fatalf("error is %T, want *RowError", err)
			}
			if re.Row != tt.wantRow {
				t.Errorf("row = %d, want %d", re.Row, tt.wantRow)
			}
		})
	}
}

func TestImportRowsShortRows(t *testing.T) {
	// Rows narrower than three columns read their missing trailing
	// fields as empty.
	grid := xlsx.Grid{
		{"기준일자", "자금구분", "금액"},
		{"2025-02-01", "Cash"}, // no amount column at all
	}

	_, err := ImportRows(grid, testCategories())
	var re *RowError
	if !errors.As(err, &re) {
		t.Fatalf("error is %T, want *RowError", err)
	}
	if re.Row != 2 {
		t.Errorf("row = %d, want 2", re.Row)
	}
}
