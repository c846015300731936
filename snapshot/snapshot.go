// Package snapshot maps net-worth fund snapshots to and from the
// spreadsheet grids produced by the xlsx codec: bulk import with
// per-row validation, export to a downloadable workbook, and the
// template metadata a transport layer needs to serve it.
package snapshot

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetType classifies a fund category.
type AssetType string

// Supported asset categories.
const (
	AssetRealEstate AssetType = "real_estate"
	AssetStock      AssetType = "stock"
	AssetDeposit    AssetType = "deposit"
	AssetLiability  AssetType = "liability"
	AssetSavings    AssetType = "savings"
)

// Category is a user-defined grouping of fund snapshots.
type Category struct {
	ID        int64
	AssetType AssetType
	Name      string
	Active    bool
	Note      string
}

// Snapshot records the value of one asset category on a reference date.
// A zero CategoryID means the snapshot is uncategorized.
type Snapshot struct {
	CategoryID    int64
	ReferenceDate time.Time
	Amount        decimal.Decimal
}

// Template download metadata for the transport layer serving the
// ready-to-fill workbook.
const (
	TemplateFilename = "fund_snapshots_template.xlsx"
	ContentType      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// dateFormat is the only date layout accepted in imported sheets and
// emitted in exported ones.
const dateFormat = "2006-01-02"
