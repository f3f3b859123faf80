// internal/core/domain/stock.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StockStatus narrows a listing to a fixed quantity level.
type StockStatus string

// Stock status constants. Anything else is treated as "no constraint".
const (
	StatusAny        StockStatus = ""
	StatusOutOfStock StockStatus = "out-of-stock"
	StatusLowStock   StockStatus = "low-stock"
)

// ParseStockStatus maps a raw query value to a StockStatus. Unrecognized
// values fall back to StatusAny rather than being rejected.
func ParseStockStatus(raw string) StockStatus {
	switch StockStatus(strings.TrimSpace(raw)) {
	case StatusOutOfStock:
		return StatusOutOfStock
	case StatusLowStock:
		return StatusLowStock
	default:
		return StatusAny
	}
}

// QtyLevel returns the exact quantity a status pins the listing to.
// ok is false for StatusAny.
func (s StockStatus) QtyLevel() (int, bool) {
	switch s {
	case StatusOutOfStock:
		return 0, true
	case StatusLowStock:
		return 1, true
	default:
		return 0, false
	}
}

// AdjustMode selects the direction of a quantity adjustment.
type AdjustMode string

const (
	AdjustSubtract AdjustMode = "subtract"
	AdjustAdd      AdjustMode = "add"
)

// StockRecord is the joined projection served by the listing endpoints:
// one stock row enriched with its descriptive master attributes.
type StockRecord struct {
	ItemCode      string          `json:"item_code"`
	WarehouseCode string          `json:"warehouse_code"`
	QtyAvailable  decimal.Decimal `json:"qty_available"`
	ProductName   string          `json:"product_name"`
	Description   string          `json:"description,omitempty"`
	CategoryCode  string          `json:"category_code,omitempty"`
	Unit          string          `json:"unit,omitempty"`
}

// StockUnit is a raw stock_units row. Quantity stays in its stored text
// form here; only the query engine and the adjuster interpret it numerically.
type StockUnit struct {
	ItemCode      string    `json:"item_code"`
	WarehouseCode string    `json:"warehouse_code"`
	BinCode       string    `json:"bin_code,omitempty"`
	QtyOnHand     string    `json:"qty_on_hand"`
	HoldFlag      *string   `json:"hold_flag,omitempty"`
	AuditFlag     *string   `json:"audit_flag,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RefEntry is a reference-code lookup result.
type RefEntry struct {
	GenID  string `json:"genid"`
	Name   string `json:"name"`
	DeptID string `json:"deptID"`
	Title  string `json:"title"`
}

// NewStockEntry is the bulk-insert payload: one item_master row and one
// stock_units row created together.
type NewStockEntry struct {
	ItemCode      string
	WarehouseCode string
	BinCode       string
	QtyOnHand     string
	ProductName   string
	Description   string
	CategoryCode  string
	Unit          string
	PackSize      string
}

// Validate performs domain validation on a new stock entry.
func (e *NewStockEntry) Validate() error {
	if e.ItemCode == "" {
		return fmt.Errorf("%w: item_code is required", ErrInvalidInput)
	}
	if e.ProductName == "" {
		return fmt.Errorf("%w: product_name is required", ErrInvalidInput)
	}
	if e.QtyOnHand == "" {
		e.QtyOnHand = "0"
	}
	qty, err := decimal.NewFromString(e.QtyOnHand)
	if err != nil {
		return fmt.Errorf("%w: qty_on_hand must be numeric", ErrInvalidInput)
	}
	if qty.IsNegative() {
		return fmt.Errorf("%w: qty_on_hand cannot be negative", ErrInvalidInput)
	}
	return nil
}
