// internal/core/ports/stock_service.go
package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vdtran/stockroom-be/internal/core/domain"
)

// StockService defines the application service port for stock operations.
// This interface is implemented by the application service.
type StockService interface {
	Sample(ctx context.Context) ([]domain.StockRecord, error)
	RawUnits(ctx context.Context, itemCode string) ([]domain.StockUnit, error)
	GetRecord(ctx context.Context, itemCode string) (*domain.StockRecord, error)
	List(ctx context.Context, filter ListFilter, page PageRequest) (*ListResult, error)
	TotalQuantity(ctx context.Context, filter ListFilter) (decimal.Decimal, error)
	Export(ctx context.Context, filter ListFilter) ([]domain.StockRecord, error)
	UpdateUnit(ctx context.Context, itemCode string, fields UnitUpdate) error
	AdjustQuantity(ctx context.Context, itemCode, amount string, mode domain.AdjustMode) error
	Insert(ctx context.Context, entry *domain.NewStockEntry) error
	LookupRef(ctx context.Context, code string) (*domain.RefEntry, error)
}

// ListFilter holds the optional, already-coerced search filters. A zero
// field contributes no predicate and no binding to the generated query.
type ListFilter struct {
	ItemCode     string
	CategoryCode string
	MinQty       *float64
	MaxQty       *float64
	// Search is the normalized substring pattern (lower-cased, wrapped in
	// %...%), ready for a LIKE match over name and description.
	Search string
	Status domain.StockStatus
}

// PageRequest is a validated 1-based page window. Offset and MaxRow
// delimit the half-open row range [Offset, MaxRow) of the sorted set.
type PageRequest struct {
	Page  int
	Limit int
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

func (p PageRequest) MaxRow() int {
	return p.Offset() + p.Limit
}

// UnitUpdate carries the updatable fields of a stock unit. Nil means
// "leave unchanged".
type UnitUpdate struct {
	BinCode   *string
	QtyOnHand *string
	HoldFlag  *string
	AuditFlag *string
}

// ListResult is the paginated response envelope.
type ListResult struct {
	Page         int                  `json:"page"`
	Limit        int                  `json:"limit"`
	TotalRecords int64                `json:"totalRecords"`
	TotalPages   int                  `json:"totalPages"`
	Data         []domain.StockRecord `json:"data"`
}
