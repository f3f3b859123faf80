// internal/core/ports/stock_repository.go
package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vdtran/stockroom-be/internal/core/domain"
)

// StockRepository defines the persistence port for stock data.
// This interface is implemented by the database adapter.
//
// Find* methods return (nil, nil) when no row matches; the service layer
// turns that into domain.ErrNotFound. Write methods return domain
// sentinels directly because the adapter is the only layer that can see
// the affected-row count.
type StockRepository interface {
	Sample(ctx context.Context, limit int) ([]domain.StockRecord, error)
	FindUnits(ctx context.Context, itemCode string) ([]domain.StockUnit, error)
	FindRecord(ctx context.Context, itemCode string) (*domain.StockRecord, error)
	List(ctx context.Context, filter ListFilter, page PageRequest) ([]domain.StockRecord, int64, error)
	ListAll(ctx context.Context, filter ListFilter) ([]domain.StockRecord, error)
	SumQuantity(ctx context.Context, filter ListFilter) (decimal.Decimal, error)
	UpdateUnit(ctx context.Context, itemCode string, fields UnitUpdate) error
	SubtractQuantity(ctx context.Context, itemCode string, qty decimal.Decimal) error
	AddQuantity(ctx context.Context, itemCode string, qty decimal.Decimal) error
	InsertEntry(ctx context.Context, entry *domain.NewStockEntry) error
	FindRef(ctx context.Context, code string) (*domain.RefEntry, error)
}
