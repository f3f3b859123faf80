// internal/core/services/stock.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/vdtran/stockroom-be/internal/core/domain"
	"github.com/vdtran/stockroom-be/internal/core/ports"
)

// StockService implements the application service port. It owns the
// business rules around visibility, adjustment and pagination math, and
// delegates persistence to the repository port.
type StockService struct {
	repo        ports.StockRepository
	logger      *slog.Logger
	sampleLimit int
}

var _ ports.StockService = (*StockService)(nil)

// NewStockService creates the stock application service.
func NewStockService(repo ports.StockRepository, logger *slog.Logger, sampleLimit int) *StockService {
	return &StockService{
		repo:        repo,
		logger:      logger.With(slog.String("service", "stock")),
		sampleLimit: sampleLimit,
	}
}

// Sample returns a fixed-size preview of the listing.
func (s *StockService) Sample(ctx context.Context) ([]domain.StockRecord, error) {
	records, err := s.repo.Sample(ctx, s.sampleLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sample: %w", err)
	}
	if records == nil {
		records = []domain.StockRecord{}
	}
	return records, nil
}

// RawUnits returns the stored stock rows for an item without the listing
// visibility rules applied.
func (s *StockService) RawUnits(ctx context.Context, itemCode string) ([]domain.StockUnit, error) {
	units, err := s.repo.FindUnits(ctx, itemCode)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stock units: %w", err)
	}
	if len(units) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, itemCode)
	}
	return units, nil
}

// GetRecord returns the joined record for one visible item.
func (s *StockService) GetRecord(ctx context.Context, itemCode string) (*domain.StockRecord, error) {
	record, err := s.repo.FindRecord(ctx, itemCode)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stock record: %w", err)
	}
	if record == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, itemCode)
	}
	return record, nil
}

// List returns one page of filtered records with the totals computed
// from the unbounded count. An out-of-range page yields an empty data
// slice, not an error.
func (s *StockService) List(ctx context.Context, filter ports.ListFilter, page ports.PageRequest) (*ports.ListResult, error) {
	records, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock: %w", err)
	}
	if records == nil {
		records = []domain.StockRecord{}
	}

	totalPages := int(total) / page.Limit
	if int(total)%page.Limit > 0 {
		totalPages++
	}

	return &ports.ListResult{
		Page:         page.Page,
		Limit:        page.Limit,
		TotalRecords: total,
		TotalPages:   totalPages,
		Data:         records,
	}, nil
}

// TotalQuantity aggregates on-hand quantity over the filtered set.
func (s *StockService) TotalQuantity(ctx context.Context, filter ports.ListFilter) (decimal.Decimal, error) {
	total, err := s.repo.SumQuantity(ctx, filter)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to total quantities: %w", err)
	}
	return total, nil
}

// Export returns the full filtered set for file generation.
func (s *StockService) Export(ctx context.Context, filter ports.ListFilter) ([]domain.StockRecord, error) {
	records, err := s.repo.ListAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to export stock: %w", err)
	}
	if records == nil {
		records = []domain.StockRecord{}
	}
	return records, nil
}

// UpdateUnit applies a partial update to an item's stock unit.
func (s *StockService) UpdateUnit(ctx context.Context, itemCode string, fields ports.UnitUpdate) error {
	if err := s.repo.UpdateUnit(ctx, itemCode, fields); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "stock unit updated", slog.String("item_code", itemCode))
	return nil
}

// AdjustQuantity validates the requested delta and applies it in the
// chosen direction. Amounts arrive as strings so clients may send either
// JSON numbers or numeric strings; both must parse to a positive decimal.
func (s *StockService) AdjustQuantity(ctx context.Context, itemCode, amount string, mode domain.AdjustMode) error {
	if amount == "" {
		return fmt.Errorf("%w: amount is required", domain.ErrInvalidAmount)
	}
	qty, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("%w: %q is not numeric", domain.ErrInvalidAmount, amount)
	}
	if !qty.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidAmount)
	}

	switch mode {
	case domain.AdjustSubtract:
		err = s.repo.SubtractQuantity(ctx, itemCode, qty)
	case domain.AdjustAdd:
		err = s.repo.AddQuantity(ctx, itemCode, qty)
	default:
		return fmt.Errorf("%w: unknown adjust mode %q", domain.ErrInvalidInput, mode)
	}
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "quantity adjusted",
		slog.String("item_code", itemCode),
		slog.String("mode", string(mode)),
		slog.String("amount", qty.String()),
	)
	return nil
}

// Insert validates and stores a new stock entry.
func (s *StockService) Insert(ctx context.Context, entry *domain.NewStockEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if err := s.repo.InsertEntry(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert stock entry: %w", err)
	}
	return nil
}

// LookupRef resolves a reference code to its staff entry.
func (s *StockService) LookupRef(ctx context.Context, code string) (*domain.RefEntry, error) {
	ref, err := s.repo.FindRef(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up reference: %w", err)
	}
	if ref == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, code)
	}
	return ref, nil
}
