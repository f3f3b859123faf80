// internal/adapters/db/stock_repository.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/vdtran/stockroom-be/internal/core/domain"
	"github.com/vdtran/stockroom-be/internal/core/ports"
)

// Pool is the slice of pool behavior the repository needs. *Database
// satisfies it in production; the mock pool satisfies it in tests.
type Pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// StockRepository implements ports.StockRepository against PostgreSQL.
// Every read goes through a QueryPlan so that filtering, counting and
// aggregation always agree on the predicate set.
type StockRepository struct {
	db     Pool
	site   string
	logger *slog.Logger
}

var _ ports.StockRepository = (*StockRepository)(nil)

// NewStockRepository creates a repository scoped to one warehouse site.
func NewStockRepository(db Pool, site string, logger *slog.Logger) *StockRepository {
	return &StockRepository{
		db:     db,
		site:   site,
		logger: logger.With(slog.String("repository", "stock")),
	}
}

// Sample returns the first rows of the unfiltered listing.
func (r *StockRepository) Sample(ctx context.Context, limit int) ([]domain.StockRecord, error) {
	plan := NewQueryPlan(r.site, ports.ListFilter{}).
		WithPage(ports.PageRequest{Page: 1, Limit: limit})

	query, args, err := plan.DataSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build sample query: %w", err)
	}
	return r.queryRecords(ctx, query, args)
}

// FindUnits returns the raw stock_units rows for an item across all
// warehouses, unfiltered by the listing visibility rules.
func (r *StockRepository) FindUnits(ctx context.Context, itemCode string) ([]domain.StockUnit, error) {
	query := `
		SELECT item_code, warehouse_code, bin_code, qty_on_hand,
		       hold_flag, audit_flag, updated_at
		FROM stock_units
		WHERE item_code = $1
		ORDER BY warehouse_code ASC, bin_code ASC`

	rows, err := r.db.Query(ctx, query, itemCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock units: %w", err)
	}
	defer rows.Close()

	var units []domain.StockUnit
	for rows.Next() {
		var u domain.StockUnit
		var binCode, qtyOnHand sql.NullString
		if err := rows.Scan(
			&u.ItemCode, &u.WarehouseCode, &binCode, &qtyOnHand,
			&u.HoldFlag, &u.AuditFlag, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stock unit: %w", err)
		}
		u.BinCode = binCode.String
		u.QtyOnHand = qtyOnHand.String
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stock units: %w", err)
	}
	return units, nil
}

// FindRecord returns the joined record for one item, or (nil, nil) when
// no visible row exists.
func (r *StockRepository) FindRecord(ctx context.Context, itemCode string) (*domain.StockRecord, error) {
	plan := NewQueryPlan(r.site, ports.ListFilter{ItemCode: itemCode}).
		WithPage(ports.PageRequest{Page: 1, Limit: 1})

	query, args, err := plan.DataSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build record query: %w", err)
	}

	record, err := r.scanRecord(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query stock record: %w", err)
	}
	return record, nil
}

// List returns one page of filtered records plus the unbounded total.
// The count runs first so an out-of-range page still reports the total.
func (r *StockRepository) List(ctx context.Context, filter ports.ListFilter, page ports.PageRequest) ([]domain.StockRecord, int64, error) {
	plan := NewQueryPlan(r.site, filter)

	countQuery, countArgs, err := plan.CountSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count stock records: %w", err)
	}

	dataQuery, dataArgs, err := plan.WithPage(page).DataSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build data query: %w", err)
	}

	records, err := r.queryRecords(ctx, dataQuery, dataArgs)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// ListAll returns the full filtered set without a pagination window.
func (r *StockRepository) ListAll(ctx context.Context, filter ports.ListFilter) ([]domain.StockRecord, error) {
	query, args, err := NewQueryPlan(r.site, filter).DataSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build export query: %w", err)
	}
	return r.queryRecords(ctx, query, args)
}

// SumQuantity aggregates on-hand quantity over the filtered set.
func (r *StockRepository) SumQuantity(ctx context.Context, filter ports.ListFilter) (decimal.Decimal, error) {
	query, args, err := NewQueryPlan(r.site, filter).SumSQL()
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build sum query: %w", err)
	}

	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum quantities: %w", err)
	}
	return total, nil
}

// UpdateUnit applies the non-nil fields to the item's stock unit.
func (r *StockRepository) UpdateUnit(ctx context.Context, itemCode string, fields ports.UnitUpdate) error {
	qb := squirrel.Update("stock_units").
		PlaceholderFormat(squirrel.Dollar).
		Where(squirrel.Eq{"item_code": itemCode, "warehouse_code": r.site})

	touched := false
	if fields.BinCode != nil {
		qb = qb.Set("bin_code", *fields.BinCode)
		touched = true
	}
	if fields.QtyOnHand != nil {
		qb = qb.Set("qty_on_hand", *fields.QtyOnHand)
		touched = true
	}
	if fields.HoldFlag != nil {
		qb = qb.Set("hold_flag", *fields.HoldFlag)
		touched = true
	}
	if fields.AuditFlag != nil {
		qb = qb.Set("audit_flag", *fields.AuditFlag)
		touched = true
	}
	if !touched {
		return fmt.Errorf("%w: no updatable fields provided", domain.ErrInvalidInput)
	}
	qb = qb.Set("updated_at", squirrel.Expr("NOW()"))

	query, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update stock unit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, itemCode)
	}
	return nil
}

const subtractQuery = `
	UPDATE stock_units
	SET qty_on_hand = (CAST(NULLIF(qty_on_hand, '') AS numeric) - $3)::text,
	    updated_at = NOW()
	WHERE item_code = $1
	  AND warehouse_code = $2
	  AND CAST(NULLIF(qty_on_hand, '') AS numeric) >= $3`

// SubtractQuantity decrements on-hand quantity in a single conditional
// statement. The guard in the WHERE clause keeps the quantity from going
// negative without a read-then-write window.
func (r *StockRepository) SubtractQuantity(ctx context.Context, itemCode string, qty decimal.Decimal) error {
	tag, err := r.db.Exec(ctx, subtractQuery, itemCode, r.site, qty)
	if err != nil {
		return fmt.Errorf("failed to subtract quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		exists, err := r.unitExists(ctx, itemCode)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: %s", domain.ErrNotFound, itemCode)
		}
		return fmt.Errorf("%w: %s", domain.ErrInsufficientQuantity, itemCode)
	}

	r.logger.DebugContext(ctx, "quantity subtracted",
		slog.String("item_code", itemCode),
		slog.String("qty", qty.String()),
	)
	return nil
}

const addQuery = `
	UPDATE stock_units
	SET qty_on_hand = (COALESCE(CAST(NULLIF(qty_on_hand, '') AS numeric), 0) + $3)::text,
	    updated_at = NOW()
	WHERE item_code = $1
	  AND warehouse_code = $2`

// AddQuantity increments on-hand quantity. A missing or empty stored
// quantity counts as zero.
func (r *StockRepository) AddQuantity(ctx context.Context, itemCode string, qty decimal.Decimal) error {
	tag, err := r.db.Exec(ctx, addQuery, itemCode, r.site, qty)
	if err != nil {
		return fmt.Errorf("failed to add quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, itemCode)
	}

	r.logger.DebugContext(ctx, "quantity added",
		slog.String("item_code", itemCode),
		slog.String("qty", qty.String()),
	)
	return nil
}

const insertMasterQuery = `
	INSERT INTO item_master (item_code, item_name, description, category_code, unit)
	VALUES ($1, $2, $3, $4, $5)`

const insertDetailQuery = `
	INSERT INTO item_detail (item_code, pack_size)
	VALUES ($1, $2)`

const insertUnitQuery = `
	INSERT INTO stock_units (item_code, warehouse_code, bin_code, qty_on_hand, updated_at)
	VALUES ($1, $2, $3, $4, NOW())`

// InsertEntry creates the master, detail and unit rows for a new item in
// one transaction.
func (r *StockRepository) InsertEntry(ctx context.Context, entry *domain.NewStockEntry) error {
	warehouse := entry.WarehouseCode
	if warehouse == "" {
		warehouse = r.site
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	batch.Queue(insertMasterQuery,
		entry.ItemCode, entry.ProductName, entry.Description, entry.CategoryCode, entry.Unit)
	batch.Queue(insertDetailQuery, entry.ItemCode, entry.PackSize)
	batch.Queue(insertUnitQuery, entry.ItemCode, warehouse, entry.BinCode, entry.QtyOnHand)

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("failed to insert stock entry: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close insert batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit stock entry: %w", err)
	}

	r.logger.InfoContext(ctx, "stock entry inserted",
		slog.String("item_code", entry.ItemCode),
		slog.String("warehouse_code", warehouse),
	)
	return nil
}

const findRefQuery = `
	SELECT gen_id, full_name, dept_id, title
	FROM staff_refs
	WHERE ref_code = $1`

// FindRef looks up a reference code, or (nil, nil) when absent.
func (r *StockRepository) FindRef(ctx context.Context, code string) (*domain.RefEntry, error) {
	var ref domain.RefEntry
	var deptID, title sql.NullString
	err := r.db.QueryRow(ctx, findRefQuery, code).Scan(&ref.GenID, &ref.Name, &deptID, &title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query reference: %w", err)
	}
	ref.DeptID = deptID.String
	ref.Title = title.String
	return &ref, nil
}

func (r *StockRepository) unitExists(ctx context.Context, itemCode string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM stock_units WHERE item_code = $1 AND warehouse_code = $2)`,
		itemCode, r.site,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check stock unit: %w", err)
	}
	return exists, nil
}

func (r *StockRepository) queryRecords(ctx context.Context, query string, args []interface{}) ([]domain.StockRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock records: %w", err)
	}
	defer rows.Close()

	var records []domain.StockRecord
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock record: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stock records: %w", err)
	}
	return records, nil
}

func (r *StockRepository) scanRecord(row pgx.Row) (*domain.StockRecord, error) {
	var record domain.StockRecord
	var qty decimal.NullDecimal
	var name, description, category, unit sql.NullString

	if err := row.Scan(
		&record.ItemCode, &record.WarehouseCode, &qty,
		&name, &description, &category, &unit,
	); err != nil {
		return nil, err
	}

	record.QtyAvailable = qty.Decimal
	record.ProductName = name.String
	record.Description = description.String
	record.CategoryCode = category.String
	record.Unit = unit.String
	return &record, nil
}
