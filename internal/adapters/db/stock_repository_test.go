// internal/adapters/db/stock_repository_test.go
package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdtran/stockroom-be/internal/adapters/db"
	"github.com/vdtran/stockroom-be/internal/core/domain"
	"github.com/vdtran/stockroom-be/internal/core/ports"
	"github.com/vdtran/stockroom-be/test/helpers"
)

var recordColumns = []string{
	"item_code", "warehouse_code", "qty_available",
	"item_name", "description", "category_code", "unit",
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *db.StockRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := db.NewStockRepository(mock, helpers.TestSiteCode, helpers.TestLogger())
	return mock, repo
}

func TestStockRepository_FindRecord(t *testing.T) {
	t.Run("returns_record_when_found", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		rows := pgxmock.NewRows(recordColumns).
			AddRow("ITM-0001", "1903", "12", "Box Wrench", "Chrome wrench", "TOOLS", "EA")
		mock.ExpectQuery("SELECT w.item_code").
			WithArgs(helpers.TestSiteCode, "ITM-0001", 0, 1).
			WillReturnRows(rows)

		record, err := repo.FindRecord(context.Background(), "ITM-0001")
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, "ITM-0001", record.ItemCode)
		assert.Equal(t, "Box Wrench", record.ProductName)
		assert.Equal(t, "12", record.QtyAvailable.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns_nil_when_absent", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectQuery("SELECT w.item_code").
			WillReturnError(pgx.ErrNoRows)

		record, err := repo.FindRecord(context.Background(), "MISSING")
		require.NoError(t, err)
		assert.Nil(t, record)
	})
}

func TestStockRepository_List(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs(helpers.TestSiteCode, "TOOLS").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(123)))

	rows := pgxmock.NewRows(recordColumns).
		AddRow("ITM-0001", "1903", "12", "Box Wrench", "Chrome wrench", "TOOLS", "EA").
		AddRow("ITM-0002", "1903", "3", "Drill Bit", "HSS drill bit", "TOOLS", "EA")
	mock.ExpectQuery("ROW_NUMBER").
		WithArgs(helpers.TestSiteCode, "TOOLS", 0, 50).
		WillReturnRows(rows)

	records, total, err := repo.List(context.Background(),
		ports.ListFilter{CategoryCode: "TOOLS"},
		ports.PageRequest{Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(123), total)
	require.Len(t, records, 2)
	assert.Equal(t, "ITM-0002", records[1].ItemCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockRepository_List_CountError(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WillReturnError(errors.New("connection refused"))

	_, _, err := repo.List(context.Background(), ports.ListFilter{}, ports.PageRequest{Page: 1, Limit: 50})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count stock records")
}

func TestStockRepository_SumQuantity(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`COALESCE\(SUM`).
		WithArgs(helpers.TestSiteCode).
		WillReturnRows(pgxmock.NewRows([]string{"total_qty"}).AddRow("456.5"))

	total, err := repo.SumQuantity(context.Background(), ports.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, "456.5", total.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockRepository_UpdateUnit(t *testing.T) {
	bin := "B-07"
	qty := "9"

	t.Run("updates_provided_fields", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectExec("UPDATE stock_units SET").
			WithArgs(bin, qty, "ITM-0001", helpers.TestSiteCode).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateUnit(context.Background(), "ITM-0001",
			ports.UnitUpdate{BinCode: &bin, QtyOnHand: &qty})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not_found_when_zero_rows", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectExec("UPDATE stock_units SET").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateUnit(context.Background(), "MISSING",
			ports.UnitUpdate{BinCode: &bin})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("rejects_empty_update", func(t *testing.T) {
		_, repo := newMockRepo(t)

		err := repo.UpdateUnit(context.Background(), "ITM-0001", ports.UnitUpdate{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestStockRepository_SubtractQuantity(t *testing.T) {
	t.Run("applies_conditional_decrement", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectExec("UPDATE stock_units").
			WithArgs("ITM-0001", helpers.TestSiteCode, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.SubtractQuantity(context.Background(), "ITM-0001", mustDecimal(t, "5"))
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insufficient_when_unit_exists_but_guard_blocks", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectExec("UPDATE stock_units").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("ITM-0001", helpers.TestSiteCode).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		err := repo.SubtractQuantity(context.Background(), "ITM-0001", mustDecimal(t, "999"))
		assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
	})

	t.Run("not_found_when_unit_absent", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectExec("UPDATE stock_units").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery("SELECT EXISTS").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		err := repo.SubtractQuantity(context.Background(), "MISSING", mustDecimal(t, "1"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestStockRepository_AddQuantity(t *testing.T) {
	t.Run("applies_increment", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectExec("UPDATE stock_units").
			WithArgs("ITM-0001", helpers.TestSiteCode, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.AddQuantity(context.Background(), "ITM-0001", mustDecimal(t, "2.5"))
		require.NoError(t, err)
	})

	t.Run("not_found_when_zero_rows", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectExec("UPDATE stock_units").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.AddQuantity(context.Background(), "MISSING", mustDecimal(t, "1"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestStockRepository_FindRef(t *testing.T) {
	t.Run("returns_ref_when_found", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		rows := pgxmock.NewRows([]string{"gen_id", "full_name", "dept_id", "title"}).
			AddRow("G-100", "Dana Osei", "D-10", "Clerk")
		mock.ExpectQuery("FROM staff_refs").
			WithArgs("REF-1").
			WillReturnRows(rows)

		ref, err := repo.FindRef(context.Background(), "REF-1")
		require.NoError(t, err)
		require.NotNil(t, ref)
		assert.Equal(t, "G-100", ref.GenID)
		assert.Equal(t, "Dana Osei", ref.Name)
		assert.Equal(t, "D-10", ref.DeptID)
	})

	t.Run("returns_nil_when_absent", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectQuery("FROM staff_refs").
			WillReturnError(pgx.ErrNoRows)

		ref, err := repo.FindRef(context.Background(), "MISSING")
		require.NoError(t, err)
		assert.Nil(t, ref)
	})
}
