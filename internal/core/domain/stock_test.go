// internal/core/domain/stock_test.go
package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdtran/stockroom-be/internal/core/domain"
)

func TestParseStockStatus(t *testing.T) {
	tests := []struct {
		raw      string
		expected domain.StockStatus
	}{
		{"out-of-stock", domain.StatusOutOfStock},
		{"low-stock", domain.StatusLowStock},
		{" low-stock ", domain.StatusLowStock},
		{"", domain.StatusAny},
		{"overflowing", domain.StatusAny},
		{"OUT-OF-STOCK", domain.StatusAny},
	}

	for _, tt := range tests {
		t.Run("raw_"+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.ParseStockStatus(tt.raw))
		})
	}
}

func TestStockStatus_QtyLevel(t *testing.T) {
	level, ok := domain.StatusOutOfStock.QtyLevel()
	assert.True(t, ok)
	assert.Equal(t, 0, level)

	level, ok = domain.StatusLowStock.QtyLevel()
	assert.True(t, ok)
	assert.Equal(t, 1, level)

	_, ok = domain.StatusAny.QtyLevel()
	assert.False(t, ok)
}

func TestNewStockEntry_Validate(t *testing.T) {
	valid := func() *domain.NewStockEntry {
		return &domain.NewStockEntry{
			ItemCode:    "ITM-0001",
			ProductName: "Box Wrench",
			QtyOnHand:   "12",
		}
	}

	t.Run("accepts_valid_entry", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("requires_item_code", func(t *testing.T) {
		entry := valid()
		entry.ItemCode = ""
		assert.ErrorIs(t, entry.Validate(), domain.ErrInvalidInput)
	})

	t.Run("requires_product_name", func(t *testing.T) {
		entry := valid()
		entry.ProductName = ""
		assert.ErrorIs(t, entry.Validate(), domain.ErrInvalidInput)
	})

	t.Run("defaults_missing_quantity_to_zero", func(t *testing.T) {
		entry := valid()
		entry.QtyOnHand = ""
		require.NoError(t, entry.Validate())
		assert.Equal(t, "0", entry.QtyOnHand)
	})

	t.Run("rejects_non_numeric_quantity", func(t *testing.T) {
		entry := valid()
		entry.QtyOnHand = "a dozen"
		assert.ErrorIs(t, entry.Validate(), domain.ErrInvalidInput)
	})

	t.Run("rejects_negative_quantity", func(t *testing.T) {
		entry := valid()
		entry.QtyOnHand = "-1"
		assert.ErrorIs(t, entry.Validate(), domain.ErrInvalidInput)
	})

	t.Run("accepts_fractional_quantity", func(t *testing.T) {
		entry := valid()
		entry.QtyOnHand = "2.5"
		require.NoError(t, entry.Validate())
	})
}
