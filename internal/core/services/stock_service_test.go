// internal/core/services/stock_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vdtran/stockroom-be/internal/core/domain"
	"github.com/vdtran/stockroom-be/internal/core/ports"
	"github.com/vdtran/stockroom-be/internal/core/services"
	"github.com/vdtran/stockroom-be/test/helpers"
	"github.com/vdtran/stockroom-be/test/mocks"
)

const testSampleLimit = 50

func newService(t *testing.T) (*mocks.MockStockRepository, *services.StockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStockRepository(ctrl)
	return repo, services.NewStockService(repo, helpers.TestLogger(), testSampleLimit)
}

func TestStockService_Sample(t *testing.T) {
	repo, svc := newService(t)

	records := helpers.CreateTestStockRecords(3)
	repo.EXPECT().Sample(gomock.Any(), testSampleLimit).Return(records, nil)

	got, err := svc.Sample(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestStockService_Sample_EmptyIsNotError(t *testing.T) {
	repo, svc := newService(t)

	repo.EXPECT().Sample(gomock.Any(), testSampleLimit).Return(nil, nil)

	got, err := svc.Sample(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStockService_RawUnits_NotFoundWhenEmpty(t *testing.T) {
	repo, svc := newService(t)

	repo.EXPECT().FindUnits(gomock.Any(), "MISSING").Return(nil, nil)

	_, err := svc.RawUnits(context.Background(), "MISSING")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockService_GetRecord(t *testing.T) {
	t.Run("returns_record", func(t *testing.T) {
		repo, svc := newService(t)
		record := helpers.CreateTestStockRecord()
		repo.EXPECT().FindRecord(gomock.Any(), record.ItemCode).Return(record, nil)

		got, err := svc.GetRecord(context.Background(), record.ItemCode)
		require.NoError(t, err)
		assert.Equal(t, record.ItemCode, got.ItemCode)
	})

	t.Run("wraps_missing_record_as_not_found", func(t *testing.T) {
		repo, svc := newService(t)
		repo.EXPECT().FindRecord(gomock.Any(), "MISSING").Return(nil, nil)

		_, err := svc.GetRecord(context.Background(), "MISSING")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, err.Error(), "MISSING")
	})
}

func TestStockService_List_PaginationMath(t *testing.T) {
	tests := []struct {
		name          string
		total         int64
		limit         int
		expectedPages int
	}{
		{"exact_multiple", 100, 50, 2},
		{"with_remainder", 101, 50, 3},
		{"single_partial_page", 7, 50, 1},
		{"empty_set", 0, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := newService(t)
			page := ports.PageRequest{Page: 1, Limit: tt.limit}
			repo.EXPECT().List(gomock.Any(), ports.ListFilter{}, page).
				Return(nil, tt.total, nil)

			result, err := svc.List(context.Background(), ports.ListFilter{}, page)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPages, result.TotalPages)
			assert.Equal(t, tt.total, result.TotalRecords)
			assert.NotNil(t, result.Data)
		})
	}
}

func TestStockService_TotalQuantity(t *testing.T) {
	repo, svc := newService(t)

	filter := ports.ListFilter{CategoryCode: "TOOLS"}
	repo.EXPECT().SumQuantity(gomock.Any(), filter).
		Return(decimal.RequireFromString("456.5"), nil)

	total, err := svc.TotalQuantity(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, "456.5", total.String())
}

func TestStockService_AdjustQuantity(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		mode      domain.AdjustMode
		setupRepo func(*mocks.MockStockRepository)
		wantErr   error
	}{
		{
			name:   "subtract_valid_amount",
			amount: "5",
			mode:   domain.AdjustSubtract,
			setupRepo: func(m *mocks.MockStockRepository) {
				m.EXPECT().SubtractQuantity(gomock.Any(), "ITM-0001", decimal.RequireFromString("5")).
					Return(nil)
			},
		},
		{
			name:   "add_fractional_amount",
			amount: "2.25",
			mode:   domain.AdjustAdd,
			setupRepo: func(m *mocks.MockStockRepository) {
				m.EXPECT().AddQuantity(gomock.Any(), "ITM-0001", decimal.RequireFromString("2.25")).
					Return(nil)
			},
		},
		{
			name:    "empty_amount_rejected",
			amount:  "",
			mode:    domain.AdjustSubtract,
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "non_numeric_amount_rejected",
			amount:  "abc",
			mode:    domain.AdjustSubtract,
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "negative_amount_rejected",
			amount:  "-3",
			mode:    domain.AdjustAdd,
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "zero_amount_rejected",
			amount:  "0",
			mode:    domain.AdjustSubtract,
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:   "insufficient_quantity_passes_through",
			amount: "99",
			mode:   domain.AdjustSubtract,
			setupRepo: func(m *mocks.MockStockRepository) {
				m.EXPECT().SubtractQuantity(gomock.Any(), "ITM-0001", gomock.Any()).
					Return(domain.ErrInsufficientQuantity)
			},
			wantErr: domain.ErrInsufficientQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := newService(t)
			if tt.setupRepo != nil {
				tt.setupRepo(repo)
			}

			err := svc.AdjustQuantity(context.Background(), "ITM-0001", tt.amount, tt.mode)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStockService_Insert(t *testing.T) {
	t.Run("validates_before_storing", func(t *testing.T) {
		_, svc := newService(t)

		err := svc.Insert(context.Background(), &domain.NewStockEntry{ProductName: "No Code"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("stores_valid_entry", func(t *testing.T) {
		repo, svc := newService(t)

		entry := &domain.NewStockEntry{
			ItemCode:    "NEW-0001",
			ProductName: "Socket Set",
			QtyOnHand:   "7",
		}
		repo.EXPECT().InsertEntry(gomock.Any(), entry).Return(nil)

		require.NoError(t, svc.Insert(context.Background(), entry))
	})
}

func TestStockService_LookupRef(t *testing.T) {
	t.Run("returns_ref", func(t *testing.T) {
		repo, svc := newService(t)
		ref := &domain.RefEntry{GenID: "G-100", Name: "Dana Osei"}
		repo.EXPECT().FindRef(gomock.Any(), "REF-1").Return(ref, nil)

		got, err := svc.LookupRef(context.Background(), "REF-1")
		require.NoError(t, err)
		assert.Equal(t, "G-100", got.GenID)
	})

	t.Run("not_found_when_nil", func(t *testing.T) {
		repo, svc := newService(t)
		repo.EXPECT().FindRef(gomock.Any(), "MISSING").Return(nil, nil)

		_, err := svc.LookupRef(context.Background(), "MISSING")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("repository_errors_are_wrapped", func(t *testing.T) {
		repo, svc := newService(t)
		repo.EXPECT().FindRef(gomock.Any(), "REF-1").
			Return(nil, errors.New("connection refused"))

		_, err := svc.LookupRef(context.Background(), "REF-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to look up reference")
	})
}
