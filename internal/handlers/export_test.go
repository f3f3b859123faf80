// internal/handlers/export_test.go
package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vdtran/stockroom-be/internal/core/domain"
	"github.com/vdtran/stockroom-be/internal/core/ports"
	"github.com/vdtran/stockroom-be/internal/handlers"
	"github.com/vdtran/stockroom-be/test/helpers"
	"github.com/vdtran/stockroom-be/test/mocks"
)

func exportRecords() []domain.StockRecord {
	return []domain.StockRecord{
		{
			ItemCode:      "ITM-0001",
			WarehouseCode: "1903",
			QtyAvailable:  decimal.RequireFromString("12"),
			ProductName:   "Box Wrench 10mm",
			CategoryCode:  "TOOLS",
			Unit:          "EA",
		},
		{
			ItemCode:      "ITM-0002",
			WarehouseCode: "1903",
			QtyAvailable:  decimal.RequireFromString("3.5"),
			ProductName:   "Cutting Oil",
			CategoryCode:  "SUPPLIES",
			Unit:          "L",
		},
	}
}

func TestExportHandler_ExportJSON(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		setupMocks     func(*mocks.MockStockService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:        "exports_json_with_default_params",
			queryParams: map[string]string{},
			setupMocks: func(service *mocks.MockStockService) {
				service.EXPECT().
					Export(gomock.Any(), ports.ListFilter{}).
					Return(exportRecords(), nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response handlers.JSONExportResponse
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Len(t, response.Stock, 2)
				assert.Equal(t, "ITM-0001", response.Stock[0].ItemCode)
				assert.Equal(t, 2, response.Metadata.TotalItems)
				assert.False(t, response.Metadata.ExportDate.IsZero())
			},
		},
		{
			name:        "forwards_filters_to_service",
			queryParams: map[string]string{"category": "TOOLS", "search": "Wrench"},
			setupMocks: func(service *mocks.MockStockService) {
				service.EXPECT().
					Export(gomock.Any(), ports.ListFilter{
						CategoryCode: "TOOLS",
						Search:       "%wrench%",
					}).
					Return(exportRecords()[:1], nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response handlers.JSONExportResponse
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Len(t, response.Stock, 1)
			},
		},
		{
			name:           "rejects_malformed_quantity_bound",
			queryParams:    map[string]string{"minQty": "heaps"},
			setupMocks:     func(service *mocks.MockStockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "service_error_returns_500",
			queryParams: map[string]string{},
			setupMocks: func(service *mocks.MockStockService) {
				service.EXPECT().
					Export(gomock.Any(), ports.ListFilter{}).
					Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockStockService(ctrl)
			handler := handlers.NewExportHandler(mockService, helpers.TestLogger())

			tt.setupMocks(mockService)

			req := httptest.NewRequest("GET", "/api/v1/stock/export/json", nil)
			if len(tt.queryParams) > 0 {
				q := req.URL.Query()
				for k, v := range tt.queryParams {
					q.Add(k, v)
				}
				req.URL.RawQuery = q.Encode()
			}
			w := httptest.NewRecorder()

			handler.ExportJSON(w, req)

			resp := w.Result()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestExportHandler_ExportExcel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockStockService(ctrl)
	handler := handlers.NewExportHandler(mockService, helpers.TestLogger())

	mockService.EXPECT().
		Export(gomock.Any(), ports.ListFilter{}).
		Return(exportRecords(), nil)

	req := httptest.NewRequest("GET", "/api/v1/stock/export/excel", nil)
	w := httptest.NewRecorder()

	handler.ExportExcel(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "stock_export_")
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestExportHandler_ExportExcel_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockStockService(ctrl)
	handler := handlers.NewExportHandler(mockService, helpers.TestLogger())

	mockService.EXPECT().
		Export(gomock.Any(), ports.ListFilter{}).
		Return(nil, errors.New("connection refused"))

	req := httptest.NewRequest("GET", "/api/v1/stock/export/excel", nil)
	w := httptest.NewRecorder()

	handler.ExportExcel(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
