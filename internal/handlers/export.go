// internal/handlers/export.go
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/vdtran/stockroom-be/internal/core/domain"
	"github.com/vdtran/stockroom-be/internal/core/ports"
)

// JSONExportResponse is the envelope of GET /api/v1/stock/export/json
type JSONExportResponse struct {
	Stock    []domain.StockRecord `json:"stock"`
	Metadata ExportMetadata       `json:"metadata"`
}

// ExportMetadata contains metadata about the export
type ExportMetadata struct {
	ExportDate time.Time `json:"export_date"`
	TotalItems int       `json:"total_items"`
}

var excelHeaders = []string{
	"Item Code", "Warehouse", "Qty Available", "Product Name",
	"Description", "Category", "Unit",
}

// ExportHandler handles export operations
type ExportHandler struct {
	service ports.StockService
	logger  *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(service ports.StockService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "export")),
	}
}

// ExportExcel handles GET /api/v1/stock/export/excel
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.service.Export(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to retrieve stock data", slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve data")
		return
	}

	excelData, err := h.generateExcelFile(records)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate Excel file", slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("stock_export_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(excelData)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(excelData); err != nil {
		h.logger.ErrorContext(ctx, "failed to write Excel response", slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "Excel export completed",
		slog.Int("total_rows", len(records)),
		slog.String("filename", filename))
}

// ExportJSON handles GET /api/v1/stock/export/json
func (h *ExportHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.service.Export(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to retrieve stock data", slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve data")
		return
	}

	response := JSONExportResponse{
		Stock: records,
		Metadata: ExportMetadata{
			ExportDate: time.Now(),
			TotalItems: len(records),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	filename := fmt.Sprintf("stock_export_%s.json", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.ErrorContext(ctx, "failed to write JSON response", slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "JSON export completed",
		slog.Int("total_rows", len(records)))
}

// generateExcelFile creates an Excel file in memory from the data
func (h *ExportHandler) generateExcelFile(records []domain.StockRecord) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Stock")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range excelHeaders {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, record := range records {
		dataRow := sheet.AddRow()
		for _, value := range []string{
			record.ItemCode,
			record.WarehouseCode,
			record.QtyAvailable.String(),
			record.ProductName,
			record.Description,
			record.CategoryCode,
			record.Unit,
		} {
			cell := dataRow.AddCell()
			cell.Value = value
		}
	}

	for i := range excelHeaders {
		sheet.SetColWidth(i, i, 15)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write Excel file to buffer: %w", err)
	}

	return buffer.Bytes(), nil
}

func (h *ExportHandler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		h.logger.Error("failed to encode JSON response", slog.String("error", err.Error()))
	}
}
