// internal/handlers/stock.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vdtran/stockroom-be/internal/core/domain"
	"github.com/vdtran/stockroom-be/internal/core/ports"
)

// StockHandler handles stock-related HTTP requests
type StockHandler struct {
	service      ports.StockService
	logger       *slog.Logger
	defaultLimit int
	maxLimit     int
}

// NewStockHandler creates a new stock handler
func NewStockHandler(service ports.StockService, logger *slog.Logger, defaultLimit, maxLimit int) *StockHandler {
	return &StockHandler{
		service:      service,
		logger:       logger.With(slog.String("handler", "stock")),
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Sample handles GET /api/v1/stock/sample
func (h *StockHandler) Sample(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.Sample(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to fetch sample")
		return
	}
	h.respondJSON(w, http.StatusOK, records)
}

// RawUnits handles GET /api/v1/stock/raw/{id}
func (h *StockHandler) RawUnits(w http.ResponseWriter, r *http.Request) {
	itemCode := r.PathValue("id")

	units, err := h.service.RawUnits(r.Context(), itemCode)
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to fetch stock rows")
		return
	}
	h.respondJSON(w, http.StatusOK, units)
}

// GetRecord handles GET /api/v1/stock/{id}
func (h *StockHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	itemCode := r.PathValue("id")

	record, err := h.service.GetRecord(r.Context(), itemCode)
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to fetch stock record")
		return
	}
	h.respondJSON(w, http.StatusOK, record)
}

// List handles GET /api/v1/stock
func (h *StockHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, page, ok := h.parseListQuery(w, r)
	if !ok {
		return
	}

	result, err := h.service.List(r.Context(), filter, page)
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to list stock")
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

// TotalQuantity handles GET /api/v1/stock/total-quantity
func (h *StockHandler) TotalQuantity(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	total, err := h.service.TotalQuantity(r.Context(), filter)
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to total quantities")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"totalQty": total})
}

// ListByStatus handles GET /api/v1/stock/status
func (h *StockHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	page, err := parsePageRequest(r.URL.Query(), h.defaultLimit, h.maxLimit)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	filter := ports.ListFilter{
		Status: domain.ParseStockStatus(queryValue(r.URL.Query(), "stockStatus")),
	}

	result, err := h.service.List(r.Context(), filter, page)
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to list stock")
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

// UpdateUnitRequest is the body of PUT /api/v1/stock/{id}
type UpdateUnitRequest struct {
	BinCode   *string `json:"bin_code,omitempty"`
	QtyOnHand *string `json:"qty_on_hand,omitempty"`
	HoldFlag  *string `json:"hold_flag,omitempty"`
	AuditFlag *string `json:"audit_flag,omitempty"`
}

// UpdateUnit handles PUT /api/v1/stock/{id}
func (h *StockHandler) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	itemCode := r.PathValue("id")

	var req UpdateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields := ports.UnitUpdate{
		BinCode:   req.BinCode,
		QtyOnHand: req.QtyOnHand,
		HoldFlag:  req.HoldFlag,
		AuditFlag: req.AuditFlag,
	}

	if err := h.service.UpdateUnit(r.Context(), itemCode, fields); err != nil {
		h.respondServiceError(w, r, err, "Failed to update stock unit")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Stock unit updated successfully"})
}

// Subtract handles PUT /api/v1/stock/{id}/subtract
func (h *StockHandler) Subtract(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, "qty_to_subtract", domain.AdjustSubtract, "Quantity subtracted successfully")
}

// Add handles PUT /api/v1/stock/{id}/add
func (h *StockHandler) Add(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, "qty_to_add", domain.AdjustAdd, "Quantity added successfully")
}

func (h *StockHandler) adjust(w http.ResponseWriter, r *http.Request, field string, mode domain.AdjustMode, message string) {
	itemCode := r.PathValue("id")

	// UseNumber keeps numeric amounts in their textual form so large and
	// fractional values survive untouched until decimal parsing.
	var body map[string]interface{}
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	amount := amountString(body[field])
	if err := h.service.AdjustQuantity(r.Context(), itemCode, amount, mode); err != nil {
		h.respondServiceError(w, r, err, "Failed to adjust quantity")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": message})
}

// CreateStockRequest is the body of POST /api/v1/stock
type CreateStockRequest struct {
	ItemCode      string `json:"item_code"`
	WarehouseCode string `json:"warehouse_code,omitempty"`
	BinCode       string `json:"bin_code,omitempty"`
	QtyOnHand     string `json:"qty_on_hand,omitempty"`
	ProductName   string `json:"product_name"`
	Description   string `json:"description,omitempty"`
	CategoryCode  string `json:"category_code,omitempty"`
	Unit          string `json:"unit,omitempty"`
	PackSize      string `json:"pack_size,omitempty"`
}

// ToDomain converts the request to a domain entry
func (r *CreateStockRequest) ToDomain() *domain.NewStockEntry {
	return &domain.NewStockEntry{
		ItemCode:      r.ItemCode,
		WarehouseCode: r.WarehouseCode,
		BinCode:       r.BinCode,
		QtyOnHand:     r.QtyOnHand,
		ProductName:   r.ProductName,
		Description:   r.Description,
		CategoryCode:  r.CategoryCode,
		Unit:          r.Unit,
		PackSize:      r.PackSize,
	}
}

// Create handles POST /api/v1/stock
func (h *StockHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry := req.ToDomain()
	if err := h.service.Insert(r.Context(), entry); err != nil {
		h.respondServiceError(w, r, err, "Failed to create stock entry")
		return
	}

	h.logger.InfoContext(r.Context(), "stock entry created",
		slog.String("item_code", entry.ItemCode))

	h.respondJSON(w, http.StatusCreated, map[string]string{
		"message":   "Stock entry created successfully",
		"item_code": entry.ItemCode,
	})
}

// LookupRef handles GET /api/v1/refs/{code}
func (h *StockHandler) LookupRef(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	ref, err := h.service.LookupRef(r.Context(), code)
	if err != nil {
		h.respondServiceError(w, r, err, "Failed to look up reference")
		return
	}
	h.respondJSON(w, http.StatusOK, ref)
}

// parseListQuery coerces the shared filter and pagination parameters,
// responding with 400 on the first failure.
func (h *StockHandler) parseListQuery(w http.ResponseWriter, r *http.Request) (ports.ListFilter, ports.PageRequest, bool) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return filter, ports.PageRequest{}, false
	}

	page, err := parsePageRequest(r.URL.Query(), h.defaultLimit, h.maxLimit)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return filter, page, false
	}
	return filter, page, true
}

// respondServiceError maps domain sentinels to HTTP statuses.
func (h *StockHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInsufficientQuantity):
		h.respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), fallback,
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		h.respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   fallback,
			"details": err.Error(),
		})
	}
}

// Helper methods

func (h *StockHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *StockHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
