// internal/handlers/params.go
package handlers

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vdtran/stockroom-be/internal/core/domain"
	"github.com/vdtran/stockroom-be/internal/core/ports"
)

// queryValue reads one query parameter, treating the literal strings
// "undefined" and "null" the same as an absent parameter. Those arrive
// from clients that serialize unset form fields verbatim.
func queryValue(values url.Values, key string) string {
	v := strings.TrimSpace(values.Get(key))
	if v == "undefined" || v == "null" {
		return ""
	}
	return v
}

// parseListFilter coerces the listing query parameters into a filter.
// Absent and placeholder values contribute nothing; present values must
// coerce cleanly or the whole request is rejected.
func parseListFilter(values url.Values) (ports.ListFilter, error) {
	var filter ports.ListFilter

	filter.ItemCode = queryValue(values, "id")
	filter.CategoryCode = queryValue(values, "category")

	if raw := queryValue(values, "minQty"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, fmt.Errorf("%w: minQty must be numeric", domain.ErrInvalidInput)
		}
		filter.MinQty = &min
	}
	if raw := queryValue(values, "maxQty"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, fmt.Errorf("%w: maxQty must be numeric", domain.ErrInvalidInput)
		}
		filter.MaxQty = &max
	}

	if raw := queryValue(values, "search"); raw != "" {
		filter.Search = "%" + strings.ToLower(raw) + "%"
	}

	filter.Status = domain.ParseStockStatus(queryValue(values, "stockStatus"))

	return filter, nil
}

// parsePageRequest coerces page and limit. Absent values take the
// defaults; present values must be positive integers. Limits above the
// cap are clamped rather than rejected.
func parsePageRequest(values url.Values, defaultLimit, maxLimit int) (ports.PageRequest, error) {
	page := ports.PageRequest{Page: 1, Limit: defaultLimit}

	if raw := queryValue(values, "page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 1 {
			return page, fmt.Errorf("%w: page must be a positive integer", domain.ErrInvalidInput)
		}
		page.Page = p
	}

	if raw := queryValue(values, "limit"); raw != "" {
		l, err := strconv.Atoi(raw)
		if err != nil || l < 1 {
			return page, fmt.Errorf("%w: limit must be a positive integer", domain.ErrInvalidInput)
		}
		if l > maxLimit {
			l = maxLimit
		}
		page.Limit = l
	}

	return page, nil
}

// amountString converts a decoded JSON field into its textual numeric
// form. Bodies may carry quantities as numbers or strings.
func amountString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
