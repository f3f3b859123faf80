// internal/adapters/db/query_plan.go
package db

import (
	"github.com/Masterminds/squirrel"

	"github.com/vdtran/stockroom-be/internal/core/ports"
)

// qtyExpr interprets the text-stored on-hand quantity numerically. Empty
// strings become NULL instead of a cast error.
const qtyExpr = "CAST(NULLIF(su.qty_on_hand, '') AS numeric)"

// recordColumns is the projection served by the listing endpoints.
var recordColumns = []string{
	"su.item_code",
	"su.warehouse_code",
	qtyExpr + " AS qty_available",
	"im.item_name",
	"im.description",
	"im.category_code",
	"im.unit",
}

// windowColumns re-select the projection from the row-numbered inner query.
var windowColumns = []string{
	"w.item_code",
	"w.warehouse_code",
	"w.qty_available",
	"w.item_name",
	"w.description",
	"w.category_code",
	"w.unit",
}

// QueryPlan turns a coerced filter set into the pair of statements the
// listing endpoints need: a count statement and a windowed data statement
// built from one shared, deterministically ordered predicate list. The
// plan is a per-request value; it holds no connection state and can be
// exercised in tests without a store.
type QueryPlan struct {
	site   string
	filter ports.ListFilter
	page   *ports.PageRequest
}

// NewQueryPlan creates a plan scoped to one warehouse site.
func NewQueryPlan(site string, filter ports.ListFilter) *QueryPlan {
	return &QueryPlan{site: site, filter: filter}
}

// WithPage returns a copy of the plan with a pagination window applied.
func (p *QueryPlan) WithPage(page ports.PageRequest) *QueryPlan {
	cp := *p
	cp.page = &page
	return &cp
}

// guard accepts rows whose flag column is NULL or a single character.
// Anything longer marks the row as flagged and invisible to listings.
func guard(column string) squirrel.Sqlizer {
	return squirrel.Expr("(" + column + " IS NULL OR LENGTH(" + column + ") = 1)")
}

// Predicates returns the WHERE conditions in a fixed order: the
// unconditional visibility rules first, then one condition per present
// filter in declaration order. Absent filters contribute nothing.
func (p *QueryPlan) Predicates() []squirrel.Sqlizer {
	preds := []squirrel.Sqlizer{
		squirrel.Eq{"su.warehouse_code": p.site},
		squirrel.Expr("im.item_name IS NOT NULL"),
		guard("su.hold_flag"),
		guard("su.audit_flag"),
		guard("idt.control_flag"),
	}

	if p.filter.ItemCode != "" {
		preds = append(preds, squirrel.Eq{"su.item_code": p.filter.ItemCode})
	}
	if p.filter.CategoryCode != "" {
		preds = append(preds, squirrel.Eq{"im.category_code": p.filter.CategoryCode})
	}
	if p.filter.MinQty != nil {
		preds = append(preds, squirrel.Expr(qtyExpr+" >= ?", *p.filter.MinQty))
	}
	if p.filter.MaxQty != nil {
		preds = append(preds, squirrel.Expr(qtyExpr+" <= ?", *p.filter.MaxQty))
	}
	if p.filter.Search != "" {
		preds = append(preds, squirrel.Expr(
			"(LOWER(im.item_name) LIKE ? OR LOWER(im.description) LIKE ?)",
			p.filter.Search, p.filter.Search))
	}
	if level, ok := p.filter.Status.QtyLevel(); ok {
		preds = append(preds, squirrel.Expr(qtyExpr+" = ?", level))
	}

	return preds
}

// baseSelect is the fixed join with all predicates applied.
func (p *QueryPlan) baseSelect(columns ...string) squirrel.SelectBuilder {
	qb := squirrel.Select(columns...).
		From("stock_units su").
		LeftJoin("item_master im ON im.item_code = su.item_code").
		LeftJoin("item_detail idt ON idt.item_code = su.item_code")
	for _, pred := range p.Predicates() {
		qb = qb.Where(pred)
	}
	return qb
}

// CountSQL builds the count statement over the unbounded filtered set.
func (p *QueryPlan) CountSQL() (string, []interface{}, error) {
	return p.baseSelect("COUNT(*)").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// DataSQL builds the data statement. With a page set, rows are numbered in
// item-code order and the window keeps positions offset+1 through maxRow;
// without one, the full filtered set is returned in the same order.
func (p *QueryPlan) DataSQL() (string, []interface{}, error) {
	if p.page == nil {
		return p.baseSelect(recordColumns...).
			OrderBy("su.item_code ASC").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
	}

	inner := p.baseSelect(append(append([]string{}, recordColumns...),
		"ROW_NUMBER() OVER (ORDER BY su.item_code ASC) AS rn")...)

	return squirrel.Select(windowColumns...).
		FromSelect(inner, "w").
		Where(squirrel.Gt{"w.rn": p.page.Offset()}).
		Where(squirrel.LtOrEq{"w.rn": p.page.MaxRow()}).
		OrderBy("w.rn").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// SumSQL builds the aggregate total-quantity statement over the same
// filtered set, ignoring any pagination window.
func (p *QueryPlan) SumSQL() (string, []interface{}, error) {
	return p.baseSelect("COALESCE(SUM(" + qtyExpr + "), 0) AS total_qty").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
