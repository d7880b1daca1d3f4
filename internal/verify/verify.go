// Package verify checks a populated store against the fixture invariants:
// derived money columns, category parents, foreign keys, row counts and the
// table set.
package verify

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/Lumos-Labs-HQ/practicedb/internal/database"
	"github.com/Lumos-Labs-HQ/practicedb/internal/generator"
	"github.com/Lumos-Labs-HQ/practicedb/internal/schema"
	sq "github.com/Masterminds/squirrel"
	"github.com/fatih/color"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type Verifier struct {
	adapter database.DatabaseAdapter
	db      *sqlx.DB
	dialect schema.Dialect
	cfg     generator.Config
}

func New(adapter database.DatabaseAdapter, cfg generator.Config) *Verifier {
	return &Verifier{
		adapter: adapter,
		db:      sqlx.NewDb(adapter.DB(), adapter.DriverName()),
		dialect: adapter.Dialect(),
		cfg:     cfg,
	}
}

// Run executes every check. Query failures are returned as errors, failed
// invariants are recorded in the report.
func (v *Verifier) Run(ctx context.Context) (*Report, error) {
	color.Cyan("🔍 Verifying fixture...")
	report := &Report{}

	if err := v.checkTableSet(ctx, report); err != nil {
		return report, err
	}
	if !report.Passed() {
		return report, nil
	}

	if schema.HasDomain(v.cfg.Domains, schema.Retail) {
		steps := []func(context.Context, *Report) error{
			v.checkOrderItems,
			v.checkOrderTotals,
			v.checkCategoryParents,
		}
		for _, step := range steps {
			if err := step(ctx, report); err != nil {
				return report, err
			}
		}
	}

	if err := v.checkForeignKeys(ctx, report); err != nil {
		return report, err
	}
	if err := v.checkRowCounts(ctx, report); err != nil {
		return report, err
	}
	return report, nil
}

type orderItemRow struct {
	ID           int64           `db:"order_item_id"`
	Quantity     int64           `db:"quantity"`
	UnitPrice    decimal.Decimal `db:"unit_price"`
	TotalPrice   decimal.Decimal `db:"total_price"`
	ProductPrice decimal.Decimal `db:"price"`
}

func (v *Verifier) checkOrderItems(ctx context.Context, report *Report) error {
	query, args, err := v.dialect.Builder().
		Select("oi.order_item_id", "oi.quantity", "oi.unit_price", "oi.total_price", "p.price").
		From(schema.OrderItems + " oi").
		Join(schema.Products + " p ON p.product_id = oi.product_id").
		OrderBy("oi.order_item_id").
		ToSql()
	if err != nil {
		return err
	}

	var rows []orderItemRow
	if err := v.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return fmt.Errorf("failed to read order items: %w", err)
	}

	var failures []string
	for _, r := range rows {
		if want := r.UnitPrice.Mul(decimal.NewFromInt(r.Quantity)); !r.TotalPrice.Equal(want) {
			failures = append(failures, fmt.Sprintf("item %d total %s != %s x %d", r.ID, r.TotalPrice, r.UnitPrice, r.Quantity))
		}
		if !r.UnitPrice.Equal(r.ProductPrice) {
			failures = append(failures, fmt.Sprintf("item %d unit price %s != product price %s", r.ID, r.UnitPrice, r.ProductPrice))
		}
	}
	report.add("order item totals", failures, fmt.Sprintf("%d items consistent with product prices", len(rows)))
	return nil
}

type orderRow struct {
	ID           int64           `db:"order_id"`
	Subtotal     decimal.Decimal `db:"subtotal"`
	TaxAmount    decimal.Decimal `db:"tax_amount"`
	ShippingCost decimal.Decimal `db:"shipping_cost"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
}

func (v *Verifier) checkOrderTotals(ctx context.Context, report *Report) error {
	query, args, err := v.dialect.Builder().
		Select("order_id", "subtotal", "tax_amount", "shipping_cost", "total_amount").
		From(schema.Orders).
		OrderBy("order_id").
		ToSql()
	if err != nil {
		return err
	}

	var rows []orderRow
	if err := v.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return fmt.Errorf("failed to read orders: %w", err)
	}

	var failures []string
	for _, r := range rows {
		if want := r.Subtotal.Add(r.TaxAmount).Add(r.ShippingCost); !r.TotalAmount.Equal(want) {
			failures = append(failures, fmt.Sprintf("order %d total %s != %s", r.ID, r.TotalAmount, want))
		}
		if want := r.Subtotal.Mul(v.cfg.TaxRate).Round(2); !r.TaxAmount.Equal(want) {
			failures = append(failures, fmt.Sprintf("order %d tax %s != %s", r.ID, r.TaxAmount, want))
		}
	}
	report.add("order totals", failures, fmt.Sprintf("%d orders recompute from subtotal, tax and shipping", len(rows)))
	return nil
}

func (v *Verifier) checkCategoryParents(ctx context.Context, report *Report) error {
	type categoryRow struct {
		ID     int64         `db:"category_id"`
		Parent sql.NullInt64 `db:"parent_category_id"`
	}

	query, args, err := v.dialect.Builder().
		Select("category_id", "parent_category_id").
		From(schema.Categories).
		OrderBy("category_id").
		ToSql()
	if err != nil {
		return err
	}

	var rows []categoryRow
	if err := v.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return fmt.Errorf("failed to read categories: %w", err)
	}

	ids := make(map[int64]bool, len(rows))
	for _, r := range rows {
		ids[r.ID] = true
	}

	var failures []string
	roots := 0
	for _, r := range rows {
		switch {
		case !r.Parent.Valid:
			roots++
		case !ids[r.Parent.Int64]:
			failures = append(failures, fmt.Sprintf("category %d has unknown parent %d", r.ID, r.Parent.Int64))
		case r.Parent.Int64 >= r.ID:
			failures = append(failures, fmt.Sprintf("category %d points at later parent %d", r.ID, r.Parent.Int64))
		}
	}
	if len(rows) > 0 && roots == 0 {
		failures = append(failures, "no root category")
	}
	report.add("category parents", failures, fmt.Sprintf("%d categories, %d roots", len(rows), roots))
	return nil
}

func (v *Verifier) checkForeignKeys(ctx context.Context, report *Report) error {
	var failures []string
	checked := 0
	for _, table := range schema.TablesFor(v.cfg.Domains) {
		for _, fk := range table.ForeignKeys() {
			n, err := v.CountOrphans(ctx, table.Name, fk)
			if err != nil {
				return err
			}
			checked++
			if n > 0 {
				failures = append(failures, fmt.Sprintf("%s.%s has %d orphans", table.Name, fk.Column, n))
			}
		}
	}
	report.add("foreign keys", failures, fmt.Sprintf("%d foreign keys without orphans", checked))
	return nil
}

// CountOrphans counts non-null values of fk.Column in table that have no
// matching row in the referenced table.
func (v *Verifier) CountOrphans(ctx context.Context, table string, fk schema.ForeignKey) (int, error) {
	query, args, err := v.dialect.Builder().
		Select("COUNT(*)").
		From(table + " c").
		Where(sq.NotEq{"c." + fk.Column: nil}).
		Where(fmt.Sprintf("NOT EXISTS (SELECT 1 FROM %s p WHERE p.%s = c.%s)", fk.RefTable, fk.RefColumn, fk.Column)).
		ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := v.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count orphans in %s.%s: %w", table, fk.Column, err)
	}
	return n, nil
}

func (v *Verifier) checkRowCounts(ctx context.Context, report *Report) error {
	expected := generator.ExpectedCounts(v.cfg)
	if _, ok := expected[schema.StudentEnrollments]; ok {
		active, err := v.countActiveStudents(ctx)
		if err != nil {
			return err
		}
		expected[schema.StudentEnrollments] = generator.EnrollmentRange(v.cfg, active)
	}
	names := make([]string, 0, len(expected))
	for name := range expected {
		names = append(names, name)
	}
	sort.Strings(names)

	var failures []string
	total := 0
	for _, name := range names {
		got, err := v.adapter.GetTableRowCount(ctx, name)
		if err != nil {
			return err
		}
		total += got
		if want := expected[name]; !want.Contains(got) {
			failures = append(failures, fmt.Sprintf("%s has %d rows, want %s", name, got, want))
		}
	}
	report.add("row counts", failures, fmt.Sprintf("%d tables, %d rows within targets", len(names), total))
	return nil
}

func (v *Verifier) countActiveStudents(ctx context.Context) (int, error) {
	query, args, err := v.dialect.Builder().
		Select("COUNT(*)").
		From(schema.Students).
		Where(sq.Eq{"is_active": true}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := v.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count active students: %w", err)
	}
	return n, nil
}

// checkTableSet compares catalog tables present in the store with the
// enabled ones. Tables outside the catalog are ignored.
func (v *Verifier) checkTableSet(ctx context.Context, report *Report) error {
	present, err := v.adapter.GetAllTableNames(ctx)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(present))
	for _, name := range present {
		have[name] = true
	}

	enabled := make(map[string]bool)
	for _, t := range schema.TablesFor(v.cfg.Domains) {
		enabled[t.Name] = true
	}

	var failures []string
	for _, t := range schema.Catalog() {
		switch {
		case enabled[t.Name] && !have[t.Name]:
			failures = append(failures, fmt.Sprintf("missing table %s", t.Name))
		case !enabled[t.Name] && have[t.Name]:
			failures = append(failures, fmt.Sprintf("unexpected table %s from disabled domain %s", t.Name, t.Domain))
		}
	}
	report.add("table set", failures, fmt.Sprintf("%d tables match the enabled domains", len(enabled)))
	return nil
}
