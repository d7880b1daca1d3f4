package smoke

import (
	"context"
	"fmt"
	"io"

	"github.com/Lumos-Labs-HQ/practicedb/internal/database"
	"github.com/Lumos-Labs-HQ/practicedb/internal/generator"
	"github.com/Lumos-Labs-HQ/practicedb/internal/schema"
	sq "github.com/Masterminds/squirrel"
	"github.com/fatih/color"
)

// Query is one read-only statement of the battery. Money names the columns
// printed as currency.
type Query struct {
	Title  string
	Domain schema.Domain
	Money  []string
	Build  func(d schema.Dialect) sq.SelectBuilder
}

type Result struct {
	Title   string
	Skipped bool
	Columns []string
	Rows    []map[string]interface{}
}

func Battery() []Query {
	return []Query{
		{
			Title:  "Sample customers",
			Domain: schema.Retail,
			Build: func(d schema.Dialect) sq.SelectBuilder {
				return d.Builder().
					Select("customer_id", "first_name", "last_name", "city", "customer_segment").
					From(schema.Customers).
					OrderBy("customer_id").
					Limit(5)
			},
		},
		{
			Title:  "Running total by customer (window function)",
			Domain: schema.Retail,
			Money:  []string{"total_amount", "running_total"},
			Build: func(d schema.Dialect) sq.SelectBuilder {
				return d.Builder().
					Select("customer_id", "order_date", "total_amount",
						"SUM(total_amount) OVER (PARTITION BY customer_id ORDER BY order_date, order_id "+
							"ROWS BETWEEN UNBOUNDED PRECEDING AND CURRENT ROW) AS running_total").
					From(schema.Orders).
					Where(sq.LtOrEq{"customer_id": 3}).
					OrderBy("customer_id", "order_date", "order_id").
					Limit(10)
			},
		},
		{
			Title:  "Top 5 products by units sold",
			Domain: schema.Retail,
			Money:  []string{"total_revenue"},
			Build: func(d schema.Dialect) sq.SelectBuilder {
				return d.Builder().
					Select("p.product_name", "c.category_name",
						"SUM(oi.quantity) AS total_sold", "SUM(oi.total_price) AS total_revenue").
					From(schema.Products + " p").
					Join(schema.Categories + " c ON p.category_id = c.category_id").
					Join(schema.OrderItems + " oi ON p.product_id = oi.product_id").
					Join(schema.Orders + " o ON oi.order_id = o.order_id").
					Where(sq.Eq{"o.order_status": "Delivered"}).
					GroupBy("p.product_id", "p.product_name", "c.category_name").
					OrderBy("total_sold DESC", "p.product_id").
					Limit(5)
			},
		},
		{
			Title:  "Engineering hierarchy (self join)",
			Domain: schema.HR,
			Build: func(d schema.Dialect) sq.SelectBuilder {
				return d.Builder().
					Select(d.Concat("e.first_name", "' '", "e.last_name")+" AS employee",
						"e.job_title",
						d.Concat("m.first_name", "' '", "m.last_name")+" AS manager").
					From(schema.Employees + " e").
					LeftJoin(schema.Employees + " m ON e.manager_id = m.employee_id").
					Where(sq.Eq{"e.department_id": generator.EngineeringDepartmentID}).
					OrderBy("e.employee_id").
					Limit(5)
			},
		},
	}
}

type Runner struct {
	adapter database.DatabaseAdapter
	domains []schema.Domain
	out     io.Writer
}

func NewRunner(adapter database.DatabaseAdapter, domains []schema.Domain, out io.Writer) *Runner {
	return &Runner{adapter: adapter, domains: domains, out: out}
}

// Run executes the battery and prints each result. It only fails on a query
// the store rejects.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	color.Cyan("🧪 Running smoke queries...")

	var results []Result
	for i, q := range Battery() {
		fmt.Fprintf(r.out, "\n📊 Test %d: %s\n", i+1, q.Title)

		if !schema.HasDomain(r.domains, q.Domain) {
			fmt.Fprintf(r.out, "  skipped, %s tables are not enabled\n", q.Domain)
			results = append(results, Result{Title: q.Title, Skipped: true})
			continue
		}

		query, args, err := q.Build(r.adapter.Dialect()).ToSql()
		if err != nil {
			return results, fmt.Errorf("failed to build smoke query %q: %w", q.Title, err)
		}
		res, err := r.adapter.ExecuteQuery(ctx, query, args...)
		if err != nil {
			return results, fmt.Errorf("smoke query %q failed: %w", q.Title, err)
		}

		PrintTable(r.out, res.Columns, res.Rows, moneyColumns(q.Money))
		results = append(results, Result{Title: q.Title, Columns: res.Columns, Rows: res.Rows})
	}

	fmt.Fprintln(r.out)
	color.Green("✅ Smoke queries finished")
	return results, nil
}

func moneyColumns(cols []string) map[string]bool {
	out := make(map[string]bool, len(cols))
	for _, c := range cols {
		out[c] = true
	}
	return out
}
