package verify

import (
	"bytes"
	"context"
	"testing"

	"github.com/Lumos-Labs-HQ/practicedb/internal/generator"
	"github.com/Lumos-Labs-HQ/practicedb/internal/schema"
	"github.com/Lumos-Labs-HQ/practicedb/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populated(t *testing.T, cfg generator.Config) *Verifier {
	t.Helper()
	adapter := testutil.OpenSQLite(t)
	testutil.Populate(t, adapter, testutil.Build(t, cfg))
	return New(adapter, cfg)
}

func checkNamed(t *testing.T, report *Report, name string) Check {
	t.Helper()
	for _, c := range report.Checks {
		if c.Name == name {
			return c
		}
	}
	require.Failf(t, "check not found", "%s", name)
	return Check{}
}

func TestFreshFixturePassesEveryCheck(t *testing.T) {
	v := populated(t, testutil.SmallConfig())

	report, err := v.Run(context.Background())
	require.NoError(t, err)
	for _, c := range report.Checks {
		assert.True(t, c.Passed, "%s: %s", c.Name, c.Detail)
	}
	assert.Len(t, report.Checks, 6)
	assert.NoError(t, report.Err())
}

// 500 customers and 2000 orders: no orphan orders and every total recomputes.
func TestDefaultRetailScenario(t *testing.T) {
	cfg := testutil.SmallConfig()
	cfg.Domains = []schema.Domain{schema.Retail}
	require.Equal(t, 500, cfg.Counts.Customers)
	require.Equal(t, 2000, cfg.Counts.Orders)
	v := populated(t, cfg)
	ctx := context.Background()

	var orphans int
	require.NoError(t, v.db.GetContext(ctx, &orphans,
		"SELECT COUNT(*) FROM orders WHERE customer_id NOT IN (SELECT customer_id FROM customers)"))
	assert.Zero(t, orphans)

	report, err := v.Run(ctx)
	require.NoError(t, err)
	totals := checkNamed(t, report, "order totals")
	assert.True(t, totals.Passed, totals.Detail)
	assert.Contains(t, totals.Detail, "2000 orders")
}

func TestTamperedOrderTotalIsReported(t *testing.T) {
	v := populated(t, testutil.SmallConfig())
	ctx := context.Background()

	_, err := v.adapter.Exec(ctx, "UPDATE orders SET total_amount = total_amount + 1 WHERE order_id = 7")
	require.NoError(t, err)
	_, err = v.adapter.Exec(ctx, "UPDATE order_items SET unit_price = unit_price + 1 WHERE order_item_id = 3")
	require.NoError(t, err)

	report, err := v.Run(ctx)
	require.NoError(t, err)
	assert.False(t, report.Passed())

	totals := checkNamed(t, report, "order totals")
	assert.False(t, totals.Passed)
	assert.Contains(t, totals.Detail, "order 7 total")

	items := checkNamed(t, report, "order item totals")
	assert.False(t, items.Passed)
	assert.Contains(t, items.Detail, "item 3")

	require.Error(t, report.Err())
	assert.Contains(t, report.Err().Error(), "order totals")
}

func TestOrphansAndCountsAreReported(t *testing.T) {
	v := populated(t, testutil.SmallConfig())
	ctx := context.Background()

	_, err := v.adapter.Exec(ctx, "PRAGMA foreign_keys = OFF")
	require.NoError(t, err)
	_, err = v.adapter.Exec(ctx, "DELETE FROM customers WHERE customer_id IN (SELECT customer_id FROM orders LIMIT 1)")
	require.NoError(t, err)

	report, err := v.Run(ctx)
	require.NoError(t, err)

	fks := checkNamed(t, report, "foreign keys")
	assert.False(t, fks.Passed)
	assert.Contains(t, fks.Detail, "orders.customer_id")

	counts := checkNamed(t, report, "row counts")
	assert.False(t, counts.Passed)
	assert.Contains(t, counts.Detail, "customers has 499 rows, want 500")
}

func TestMissingEnrollmentsAreReported(t *testing.T) {
	v := populated(t, testutil.SmallConfig())
	ctx := context.Background()

	_, err := v.adapter.Exec(ctx, "DELETE FROM "+schema.StudentEnrollments)
	require.NoError(t, err)

	report, err := v.Run(ctx)
	require.NoError(t, err)

	counts := checkNamed(t, report, "row counts")
	assert.False(t, counts.Passed)
	assert.Contains(t, counts.Detail, "student_enrollments has 0 rows")
}

func TestTableSetMismatchStopsEarly(t *testing.T) {
	cfg := testutil.SmallConfig()
	v := populated(t, cfg)
	ctx := context.Background()

	require.NoError(t, v.adapter.DropTable(ctx, schema.InventoryMovements))

	report, err := v.Run(ctx)
	require.NoError(t, err)
	require.Len(t, report.Checks, 1)
	assert.False(t, report.Checks[0].Passed)
	assert.Contains(t, report.Checks[0].Detail, "missing table inventory_movements")

	core := cfg
	core.Domains = schema.Profiles["core"]
	report, err = New(v.adapter, core).Run(ctx)
	require.NoError(t, err)
	require.Len(t, report.Checks, 1)
	assert.Contains(t, report.Checks[0].Detail, "unexpected table students from disabled domain education")
}

func TestReportPrint(t *testing.T) {
	r := &Report{}
	r.add("ok", nil, "fine")
	r.add("bad", []string{"a", "b", "c", "d", "e"}, "")

	var out bytes.Buffer
	r.Print(&out)
	assert.Contains(t, out.String(), "ok: fine")
	assert.Contains(t, out.String(), "bad: a; b; c; and 2 more")
	assert.EqualError(t, r.Err(), "fixture verification failed: bad")
}
