package smoke

import (
	"bytes"
	"context"
	"testing"

	"github.com/Lumos-Labs-HQ/practicedb/internal/schema"
	"github.com/Lumos-Labs-HQ/practicedb/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPrintsEveryQuery(t *testing.T) {
	adapter := testutil.OpenSQLite(t)
	cfg := testutil.SmallConfig()
	ds := testutil.Build(t, cfg)
	testutil.Populate(t, adapter, ds)

	var out bytes.Buffer
	results, err := NewRunner(adapter, cfg.Domains, &out).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, len(Battery()))

	preview := results[0]
	assert.False(t, preview.Skipped)
	assert.Equal(t, []string{"customer_id", "first_name", "last_name", "city", "customer_segment"}, preview.Columns)
	assert.Len(t, preview.Rows, 5)

	running := results[1]
	assert.LessOrEqual(t, len(running.Rows), 10)
	for _, row := range running.Rows {
		assert.LessOrEqual(t, row["customer_id"], int64(3))
	}

	assert.LessOrEqual(t, len(results[2].Rows), 5)
	assert.Equal(t, []string{"employee", "job_title", "manager"}, results[3].Columns)

	text := out.String()
	assert.Contains(t, text, "📊 Test 1: Sample customers")
	assert.Contains(t, text, "📊 Test 4: Engineering hierarchy")
	assert.Contains(t, text, "┌")
	assert.Contains(t, text, "$")
}

func TestRunSkipsDisabledDomains(t *testing.T) {
	adapter := testutil.OpenSQLite(t)
	cfg := testutil.SmallConfig()
	cfg.Domains = []schema.Domain{schema.Retail}
	testutil.Populate(t, adapter, testutil.Build(t, cfg))

	var out bytes.Buffer
	results, err := NewRunner(adapter, cfg.Domains, &out).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.False(t, results[2].Skipped)
	assert.True(t, results[3].Skipped)
	assert.Contains(t, out.String(), "hr tables are not enabled")
}

func TestRunFailsOnMissingTables(t *testing.T) {
	adapter := testutil.OpenSQLite(t)

	_, err := NewRunner(adapter, schema.AllDomains, &bytes.Buffer{}).Run(context.Background())
	assert.ErrorContains(t, err, "Sample customers")
}

func TestPrintTable(t *testing.T) {
	var out bytes.Buffer
	PrintTable(&out, []string{"name", "amount"}, []map[string]interface{}{
		{"name": "Laptop", "amount": 1234.5},
		{"name": nil, "amount": "19.99"},
	}, map[string]bool{"amount": true})

	want := "" +
		"┌────────┬───────────┐\n" +
		"│ name   │ amount    │\n" +
		"├────────┼───────────┤\n" +
		"│ Laptop │ $1,234.50 │\n" +
		"│ NULL   │ $19.99    │\n" +
		"└────────┴───────────┘\n"
	assert.Equal(t, want, out.String())

	out.Reset()
	PrintTable(&out, []string{"x"}, nil, nil)
	assert.Equal(t, "  (no rows)\n", out.String())
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$0.00", FormatMoney(0))
	assert.Equal(t, "$1,000,000.00", FormatMoney(1e6))
	assert.Equal(t, "-$12.30", FormatMoney(-12.3))
}
