package fixture

import (
	"bytes"
	"context"
	"testing"

	"github.com/Lumos-Labs-HQ/practicedb/internal/generator"
	"github.com/Lumos-Labs-HQ/practicedb/internal/realism"
	"github.com/Lumos-Labs-HQ/practicedb/internal/schema"
	"github.com/Lumos-Labs-HQ/practicedb/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBuildsVerifiesAndSmokes(t *testing.T) {
	adapter := testutil.OpenSQLite(t)
	cfg := testutil.SmallConfig()

	var out bytes.Buffer
	b := NewBuilder(adapter, Options{
		Generator: cfg,
		Realism:   realism.KindFaker,
		Verify:    true,
		Smoke:     true,
	}, nil, &out)

	summary, err := b.Run(context.Background())
	require.NoError(t, err)

	_, err = uuid.Parse(summary.RunID)
	assert.NoError(t, err)
	assert.Equal(t, cfg.Seed, summary.Seed)
	require.NotNil(t, summary.Report)
	assert.True(t, summary.Report.Passed())
	assert.Len(t, summary.Rows, len(schema.Catalog()))

	for table, want := range generator.ExpectedCounts(cfg) {
		assert.True(t, want.Contains(summary.Rows[table]), "%s: %d not in %s", table, summary.Rows[table], want)
	}
	assert.Contains(t, out.String(), "📊 Test 2: Running total")
}

// A rerun keeps the table set and replaces the rows.
func TestRerunRecreatesTheSameTables(t *testing.T) {
	adapter := testutil.OpenSQLite(t)
	ctx := context.Background()

	cfg := testutil.SmallConfig()
	cfg.Domains = schema.Profiles["core"]
	cfg.Seed = 0
	opts := Options{Generator: cfg, Realism: realism.KindPools}

	first, err := NewBuilder(adapter, opts, nil, &bytes.Buffer{}).Run(ctx)
	require.NoError(t, err)
	tablesBefore, err := adapter.GetAllTableNames(ctx)
	require.NoError(t, err)
	before, err := adapter.ExecuteQuery(ctx, "SELECT email FROM customers ORDER BY customer_id LIMIT 5")
	require.NoError(t, err)

	second, err := NewBuilder(adapter, opts, nil, &bytes.Buffer{}).Run(ctx)
	require.NoError(t, err)
	tablesAfter, err := adapter.GetAllTableNames(ctx)
	require.NoError(t, err)
	after, err := adapter.ExecuteQuery(ctx, "SELECT email FROM customers ORDER BY customer_id LIMIT 5")
	require.NoError(t, err)

	assert.Equal(t, tablesBefore, tablesAfter)
	assert.NotEqual(t, first.Seed, second.Seed)
	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, first.Rows[schema.Customers], second.Rows[schema.Customers])
	assert.NotEqual(t, before.Rows, after.Rows)
}

func TestProfileSwitchDropsDisabledTables(t *testing.T) {
	adapter := testutil.OpenSQLite(t)
	ctx := context.Background()

	full := testutil.SmallConfig()
	_, err := NewBuilder(adapter, Options{Generator: full, Realism: realism.KindPools}, nil, &bytes.Buffer{}).Run(ctx)
	require.NoError(t, err)

	core := testutil.SmallConfig()
	core.Domains = schema.Profiles["core"]
	_, err = NewBuilder(adapter, Options{Generator: core, Realism: realism.KindPools, Verify: true}, nil, &bytes.Buffer{}).Run(ctx)
	require.NoError(t, err)

	names, err := adapter.GetAllTableNames(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, schema.TableNames(schema.TablesFor(core.Domains)), names)
}

func TestRunRejectsUnknownRealism(t *testing.T) {
	adapter := testutil.OpenSQLite(t)
	_, err := NewBuilder(adapter, Options{Generator: testutil.SmallConfig(), Realism: "lorem"}, nil, &bytes.Buffer{}).
		Run(context.Background())
	assert.ErrorContains(t, err, "unknown realism provider")
}

func TestPrintSummary(t *testing.T) {
	var out bytes.Buffer
	PrintSummary(&out, &Summary{Seed: 9, Rows: map[string]int{"orders": 2000, "customers": 500}})

	text := out.String()
	assert.Contains(t, text, "customers")
	assert.Contains(t, text, "2,000")
	assert.Contains(t, text, "2,500 rows in 2 tables (seed 9")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("customers")), bytes.Index(out.Bytes(), []byte("orders")))
}
