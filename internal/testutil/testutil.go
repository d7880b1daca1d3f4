// Package testutil builds small seeded fixtures on a temporary SQLite file.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Lumos-Labs-HQ/practicedb/internal/database"
	"github.com/Lumos-Labs-HQ/practicedb/internal/generator"
	"github.com/Lumos-Labs-HQ/practicedb/internal/loader"
	"github.com/Lumos-Labs-HQ/practicedb/internal/realism"
	"github.com/stretchr/testify/require"
)

var RefNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

// SmallConfig keeps the default shape but trims the sales fact table.
func SmallConfig() generator.Config {
	cfg := generator.DefaultConfig()
	cfg.Seed = 20250615
	cfg.Now = RefNow
	cfg.Counts.SalesMonths = 2
	cfg.Counts.SalesDaysPerMonth = 5
	cfg.Counts.SalesPerDayMin = 3
	cfg.Counts.SalesPerDayMax = 8
	cfg.Counts.Students = 60
	cfg.Counts.Transactions = 200
	cfg.Counts.Movements = 100
	return cfg
}

func Build(t *testing.T, cfg generator.Config) *generator.Dataset {
	t.Helper()
	provider, err := realism.New(realism.KindPools, cfg.Seed)
	require.NoError(t, err)
	g, err := generator.New(cfg, provider)
	require.NoError(t, err)
	ds, err := g.Build()
	require.NoError(t, err)
	return ds
}

// OpenSQLite connects to a fresh database file under t.TempDir.
func OpenSQLite(t *testing.T) database.DatabaseAdapter {
	t.Helper()
	path := filepath.Join(t.TempDir(), "practice.db")
	adapter, err := database.Open(context.Background(), "sqlite", "sqlite://"+path)
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })
	return adapter
}

// Populate resets the store and loads ds with its indexes.
func Populate(t *testing.T, adapter database.DatabaseAdapter, ds *generator.Dataset) {
	t.Helper()
	ctx := context.Background()
	l := loader.New(adapter, 0, nil)
	require.NoError(t, l.Reset(ctx))
	require.NoError(t, l.CreateSchema(ctx, ds.Tables()))
	_, err := l.LoadDataset(ctx, ds)
	require.NoError(t, err)
	require.NoError(t, l.CreateIndexes(ctx, ds.Tables()))
}
