package loader

import (
	"context"
	"fmt"
	"strings"

	"github.com/Lumos-Labs-HQ/practicedb/internal/database"
	"github.com/Lumos-Labs-HQ/practicedb/internal/generator"
	"github.com/Lumos-Labs-HQ/practicedb/internal/schema"
	"github.com/fatih/color"
	"go.uber.org/zap"
)

const DefaultBatchSize = 500

type Loader struct {
	adapter   database.DatabaseAdapter
	dialect   schema.Dialect
	batchSize int
	log       *zap.Logger
}

func New(adapter database.DatabaseAdapter, batchSize int, log *zap.Logger) *Loader {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		adapter:   adapter,
		dialect:   adapter.Dialect(),
		batchSize: batchSize,
		log:       log,
	}
}

// Reset drops every catalog table, children first, whether or not its domain
// is enabled for this run.
func (l *Loader) Reset(ctx context.Context) error {
	color.Yellow("🗑️  Dropping fixture tables...")

	order, err := schema.NewDependencyGraph(schema.Catalog()).DropOrder()
	if err != nil {
		return fmt.Errorf("failed to build drop order: %w", err)
	}

	for _, name := range order {
		if err := l.adapter.DropTable(ctx, name); err != nil {
			return err
		}
		l.log.Debug("dropped table", zap.String("table", name))
	}
	return nil
}

func (l *Loader) CreateSchema(ctx context.Context, tables []schema.Table) error {
	order, err := insertionOrder(tables)
	if err != nil {
		return err
	}

	color.Cyan("📋 Creating %d tables: %s", len(order), strings.Join(names(order), " → "))
	for _, table := range order {
		if _, err := l.adapter.Exec(ctx, l.dialect.CreateTableSQL(table)); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.Name, err)
		}
	}
	return nil
}

// rowsPerStatement keeps a multi-row insert under the dialect's bind limit.
func (l *Loader) rowsPerStatement(columns int) int {
	n := l.batchSize
	if columns > 0 && l.dialect.MaxParams()/columns < n {
		n = l.dialect.MaxParams() / columns
	}
	if n < 1 {
		n = 1
	}
	return n
}

// LoadTable writes rows into an empty table inside one transaction. Any
// failure rolls the whole table back.
func (l *Loader) LoadTable(ctx context.Context, table schema.Table, rows [][]interface{}) error {
	color.Cyan("  📝 Loading %s (%d records)...", table.Name, len(rows))
	if len(rows) == 0 {
		return nil
	}

	columns := table.ColumnNames()
	for i, row := range rows {
		if len(row) != len(columns) {
			return fmt.Errorf("failed to load table %s: row %d has %d values, want %d",
				table.Name, i+1, len(row), len(columns))
		}
	}

	tx, err := l.adapter.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", table.Name, err)
	}

	chunk := l.rowsPerStatement(len(columns))
	for start := 0; start < len(rows); start += chunk {
		end := start + chunk
		if end > len(rows) {
			end = len(rows)
		}

		insert := l.dialect.Builder().Insert(table.Name).Columns(columns...)
		for _, row := range rows[start:end] {
			insert = insert.Values(row...)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to build insert for %s: %w", table.Name, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to load table %s: %w", table.Name, err)
		}
		l.log.Debug("inserted chunk",
			zap.String("table", table.Name), zap.Int("from", start+1), zap.Int("to", end))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit table %s: %w", table.Name, err)
	}
	return nil
}

// LoadDataset loads every table of ds, parents before children, and returns
// the number of rows written per table.
func (l *Loader) LoadDataset(ctx context.Context, ds *generator.Dataset) (map[string]int, error) {
	order, err := insertionOrder(ds.Tables())
	if err != nil {
		return nil, err
	}

	loaded := make(map[string]int, len(order))
	for _, table := range order {
		rows, err := ds.Rows(table.Name)
		if err != nil {
			return loaded, err
		}
		if err := l.LoadTable(ctx, table, rows); err != nil {
			return loaded, err
		}
		loaded[table.Name] = len(rows)
	}

	color.Green("✅ Loaded %d tables", len(loaded))
	return loaded, nil
}

func (l *Loader) CreateIndexes(ctx context.Context, tables []schema.Table) error {
	indexes := schema.Indexes(tables)
	color.Cyan("🔎 Creating %d indexes...", len(indexes))

	for _, idx := range indexes {
		if _, err := l.adapter.Exec(ctx, l.dialect.CreateIndexSQL(idx)); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.Name, err)
		}
	}
	return nil
}

func insertionOrder(tables []schema.Table) ([]schema.Table, error) {
	order, err := schema.NewDependencyGraph(tables).BuildInsertionOrder()
	if err != nil {
		return nil, fmt.Errorf("failed to build insertion order: %w", err)
	}

	byName := make(map[string]schema.Table, len(tables))
	for _, t := range tables {
		byName[t.Name] = t
	}
	out := make([]schema.Table, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out, nil
}

func names(tables []schema.Table) []string {
	out := make([]string, len(tables))
	for i, t := range tables {
		out[i] = t.Name
	}
	return out
}
