package common

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Lumos-Labs-HQ/practicedb/internal/schema"
)

// Base holds the database/sql behaviour every adapter shares. Adapters embed
// it and only supply connection setup and catalog queries.
type Base struct {
	db      *sql.DB
	dialect schema.Dialect
	quote   string
}

func NewBase(dialect schema.Dialect, quote string) Base {
	return Base{dialect: dialect, quote: quote}
}

// Attach installs an opened pool. Fixture runs use a single connection.
func (b *Base) Attach(db *sql.DB) {
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	b.db = db
}

func (b *Base) DB() *sql.DB {
	return b.db
}

func (b *Base) Dialect() schema.Dialect {
	return b.dialect
}

func (b *Base) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

func (b *Base) Ping(ctx context.Context) error {
	if b.db == nil {
		return fmt.Errorf("not connected")
	}
	return b.db.PingContext(ctx)
}

func (b *Base) Quote(name string) string {
	return b.quote + name + b.quote
}

func (b *Base) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return b.db.ExecContext(ctx, query, args...)
}

func (b *Base) ExecuteQuery(ctx context.Context, query string, args ...interface{}) (*QueryResult, error) {
	rows, err := b.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	return CollectRows(rows)
}

func (b *Base) GetTableRowCount(ctx context.Context, tableName string) (int, error) {
	if err := ValidateIdentifier(tableName); err != nil {
		return 0, err
	}

	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", b.Quote(tableName))
	if err := b.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in table %s: %w", tableName, err)
	}
	return count, nil
}

func (b *Base) GetTableData(ctx context.Context, tableName string) ([]map[string]interface{}, error) {
	if err := ValidateIdentifier(tableName); err != nil {
		return nil, err
	}

	result, err := b.ExecuteQuery(ctx, fmt.Sprintf("SELECT * FROM %s", b.Quote(tableName)))
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", tableName, err)
	}
	return result.Rows, nil
}

func (b *Base) DropTable(ctx context.Context, tableName string) error {
	if err := ValidateIdentifier(tableName); err != nil {
		return err
	}
	if _, err := b.db.ExecContext(ctx, b.dialect.DropTableSQL(tableName)); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}
	return nil
}

// TableNames runs a catalog query that yields one table name per row.
func (b *Base) TableNames(ctx context.Context, query string) ([]string, error) {
	rows, err := b.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return nil, err
		}
		tables = append(tables, tableName)
	}
	return tables, rows.Err()
}
