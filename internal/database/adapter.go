package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Lumos-Labs-HQ/practicedb/internal/database/common"
	"github.com/Lumos-Labs-HQ/practicedb/internal/database/mysql"
	"github.com/Lumos-Labs-HQ/practicedb/internal/database/postgres"
	"github.com/Lumos-Labs-HQ/practicedb/internal/database/sqlite"
	"github.com/Lumos-Labs-HQ/practicedb/internal/schema"
)

type DatabaseAdapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	DB() *sql.DB
	DriverName() string
	Dialect() schema.Dialect

	Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	ExecuteQuery(ctx context.Context, query string, args ...interface{}) (*common.QueryResult, error)

	GetAllTableNames(ctx context.Context) ([]string, error)
	GetTableRowCount(ctx context.Context, tableName string) (int, error)
	GetTableData(ctx context.Context, tableName string) ([]map[string]interface{}, error)
	DropTable(ctx context.Context, tableName string) error
}

var SupportedProviders = []string{"sqlite", "sqlite3", "sqlite-pure", "postgresql", "postgres", "mysql"}

func NewAdapter(provider string) (DatabaseAdapter, error) {
	switch provider {
	case "sqlite", "sqlite3":
		return sqlite.New(), nil
	case "sqlite-pure":
		return sqlite.NewPure(), nil
	case "postgresql", "postgres":
		return postgres.New(), nil
	case "mysql":
		return mysql.New(), nil
	default:
		return nil, fmt.Errorf("unsupported database provider: %s. Supported providers: %v", provider, SupportedProviders)
	}
}

// Open creates the adapter for provider, connects and pings it.
func Open(ctx context.Context, provider, url string) (DatabaseAdapter, error) {
	adapter, err := NewAdapter(provider)
	if err != nil {
		return nil, err
	}
	if err := adapter.Connect(ctx, url); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := adapter.Ping(ctx); err != nil {
		adapter.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return adapter, nil
}
