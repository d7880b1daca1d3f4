package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Lumos-Labs-HQ/practicedb/internal/database/mysql"
	"github.com/Lumos-Labs-HQ/practicedb/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdapter(t *testing.T) {
	cases := map[string]struct {
		driver  string
		dialect schema.Dialect
	}{
		"sqlite":      {"sqlite3", schema.SQLite},
		"sqlite3":     {"sqlite3", schema.SQLite},
		"sqlite-pure": {"sqlite", schema.SQLite},
		"postgres":    {"pgx", schema.Postgres},
		"postgresql":  {"pgx", schema.Postgres},
		"mysql":       {"mysql", schema.MySQL},
	}
	for provider, want := range cases {
		adapter, err := NewAdapter(provider)
		require.NoError(t, err, provider)
		assert.Equal(t, want.driver, adapter.DriverName(), provider)
		assert.Equal(t, want.dialect, adapter.Dialect(), provider)
	}

	_, err := NewAdapter("mongodb")
	assert.Error(t, err)
}

func TestSQLiteRoundTrip(t *testing.T) {
	for _, provider := range []string{"sqlite", "sqlite-pure"} {
		t.Run(provider, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "rt.db")
			adapter, err := Open(ctx, provider, "sqlite://"+path)
			require.NoError(t, err)
			defer adapter.Close()

			_, err = adapter.Exec(ctx, "CREATE TABLE parents (id INTEGER PRIMARY KEY, name TEXT)")
			require.NoError(t, err)
			_, err = adapter.Exec(ctx, "CREATE TABLE kids (id INTEGER PRIMARY KEY, parent_id INTEGER NOT NULL, FOREIGN KEY (parent_id) REFERENCES parents(id))")
			require.NoError(t, err)
			_, err = adapter.Exec(ctx, "INSERT INTO parents (id, name) VALUES (?, ?), (?, ?)", 1, "a", 2, "b")
			require.NoError(t, err)

			_, err = adapter.Exec(ctx, "INSERT INTO kids (id, parent_id) VALUES (1, 99)")
			assert.Error(t, err, "foreign keys must be enforced")

			count, err := adapter.GetTableRowCount(ctx, "parents")
			require.NoError(t, err)
			assert.Equal(t, 2, count)

			names, err := adapter.GetAllTableNames(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"kids", "parents"}, names)

			rows, err := adapter.GetTableData(ctx, "parents")
			require.NoError(t, err)
			require.Len(t, rows, 2)
			assert.Equal(t, "a", rows[0]["name"])

			require.NoError(t, adapter.DropTable(ctx, "kids"))
			names, err = adapter.GetAllTableNames(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"parents"}, names)

			_, err = adapter.GetTableRowCount(ctx, "parents; --")
			assert.Error(t, err)
		})
	}
}

func TestSQLiteURLParamsKeepForeignKeys(t *testing.T) {
	urls := map[string]string{
		"sqlite":      "?_busy_timeout=100",
		"sqlite-pure": "?_pragma=busy_timeout(100)",
	}
	for provider, query := range urls {
		t.Run(provider, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "fk.db")
			adapter, err := Open(ctx, provider, "sqlite://"+path+query)
			require.NoError(t, err)
			defer adapter.Close()

			var enabled int
			require.NoError(t, adapter.DB().QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled))
			assert.Equal(t, 1, enabled)

			var timeout int
			require.NoError(t, adapter.DB().QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&timeout))
			assert.Equal(t, 100, timeout)
		})
	}
}

func TestMySQLDSN(t *testing.T) {
	assert.Equal(t, "user:pw@tcp(localhost:3306)/practice?tls=false",
		mysql.ToDSN("mysql://user:pw@localhost:3306/practice?sslmode=disable"))
	assert.Equal(t, "user:pw@tcp(db:3306)/", mysql.ToDSN("mysql://user:pw@db:3306"))
	assert.Equal(t, "user@tcp(h)/x", mysql.ToDSN("user@tcp(h)/x"))
}
