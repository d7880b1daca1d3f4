package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		cfgFile = ""
		viper.Reset()
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func smallConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "practicedb.config.json")
	body := `{
  "export_path": "` + filepath.Join(dir, "export") + `",
  "database": {"provider": "sqlite", "url_env": "PRACTICEDB_CMD_TEST_URL", "path": "` + filepath.Join(dir, "cmd.db") + `"},
  "generation": {
    "realism": "pools",
    "profile": "core",
    "counts": {"customers": 40, "orders": 120, "managers": 5, "staff": 20, "sales_reps": 6,
               "sales_months": 1, "sales_days_per_month": 3, "sales_per_day_min": 2, "sales_per_day_max": 4}
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestSchemaCommandPrintsDDL(t *testing.T) {
	out, err := run(t, "schema", "--dialect", "postgres", "--profile", "core")
	require.NoError(t, err)
	assert.Contains(t, out, "CREATE TABLE customers")
	assert.Contains(t, out, "NUMERIC(10,2)")
	assert.Contains(t, out, "CREATE INDEX idx_orders_customer_date")
	assert.NotContains(t, out, "CREATE TABLE students")
}

func TestSchemaCommandRejectsUnknownFormat(t *testing.T) {
	_, err := run(t, "schema", "--format", "xml")
	assert.Error(t, err)
}

func TestGenerateThenVerifyAndExport(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PRACTICEDB_CMD_TEST_URL", "")
	cfg := smallConfig(t, dir)

	out, err := run(t, "generate", "--config", cfg, "--seed", "11", "--verify", "--no-smoke")
	require.NoError(t, err)
	assert.Contains(t, out, "rows in 13 tables (seed 11")

	out, err = run(t, "verify", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "foreign keys")

	out, err = run(t, "export", "--config", cfg, "--csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Export completed")

	entries, err := os.ReadDir(filepath.Join(dir, "export"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestInitWritesConfigOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "practicedb.config.json")

	_, err := run(t, "init", "--config", path)
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = run(t, "init", "--config", path)
	assert.Error(t, err)
}
