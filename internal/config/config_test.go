package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Lumos-Labs-HQ/practicedb/internal/schema"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadJSON(t *testing.T, body string) *Config {
	t.Helper()
	v := viper.New()
	v.SetConfigType("json")
	require.NoError(t, v.ReadConfig(strings.NewReader(body)))
	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Provider)
	assert.Equal(t, "DATABASE_URL", cfg.Database.URLEnv)
	assert.Equal(t, "practice.db", cfg.Database.Path)
	assert.Equal(t, "faker", cfg.Generation.Realism)
	assert.Equal(t, "full", cfg.Generation.Profile)
	assert.Equal(t, 500, cfg.Generation.BatchSize)
	assert.Equal(t, 500, cfg.Generation.Counts.Customers)
	assert.Equal(t, 2000, cfg.Generation.Counts.Orders)
	assert.Equal(t, "development", cfg.Log.Env)
	assert.NoError(t, cfg.Validate())
}

func TestFileOverridesKeepOtherDefaults(t *testing.T) {
	cfg := loadJSON(t, `{
		"database": {"provider": "postgres"},
		"generation": {"seed": 7, "realism": "pools", "profile": "core", "counts": {"customers": 50, "orders": 0}}
	}`)

	assert.Equal(t, "postgres", cfg.Database.Provider)
	assert.Equal(t, "DATABASE_URL", cfg.Database.URLEnv)
	assert.Equal(t, int64(7), cfg.Generation.Seed)
	assert.Equal(t, 50, cfg.Generation.Counts.Customers)
	assert.Equal(t, 0, cfg.Generation.Counts.Orders)
	assert.Equal(t, 180, cfg.Generation.Counts.Staff)

	gen, err := cfg.GeneratorConfig(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, schema.Profiles["core"], gen.Domains)
	assert.Equal(t, int64(7), gen.Seed)
	assert.Equal(t, 50, gen.Counts.Customers)
}

func TestDomainsOverrideProfile(t *testing.T) {
	cfg := loadJSON(t, `{"generation": {"profile": "core", "domains": ["education", "finance"]}}`)
	domains, err := cfg.Domains()
	require.NoError(t, err)
	assert.Equal(t, []schema.Domain{schema.Education, schema.Finance}, domains)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"provider": func(c *Config) { c.Database.Provider = "oracle" },
		"realism":  func(c *Config) { c.Generation.Realism = "lorem" },
		"profile":  func(c *Config) { c.Generation.Profile = "huge" },
		"domain":   func(c *Config) { c.Generation.Domains = []string{"space"} },
		"needs":    func(c *Config) { c.Generation.Domains = []string{"sales"} },
		"count":    func(c *Config) { c.Generation.Counts.Students = -1 },
		"batch":    func(c *Config) { c.Generation.BatchSize = -5 },
		"export":   func(c *Config) { c.ExportPath = "" },
		"log":      func(c *Config) { c.Log.Env = "staging" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestGetDatabaseURL(t *testing.T) {
	cfg := Default()
	cfg.Database.URLEnv = "PRACTICEDB_TEST_URL"

	t.Setenv("PRACTICEDB_TEST_URL", "")
	url, err := cfg.GetDatabaseURL()
	require.NoError(t, err)
	assert.Equal(t, "sqlite://practice.db", url)

	t.Setenv("PRACTICEDB_TEST_URL", "sqlite:///tmp/other.db")
	url, err = cfg.GetDatabaseURL()
	require.NoError(t, err)
	assert.Equal(t, "sqlite:///tmp/other.db", url)

	t.Setenv("PRACTICEDB_TEST_URL", "")
	cfg.Database.Provider = "postgres"
	_, err = cfg.GetDatabaseURL()
	assert.ErrorContains(t, err, "PRACTICEDB_TEST_URL")
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, WriteDefault(path))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"items_per_order_max": 5`)

	assert.Error(t, WriteDefault(path), "second write must not overwrite")
}

func TestEnvOverridesNestedKeys(t *testing.T) {
	t.Setenv("GENERATION_SEED", "42")
	t.Setenv("GENERATION_REALISM", "pools")
	t.Setenv("GENERATION_DOMAINS", "retail,hr")
	t.Setenv("LOG_LEVEL", "debug")

	v := viper.New()
	v.SetConfigType("json")
	require.NoError(t, v.ReadConfig(strings.NewReader(`{"generation": {"seed": 7, "profile": "core"}}`)))
	require.NoError(t, BindEnv(v))

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Generation.Seed)
	assert.Equal(t, "pools", cfg.Generation.Realism)
	assert.Equal(t, "core", cfg.Generation.Profile)
	assert.Equal(t, []string{"retail", "hr"}, cfg.Generation.Domains)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 500, cfg.Generation.Counts.Customers)
}
