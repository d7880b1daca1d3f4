package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/practicedb/internal/database"
	"github.com/Lumos-Labs-HQ/practicedb/internal/generator"
	"github.com/Lumos-Labs-HQ/practicedb/internal/realism"
	"github.com/Lumos-Labs-HQ/practicedb/internal/schema"
	"github.com/spf13/viper"
)

const DefaultConfigFile = "practicedb.config.json"

type Config struct {
	Version    string     `json:"version" mapstructure:"version"`
	ExportPath string     `json:"export_path" mapstructure:"export_path"`
	Database   Database   `json:"database" mapstructure:"database"`
	Generation Generation `json:"generation" mapstructure:"generation"`
	Log        Log        `json:"log" mapstructure:"log"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
	Path     string `json:"path,omitempty" mapstructure:"path"` // sqlite file used when url_env is unset
}

type Generation struct {
	Seed      int64            `json:"seed" mapstructure:"seed"` // 0 picks a time-based seed
	Realism   string           `json:"realism" mapstructure:"realism"`
	Profile   string           `json:"profile" mapstructure:"profile"`
	Domains   []string         `json:"domains,omitempty" mapstructure:"domains"` // overrides profile when set
	BatchSize int              `json:"batch_size" mapstructure:"batch_size"`
	Counts    generator.Counts `json:"counts" mapstructure:"counts"`
}

type Log struct {
	Env   string `json:"env" mapstructure:"env"`
	Level string `json:"level" mapstructure:"level"`
}

func Default() Config {
	return Config{
		Version:    "1",
		ExportPath: "db/export",
		Database: Database{
			Provider: "sqlite",
			URLEnv:   "DATABASE_URL",
			Path:     "practice.db",
		},
		Generation: Generation{
			Realism:   realism.KindFaker,
			Profile:   "full",
			BatchSize: 500,
			Counts:    generator.DefaultCounts(),
		},
		Log: Log{
			Env:   "development",
			Level: "info",
		},
	}
}

// EnvKeys are the settings that can be overridden from the environment.
// Nested keys map to upper-case names with underscores, so generation.seed
// is read from GENERATION_SEED.
var EnvKeys = []string{
	"export_path",
	"database.provider",
	"database.url_env",
	"database.path",
	"generation.seed",
	"generation.realism",
	"generation.profile",
	"generation.domains",
	"generation.batch_size",
	"log.env",
	"log.level",
}

func BindEnv(v *viper.Viper) error {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range EnvKeys {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	return nil
}

func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom unmarshals v over the defaults. Keys missing from v keep their
// default values.
func LoadFrom(v *viper.Viper) (*Config, error) {
	cfg := Default()

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	defaults := Default()
	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.ExportPath == "" {
		cfg.ExportPath = defaults.ExportPath
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = defaults.Database.Provider
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = defaults.Database.URLEnv
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = defaults.Database.Path
	}
	if cfg.Generation.Realism == "" {
		cfg.Generation.Realism = defaults.Generation.Realism
	}
	if cfg.Generation.Profile == "" {
		cfg.Generation.Profile = defaults.Generation.Profile
	}
	if cfg.Generation.BatchSize == 0 {
		cfg.Generation.BatchSize = defaults.Generation.BatchSize
	}
	if cfg.Log.Env == "" {
		cfg.Log.Env = defaults.Log.Env
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := database.NewAdapter(c.Database.Provider); err != nil {
		return err
	}

	if !contains(realism.Kinds, c.Generation.Realism) {
		return fmt.Errorf("unsupported realism provider: %s. Supported: %v", c.Generation.Realism, realism.Kinds)
	}

	if len(c.Generation.Domains) == 0 {
		if _, ok := schema.Profiles[c.Generation.Profile]; !ok {
			return fmt.Errorf("unknown profile: %s. Supported: core, full", c.Generation.Profile)
		}
	}

	if c.Generation.BatchSize < 0 {
		return fmt.Errorf("batch_size cannot be negative")
	}

	if c.ExportPath == "" {
		return fmt.Errorf("export_path cannot be empty")
	}

	if c.Log.Env != "development" && c.Log.Env != "production" {
		return fmt.Errorf("log.env must be development or production, got %s", c.Log.Env)
	}

	genCfg, err := c.GeneratorConfig(time.Now())
	if err != nil {
		return err
	}
	return genCfg.Validate()
}

// Domains resolves the explicit domain list, or the profile when no list is set.
func (c *Config) Domains() ([]schema.Domain, error) {
	names := c.Generation.Domains
	if len(names) == 0 {
		names = []string{c.Generation.Profile}
	}
	return schema.ParseDomains(names)
}

func (c *Config) GeneratorConfig(now time.Time) (generator.Config, error) {
	domains, err := c.Domains()
	if err != nil {
		return generator.Config{}, err
	}

	gen := generator.DefaultConfig()
	gen.Seed = c.Generation.Seed
	gen.Now = now
	gen.Domains = domains
	gen.Counts = c.Generation.Counts
	return gen, nil
}

// GetDatabaseURL prefers the configured environment variable. SQLite
// providers fall back to the configured file path.
func (c *Config) GetDatabaseURL() (string, error) {
	if dbURL := os.Getenv(c.Database.URLEnv); dbURL != "" {
		return dbURL, nil
	}
	if c.IsSQLite() && c.Database.Path != "" {
		return "sqlite://" + c.Database.Path, nil
	}
	return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
}

func (c *Config) IsSQLite() bool {
	return strings.HasPrefix(c.Database.Provider, "sqlite")
}

// WriteDefault creates a config file with every default spelled out. It
// refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	data, err := json.MarshalIndent(Default(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
