package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	neturl "net/url"
	"strings"

	"github.com/Lumos-Labs-HQ/practicedb/internal/database/common"
	"github.com/Lumos-Labs-HQ/practicedb/internal/schema"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

const (
	DriverCGO  = "sqlite3"
	DriverPure = "sqlite"
)

type Adapter struct {
	common.Base
	driver string
	path   string
}

// New uses the cgo driver from mattn/go-sqlite3.
func New() *Adapter {
	return &Adapter{Base: common.NewBase(schema.SQLite, `"`), driver: DriverCGO}
}

// NewPure uses the pure-Go driver from modernc.org/sqlite.
func NewPure() *Adapter {
	return &Adapter{Base: common.NewBase(schema.SQLite, `"`), driver: DriverPure}
}

func (s *Adapter) DriverName() string {
	return s.driver
}

// Path is the database file the adapter is connected to.
func (s *Adapter) Path() string {
	return s.path
}

func (s *Adapter) Connect(ctx context.Context, url string) error {
	dsn, err := s.DSN(url)
	if err != nil {
		return err
	}

	db, err := sql.Open(s.driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	s.Attach(db)
	return nil
}

// DSN merges the connection defaults into the query string of url. Foreign
// key enforcement is always switched on. Journal mode and busy timeout are
// only filled in when url does not set them.
func (s *Adapter) DSN(rawURL string) (string, error) {
	path, query, _ := strings.Cut(strings.TrimPrefix(rawURL, "sqlite://"), "?")
	params, err := neturl.ParseQuery(query)
	if err != nil {
		return "", fmt.Errorf("invalid SQLite URL parameters: %w", err)
	}
	s.path = path

	if s.driver == DriverPure {
		setPragmas(params)
	} else {
		setParams(params)
	}
	return path + "?" + params.Encode(), nil
}

// setParams applies the mattn/go-sqlite3 connection parameters.
func setParams(params neturl.Values) {
	params.Del("_fk")
	params.Set("_foreign_keys", "on")
	setDefault(params, "WAL", "_journal_mode", "_journal")
	setDefault(params, "5000", "_busy_timeout", "_timeout")
}

func setDefault(params neturl.Values, value, key string, aliases ...string) {
	for _, k := range append([]string{key}, aliases...) {
		if params.Has(k) {
			return
		}
	}
	params.Set(key, value)
}

// setPragmas applies the modernc.org/sqlite _pragma list.
func setPragmas(params neturl.Values) {
	var pragmas []string
	seen := make(map[string]bool)
	for _, p := range params["_pragma"] {
		name := p
		if i := strings.IndexAny(p, "(="); i >= 0 {
			name = p[:i]
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "foreign_keys" {
			continue
		}
		seen[name] = true
		pragmas = append(pragmas, p)
	}

	pragmas = append(pragmas, "foreign_keys(1)")
	if !seen["journal_mode"] {
		pragmas = append(pragmas, "journal_mode(WAL)")
	}
	if !seen["busy_timeout"] {
		pragmas = append(pragmas, "busy_timeout(5000)")
	}
	params["_pragma"] = pragmas
}

func (s *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	return s.TableNames(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
}
