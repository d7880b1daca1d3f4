package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Lumos-Labs-HQ/practicedb/internal/database/common"
	"github.com/Lumos-Labs-HQ/practicedb/internal/schema"
	_ "github.com/go-sql-driver/mysql"
)

const Driver = "mysql"

type Adapter struct {
	common.Base
}

func New() *Adapter {
	return &Adapter{Base: common.NewBase(schema.MySQL, "`")}
}

func (m *Adapter) DriverName() string {
	return Driver
}

func (m *Adapter) Connect(ctx context.Context, url string) error {
	db, err := sql.Open(Driver, ToDSN(url))
	if err != nil {
		return fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	m.Attach(db)
	return nil
}

var sslParams = strings.NewReplacer(
	"ssl-mode=REQUIRED", "tls=skip-verify",
	"ssl-mode=DISABLED", "tls=false",
	"ssl-mode=VERIFY_CA", "tls=true",
	"ssl-mode=VERIFY_IDENTITY", "tls=true",
	"sslmode=require", "tls=skip-verify",
	"sslmode=disable", "tls=false",
	"sslmode=verify-ca", "tls=true",
	"sslmode=verify-full", "tls=true",
)

// ToDSN converts a mysql:// URL into a go-sql-driver DSN. Anything else is
// assumed to already be a DSN.
func ToDSN(url string) string {
	if !strings.HasPrefix(url, "mysql://") {
		return url
	}

	dsn := strings.TrimPrefix(url, "mysql://")
	atIndex := strings.LastIndex(dsn, "@")
	if atIndex <= 0 {
		return dsn
	}
	credentials := dsn[:atIndex]
	remainder := dsn[atIndex+1:]

	slashIndex := strings.Index(remainder, "/")
	if slashIndex <= 0 {
		return fmt.Sprintf("%s@tcp(%s)/", credentials, remainder)
	}
	hostPort := remainder[:slashIndex]
	dbAndParams := sslParams.Replace(remainder[slashIndex+1:])

	return fmt.Sprintf("%s@tcp(%s)/%s", credentials, hostPort, dbAndParams)
}

func (m *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	return m.TableNames(ctx, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`)
}
