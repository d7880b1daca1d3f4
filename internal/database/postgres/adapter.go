package postgres

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/practicedb/internal/database/common"
	"github.com/Lumos-Labs-HQ/practicedb/internal/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

const Driver = "pgx"

type Adapter struct {
	common.Base
}

func New() *Adapter {
	return &Adapter{Base: common.NewBase(schema.Postgres, `"`)}
}

func (p *Adapter) DriverName() string {
	return Driver
}

func (p *Adapter) Connect(ctx context.Context, url string) error {
	config, err := pgx.ParseConfig(url)
	if err != nil {
		return fmt.Errorf("failed to parse connection URL: %w", err)
	}

	config.DefaultQueryExecMode = pgx.QueryExecModeExec

	p.Attach(stdlib.OpenDB(*config))
	return nil
}

func (p *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	return p.TableNames(ctx, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`)
}
