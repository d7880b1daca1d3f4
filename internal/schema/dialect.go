package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
)

var ErrUnknownDialect = errors.New("unknown dialect")

type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
	MySQL    Dialect = "mysql"
)

// DialectFor maps a configured provider name to its SQL dialect.
func DialectFor(provider string) (Dialect, error) {
	switch strings.ToLower(provider) {
	case "sqlite", "sqlite3", "sqlite-pure":
		return SQLite, nil
	case "postgresql", "postgres":
		return Postgres, nil
	case "mysql":
		return MySQL, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownDialect, provider)
	}
}

func (d Dialect) Placeholder() squirrel.PlaceholderFormat {
	if d == Postgres {
		return squirrel.Dollar
	}
	return squirrel.Question
}

func (d Dialect) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(d.Placeholder())
}

// MaxParams is the bind-parameter ceiling for a single statement.
func (d Dialect) MaxParams() int {
	if d == SQLite {
		return 999
	}
	return 65535
}

// Concat joins string expressions. MySQL treats || as logical OR.
func (d Dialect) Concat(exprs ...string) string {
	if d == MySQL {
		return "CONCAT(" + strings.Join(exprs, ", ") + ")"
	}
	return strings.Join(exprs, " || ")
}

func (d Dialect) ColumnType(t ColumnType) string {
	switch t.Kind {
	case KindInteger:
		if d == MySQL {
			return "INT"
		}
		return "INTEGER"
	case KindText:
		if d == MySQL {
			return "VARCHAR(255)"
		}
		return "TEXT"
	case KindDecimal:
		if d == Postgres {
			return fmt.Sprintf("NUMERIC(%d,%d)", t.Precision, t.Scale)
		}
		return fmt.Sprintf("DECIMAL(%d,%d)", t.Precision, t.Scale)
	case KindDate:
		return "DATE"
	case KindBoolean:
		return "BOOLEAN"
	default:
		return "TEXT"
	}
}

func (d Dialect) literal(v interface{}) string {
	switch val := v.(type) {
	case bool:
		if d == SQLite {
			if val {
				return "1"
			}
			return "0"
		}
		if val {
			return "TRUE"
		}
		return "FALSE"
	case string:
		return "'" + strings.ReplaceAll(val, "'", "''") + "'"
	default:
		return fmt.Sprintf("%v", val)
	}
}

func (d Dialect) CreateTableSQL(table Table) string {
	var lines []string
	for _, c := range table.Columns {
		line := fmt.Sprintf("    %s %s", c.Name, d.ColumnType(c.Type))
		if c.PrimaryKey {
			line += " PRIMARY KEY"
		}
		if c.NotNull {
			line += " NOT NULL"
		}
		if c.Unique {
			line += " UNIQUE"
		}
		if c.Default != nil {
			line += " DEFAULT " + d.literal(c.Default)
		}
		lines = append(lines, line)
	}
	for _, fk := range table.ForeignKeys() {
		lines = append(lines, fmt.Sprintf("    FOREIGN KEY (%s) REFERENCES %s(%s)", fk.Column, fk.RefTable, fk.RefColumn))
	}
	return fmt.Sprintf("CREATE TABLE %s (\n%s\n)", table.Name, strings.Join(lines, ",\n"))
}

func (d Dialect) DropTableSQL(name string) string {
	if d == Postgres {
		return fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", name)
	}
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", name)
}

func (d Dialect) CreateIndexSQL(idx Index) string {
	return fmt.Sprintf("CREATE INDEX %s ON %s(%s)", idx.Name, idx.Table, strings.Join(idx.Columns, ", "))
}

// Script renders the full DDL for the given tables in insertion order.
func (d Dialect) Script(tables []Table) (string, error) {
	order, err := NewDependencyGraph(tables).BuildInsertionOrder()
	if err != nil {
		return "", err
	}
	byName := make(map[string]Table, len(tables))
	for _, t := range tables {
		byName[t.Name] = t
	}

	var sb strings.Builder
	for _, name := range order {
		sb.WriteString(d.CreateTableSQL(byName[name]))
		sb.WriteString(";\n\n")
	}
	for _, idx := range Indexes(tables) {
		sb.WriteString(d.CreateIndexSQL(idx))
		sb.WriteString(";\n")
	}
	return sb.String(), nil
}
