package schema

import "fmt"

type Kind string

const (
	KindInteger Kind = "integer"
	KindText    Kind = "text"
	KindDecimal Kind = "decimal"
	KindDate    Kind = "date"
	KindBoolean Kind = "boolean"
)

type ColumnType struct {
	Kind      Kind
	Precision int
	Scale     int
}

func Integer() ColumnType { return ColumnType{Kind: KindInteger} }
func Text() ColumnType    { return ColumnType{Kind: KindText} }
func Date() ColumnType    { return ColumnType{Kind: KindDate} }
func Boolean() ColumnType { return ColumnType{Kind: KindBoolean} }

func Decimal(precision, scale int) ColumnType {
	return ColumnType{Kind: KindDecimal, Precision: precision, Scale: scale}
}

func (t ColumnType) String() string {
	if t.Kind == KindDecimal {
		return fmt.Sprintf("decimal(%d,%d)", t.Precision, t.Scale)
	}
	return string(t.Kind)
}

func (t ColumnType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

type Reference struct {
	Table  string `yaml:"table"`
	Column string `yaml:"column"`
}

type Column struct {
	Name       string      `yaml:"name"`
	Type       ColumnType  `yaml:"type"`
	PrimaryKey bool        `yaml:"primary_key,omitempty"`
	NotNull    bool        `yaml:"not_null,omitempty"`
	Unique     bool        `yaml:"unique,omitempty"`
	Default    interface{} `yaml:"default,omitempty"`
	References *Reference  `yaml:"references,omitempty"`
}

func (c Column) Nullable() bool {
	return !c.NotNull && !c.PrimaryKey
}

type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

type Table struct {
	Name    string   `yaml:"name"`
	Domain  Domain   `yaml:"domain"`
	Columns []Column `yaml:"columns"`
}

func (t Table) PrimaryKey() string {
	for _, c := range t.Columns {
		if c.PrimaryKey {
			return c.Name
		}
	}
	return ""
}

func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

func (t Table) ForeignKeys() []ForeignKey {
	var fks []ForeignKey
	for _, c := range t.Columns {
		if c.References != nil {
			fks = append(fks, ForeignKey{Column: c.Name, RefTable: c.References.Table, RefColumn: c.References.Column})
		}
	}
	return fks
}

// Dependencies lists the distinct tables this table references, self included.
func (t Table) Dependencies() []string {
	seen := make(map[string]bool)
	var deps []string
	for _, fk := range t.ForeignKeys() {
		if !seen[fk.RefTable] {
			seen[fk.RefTable] = true
			deps = append(deps, fk.RefTable)
		}
	}
	return deps
}

type Index struct {
	Name    string   `yaml:"name"`
	Table   string   `yaml:"table"`
	Columns []string `yaml:"columns"`
}

func pk(name string) Column {
	return Column{Name: name, Type: Integer(), PrimaryKey: true}
}

func col(name string, t ColumnType) Column {
	return Column{Name: name, Type: t}
}

func ref(name, table, column string) Column {
	return Column{Name: name, Type: Integer(), References: &Reference{Table: table, Column: column}}
}

func (c Column) required() Column {
	c.NotNull = true
	return c
}

func (c Column) unique() Column {
	c.Unique = true
	return c
}

func (c Column) withDefault(v interface{}) Column {
	c.Default = v
	return c
}
