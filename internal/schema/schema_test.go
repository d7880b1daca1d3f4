package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCatalogShape(t *testing.T) {
	tables := Catalog()
	require.Len(t, tables, 19)

	seen := make(map[string]bool)
	for _, table := range tables {
		assert.False(t, seen[table.Name], "duplicate table %s", table.Name)
		seen[table.Name] = true
		assert.NotEmpty(t, table.PrimaryKey(), "table %s has no primary key", table.Name)
		assert.Equal(t, table.PrimaryKey(), table.Columns[0].Name)
	}

	for _, table := range tables {
		for _, fk := range table.ForeignKeys() {
			ref, ok := Lookup(fk.RefTable)
			require.True(t, ok, "%s.%s references unknown table %s", table.Name, fk.Column, fk.RefTable)
			assert.Equal(t, ref.PrimaryKey(), fk.RefColumn)
		}
	}
}

func TestCatalogReturnsFreshCopies(t *testing.T) {
	a := Catalog()
	a[0].Columns[0].Name = "mutated"
	b := Catalog()
	assert.Equal(t, "warehouse_id", b[0].Columns[0].Name)
}

func TestInsertionOrderPutsParentsFirst(t *testing.T) {
	order, err := NewDependencyGraph(Catalog()).BuildInsertionOrder()
	require.NoError(t, err)
	require.Len(t, order, 19)

	pos := make(map[string]int)
	for i, name := range order {
		pos[name] = i
	}
	for _, table := range Catalog() {
		for _, dep := range table.Dependencies() {
			if dep == table.Name {
				continue
			}
			assert.Less(t, pos[dep], pos[table.Name], "%s must load before %s", dep, table.Name)
		}
	}

	chain := []string{Categories, Products, Customers, Orders, OrderItems}
	for i := 1; i < len(chain); i++ {
		assert.Less(t, pos[chain[i-1]], pos[chain[i]])
	}
}

func TestInsertionOrderIsDeterministic(t *testing.T) {
	first, err := NewDependencyGraph(Catalog()).BuildInsertionOrder()
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := NewDependencyGraph(Catalog()).BuildInsertionOrder()
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, TableNames(Catalog()), first)
}

func TestDropOrderReversesInsertion(t *testing.T) {
	g := NewDependencyGraph(Catalog())
	drop, err := g.DropOrder()
	require.NoError(t, err)
	assert.Equal(t, InventoryMovements, drop[0])
	assert.Equal(t, Warehouses, drop[len(drop)-1])
}

func TestGraphDetectsCycles(t *testing.T) {
	a := Table{Name: "a", Columns: []Column{pk("a_id"), ref("b_id", "b", "b_id")}}
	b := Table{Name: "b", Columns: []Column{pk("b_id"), ref("a_id", "a", "a_id")}}
	_, err := NewDependencyGraph([]Table{a, b}).BuildInsertionOrder()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circular dependency")
}

func TestGraphRejectsMissingReference(t *testing.T) {
	products, _ := Lookup(Products)
	_, err := NewDependencyGraph([]Table{products}).BuildInsertionOrder()
	require.Error(t, err)
}

func TestParseDomains(t *testing.T) {
	all, err := ParseDomains(nil)
	require.NoError(t, err)
	assert.Equal(t, AllDomains, all)

	core, err := ParseDomains([]string{"core"})
	require.NoError(t, err)
	assert.Equal(t, []Domain{Retail, HR, Sales}, core)

	mixed, err := ParseDomains([]string{"finance", " Retail "})
	require.NoError(t, err)
	assert.Equal(t, []Domain{Retail, Finance}, mixed)

	_, err = ParseDomains([]string{"sales"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires domain retail")

	_, err = ParseDomains([]string{"bogus"})
	require.Error(t, err)
}

func TestTablesForAndIndexes(t *testing.T) {
	core := TablesFor(Profiles["core"])
	assert.Len(t, core, 13)
	assert.Len(t, Indexes(Catalog()), 20)
	assert.Len(t, Indexes(core), 16)

	for _, idx := range Indexes(core) {
		table, ok := Lookup(idx.Table)
		require.True(t, ok)
		names := strings.Join(table.ColumnNames(), ",")
		for _, c := range idx.Columns {
			assert.Contains(t, names, c)
		}
	}
}

func TestDialectFor(t *testing.T) {
	for provider, want := range map[string]Dialect{
		"sqlite": SQLite, "sqlite3": SQLite, "sqlite-pure": SQLite,
		"postgres": Postgres, "postgresql": Postgres, "MySQL": MySQL,
	} {
		got, err := DialectFor(provider)
		require.NoError(t, err)
		assert.Equal(t, want, got, provider)
	}
	_, err := DialectFor("oracle")
	require.ErrorIs(t, err, ErrUnknownDialect)
}

func TestCreateTableSQLPerDialect(t *testing.T) {
	customers, _ := Lookup(Customers)

	lite := SQLite.CreateTableSQL(customers)
	assert.Contains(t, lite, "customer_id INTEGER PRIMARY KEY")
	assert.Contains(t, lite, "email TEXT UNIQUE")
	assert.Contains(t, lite, "country TEXT DEFAULT 'USA'")
	assert.Contains(t, lite, "is_vip BOOLEAN DEFAULT 0")
	assert.Contains(t, lite, "total_spent DECIMAL(10,2) DEFAULT 0")

	pg := Postgres.CreateTableSQL(customers)
	assert.Contains(t, pg, "is_vip BOOLEAN DEFAULT FALSE")
	assert.Contains(t, pg, "total_spent NUMERIC(10,2)")

	my := MySQL.CreateTableSQL(customers)
	assert.Contains(t, my, "email VARCHAR(255) UNIQUE")
	assert.Contains(t, my, "customer_id INT PRIMARY KEY")

	orders, _ := Lookup(Orders)
	assert.Contains(t, SQLite.CreateTableSQL(orders), "FOREIGN KEY (customer_id) REFERENCES customers(customer_id)")
	assert.Contains(t, SQLite.CreateTableSQL(orders), "order_date DATE NOT NULL")
}

func TestDropAndIndexSQL(t *testing.T) {
	assert.Equal(t, "DROP TABLE IF EXISTS orders", SQLite.DropTableSQL("orders"))
	assert.Equal(t, "DROP TABLE IF EXISTS orders CASCADE", Postgres.DropTableSQL("orders"))
	assert.Equal(t,
		"CREATE INDEX idx_orders_customer_date ON orders(customer_id, order_date)",
		SQLite.CreateIndexSQL(indexes[0]))
}

func TestConcat(t *testing.T) {
	assert.Equal(t, "a || ' ' || b", SQLite.Concat("a", "' '", "b"))
	assert.Equal(t, "a || b", Postgres.Concat("a", "b"))
	assert.Equal(t, "CONCAT(a, ' ', b)", MySQL.Concat("a", "' '", "b"))
}

func TestScriptContainsEveryTable(t *testing.T) {
	script, err := SQLite.Script(Catalog())
	require.NoError(t, err)
	assert.Equal(t, 19, strings.Count(script, "CREATE TABLE"))
	assert.Equal(t, 20, strings.Count(script, "CREATE INDEX"))
	assert.Less(t, strings.Index(script, "CREATE TABLE categories"), strings.Index(script, "CREATE TABLE products"))
}

func TestTableMarshalsToYAML(t *testing.T) {
	orderItems, _ := Lookup(OrderItems)
	out, err := yaml.Marshal(orderItems)
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "name: order_items")
	assert.Contains(t, text, "type: decimal(10,2)")
	assert.Contains(t, text, "table: products")
}

func TestDocumentYAML(t *testing.T) {
	doc := NewDocument(TablesFor(Profiles["core"]))
	out, err := doc.YAML()
	require.NoError(t, err)

	var back struct {
		Tables []struct {
			Name string `yaml:"name"`
		} `yaml:"tables"`
		Indexes []Index `yaml:"indexes"`
	}
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Len(t, back.Tables, 13)
	assert.Len(t, back.Indexes, 16)
	assert.Equal(t, Warehouses, back.Tables[0].Name)
}
