package schema

import "fmt"

type DependencyGraph struct {
	tables map[string]Table
	names  []string
	order  []string
}

func NewDependencyGraph(tables []Table) *DependencyGraph {
	g := &DependencyGraph{tables: make(map[string]Table, len(tables))}
	for _, t := range tables {
		g.AddTable(t)
	}
	return g
}

func (g *DependencyGraph) AddTable(table Table) {
	if _, exists := g.tables[table.Name]; !exists {
		g.names = append(g.names, table.Name)
	}
	g.tables[table.Name] = table
}

// BuildInsertionOrder returns table names with every referenced table ahead of
// the tables referencing it. Ties keep the order tables were added in.
func (g *DependencyGraph) BuildInsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(tableName string) error {
		if temp[tableName] {
			return fmt.Errorf("circular dependency detected involving table: %s", tableName)
		}
		if visited[tableName] {
			return nil
		}

		table, ok := g.tables[tableName]
		if !ok {
			return fmt.Errorf("table %s is referenced but not part of the graph", tableName)
		}

		temp[tableName] = true
		for _, dep := range table.Dependencies() {
			if dep != tableName { // Skip self-references
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		temp[tableName] = false
		visited[tableName] = true
		order = append(order, tableName)
		return nil
	}

	for _, tableName := range g.names {
		if !visited[tableName] {
			if err := visit(tableName); err != nil {
				return nil, err
			}
		}
	}

	g.order = order
	return order, nil
}

func (g *DependencyGraph) GetOrder() []string {
	return g.order
}

// DropOrder is the insertion order reversed so children go first.
func (g *DependencyGraph) DropOrder() ([]string, error) {
	order, err := g.BuildInsertionOrder()
	if err != nil {
		return nil, err
	}
	drop := make([]string, len(order))
	for i, name := range order {
		drop[len(order)-1-i] = name
	}
	return drop, nil
}
