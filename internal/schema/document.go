package schema

import "gopkg.in/yaml.v3"

// Document is the dialect-neutral description of a fixture layout.
type Document struct {
	Tables  []Table `yaml:"tables"`
	Indexes []Index `yaml:"indexes"`
}

func NewDocument(tables []Table) Document {
	return Document{Tables: tables, Indexes: Indexes(tables)}
}

func (d Document) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}
