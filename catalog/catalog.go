// Package catalog loads linked datasets described by a YAML manifest.
//
// A manifest names a set of parquet-backed tables and the relations between
// them:
//
//	logger:
//	  level: info
//	tables:
//	  - name: customers
//	    path: data/customers.parquet
//	  - name: orders
//	    path: data/orders.parquet
//	relations:
//	  - table: customers
//	    name: orders
//	    target: orders
//	    own_column: id
//	    other_column: customer_id
//
// Table paths are resolved relative to the manifest file's directory.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/relcat-io/relcat/reader"
	"github.com/relcat-io/relcat/table"
)

// Manifest describes a dataset: its tables, the relations linking them,
// and tool configuration.
type Manifest struct {
	Logger    LoggerConfig     `yaml:"logger"`
	Tables    []TableConfig    `yaml:"tables"`
	Relations []RelationConfig `yaml:"relations"`
}

// LoggerConfig configures the tool's logger.
type LoggerConfig struct {
	Level string `yaml:"level"`
}

// TableConfig names one parquet-backed table.
type TableConfig struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// RelationConfig declares one relation between two manifest tables.
type RelationConfig struct {
	Table       string `yaml:"table"`
	Name        string `yaml:"name"`
	Target      string `yaml:"target"`
	OwnColumn   string `yaml:"own_column"`
	OtherColumn string `yaml:"other_column"`
}

// Parse decodes and validates a manifest document.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("cannot parse manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// validate checks the manifest's internal consistency. Column existence is
// checked later, at wire time, once the tables are loaded.
func (m *Manifest) validate() error {
	if len(m.Tables) == 0 {
		return fmt.Errorf("manifest declares no tables")
	}

	names := make(map[string]bool, len(m.Tables))
	for _, tc := range m.Tables {
		if tc.Name == "" {
			return fmt.Errorf("table with empty name")
		}
		if tc.Path == "" {
			return fmt.Errorf("table %q has no path", tc.Name)
		}
		if names[tc.Name] {
			return fmt.Errorf("duplicate table name %q", tc.Name)
		}
		names[tc.Name] = true
	}

	for _, rc := range m.Relations {
		if rc.Name == "" {
			return fmt.Errorf("relation on table %q has no name", rc.Table)
		}
		if !names[rc.Table] {
			return fmt.Errorf("relation %q references undeclared table %q", rc.Name, rc.Table)
		}
		if !names[rc.Target] {
			return fmt.Errorf("relation %q references undeclared target table %q", rc.Name, rc.Target)
		}
		if rc.OwnColumn == "" || rc.OtherColumn == "" {
			return fmt.Errorf("relation %q must declare own_column and other_column", rc.Name)
		}
	}

	return nil
}

// Wire declares the manifest's relations on the given tables. The map must
// contain an entry for every table the manifest declares.
func (m *Manifest) Wire(tables map[string]*table.Table) error {
	for _, rc := range m.Relations {
		src, ok := tables[rc.Table]
		if !ok {
			return fmt.Errorf("relation %q: table %q not loaded", rc.Name, rc.Table)
		}
		dst, ok := tables[rc.Target]
		if !ok {
			return fmt.Errorf("relation %q: target table %q not loaded", rc.Name, rc.Target)
		}
		if err := src.Relate(rc.Name, dst, rc.OwnColumn, rc.OtherColumn); err != nil {
			return fmt.Errorf("relation %q: %w", rc.Name, err)
		}
	}
	return nil
}

// Catalog is a loaded dataset: all manifest tables with their relations
// declared.
type Catalog struct {
	Manifest *Manifest
	tables   map[string]*table.Table
}

// Load reads a manifest file, loads every table it declares, and wires the
// relations.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read manifest: %w", err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, err
	}

	baseDir := filepath.Dir(path)
	tables := make(map[string]*table.Table, len(m.Tables))
	for _, tc := range m.Tables {
		tablePath := tc.Path
		if !filepath.IsAbs(tablePath) {
			tablePath = filepath.Join(baseDir, tablePath)
		}
		t, err := reader.ReadTable(tablePath, tc.Name)
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", tc.Name, err)
		}
		tables[tc.Name] = t
	}

	if err := m.Wire(tables); err != nil {
		return nil, err
	}

	return &Catalog{Manifest: m, tables: tables}, nil
}

// Table returns the loaded table with the given name.
func (c *Catalog) Table(name string) (*table.Table, bool) {
	t, ok := c.tables[name]
	return t, ok
}

// TableNames returns the names of all loaded tables.
func (c *Catalog) TableNames() []string {
	names := make([]string, 0, len(c.tables))
	for _, tc := range c.Manifest.Tables {
		names = append(names, tc.Name)
	}
	return names
}
