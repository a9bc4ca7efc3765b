// Package catalog holds the in-memory table store for one session: every
// table the engine can see, keyed by name. The catalog is the sole owner of
// its tables and their rows; the engine borrows them only for the duration
// of one statement. Access is single-threaded: one statement is executed to
// completion before the next is accepted.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"minidb/internal/sql"
)

// Catalog-level errors. Callers can test the failure class with errors.Is.
var (
	ErrTableExists   = errors.New("table already exists")
	ErrNoSuchTable   = errors.New("no such table")
	ErrUnknownColumn = errors.New("unknown column")
)

// Table is a schema plus its row store. Invariant: every row has exactly
// len(Schema) values and each value's variant is compatible with the
// declared type at its position (NULL is always compatible).
type Table struct {
	Schema []sql.Column
	Rows   []sql.Row
}

// ColumnIndex returns the schema position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, col := range t.Schema {
		if col.Name == name {
			return i, true
		}
	}
	return 0, false
}

// ColumnNames returns the column names in schema order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Schema))
	for i, col := range t.Schema {
		names[i] = col.Name
	}
	return names
}

// AddColumn appends a column to the schema and pads every existing row with
// a trailing NULL, preserving the row-width invariant.
func (t *Table) AddColumn(col sql.Column) error {
	if _, ok := t.ColumnIndex(col.Name); ok {
		return fmt.Errorf("column %q already exists", col.Name)
	}
	t.Schema = append(t.Schema, col)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], sql.NullValue())
	}
	return nil
}

// DropColumn removes the named column from the schema and the value at its
// position from every row.
func (t *Table) DropColumn(name string) error {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	t.Schema = append(t.Schema[:idx], t.Schema[idx+1:]...)
	for i, row := range t.Rows {
		t.Rows[i] = append(row[:idx], row[idx+1:]...)
	}
	return nil
}

// ModifyColumn changes the declared type of the named column and converts
// every stored value to the new type. The conversion is best-effort: text
// that does not read as an integer becomes NULL under INT.
func (t *Table) ModifyColumn(name string, dt sql.DataType) error {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	t.Schema[idx].Type = dt
	for i := range t.Rows {
		t.Rows[i][idx] = sql.Convert(t.Rows[i][idx], dt)
	}
	return nil
}

// Catalog maps table names to tables.
type Catalog struct {
	tables map[string]*Table
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{tables: make(map[string]*Table)}
}

// Create adds an empty table with the given schema. Column names must be
// unique within the table.
func (c *Catalog) Create(name string, cols []sql.Column) error {
	if _, exists := c.tables[name]; exists {
		return fmt.Errorf("%w: %q", ErrTableExists, name)
	}
	seen := make(map[string]bool, len(cols))
	for _, col := range cols {
		if seen[col.Name] {
			return fmt.Errorf("duplicate column %q in table %q", col.Name, name)
		}
		seen[col.Name] = true
	}
	schema := make([]sql.Column, len(cols))
	copy(schema, cols)
	c.tables[name] = &Table{Schema: schema}
	return nil
}

// Drop removes the named table and all its rows.
func (c *Catalog) Drop(name string) error {
	if _, exists := c.tables[name]; !exists {
		return fmt.Errorf("%w: %q", ErrNoSuchTable, name)
	}
	delete(c.tables, name)
	return nil
}

// Get returns the named table.
func (c *Catalog) Get(name string) (*Table, error) {
	t, ok := c.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchTable, name)
	}
	return t, nil
}

// Names returns all table names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
