package footprint

import (
	"fmt"
	"math"
	"slices"
)

// Row is a table row before it is indexed: a sector key and one value per
// column.
type Row struct {
	Key    SectorKey
	Values []float64
}

// Table holds non-negative per-unit-output values (pressure intensities or
// ecosystem-service dependencies) keyed by sector, over named columns.
//
// A Table is immutable once created.
type Table struct {
	columns  []string
	colIndex map[string]int
	universe *Universe
	values   []float64 // row major, universe order
}

// NewTable creates a table with the given columns and rows.
//
// Rows must have one value per column, values must be non-negative numbers and
// keys must be unique.
func NewTable(columns []string, rows []Row) (*Table, error) {
	colIndex := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, exists := colIndex[c]; exists {
			return nil, fmt.Errorf("column %q: %w", c, ErrDuplicateKey)
		}
		colIndex[c] = i
	}

	keys := make([]SectorKey, len(rows))
	values := make([]float64, 0, len(rows)*len(columns))
	for i, r := range rows {
		if len(r.Values) != len(columns) {
			return nil, fmt.Errorf("sector %s has %d values for %d columns: %w", r.Key, len(r.Values), len(columns), ErrShapeMismatch)
		}
		for j, v := range r.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return nil, fmt.Errorf("sector %s column %q = %v: %w", r.Key, columns[j], v, ErrInvalidValue)
			}
		}
		keys[i] = r.Key
		values = append(values, r.Values...)
	}
	universe, err := NewUniverse(keys...)
	if err != nil {
		return nil, err
	}

	return &Table{
		columns:  slices.Clone(columns),
		colIndex: colIndex,
		universe: universe,
		values:   values,
	}, nil
}

// Columns returns a copy of the column names.
func (t *Table) Columns() []string { return slices.Clone(t.columns) }

// Universe returns the sector keys of the table, in row order.
func (t *Table) Universe() *Universe { return t.universe }

// Len returns the number of rows.
func (t *Table) Len() int { return t.universe.Len() }

// Rows returns a copy of all the rows in table order.
func (t *Table) Rows() []Row {
	rows := make([]Row, t.Len())
	for i := range rows {
		rows[i] = Row{Key: t.universe.Key(i), Values: t.row(i)}
	}
	return rows
}

// row returns a copy of the i-th row values.
func (t *Table) row(i int) []float64 {
	n := len(t.columns)
	return slices.Clone(t.values[i*n : (i+1)*n])
}

// Row returns a copy of the values for key, false if key is not in the table.
func (t *Table) Row(key SectorKey) ([]float64, bool) {
	i, ok := t.universe.Index(key)
	if !ok {
		return nil, false
	}
	return t.row(i), true
}

// Lookup is the strict version of Row.
func (t *Table) Lookup(key SectorKey) ([]float64, error) {
	values, ok := t.Row(key)
	if !ok {
		return nil, fmt.Errorf("sector %s is not in the table: %w", key, ErrKeyMismatch)
	}
	return values, nil
}

// RowOrZero returns the values for key, or a zero vector when key is not
// modeled. Unmodeled sectors carry no measured impact, they are not an error.
func (t *Table) RowOrZero(key SectorKey) []float64 {
	if values, ok := t.Row(key); ok {
		return values
	}
	return make([]float64, len(t.columns))
}

// Column returns the values of the named column in table order.
func (t *Table) Column(name string) ([]float64, error) {
	j, ok := t.colIndex[name]
	if !ok {
		return nil, fmt.Errorf("column %q is not in the table: %w", name, ErrKeyMismatch)
	}
	return t.column(j), nil
}

func (t *Table) column(j int) []float64 {
	n := len(t.columns)
	col := make([]float64, t.Len())
	for i := range col {
		col[i] = t.values[i*n+j]
	}
	return col
}

// Scale returns a new table with every value multiplied by k.
// k must be non-negative.
func (t *Table) Scale(k float64) (*Table, error) {
	if math.IsNaN(k) || k < 0 {
		return nil, fmt.Errorf("scale factor %v: %w", k, ErrInvalidValue)
	}
	values := make([]float64, len(t.values))
	for i, v := range t.values {
		values[i] = v * k
	}
	return t.derive(t.columns, values), nil
}

// derive creates a table sharing t's universe with new columns and values.
func (t *Table) derive(columns []string, values []float64) *Table {
	colIndex := make(map[string]int, len(columns))
	for i, c := range columns {
		colIndex[c] = i
	}
	return &Table{
		columns:  slices.Clone(columns),
		colIndex: colIndex,
		universe: t.universe,
		values:   values,
	}
}

// sameColumns reports whether both tables have the same columns in the same order.
func sameColumns(a, b *Table) bool { return slices.Equal(a.columns, b.columns) }
