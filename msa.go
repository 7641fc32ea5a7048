package footprint

import (
	"fmt"
	"slices"
)

// DefaultGHGFactor is the MSA loss per kg of CO₂-equivalent for a 100-year
// integration, as published by GLOBIO.
const DefaultGHGFactor = 4.37e-5

// EmissionsToMSA converts a table of greenhouse gas emission intensities (kg
// CO₂-eq per unit of output) into MSA-loss intensities (MSA per unit of
// output), using factor MSA loss per kg CO₂-eq.
//
// Columns are renamed with the given names, if any, so that the result can be
// merged with other MSA pressures.
func EmissionsToMSA(co2 *Table, factor float64, names ...string) (*Table, error) {
	msa, err := co2.Scale(factor)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return msa, nil
	}
	if len(names) != len(co2.columns) {
		return nil, fmt.Errorf("%d names for %d emission columns: %w", len(names), len(co2.columns), ErrShapeMismatch)
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return nil, fmt.Errorf("column %q: %w", n, ErrDuplicateKey)
		}
		seen[n] = true
	}
	return msa.derive(names, msa.values), nil
}

// Merge returns a table with the columns of a followed by the columns of b.
//
// Both tables must be over the same sectors, and have no column in common.
// Rows follow a's order.
func Merge(a, b *Table) (*Table, error) {
	if !a.universe.SameSet(b.universe) {
		return nil, fmt.Errorf("cannot merge tables, %s: %w", mismatch(a.universe, b.universe), ErrShapeMismatch)
	}
	for _, c := range b.columns {
		if _, exists := a.colIndex[c]; exists {
			return nil, fmt.Errorf("column %q: %w", c, ErrDuplicateKey)
		}
	}
	columns := append(slices.Clone(a.columns), b.columns...)
	values := make([]float64, 0, a.Len()*len(columns))
	for i := 0; i < a.Len(); i++ {
		values = append(values, a.row(i)...)
		values = append(values, b.RowOrZero(a.universe.Key(i))...)
	}
	return a.derive(columns, values), nil
}
