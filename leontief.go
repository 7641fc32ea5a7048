package footprint

import (
	"fmt"
	"math"
)

// Leontief is a square Leontief inverse indexed by the same sector universe on
// both axes.
//
// L[i][j] relates sector i (row) to sector j (column). The propagation engine
// reads L column-wise: the total intensity of sector j embeds the direct
// intensity of every row sector i weighted by L[i][j]. The dependency scorer
// reads L row-wise.
type Leontief struct {
	universe *Universe
	entries  []float64 // row major, n*n
}

// NewLeontief creates a Leontief inverse from a dense matrix with labelled rows
// and columns.
//
// Row and column labels must be the same set of keys, in any order: entries
// are reordered so that both axes follow the row order.
func NewLeontief(rows, cols []SectorKey, entries [][]float64) (*Leontief, error) {
	if len(rows) != len(cols) {
		return nil, fmt.Errorf("leontief inverse is %dx%d, not square: %w", len(rows), len(cols), ErrShapeMismatch)
	}
	if len(entries) != len(rows) {
		return nil, fmt.Errorf("leontief inverse has %d rows of entries for %d row keys: %w", len(entries), len(rows), ErrShapeMismatch)
	}
	ru, err := NewUniverse(rows...)
	if err != nil {
		return nil, fmt.Errorf("leontief rows: %w", err)
	}
	cu, err := NewUniverse(cols...)
	if err != nil {
		return nil, fmt.Errorf("leontief columns: %w", err)
	}
	if !ru.SameSet(cu) {
		return nil, fmt.Errorf("leontief rows and columns differ, %s: %w", mismatch(ru, cu), ErrShapeMismatch)
	}

	n := ru.Len()
	// perm[c] is the position in row order of the c-th column label.
	perm := make([]int, n)
	for c, k := range cols {
		perm[c], _ = ru.Index(k)
	}
	values := make([]float64, n*n)
	for i, line := range entries {
		if len(line) != n {
			return nil, fmt.Errorf("leontief row %s has %d entries, want %d: %w", rows[i], len(line), n, ErrShapeMismatch)
		}
		for c, v := range line {
			if math.IsNaN(v) {
				return nil, fmt.Errorf("leontief entry (%s, %s) is NaN: %w", rows[i], cols[c], ErrInvalidValue)
			}
			values[i*n+perm[c]] = v
		}
	}
	return &Leontief{universe: ru, entries: values}, nil
}

// Identity returns the identity matrix over keys: no upstream amplification.
func Identity(keys ...SectorKey) (*Leontief, error) {
	u, err := NewUniverse(keys...)
	if err != nil {
		return nil, err
	}
	n := u.Len()
	values := make([]float64, n*n)
	for i := 0; i < n; i++ {
		values[i*n+i] = 1
	}
	return &Leontief{universe: u, entries: values}, nil
}

// Universe returns the sector keys indexing both axes.
func (l *Leontief) Universe() *Universe { return l.universe }

// Len returns the size of the matrix.
func (l *Leontief) Len() int { return l.universe.Len() }

// At returns L[i][j].
func (l *Leontief) At(i, j int) float64 { return l.entries[i*l.Len()+j] }

// Row returns a copy of the row for key, in universe order, and false if key
// is not in the matrix.
func (l *Leontief) Row(key SectorKey) ([]float64, bool) {
	i, ok := l.universe.Index(key)
	if !ok {
		return nil, false
	}
	n := l.Len()
	row := make([]float64, n)
	copy(row, l.entries[i*n:(i+1)*n])
	return row, true
}
