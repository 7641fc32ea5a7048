package footprint

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Propagate computes the total (direct and upstream) intensity of every sector
// of the direct table.
//
// For each pressure p, with F = diag(direct[., p]), it computes the row sums
// of Lᵗ·F:
//
//	total[k][p] = Σ_k' L[k'][k] · direct[k'][p]
//
// Sums run in the Leontief universe order so that repeated runs are bit
// identical. The result has the direct table's rows and columns.
//
// Propagate fails with ErrShapeMismatch if the direct table and the Leontief
// inverse are not over the same sector universe.
func Propagate(direct *Table, l *Leontief) (*Table, error) {
	return PropagateConcurrent(direct, l, 1)
}

// PropagateConcurrent is Propagate with pressures processed by up to workers
// goroutines. Each pressure is a disjoint output column, so results are
// identical to Propagate.
func PropagateConcurrent(direct *Table, l *Leontief, workers int) (*Table, error) {
	if !direct.universe.SameSet(l.universe) {
		return nil, fmt.Errorf("intensity table and leontief inverse differ, %s: %w", mismatch(direct.universe, l.universe), ErrShapeMismatch)
	}
	n := l.Len()
	m := len(direct.columns)

	// at[i] is the direct table row holding the i-th Leontief key.
	at := make([]int, n)
	for i := range at {
		at[i], _ = direct.universe.Index(l.universe.Key(i))
	}

	values := make([]float64, len(direct.values))
	var g errgroup.Group
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)
	for p := 0; p < m; p++ {
		g.Go(func() error {
			// f is the diagonal of F in Leontief order.
			f := make([]float64, n)
			for i := range f {
				f[i] = direct.values[at[i]*m+p]
			}
			for k := 0; k < n; k++ {
				var sum float64
				for kk := 0; kk < n; kk++ {
					sum += l.At(kk, k) * f[kk]
				}
				values[at[k]*m+p] = sum
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return direct.derive(direct.columns, values), nil
}
