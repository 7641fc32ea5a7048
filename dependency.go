package footprint

import "golang.org/x/sync/errgroup"

// Dependency holds the dependency scores of one sector on each ecosystem
// service, in the order of DependencyScores.Services.
type Dependency struct {
	Key      SectorKey
	Direct   []float64
	Indirect []float64
	Total    []float64
}

// DependencyScores is the set of dependency scores per sector.
type DependencyScores struct {
	Services []string
	Rows     []Dependency // one per distinct sector, first appearance order
	index    map[SectorKey]int
}

// Firm is a company operating in a sector.
type Firm struct {
	ID  string
	Key SectorKey
}

// FirmDependency joins a firm with the scores of its sector.
type FirmDependency struct {
	Firm string
	Dependency
}

// ScoreDependencies computes the direct, indirect and total dependency of each
// distinct sector in keys on every ecosystem service of the direct table.
//
// The indirect score is the average of the suppliers' direct scores weighted
// by the sector's row of the Leontief inverse normalized to sum to one. The
// total combines both with a saturating rule:
//
//	total = direct + (1 - direct) · indirect
//
// Sectors missing from the direct table, or from the Leontief inverse, get a
// zero direct, or indirect, score instead of an error. l may be nil, in which
// case every indirect score is zero.
func ScoreDependencies(keys []SectorKey, direct *Table, l *Leontief) *DependencyScores {
	return ScoreDependenciesConcurrent(keys, direct, l, 1)
}

// ScoreDependenciesConcurrent is ScoreDependencies with sectors processed by up
// to workers goroutines. Each sector writes its own row, results are identical.
func ScoreDependenciesConcurrent(keys []SectorKey, direct *Table, l *Leontief, workers int) *DependencyScores {
	ds := &DependencyScores{
		Services: direct.Columns(),
		index:    make(map[SectorKey]int),
	}
	for _, k := range keys {
		if _, exists := ds.index[k]; exists {
			continue
		}
		ds.index[k] = len(ds.Rows)
		ds.Rows = append(ds.Rows, Dependency{Key: k})
	}

	// suppliers[i] is the direct scores of the i-th Leontief key, zero when
	// absent from the direct table.
	var suppliers [][]float64
	if l != nil {
		suppliers = make([][]float64, l.Len())
		for i := range suppliers {
			suppliers[i] = direct.RowOrZero(l.universe.Key(i))
		}
	}

	if workers < 1 {
		workers = 1
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range ds.Rows {
		g.Go(func() error {
			ds.Rows[i] = score(ds.Rows[i].Key, direct, l, suppliers)
			return nil
		})
	}
	_ = g.Wait() // workers never fail
	return ds
}

// score computes the dependency of a single sector.
func score(key SectorKey, direct *Table, l *Leontief, suppliers [][]float64) Dependency {
	m := len(direct.columns)
	d := direct.RowOrZero(key)
	indirect := make([]float64, m)

	var weights []float64
	if l != nil {
		if row, ok := l.Row(key); ok {
			var sum float64
			for _, v := range row {
				sum += v
			}
			if sum > 0 {
				weights = row
				for i := range weights {
					weights[i] /= sum
				}
			}
		}
	}
	for i, w := range weights {
		if w == 0 {
			continue
		}
		for s := 0; s < m; s++ {
			indirect[s] += w * suppliers[i][s]
		}
	}

	total := make([]float64, m)
	for s := range total {
		total[s] = d[s] + (1-d[s])*indirect[s]
	}
	return Dependency{Key: key, Direct: d, Indirect: indirect, Total: total}
}

// Score returns the scores of key, false if key was not scored.
func (ds *DependencyScores) Score(key SectorKey) (Dependency, bool) {
	i, ok := ds.index[key]
	if !ok {
		return Dependency{}, false
	}
	return ds.Rows[i], true
}

// ForFirms joins scores back to firms. Firms sharing a sector share the same
// scores. Firms whose sector was not scored are skipped.
func (ds *DependencyScores) ForFirms(firms []Firm) []FirmDependency {
	res := make([]FirmDependency, 0, len(firms))
	for _, f := range firms {
		d, ok := ds.Score(f.Key)
		if !ok {
			continue
		}
		res = append(res, FirmDependency{Firm: f.ID, Dependency: d})
	}
	return res
}

// Keys returns the sector keys of firms, in firm order.
func Keys(firms []Firm) []SectorKey {
	keys := make([]SectorKey, len(firms))
	for i, f := range firms {
		keys[i] = f.Key
	}
	return keys
}
