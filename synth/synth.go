// Package synth builds reproducible synthetic inputs for the footprint engine:
// loan books, firm registries, intensity and dependency tables and Leontief
// inverses.
//
// Every Generator owns its random source, two generators created with the same
// seed produce the same tables whatever else happens in the process.
package synth

import (
	"fmt"
	"math/rand/v2"

	"github.com/etnz/footprint"
)

// Default dimensions, matching the sample data shipped with the documentation.
var (
	Countries = []string{"DE", "FR", "IT"}
	Sectors   = []string{"A", "B", "C"}
	Pressures = []string{"msa_ghg", "msa_lu"}
	Services  = []string{"pollination", "flood_protection", "water_purification"}
)

// Generator creates synthetic tables from a local seeded source.
type Generator struct {
	rng       *rand.Rand
	Countries []string
	Sectors   []string
	Currency  string
}

// New returns a generator seeded with seed, over the default countries and
// sectors.
func New(seed uint64) *Generator {
	return &Generator{
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Countries: Countries,
		Sectors:   Sectors,
		Currency:  "EUR",
	}
}

// Keys returns the cartesian product of countries and sectors.
func (g *Generator) Keys() []footprint.SectorKey {
	keys := make([]footprint.SectorKey, 0, len(g.Countries)*len(g.Sectors))
	for _, c := range g.Countries {
		for _, s := range g.Sectors {
			keys = append(keys, footprint.K(c, s))
		}
	}
	return keys
}

// uniform returns a number in [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 { return lo + (hi-lo)*g.rng.Float64() }

// pick returns a random element of list.
func pick[T any](g *Generator, list []T) T { return list[g.rng.IntN(len(list))] }

// Firms returns n firms, FIRM_0 to FIRM_<n-1>, in random sectors.
func (g *Generator) Firms(n int) []footprint.Firm {
	firms := make([]footprint.Firm, n)
	for i := range firms {
		firms[i] = footprint.Firm{
			ID:  fmt.Sprintf("FIRM_%d", i),
			Key: footprint.K(pick(g, g.Countries), pick(g, g.Sectors)),
		}
	}
	return firms
}

// Counterparties returns the attribute table of firms.
func Counterparties(firms []footprint.Firm) footprint.Counterparties {
	cps := make(footprint.Counterparties, len(firms))
	for _, f := range firms {
		cps[f.ID] = f.Key
	}
	return cps
}

// Loans returns n loans from banks BANK_0 to BANK_<banks-1> to random firms,
// with amounts between 100k and 1M.
func (g *Generator) Loans(n, banks int, firms []footprint.Firm) []footprint.Exposure {
	loans := make([]footprint.Exposure, n)
	for i := range loans {
		// whole cents
		amount := float64(int64(g.uniform(1e5, 1e6)*100)) / 100
		loans[i] = footprint.Exposure{
			Entity:       fmt.Sprintf("BANK_%d", g.rng.IntN(banks)),
			Counterparty: pick(g, firms).ID,
			Amount:       footprint.M(amount, g.Currency),
		}
	}
	return loans
}

// Intensities returns a direct MSA-loss intensity table (MSA per EUR) with a
// ghg and a land use pressure for every key.
func (g *Generator) Intensities() (*footprint.Table, error) {
	keys := g.Keys()
	rows := make([]footprint.Row, len(keys))
	for i, k := range keys {
		rows[i] = footprint.Row{Key: k, Values: []float64{g.uniform(1e-8, 1e-6), g.uniform(1e-7, 1e-5)}}
	}
	return footprint.NewTable(Pressures, rows)
}

// Dependencies returns a direct dependency table with scores in [0, 1).
func (g *Generator) Dependencies() (*footprint.Table, error) {
	keys := g.Keys()
	rows := make([]footprint.Row, len(keys))
	for i, k := range keys {
		values := make([]float64, len(Services))
		for s := range values {
			values[s] = g.rng.Float64()
		}
		rows[i] = footprint.Row{Key: k, Values: values}
	}
	return footprint.NewTable(Services, rows)
}

// Leontief returns a dense Leontief inverse with entries in [lo, hi).
func (g *Generator) Leontief(lo, hi float64) (*footprint.Leontief, error) {
	keys := g.Keys()
	entries := make([][]float64, len(keys))
	for i := range entries {
		entries[i] = make([]float64, len(keys))
		for j := range entries[i] {
			entries[i][j] = g.uniform(lo, hi)
		}
	}
	return footprint.NewLeontief(keys, keys, entries)
}

// ScoreSheet returns firm level scores in [0, 1) on columns.
func (g *Generator) ScoreSheet(firms []footprint.Firm, columns ...string) *footprint.ScoreSheet {
	sheet := &footprint.ScoreSheet{
		Columns: columns,
		Scores:  make(map[string][]float64, len(firms)),
	}
	for _, f := range firms {
		scores := make([]float64, len(columns))
		for i := range scores {
			scores[i] = g.rng.Float64()
		}
		sheet.Scores[f.ID] = scores
	}
	return sheet
}
