package footprint

import (
	"slices"
	"strings"
)

// EntityFootprint is the footprint of one reporting entity.
type EntityFootprint struct {
	Entity string
	// Exposures counts every exposure of the entity, including those on
	// unmodeled sectors.
	Exposures int
	// Unmodeled counts exposures on sectors absent from the intensity tables.
	Unmodeled int
	// Direct and Totals have one value per pressure of the Footprint.
	Direct []float64
	Totals []float64
	// GrandTotal is the sum of Totals across pressures. Pressures are all
	// expressed in the same loss unit so they add up.
	GrandTotal float64
}

// Footprint is the per-entity footprint of a portfolio.
type Footprint struct {
	Pressures []string
	Entities  []EntityFootprint // sorted by entity id
}

// Aggregate groups impact records by reporting entity and sums their impacts.
//
// pressures names the impact columns, as returned by the intensity table's
// Columns.
func Aggregate(pressures []string, records []ImpactRecord) *Footprint {
	n := len(pressures)
	byEntity := make(map[string]*EntityFootprint)
	for _, r := range records {
		ef, ok := byEntity[r.Entity]
		if !ok {
			ef = &EntityFootprint{
				Entity: r.Entity,
				Direct: make([]float64, n),
				Totals: make([]float64, n),
			}
			byEntity[r.Entity] = ef
		}
		ef.Exposures++
		if !r.Modeled {
			ef.Unmodeled++
		}
		for p := 0; p < n && p < len(r.Total); p++ {
			ef.Direct[p] += r.Direct[p]
			ef.Totals[p] += r.Total[p]
		}
	}

	fp := &Footprint{
		Pressures: slices.Clone(pressures),
		Entities:  make([]EntityFootprint, 0, len(byEntity)),
	}
	for _, ef := range byEntity {
		for _, v := range ef.Totals {
			ef.GrandTotal += v
		}
		fp.Entities = append(fp.Entities, *ef)
	}
	slices.SortFunc(fp.Entities, func(a, b EntityFootprint) int { return strings.Compare(a.Entity, b.Entity) })
	return fp
}

// Entity returns the footprint of the entity id, false if it has no exposure.
func (fp *Footprint) Entity(id string) (EntityFootprint, bool) {
	i, found := slices.BinarySearchFunc(fp.Entities, id, func(e EntityFootprint, id string) int {
		return strings.Compare(e.Entity, id)
	})
	if !found {
		return EntityFootprint{}, false
	}
	return fp.Entities[i], true
}

// Sum returns the footprint of the whole portfolio, summed over entities in
// entity order.
func (fp *Footprint) Sum() EntityFootprint {
	n := len(fp.Pressures)
	sum := EntityFootprint{
		Direct: make([]float64, n),
		Totals: make([]float64, n),
	}
	for _, ef := range fp.Entities {
		sum.Exposures += ef.Exposures
		sum.Unmodeled += ef.Unmodeled
		for p := 0; p < n; p++ {
			sum.Direct[p] += ef.Direct[p]
			sum.Totals[p] += ef.Totals[p]
		}
		sum.GrandTotal += ef.GrandTotal
	}
	return sum
}
