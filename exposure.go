package footprint

import (
	"fmt"
)

// Exposure is a financial claim, typically a loan, of a reporting entity on a
// counterparty.
type Exposure struct {
	Entity       string
	Counterparty string
	Amount       Money
}

// Counterparties maps a counterparty id to the sector it operates in.
type Counterparties map[string]SectorKey

// ImpactRecord is an exposure with its allocated impacts.
//
// Direct and Total have one value per pressure, in the order of the
// intensity table's columns.
type ImpactRecord struct {
	Exposure
	Key SectorKey
	// Modeled is false when Key is not in the intensity tables: impacts are
	// then zero.
	Modeled bool
	Direct  []float64
	Total   []float64
}

// Exposed returns the total amount exposed by each entity.
//
// The exposures of an entity must all be in the same currency, and in
// currency when it is not empty, otherwise Exposed fails with
// ErrCurrencyMismatch. Amounts without a currency match any currency.
func Exposed(exposures []Exposure, currency string) (map[string]Money, error) {
	totals := make(map[string]Money)
	for i, e := range exposures {
		sum, ok := totals[e.Entity]
		if !ok {
			sum = M(0, currency)
		}
		sum, err := sum.Add(e.Amount)
		if err != nil {
			return nil, fmt.Errorf("exposure #%d of %q on %q: %w", i, e.Entity, e.Counterparty, err)
		}
		totals[e.Entity] = sum
	}
	return totals, nil
}

// Allocate computes, for each exposure, the direct and total impacts of the
// counterparty's sector weighted by the exposure amount.
//
// An exposure on a counterparty without attributes fails with
// ErrUnknownCounterparty, an entity with exposures in several currencies
// fails with ErrCurrencyMismatch. A counterparty whose sector is not modeled
// gets zero impacts and is still returned.
//
// direct and total must have the same columns, typically total is the result
// of Propagate(direct, L).
func Allocate(exposures []Exposure, counterparties Counterparties, direct, total *Table) ([]ImpactRecord, error) {
	if !sameColumns(direct, total) {
		return nil, fmt.Errorf("direct columns %v and total columns %v differ: %w", direct.columns, total.columns, ErrShapeMismatch)
	}
	if _, err := Exposed(exposures, ""); err != nil {
		return nil, err
	}
	records := make([]ImpactRecord, 0, len(exposures))
	for i, e := range exposures {
		key, ok := counterparties[e.Counterparty]
		if !ok {
			return nil, fmt.Errorf("exposure #%d of %q on %q: %w", i, e.Entity, e.Counterparty, ErrUnknownCounterparty)
		}
		if e.Amount.IsNegative() {
			return nil, fmt.Errorf("exposure #%d of %q on %q has a negative amount %s: %w", i, e.Entity, e.Counterparty, e.Amount, ErrInvalidExposure)
		}

		d, dok := direct.Row(key)
		t, tok := total.Row(key)
		if !dok {
			d = make([]float64, len(direct.columns))
		}
		if !tok {
			t = make([]float64, len(total.columns))
		}
		for p := range d {
			d[p] = e.Amount.Weigh(d[p])
			t[p] = e.Amount.Weigh(t[p])
		}
		records = append(records, ImpactRecord{
			Exposure: e,
			Key:      key,
			Modeled:  dok || tok,
			Direct:   d,
			Total:    t,
		})
	}
	return records, nil
}
