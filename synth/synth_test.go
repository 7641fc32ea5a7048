package synth

import (
	"math"
	"testing"

	"github.com/etnz/footprint"
	"github.com/google/go-cmp/cmp"
)

func TestNew_Reproducible(t *testing.T) {
	a, b := New(42), New(42)
	ta, err := a.Intensities()
	if err != nil {
		t.Fatalf("Intensities() failed: %v", err)
	}
	tb, _ := b.Intensities()
	if diff := cmp.Diff(ta.Rows(), tb.Rows()); diff != "" {
		t.Errorf("same seed, different intensities (-a +b):\n%s", diff)
	}
	if diff := cmp.Diff(a.Firms(10), b.Firms(10)); diff != "" {
		t.Errorf("same seed, different firms (-a +b):\n%s", diff)
	}

	tc, _ := New(43).Intensities()
	if cmp.Equal(ta.Rows(), tc.Rows()) {
		t.Error("different seeds produced the same intensities")
	}
}

func TestGenerator_Loans(t *testing.T) {
	g := New(1)
	firms := g.Firms(5)
	cps := Counterparties(firms)
	loans := g.Loans(100, 3, firms)
	for _, loan := range loans {
		if _, ok := cps[loan.Counterparty]; !ok {
			t.Errorf("loan on unknown counterparty %q", loan.Counterparty)
		}
		if amount := loan.Amount.Weigh(1); amount < 1e5 || amount >= 1e6 {
			t.Errorf("loan amount %v out of range", loan.Amount)
		}
		if cents := loan.Amount.Weigh(100); cents != math.Trunc(cents) {
			t.Errorf("loan amount %v is not in whole cents", loan.Amount)
		}
	}
	if _, err := footprint.Exposed(loans, g.Currency); err != nil {
		t.Errorf("loans are not all in %s: %v", g.Currency, err)
	}
}

func TestGenerator_Tables(t *testing.T) {
	g := New(7)
	keys := g.Keys()
	if len(keys) != len(Countries)*len(Sectors) {
		t.Fatalf("Keys() = %d keys, want %d", len(keys), len(Countries)*len(Sectors))
	}
	deps, err := g.Dependencies()
	if err != nil {
		t.Fatalf("Dependencies() failed: %v", err)
	}
	for _, r := range deps.Rows() {
		for _, v := range r.Values {
			if v < 0 || v >= 1 {
				t.Errorf("%s dependency %v out of [0, 1)", r.Key, v)
			}
		}
	}
	l, err := g.Leontief(0, 0.5)
	if err != nil {
		t.Fatalf("Leontief() failed: %v", err)
	}
	if _, err := footprint.Propagate(deps, l); err != nil {
		t.Errorf("Propagate() over generated tables failed: %v", err)
	}
	sheet := g.ScoreSheet(g.Firms(4), "floods", "heat_stress")
	if len(sheet.Scores) != 4 {
		t.Errorf("ScoreSheet() has %d firms, want 4", len(sheet.Scores))
	}
}
