package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/footprint"
)

func TestFootprintMarkdown(t *testing.T) {
	fp := &footprint.Footprint{
		Pressures: []string{"msa_ghg", "msa_lu"},
		Entities: []footprint.EntityFootprint{
			{Entity: "BANK_1", Exposures: 2, Unmodeled: 1, Direct: []float64{1, 0}, Totals: []float64{1, 0.5}, GrandTotal: 1.5},
			{Entity: "BANK_2", Exposures: 1, Direct: []float64{0, 0}, Totals: []float64{0.25, 0}, GrandTotal: 0.25},
		},
	}
	got := FootprintMarkdown(fp)

	for _, want := range []string{
		"# Portfolio Nature Footprint",
		"| Entity | Exposures | msa_ghg | msa_lu | Total |",
		"|:---|---:|---:|---:|---:|",
		"| BANK_1 | 2 | 1 | 0.5 | 1.5 |",
		"| BANK_2 | 1 | 0.25 | - | 0.25 |",
		"| **Total** | 3 | 1.25 | 0.5 | 1.75 |",
		"1 exposure(s) on sectors without intensity data",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FootprintMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestFootprintMarkdown_Empty(t *testing.T) {
	got := FootprintMarkdown(&footprint.Footprint{})
	if !strings.Contains(got, "No exposures.") {
		t.Errorf("FootprintMarkdown() = %q, want the empty message", got)
	}
}

func TestDependencyMarkdown(t *testing.T) {
	ds := &footprint.DependencyScores{
		Services: []string{"pollination"},
		Rows: []footprint.Dependency{
			{Key: footprint.K("DE", "A"), Direct: []float64{0.5}, Indirect: []float64{0.2}, Total: []float64{0.6}},
		},
	}
	got := DependencyMarkdown(ds)
	for _, want := range []string{
		"## pollination",
		"| DE | A | 50.00% | 20.00% | 60.00% |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DependencyMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestTableMarkdown(t *testing.T) {
	table, err := footprint.NewTable([]string{"msa_ghg"}, []footprint.Row{
		{Key: footprint.K("DE", "A"), Values: []float64{1e-6}},
	})
	if err != nil {
		t.Fatalf("NewTable() failed: %v", err)
	}
	got := TableMarkdown("Direct intensity", table)
	for _, want := range []string{"# Direct intensity", "msa_ghg", "DE", "1e-06"} {
		if !strings.Contains(got, want) {
			t.Errorf("TableMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestNetworkMarkdown(t *testing.T) {
	n := &footprint.Network{
		Nodes: []string{"floods", "flood_protection"},
		Edges: []footprint.Edge{{A: "floods", B: "flood_protection", Weight: 0.35}},
	}
	got := NetworkMarkdown(n)
	for _, want := range []string{"2 nodes, 1 edges.", "floods", "flood_protection", "0.3500"} {
		if !strings.Contains(got, want) {
			t.Errorf("NetworkMarkdown() missing %q in:\n%s", want, got)
		}
	}
}
