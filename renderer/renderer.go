// Package renderer turns footprint engine results into markdown reports.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/footprint"
)

// number formats a footprint value. MSA losses are tiny numbers, keep four
// significant digits.
func number(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%.4g", v)
}

// percent formats a score in [0, 1] as a percentage.
func percent(v float64) string { return fmt.Sprintf("%.2f%%", v*100) }

// FootprintMarkdown renders the per-entity footprint of a portfolio.
func FootprintMarkdown(fp *footprint.Footprint) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Portfolio Nature Footprint\n\n")
	if len(fp.Entities) == 0 {
		fmt.Fprint(&b, "No exposures.\n")
		return b.String()
	}

	fmt.Fprint(&b, "| Entity | Exposures |")
	align := "|:---|---:|"
	for _, p := range fp.Pressures {
		fmt.Fprintf(&b, " %s |", p)
		align += "---:|"
	}
	fmt.Fprintln(&b, " Total |")
	fmt.Fprintln(&b, align+"---:|")

	row := func(name string, ef footprint.EntityFootprint) {
		fmt.Fprintf(&b, "| %s | %d |", name, ef.Exposures)
		for _, v := range ef.Totals {
			fmt.Fprintf(&b, " %s |", number(v))
		}
		fmt.Fprintf(&b, " %s |\n", number(ef.GrandTotal))
	}
	for _, ef := range fp.Entities {
		row(ef.Entity, ef)
	}
	sum := fp.Sum()
	row("**Total**", sum)

	if sum.Unmodeled > 0 {
		fmt.Fprintf(&b, "\n%d exposure(s) on sectors without intensity data contribute zero.\n", sum.Unmodeled)
	}
	return b.String()
}

// DependencyMarkdown renders dependency scores, one section per ecosystem
// service.
func DependencyMarkdown(ds *footprint.DependencyScores) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Ecosystem Service Dependencies\n\n")
	if len(ds.Rows) == 0 {
		fmt.Fprint(&b, "No sectors.\n")
		return b.String()
	}
	for s, service := range ds.Services {
		fmt.Fprintf(&b, "## %s\n\n", service)
		fmt.Fprintln(&b, "| Country | Sector | Direct | Indirect | Total |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
		for _, d := range ds.Rows {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				d.Key.Country,
				d.Key.Sector,
				percent(d.Direct[s]),
				percent(d.Indirect[s]),
				percent(d.Total[s]),
			)
		}
		fmt.Fprintln(&b)
	}
	return b.String()
}
