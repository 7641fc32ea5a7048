package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/footprint"
	"github.com/etnz/footprint/renderer"
	"github.com/google/subcommands"
)

// propagateCmd holds the flags for the 'propagate' subcommand.
type propagateCmd struct {
	key       string
	pressure  string
	json      bool
	emissions string
}

func (*propagateCmd) Name() string     { return "propagate" }
func (*propagateCmd) Synopsis() string { return "compute total (direct and upstream) intensities" }
func (*propagateCmd) Usage() string {
	return `nfp propagate [-key <COUNTRY/SECTOR>] [-pressure <name>] [-json] [-emissions <file>]

  Propagates the direct intensity table through the Leontief inverse and
  prints the total intensity of every sector.
`
}

func (c *propagateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.key, "key", "", "Only print the sector COUNTRY/SECTOR")
	f.StringVar(&c.pressure, "pressure", "", "Only print this pressure column")
	f.BoolVar(&c.json, "json", false, "Print the total intensity table as JSONL")
	f.StringVar(&c.emissions, "emissions", "", "Emission intensity table (kg CO2-eq per unit) to convert and merge")
}

func (c *propagateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var keys []footprint.SectorKey
	if c.key != "" {
		key, err := footprint.ParseSectorKey(c.key)
		if err != nil {
			return fail(subcommands.ExitUsageError, "Error parsing -key", err)
		}
		keys = append(keys, key)
	}

	_, total, err := propagate(c.emissions)
	if err != nil {
		return fail(subcommands.ExitFailure, "Error propagating intensities", err)
	}
	if total, err = selectTotal(total, keys, c.pressure); err != nil {
		return fail(subcommands.ExitFailure, "Error selecting intensities", err)
	}

	if c.json {
		if err := footprint.EncodeTable(os.Stdout, total); err != nil {
			return fail(subcommands.ExitFailure, "Error writing table", err)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.TableMarkdown(fmt.Sprintf("Total Intensity (%d sectors)", total.Len()), total))
	return subcommands.ExitSuccess
}

// selectTotal restricts t to the pressure column, if not empty, and to keys, if
// any. Unknown keys and pressures are errors.
func selectTotal(t *footprint.Table, keys []footprint.SectorKey, pressure string) (*footprint.Table, error) {
	if pressure != "" {
		values, err := t.Column(pressure)
		if err != nil {
			return nil, err
		}
		rows := make([]footprint.Row, t.Len())
		for i, k := range t.Universe().Keys() {
			rows[i] = footprint.Row{Key: k, Values: []float64{values[i]}}
		}
		if t, err = footprint.NewTable([]string{pressure}, rows); err != nil {
			return nil, err
		}
	}
	if len(keys) == 0 {
		return t, nil
	}
	rows := make([]footprint.Row, len(keys))
	for i, k := range keys {
		values, err := t.Lookup(k)
		if err != nil {
			return nil, err
		}
		rows[i] = footprint.Row{Key: k, Values: values}
	}
	return footprint.NewTable(t.Columns(), rows)
}
