package cmd

import (
	"context"
	"flag"
	"io"
	"maps"
	"slices"

	"github.com/etnz/footprint"
	"github.com/etnz/footprint/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// footprintCmd holds the flags for the 'footprint' subcommand.
type footprintCmd struct {
	json      bool
	query     string
	emissions string
}

func (*footprintCmd) Name() string     { return "footprint" }
func (*footprintCmd) Synopsis() string { return "display the nature footprint of every reporting entity" }
func (*footprintCmd) Usage() string {
	return `nfp footprint [-json] [-q <jsonpath>] [-emissions <file>]

  Allocates total intensities to every exposure of the loan book, and sums the
  impacts per reporting entity.
`
}

func (c *footprintCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the footprint as JSONL")
	f.StringVar(&c.query, "q", "", "JSONPath query applied to the JSON footprint (implies -json)")
	f.StringVar(&c.emissions, "emissions", "", "Emission intensity table (kg CO2-eq per unit) to convert and merge")
}

func (c *footprintCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	direct, total, err := propagate(c.emissions)
	if err != nil {
		return fail(subcommands.ExitFailure, "Error propagating intensities", err)
	}
	exposures, err := decodeFile(config.Files.Exposures, footprint.DecodeExposures)
	if err != nil {
		return fail(subcommands.ExitFailure, "Error loading exposures", err)
	}
	cps, err := decodeFile(config.Files.Counterparties, footprint.DecodeCounterparties)
	if err != nil {
		return fail(subcommands.ExitFailure, "Error loading counterparties", err)
	}

	amounts, err := footprint.Exposed(exposures, config.Currency)
	if err != nil {
		return fail(subcommands.ExitFailure, "Error checking exposure currencies", err)
	}
	for _, entity := range slices.Sorted(maps.Keys(amounts)) {
		logger.Debug("exposed", zap.String("entity", entity), zap.Stringer("amount", amounts[entity]))
	}

	records, err := footprint.Allocate(exposures, cps, direct, total)
	if err != nil {
		return fail(subcommands.ExitFailure, "Error allocating impacts", err)
	}
	fp := footprint.Aggregate(total.Columns(), records)
	logger.Info("footprint computed", zap.Int("exposures", len(records)), zap.Int("entities", len(fp.Entities)))

	if c.json || c.query != "" {
		if err := printJSONL(c.query, func(w io.Writer) error { return footprint.EncodeFootprint(w, fp) }); err != nil {
			return fail(subcommands.ExitFailure, "Error writing footprint", err)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.FootprintMarkdown(fp))
	return subcommands.ExitSuccess
}
