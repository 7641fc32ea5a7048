package cmd

import (
	"context"
	"flag"
	"io"
	"slices"
	"strings"

	"github.com/etnz/footprint"
	"github.com/etnz/footprint/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// dependencyCmd holds the flags for the 'dependency' subcommand.
type dependencyCmd struct {
	json  bool
	query string
	firms bool
}

func (*dependencyCmd) Name() string     { return "dependency" }
func (*dependencyCmd) Synopsis() string { return "display ecosystem service dependency scores" }
func (*dependencyCmd) Usage() string {
	return `nfp dependency [-json] [-q <jsonpath>] [-firms]

  Scores the direct, indirect and total dependency on ecosystem services of
  every sector of the counterparty table.
`
}

func (c *dependencyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the scores as JSONL")
	f.StringVar(&c.query, "q", "", "JSONPath query applied to the JSON scores (implies -json)")
	f.BoolVar(&c.firms, "firms", false, "Print one line per firm instead of one per sector (implies -json)")
}

func (c *dependencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	direct, err := decodeFile(config.Files.Dependency, footprint.DecodeTable)
	if err != nil {
		return fail(subcommands.ExitFailure, "Error loading dependency table", err)
	}
	l, err := loadLeontief()
	if err != nil {
		return fail(subcommands.ExitFailure, "Error loading leontief inverse", err)
	}
	cps, err := decodeFile(config.Files.Counterparties, footprint.DecodeCounterparties)
	if err != nil {
		return fail(subcommands.ExitFailure, "Error loading counterparties", err)
	}

	firms := sortedFirms(cps)
	ds := footprint.ScoreDependenciesConcurrent(footprint.Keys(firms), direct, l, config.Workers)
	logger.Info("dependencies scored", zap.Int("firms", len(firms)), zap.Int("sectors", len(ds.Rows)))

	switch {
	case c.firms:
		err = printJSONL(c.query, func(w io.Writer) error { return footprint.EncodeFirmDependencies(w, ds.Services, ds.ForFirms(firms)) })
	case c.json || c.query != "":
		err = printJSONL(c.query, func(w io.Writer) error { return footprint.EncodeDependencies(w, ds) })
	default:
		printMarkdown(renderer.DependencyMarkdown(ds))
	}
	if err != nil {
		return fail(subcommands.ExitFailure, "Error writing scores", err)
	}
	return subcommands.ExitSuccess
}

// sortedFirms returns the firms of the counterparty table sorted by id.
func sortedFirms(cps footprint.Counterparties) []footprint.Firm {
	firms := make([]footprint.Firm, 0, len(cps))
	for id, key := range cps {
		firms = append(firms, footprint.Firm{ID: id, Key: key})
	}
	slices.SortFunc(firms, func(a, b footprint.Firm) int { return strings.Compare(a.ID, b.ID) })
	return firms
}
