package cmd

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/etnz/footprint"
	"github.com/etnz/footprint/renderer"
	"github.com/google/subcommands"
)

// networkCmd holds the flags for the 'network' subcommand.
type networkCmd struct {
	climate string
	nature  string
	json    bool
	query   string
}

func (*networkCmd) Name() string     { return "network" }
func (*networkCmd) Synopsis() string { return "build the climate and nature co-exposure network" }
func (*networkCmd) Usage() string {
	return `nfp network -climate <file> -nature <file> [-json] [-q <jsonpath>]

  Links climate hazards and ecosystem service dependencies, weighted by the
  average product of firm scores.
`
}

func (c *networkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.climate, "climate", "climate.jsonl", "Firm climate hazard scores")
	f.StringVar(&c.nature, "nature", "nature.jsonl", "Firm ecosystem service dependency scores")
	f.BoolVar(&c.json, "json", false, "Print the edges as JSONL")
	f.StringVar(&c.query, "q", "", "JSONPath query applied to the JSON edges (implies -json)")
}

func (c *networkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.climate == "" || c.nature == "" {
		return fail(subcommands.ExitUsageError, "Error in arguments", errors.New("both -climate and -nature are required"))
	}
	climate, err := decodeFile(c.climate, footprint.DecodeScoreSheet)
	if err != nil {
		return fail(subcommands.ExitFailure, "Error loading climate scores", err)
	}
	nature, err := decodeFile(c.nature, footprint.DecodeScoreSheet)
	if err != nil {
		return fail(subcommands.ExitFailure, "Error loading nature scores", err)
	}
	n, err := footprint.NewNetwork(climate, nature)
	if err != nil {
		return fail(subcommands.ExitFailure, "Error building network", err)
	}

	if c.json || c.query != "" {
		if err := printJSONL(c.query, func(w io.Writer) error { return footprint.EncodeNetwork(w, n) }); err != nil {
			return fail(subcommands.ExitFailure, "Error writing network", err)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.NetworkMarkdown(n))
	return subcommands.ExitSuccess
}
