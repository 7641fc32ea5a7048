package cmd

import (
	"flag"

	"github.com/etnz/footprint/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of nfp: global flags and every
// subcommand with its own flags.
func Completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command, len(Commands)),
		Flags: flagPredictors(global),
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs)}
		if c.Name() == "topic" {
			sub.Args = predict.Set(topicNames())
		}
		root.Sub[c.Name()] = sub
	}
	root.Sub["help"] = &complete.Command{Args: predict.Set(commandNames())}
	root.Sub["flags"] = &complete.Command{}
	root.Sub["commands"] = &complete.Command{}
	return root
}

// flagPredictors predicts flag values from their names: files and folders are
// completed from the file system, booleans take no value.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	preds := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			preds[f.Name] = predict.Nothing
			return
		}
		switch f.Name {
		case "data", "dir":
			preds[f.Name] = predict.Dirs("*")
		case "config":
			preds[f.Name] = predict.Files("*.yaml")
		case "emissions", "climate", "nature":
			preds[f.Name] = predict.Files("*.jsonl")
		default:
			preds[f.Name] = predict.Something
		}
	})
	return preds
}

func topicNames() []string {
	topics, _ := docs.All()
	return append(topics, docs.Readme)
}

func commandNames() []string {
	names := make([]string, 0, len(Commands))
	for _, c := range Commands {
		names = append(names, c.Name())
	}
	return names
}

// Register registers the subcommands on commander, grouped like in the help.
func Register(commander *subcommands.Commander) {
	for _, c := range Commands {
		switch c.Name() {
		case "synth", "topic":
			commander.Register(c, "tools")
		default:
			commander.Register(c, "analysis")
		}
	}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
}
