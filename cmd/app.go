// Package cmd implements the nfp command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Commands lists the nfp subcommands, main registers them.
var Commands = []subcommands.Command{
	&propagateCmd{},
	&footprintCmd{},
	&dependencyCmd{},
	&networkCmd{},
	&synthCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	dataDir    = flag.String("data", "", "Folder holding the input tables (defaults to the config file value, or '.')")
	configFile = flag.String("config", os.Getenv(EnvConfig), "Path to a YAML configuration file")
	workers    = flag.Int("workers", 0, "Number of goroutines used to propagate and score (defaults to the config file value, or 1)")
	rawOutput  = flag.Bool("markdown", false, "Print reports as raw markdown instead of rendering them for the terminal")
	Verbose    = flag.Bool("v", false, "Verbose logging")
)

var (
	logger = zap.NewNop()
	config = DefaultConfig()
)

// Init builds the logger and the effective configuration from the global flags.
// It must be called after flag.Parse.
func Init() error {
	l, err := newLogger(*Verbose)
	if err != nil {
		return fmt.Errorf("cannot create logger: %w", err)
	}
	logger = l

	cfg := DefaultConfig()
	if *configFile != "" {
		if cfg, err = LoadConfig(*configFile); err != nil {
			return err
		}
		logger.Debug("configuration loaded", zap.String("path", *configFile))
	}
	// flags explicitly set win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.Data = *dataDir
		case "workers":
			cfg.Workers = *workers
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	config = cfg
	return nil
}

// Sync flushes the logger.
func Sync() { _ = logger.Sync() }

// newLogger returns a console logger on stderr, at warn level unless verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.Development = true
	}
	return cfg.Build()
}

// decodeFile opens a data file, relative to the data folder, and decodes it.
func decodeFile[T any](name string, decode func(io.Reader) (T, error)) (T, error) {
	var zero T
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(config.Data, name)
	}
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()
	v, err := decode(f)
	if err != nil {
		return zero, fmt.Errorf("parse error in %q: %w", path, err)
	}
	logger.Debug("decoded", zap.String("path", path))
	return v, nil
}

// encodeFile creates a file in dir and encodes into it.
func encodeFile(dir, name string, encode func(io.Writer) error) error {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	logger.Debug("encoded", zap.String("path", path))
	return f.Close()
}

// fail reports err on stderr and in the log, and returns status.
func fail(status subcommands.ExitStatus, msg string, err error) subcommands.ExitStatus {
	logger.Error(msg, zap.Error(err))
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	return status
}

// printMarkdown prints md to stdout, rendered for the terminal unless
// -markdown is set.
func printMarkdown(md string) {
	printMarkdownTo(os.Stdout, md)
}

func printMarkdownTo(w io.Writer, md string) {
	if *rawOutput {
		fmt.Fprint(w, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		logger.Warn("cannot create markdown renderer", zap.Error(err))
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		logger.Warn("cannot render markdown", zap.Error(err))
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
