// Command hornkb is the CLI entrypoint for the Horn-clause knowledge base:
// it loads optional facts/rules files, then either runs a batch of commands
// non-interactively or starts the interactive REPL.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rdmchase/hornkb/internal/repl"
	"github.com/rdmchase/hornkb/internal/store"
	"github.com/rdmchase/hornkb/pkg/reason"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	factsPath string
	rulesPath string
	batchPath string
	verbose   bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hornkb",
	Short: "A Horn-clause knowledge base with fuzzy confidence",
	Long: `hornkb is an interactive reasoning engine over RDF-like triples.

It supports asserting facts, querying by unification, checking entailment
("razona si ... ?"), and a single forward-chaining sweep ("descubrir!").`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&factsPath, "facts", "", "facts file to load at startup")
	rootCmd.Flags().StringVar(&rulesPath, "rules", "", "rules file to load at startup")
	rootCmd.Flags().StringVar(&batchPath, "batch", "", "file of commands to run non-interactively, one per line")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	kb := reason.NewKB()
	loader := store.NewLoader(logger)
	if err := loader.LoadFiles(kb, factsPath, rulesPath); err != nil {
		return err
	}

	ctx := context.Background()

	if batchPath != "" {
		f, err := os.Open(batchPath)
		if err != nil {
			return fmt.Errorf("opening batch file: %w", err)
		}
		defer f.Close()
		r := repl.New(kb, f, os.Stdout, logger)
		return r.Run(ctx)
	}

	r := repl.New(kb, os.Stdin, os.Stdout, logger)
	return r.Run(ctx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
