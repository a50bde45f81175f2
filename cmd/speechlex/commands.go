// Command speechlex is a small operator CLI around the catalog, tokenizer
// and graph walker: an interactive REPL for trying phrases against a
// loaded catalog, and a relevance-suite runner for regression checking.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	catalogDir string

	rootCmd = &cobra.Command{
		Use:   "speechlex",
		Short: "Fingerprint-lattice phrase matching over a catalog of aliases",
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogDir, "catalog", "", "catalog directory (defaults to the embedded demo catalog)")
	rootCmd.AddCommand(replCmd, relevanceCmd)
}

// Execute runs the root command, returning any error cobra surfaces.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
