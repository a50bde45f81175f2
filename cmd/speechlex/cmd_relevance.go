package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/speechlex/relevance"
)

var (
	relevanceSuite string

	relevanceCmd = &cobra.Command{
		Use:   "relevance FILE",
		Short: "Run a relevance suite file against a catalog",
		Args:  cobra.ExactArgs(1),
		RunE:  runRelevance,
	}
)

func init() {
	relevanceCmd.Flags().StringVar(&relevanceSuite, "suite", "", "only run cases belonging to this suite")
}

func runRelevance(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	c, err := loadCatalog(catalogDir, logger)
	if err != nil {
		return err
	}

	cases, err := relevance.LoadFile(args[0])
	if err != nil {
		return err
	}

	report := relevance.NewRunner(c, logger).Run(cases, relevanceSuite)

	fmt.Printf("%d/%d passed\n", report.Passed, report.Total)
	for name, counts := range report.Suites {
		fmt.Printf("  %s: %d/%d\n", name, counts.Passed, counts.Total)
	}
	if !report.OK() {
		return fmt.Errorf("relevance: %d case(s) failed", report.Total-report.Passed)
	}
	return nil
}
