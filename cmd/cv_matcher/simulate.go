package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-matcher/internal/catalog"
	"github.com/jonathan/cv-matcher/internal/fixtures"
	"github.com/jonathan/cv-matcher/internal/observability"
)

func newSimulateCmd(rt *appState) *cobra.Command {
	var (
		positionID string
		fileName   string
		seed       uint64
		count      int
		out        string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Score randomly generated CVs against a job position",
		Long:  "Fabricate plausible CVs from a position's keywords and score them. A fixed --seed reproduces the same CVs.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			position, err := catalog.Get(positionID)
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}

			sim := fixtures.NewSimulator(rt.engine, fixtures.NewSeeded(seed))
			results := make([]fixtures.SimulatedResult, 0, count)
			for i := range count {
				name := fileName
				if count > 1 {
					name = fmt.Sprintf("%d_%s", i+1, fileName)
				}
				res, err := sim.SimulateAnalysis(name, position.ID)
				if err != nil {
					return err
				}
				results = append(results, res)
			}

			if out != "" {
				return writeJSON(cmd, out, results)
			}
			printer := observability.NewPrinter(cmd.OutOrStdout())
			for _, res := range results {
				printer.PrintAnalysis(*position, &res.AnalysisResult)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&positionID, "position", "p", "", "Job position ID (required)")
	cmd.Flags().StringVar(&fileName, "file-name", "cv_simule.pdf", "File name reported with each result")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (default: time based)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of CVs to generate")
	cmd.Flags().StringVarP(&out, "out", "o", "", `Write the results as JSON to this file ("-" for stdout)`)

	_ = cmd.MarkFlagRequired("position")
	return cmd
}
