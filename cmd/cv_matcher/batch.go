package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/cv-matcher/internal/catalog"
	"github.com/jonathan/cv-matcher/internal/ingestion"
	"github.com/jonathan/cv-matcher/internal/observability"
	"github.com/jonathan/cv-matcher/internal/ranking"
)

// batchExtensions are the CV files picked up from a batch directory
var batchExtensions = map[string]bool{".txt": true, ".md": true, ".html": true, ".htm": true}

// batchReport is the JSON output of the batch command
type batchReport struct {
	PositionID string                    `json:"position_id"`
	Summary    ranking.Summary           `json:"summary"`
	Ranked     []ranking.RankedCandidate `json:"ranked"`
}

func newBatchCmd(rt *appState) *cobra.Command {
	var (
		positionID string
		dir        string
		workers    int
		out        string
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Rank every CV of a directory against a job position",
		Long:  "Score every .txt, .md and .html CV of a directory against a job position and print them ranked by score.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			position, err := catalog.Get(positionID)
			if err != nil {
				return err
			}

			candidates, err := loadCandidates(rt, dir)
			if err != nil {
				return err
			}
			if len(candidates) == 0 {
				return fmt.Errorf("no CV files found in %s", dir)
			}

			if !cmd.Flags().Changed("workers") {
				workers = rt.cfg.Batch.Workers
			}
			ranked, err := ranking.RankCandidates(cmd.Context(), rt.engine, *position, candidates, workers)
			if err != nil {
				return fmt.Errorf("failed to rank candidates: %w", err)
			}

			summary := ranking.Summarize(ranked)
			rt.logger.Info("batch ranked",
				zap.String("position", position.ID),
				zap.Int("candidates", summary.Total),
				zap.Int("average", summary.AverageScore))

			if out != "" {
				return writeJSON(cmd, out, batchReport{PositionID: position.ID, Summary: summary, Ranked: ranked})
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintRanking(*position, ranked)
			return nil
		},
	}

	cmd.Flags().StringVarP(&positionID, "position", "p", "", "Job position ID (required)")
	cmd.Flags().StringVar(&dir, "dir", "", "Directory of CV files (required)")
	cmd.Flags().IntVarP(&workers, "workers", "w", ranking.DefaultWorkers, "Concurrent analyses (default from config)")
	cmd.Flags().StringVarP(&out, "out", "o", "", `Write the ranking as JSON to this file ("-" for stdout)`)

	_ = cmd.MarkFlagRequired("position")
	_ = cmd.MarkFlagRequired("dir")
	return cmd
}

// loadCandidates reads the CV files of dir in name order. Files that fail to load
// are logged and skipped.
func loadCandidates(rt *appState, dir string) ([]ranking.Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	candidates := make([]ranking.Candidate, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !batchExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		doc, meta, err := ingestion.LoadDocument(filepath.Join(dir, entry.Name()))
		if err != nil {
			rt.logger.Warn("skipping CV", zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		candidates = append(candidates, ranking.Candidate{
			ID:       meta.Hash[:12],
			FileName: meta.FileName,
			Document: doc,
		})
	}
	return candidates, nil
}
