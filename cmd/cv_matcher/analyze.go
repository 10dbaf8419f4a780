package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/cv-matcher/internal/catalog"
	"github.com/jonathan/cv-matcher/internal/ingestion"
	"github.com/jonathan/cv-matcher/internal/observability"
	"github.com/jonathan/cv-matcher/internal/types"
)

type analyzeOptions struct {
	positionID     string
	cvFile         string
	text           string
	experience     string
	education      string
	certifications []string
	skills         []string
	out            string
}

func newAnalyzeCmd(rt *appState) *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score one CV against a job position",
		Long: `Score one CV against a job position of the catalog.

The CV is either a text or HTML file (--cv), whose structured information is
extracted and reported, or inline text (--text) with the optional declared
experience, education, certifications and skills.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, rt, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.positionID, "position", "p", "", "Job position ID (required)")
	cmd.Flags().StringVar(&opts.cvFile, "cv", "", "Path to a .txt, .md or .html CV")
	cmd.Flags().StringVar(&opts.text, "text", "", "Inline CV text")
	cmd.Flags().StringVar(&opts.experience, "experience", "", `Declared experience, e.g. "5 ans"`)
	cmd.Flags().StringVar(&opts.education, "education", "", `Declared education, e.g. "Master informatique"`)
	cmd.Flags().StringSliceVar(&opts.certifications, "cert", nil, "Certification held (repeatable)")
	cmd.Flags().StringSliceVar(&opts.skills, "skill", nil, "Skill held (repeatable)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", `Write the result as JSON to this file ("-" for stdout)`)

	_ = cmd.MarkFlagRequired("position")
	cmd.MarkFlagsMutuallyExclusive("cv", "text")
	return cmd
}

func runAnalyze(cmd *cobra.Command, rt *appState, opts analyzeOptions) error {
	position, err := catalog.Get(opts.positionID)
	if err != nil {
		return err
	}

	var res types.AnalysisResult
	if opts.cvFile != "" {
		doc, meta, err := ingestion.LoadDocument(opts.cvFile)
		if err != nil {
			return err
		}
		rt.logger.Debug("loaded CV",
			zap.String("file", meta.FileName),
			zap.String("format", meta.Format),
			zap.Int("chars", meta.Characters),
			zap.String("preview", observability.TruncateForLog(doc.Text, 80)))
		res = rt.engine.AnalyzeDocument(doc, *position)
	} else {
		cv := types.CVInput{
			Text:           ingestion.CleanText(opts.text),
			Experience:     opts.experience,
			Education:      opts.education,
			Certifications: opts.certifications,
			Skills:         opts.skills,
		}
		if err := cv.Validate(); err != nil {
			return fmt.Errorf("invalid CV input: %w", err)
		}
		res = rt.engine.Analyze(cv, *position)
	}

	rt.logger.Info("analysis complete",
		zap.String("position", position.ID),
		zap.Int("score", res.Score),
		zap.String("confidence", string(res.ConfidenceLevel)))

	if opts.out != "" {
		return writeJSON(cmd, opts.out, res)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintAnalysis(*position, &res)
	return nil
}
