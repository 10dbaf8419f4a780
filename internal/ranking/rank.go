// Package ranking scores many CVs against one job position and orders them by compatibility.
package ranking

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-matcher/internal/analyzer"
	"github.com/jonathan/cv-matcher/internal/types"
)

// DefaultWorkers is the batch parallelism used when the caller passes a non-positive value
const DefaultWorkers = 4

// ExcellentScore is the score from which a candidate counts as an excellent profile
const ExcellentScore = 80

// Candidate is one CV submitted to a batch
type Candidate struct {
	ID       string           `json:"id,omitempty"` // generated when empty
	FileName string           `json:"file_name"`
	Document types.CVDocument `json:"document"`
}

// RankedCandidate is a scored candidate with its 1-based rank
type RankedCandidate struct {
	Rank        int                  `json:"rank"`
	CandidateID string               `json:"candidate_id"`
	FileName    string               `json:"file_name"`
	Band        Band                 `json:"band"`
	Notes       string               `json:"notes"`
	Result      types.AnalysisResult `json:"result"`
}

// RankCandidates analyzes every candidate against the position with at most workers
// analyses in flight, then sorts them by score (descending, ties by file name).
// Cancelling ctx stops scheduling new analyses and returns ctx's error.
func RankCandidates(ctx context.Context, engine *analyzer.Engine, position types.JobPosition, candidates []Candidate, workers int) ([]RankedCandidate, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	ranked := make([]RankedCandidate, len(candidates))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, c := range candidates {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			id := c.ID
			if id == "" {
				id = uuid.New().String()
			}
			res := engine.AnalyzeDocument(c.Document, position)
			ranked[i] = RankedCandidate{
				CandidateID: id,
				FileName:    c.FileName,
				Band:        BandFor(res.Score),
				Notes:       generateNotes(res),
				Result:      res,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch analysis interrupted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch analysis interrupted: %w", err)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Result.Score != ranked[j].Result.Score {
			return ranked[i].Result.Score > ranked[j].Result.Score
		}
		return ranked[i].FileName < ranked[j].FileName
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked, nil
}

// Summary aggregates a ranked batch
type Summary struct {
	Total        int `json:"total"`
	Excellent    int `json:"excellent"` // candidates scoring at least ExcellentScore
	AverageScore int `json:"average_score"`
	TopScore     int `json:"top_score"`
}

// Summarize computes the batch statistics. An empty batch has a zero summary.
func Summarize(ranked []RankedCandidate) Summary {
	s := Summary{Total: len(ranked)}
	if len(ranked) == 0 {
		return s
	}

	sum := 0
	for _, r := range ranked {
		sum += r.Result.Score
		if r.Result.Score >= ExcellentScore {
			s.Excellent++
		}
		if r.Result.Score > s.TopScore {
			s.TopScore = r.Result.Score
		}
	}
	s.AverageScore = int(math.Round(float64(sum) / float64(len(ranked))))
	return s
}

// generateNotes creates a brief explanation of the ranking.
func generateNotes(res types.AnalysisResult) string {
	var parts []string

	switch n := len(res.MatchedKeywords); {
	case n == 0:
		parts = append(parts, "Aucune compétence du poste identifiée")
	case n <= 3:
		parts = append(parts, fmt.Sprintf("Quelques compétences identifiées (%s)", strings.Join(res.MatchedKeywords, ", ")))
	default:
		parts = append(parts, fmt.Sprintf("%d compétences identifiées", n))
	}

	if len(res.WarningFlags) > 0 {
		parts = append(parts, res.WarningFlags[0])
	}

	return strings.Join(parts, ". ")
}
