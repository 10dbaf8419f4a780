// Package analyzer wires the keyword matcher, the dimension scorers, the aggregator
// and the feedback generator into the CV compatibility engine.
//
// An Engine is immutable after construction and safe for concurrent use. Analysis
// is a pure function of its inputs, apart from the injectable clock used to turn
// dated experience entries into years.
package analyzer

import (
	"strings"
	"time"

	"github.com/jonathan/cv-matcher/internal/catalog"
	"github.com/jonathan/cv-matcher/internal/feedback"
	"github.com/jonathan/cv-matcher/internal/matching"
	"github.com/jonathan/cv-matcher/internal/parsing"
	"github.com/jonathan/cv-matcher/internal/scoring"
	"github.com/jonathan/cv-matcher/internal/types"
)

// Engine scores CVs against job positions
type Engine struct {
	cal      scoring.Calibration
	observer Observer
	now      func() time.Time
}

// New creates an Engine with the default calibration and no observer
func New(opts ...Option) *Engine {
	e := &Engine{
		cal:      scoring.DefaultCalibration(),
		observer: noopObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Calibration returns the constants the engine scores with
func (e *Engine) Calibration() scoring.Calibration {
	return e.cal
}

// AnalyzeByID looks the position up in the catalog and analyzes the CV against it.
// An unknown id returns a *catalog.NotFoundError and no result.
func (e *Engine) AnalyzeByID(positionID string, cv types.CVInput) (types.AnalysisResult, error) {
	position, err := catalog.Get(positionID)
	if err != nil {
		return types.AnalysisResult{}, err
	}
	return e.Analyze(cv, *position), nil
}

// AnalyzeDocument analyzes an extracted document and passes its extracted info
// through to the result
func (e *Engine) AnalyzeDocument(doc types.CVDocument, position types.JobPosition) types.AnalysisResult {
	info := doc.ExtractedInfo
	res := e.analyze(doc.ToCVInput(), position, &info)
	res.ExtractedInfo = &info
	return res
}

// Analyze scores one CV against one position. Missing CV data never fails; every
// scorer has a low default for it.
func (e *Engine) Analyze(cv types.CVInput, position types.JobPosition) types.AnalysisResult {
	return e.analyze(cv, position, nil)
}

func (e *Engine) analyze(cv types.CVInput, position types.JobPosition, info *types.ExtractedInfo) types.AnalysisResult {
	cal := e.cal
	var s scoring.SubScores

	// keywords
	matcher := matching.New(cv.Text, cv.Skills, cal.Keywords.MatchOptions())
	match := matcher.Match(position.Keywords)
	s.Keywords = scoring.KeywordScore(match, cal.Keywords)
	s.HasRequired = match.Required.Total > 0
	s.RequiredRatio = match.Required.Ratio()
	e.observer.OnStage(StageKeywords, map[string]any{
		"position":  position.ID,
		"score":     s.Keywords,
		"matched":   len(match.Matched),
		"missing":   len(match.Missing),
		"required":  match.Required,
		"preferred": match.Preferred,
		"technical": match.Technical,
		"soft":      match.Soft,
		"methods":   match.Methods,
	})

	// experience
	years, source := scoring.EstimateYears(cv, e.now())
	hits := scoring.ExperienceContextHits(cv, position, cal.Experience.ContextKeywords)
	s.Experience = scoring.ExperienceScore(years, position.Experience, cal.Experience) +
		scoring.ExperienceContextBonus(years, hits, cal.Experience)
	if s.Experience > 100 {
		s.Experience = 100
	}
	e.observer.OnStage(StageExperience, map[string]any{
		"years":        years,
		"source":       string(source),
		"context_hits": hits,
		"score":        s.Experience,
	})

	// education
	edu := scoring.ScoreEducation(cv.Education, position, cal.Education)
	s.Education = edu.Score
	e.observer.OnStage(StageEducation, map[string]any{
		"exact":  edu.ExactMatches,
		"level":  edu.Level,
		"domain": edu.Domain,
		"score":  s.Education,
	})

	// certifications
	certs := scoring.ScoreCertifications(cv.Certifications, position, cal.Certifications)
	s.Certifications = certs.Score
	e.observer.OnStage(StageCertifications, map[string]any{
		"required": certs.Required,
		"matched":  certs.Matched,
		"score":    s.Certifications,
	})

	// coherence and sector read the whole profile
	profile := profileText(cv)
	entries := parsing.NormalizeAll(cv.ExperienceEntries)

	coherence := scoring.ScoreCoherence(profile, position.Category, cal.Coherence)
	s.Coherence = coherence.Score
	e.observer.OnStage(StageCoherence, map[string]any{
		"domain":  string(coherence.Domain),
		"foreign": coherence.Foreign,
		"score":   s.Coherence,
	})

	sector := scoring.ScoreSector(profile, entries, position.Category, cal.Sector)
	s.Sector = sector.Score
	e.observer.OnStage(StageSector, map[string]any{
		"terms":   sector.Terms,
		"context": sector.Context,
		"score":   s.Sector,
	})

	warnings := scoring.Warnings(s, cal.Warnings)
	final := scoring.Aggregate(s, position.ScoreWeights, len(warnings), cal.Aggregate)
	confidence := scoring.Confidence(s, len(warnings), cal.Confidence)
	e.observer.OnStage(StageAggregate, map[string]any{
		"weighted":   scoring.WeightedScore(s, position.ScoreWeights),
		"final":      final,
		"warnings":   len(warnings),
		"confidence": string(confidence),
	})

	in := feedback.Input{
		Scores:          s,
		MatchedCount:    len(match.Matched),
		MissingCount:    len(match.Missing),
		MissingRequired: match.MissingRequired,
		Missing:         match.Missing,
		CertsRequired:   certs.Required > 0,
		MissingCerts:    missingCertifications(position.Certifications, certs.Matched),
	}
	if info != nil {
		in.HasExtractedInfo = true
		in.SkillCount = len(info.Skills)
		in.LanguageCount = len(info.Languages)
		in.CertificationHeld = len(info.Certifications)
	}
	fb := feedback.Generate(in)

	breakdown := s.Breakdown()
	return types.AnalysisResult{
		PositionID:       position.ID,
		Score:            scoring.Round(final),
		MatchedKeywords:  scoring.Truncate(match.Matched, cal.Keywords.MaxMatchedDisplay),
		MissingKeywords:  scoring.Truncate(match.Missing, cal.Keywords.MaxMissingDisplay),
		Strengths:        fb.Strengths,
		Improvements:     fb.Improvements,
		ExperienceMatch:  breakdown.ExperienceScore,
		EducationMatch:   breakdown.EducationScore,
		ProfileCoherence: breakdown.CoherenceScore,
		SectorRelevance:  breakdown.SectorScore,
		Breakdown:        breakdown,
		WarningFlags:     warnings,
		ConfidenceLevel:  confidence,
	}
}

// profileText is the normalized CV text plus every structured field
func profileText(cv types.CVInput) string {
	parts := make([]string, 0, 3+len(cv.Skills)+len(cv.ExperienceEntries))
	parts = append(parts, cv.Text, cv.Education)
	parts = append(parts, cv.Skills...)
	parts = append(parts, cv.ExperienceEntries...)
	return parsing.Normalize(strings.Join(parts, "\n"))
}

func missingCertifications(required, matched []string) []string {
	held := make(map[string]bool, len(matched))
	for _, m := range matched {
		held[m] = true
	}
	missing := make([]string, 0)
	for _, r := range required {
		if !held[r] {
			missing = append(missing, r)
		}
	}
	return missing
}
