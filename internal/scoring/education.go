package scoring

import (
	"math"
	"regexp"

	"github.com/jonathan/cv-matcher/internal/parsing"
	"github.com/jonathan/cv-matcher/internal/taxonomy"
	"github.com/jonathan/cv-matcher/internal/types"
)

// EducationAssessment details how an education score was reached
type EducationAssessment struct {
	Score        float64
	ExactMatches []string // accepted labels found in the education text
	Level        float64  // only set when no exact match was found
	Domain       float64  // only set when no exact match was found
}

// ScoreEducation scores the CV's stated education against the position.
// Exact accepted labels win outright; otherwise the diploma level and the study
// domain relevance are blended. Missing education yields the Missing default.
func ScoreEducation(education string, position types.JobPosition, cal EducationCalibration) EducationAssessment {
	text := parsing.Normalize(education)
	if text == "" {
		return EducationAssessment{Score: cal.Missing}
	}

	seen := make(map[string]bool)
	var exact []string
	for _, label := range position.Education {
		key := parsing.Normalize(label)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if parsing.ContainsTerm(text, key) {
			exact = append(exact, label)
		}
	}
	if len(exact) > 0 {
		score := math.Min(cal.ExactMatchCap, cal.ExactMatch+cal.ExtraMatchBonus*float64(len(exact)-1))
		return EducationAssessment{Score: clamp(score), ExactMatches: exact}
	}

	level := EducationLevel(text, cal.LevelDefault)
	domain := EducationDomain(text, position.Category, cal)
	return EducationAssessment{
		Score:  clamp(level*cal.LevelWeight + domain*cal.DomainWeight),
		Level:  level,
		Domain: domain,
	}
}

var bacPlusPattern = regexp.MustCompile(`\bbac\s*\+\s*(\d)`)

// EducationLevel returns the score of the highest diploma level named in normalized
// text, or fallback when none is recognized. "bac + 5" and "bac +5" count as "bac+5".
func EducationLevel(text string, fallback float64) float64 {
	text = bacPlusPattern.ReplaceAllString(text, "bac+$1")
	tokens := make(map[string]bool)
	for _, tok := range parsing.Tokenize(text) {
		tokens[tok] = true
	}
	for _, level := range taxonomy.EducationLevels {
		for _, term := range level.Terms {
			if tokens[term] {
				return level.Score
			}
		}
	}
	return fallback
}

// EducationDomain scores how relevant the study field is to the job category
func EducationDomain(text string, category types.Category, cal EducationCalibration) float64 {
	fields := taxonomy.EducationFields(category)
	matches := parsing.CountTerms(text, fields)
	if matches == 0 {
		if parsing.ContainsAny(text, taxonomy.IncompatibleStudies(category)) {
			return cal.DomainIncompatible
		}
		return cal.DomainNeutral
	}
	ratio := float64(matches) / float64(len(fields))
	return clamp(cal.DomainRelevantBase + cal.DomainRelevantSpan*ratio)
}
