package scoring

import (
	"github.com/jonathan/cv-matcher/internal/parsing"
	"github.com/jonathan/cv-matcher/internal/taxonomy"
	"github.com/jonathan/cv-matcher/internal/types"
)

// SectorAssessment details a sector relevance score
type SectorAssessment struct {
	Score   float64
	Terms   []string // sector terms found
	Context int      // found terms that also appear in an experience context
}

// ScoreSector scores employer-type and role-title vocabulary of the job category.
// text and entries must be normalized. A term counts again when it sits in an
// experience entry or next to an experience phrase ("chez", "depuis", ...).
func ScoreSector(text string, entries []string, category types.Category, cal SectorCalibration) SectorAssessment {
	var res SectorAssessment
	for _, term := range taxonomy.SectorTerms(category) {
		if !parsing.ContainsTerm(text, term) {
			continue
		}
		res.Terms = append(res.Terms, term)
		if inExperienceContext(text, entries, term) {
			res.Context++
		}
	}

	res.Score = clamp(cal.Floor + cal.PerTerm*float64(len(res.Terms)) + cal.ContextBonus*float64(res.Context))
	return res
}

func inExperienceContext(text string, entries []string, term string) bool {
	for _, entry := range entries {
		if parsing.ContainsTerm(entry, term) {
			return true
		}
	}
	for _, prefix := range taxonomy.ExperienceContextPrefixes {
		if parsing.ContainsTerm(text, prefix+term) {
			return true
		}
	}
	for _, suffix := range taxonomy.ExperienceContextSuffixes {
		if parsing.ContainsTerm(text, term+suffix) {
			return true
		}
	}
	return false
}
