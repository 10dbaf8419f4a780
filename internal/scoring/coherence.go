package scoring

import (
	"github.com/jonathan/cv-matcher/internal/parsing"
	"github.com/jonathan/cv-matcher/internal/taxonomy"
	"github.com/jonathan/cv-matcher/internal/types"
)

// CoherenceAssessment details a coherence score
type CoherenceAssessment struct {
	Score   float64
	Domain  taxonomy.Domain // best matching primary domain
	Foreign int             // distinct keywords found from incompatible domains
}

// ScoreCoherence estimates how much of the CV's vocabulary belongs to the job's
// domain. text must be normalized. The best of the category's primary domains is kept,
// then a multiplicative penalty applies when more than ForeignThreshold keywords from
// strongly incompatible domains appear.
func ScoreCoherence(text string, category types.Category, cal CoherenceCalibration) CoherenceAssessment {
	domains := taxonomy.DomainsFor(category)
	if len(domains) == 0 || text == "" {
		return CoherenceAssessment{}
	}

	var res CoherenceAssessment
	best := -1.0
	own := make(map[string]bool)
	for _, d := range domains {
		keywords := taxonomy.Keywords(d)
		core := taxonomy.Core(d)
		for _, k := range keywords {
			own[k] = true
		}

		var ratio, coreRatio float64
		if len(keywords) > 0 {
			ratio = float64(parsing.CountTerms(text, keywords)) / float64(len(keywords))
		}
		if len(core) > 0 {
			coreRatio = float64(parsing.CountTerms(text, core)) / float64(len(core))
		}
		score := cal.BaseScale*ratio*100 + cal.CoreBonus*coreRatio
		if score > best {
			best = score
			res.Domain = d
		}
	}

	res.Foreign = foreignKeywords(text, domains, own)
	if res.Foreign > cal.ForeignThreshold {
		factor := 1 - cal.ForeignPenalty*float64(res.Foreign)
		if factor < cal.PenaltyFloor {
			factor = cal.PenaltyFloor
		}
		best *= factor
	}

	res.Score = clamp(best)
	return res
}

// foreignKeywords counts distinct terms of domains incompatible with the job's
// domains that appear in text, ignoring terms the job's own domains share
func foreignKeywords(text string, domains []taxonomy.Domain, own map[string]bool) int {
	primary := make(map[taxonomy.Domain]bool, len(domains))
	for _, d := range domains {
		primary[d] = true
	}

	counted := make(map[string]bool)
	for _, d := range domains {
		for _, foreign := range taxonomy.Incompatible(d) {
			if primary[foreign] {
				continue
			}
			for _, k := range taxonomy.Keywords(foreign) {
				if own[k] || counted[k] {
					continue
				}
				if parsing.ContainsTerm(text, k) {
					counted[k] = true
				}
			}
		}
	}
	return len(counted)
}
