package scoring

import (
	"github.com/jonathan/cv-matcher/internal/parsing"
	"github.com/jonathan/cv-matcher/internal/types"
)

// CertificationAssessment details a certification score
type CertificationAssessment struct {
	Score    float64
	Required int
	Matched  []string // required certifications found on the CV, as declared by the position
}

// ScoreCertifications compares the CV's certifications with the ones the position lists.
// Positions without certifications get the NoneRequired default, never a penalty.
func ScoreCertifications(certs []string, position types.JobPosition, cal CertificationCalibration) CertificationAssessment {
	required := make([]string, 0, len(position.Certifications))
	labels := make([]string, 0, len(position.Certifications))
	seen := make(map[string]bool)
	for _, c := range position.Certifications {
		key := parsing.Normalize(c)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		required = append(required, key)
		labels = append(labels, c)
	}
	if len(required) == 0 {
		return CertificationAssessment{Score: cal.NoneRequired}
	}

	held := parsing.NormalizeAll(certs)
	var matched []string
	for i, req := range required {
		for _, h := range held {
			if parsing.ContainsTerm(h, req) || parsing.ContainsTerm(req, h) {
				matched = append(matched, labels[i])
				break
			}
		}
	}

	if len(matched) == 0 {
		return CertificationAssessment{Score: cal.Unmatched, Required: len(required)}
	}
	fraction := float64(len(matched)) / float64(len(required))
	return CertificationAssessment{
		Score:    clamp(cal.MatchedBase + cal.MatchedSpan*fraction + cal.MatchBonus),
		Required: len(required),
		Matched:  matched,
	}
}
