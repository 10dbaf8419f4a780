// Package feedback turns sub-scores and keyword matches into strength and
// improvement statements drawn from a fixed sentence catalog.
package feedback

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-matcher/internal/scoring"
)

// Input carries everything the feedback rules look at
type Input struct {
	Scores            scoring.SubScores
	MatchedCount      int      // matched keywords before display truncation
	MissingCount      int      // missing keywords before display truncation
	MissingRequired   []string // unmatched required keywords, declaration order
	Missing           []string // every unmatched keyword, declaration order
	CertsRequired     bool     // the position lists certifications
	MissingCerts      []string // required certifications not held
	HasExtractedInfo  bool     // profile signals below come from a document extraction
	SkillCount        int
	LanguageCount     int
	CertificationHeld int
}

// Result holds the generated statements in priority order
type Result struct {
	Strengths    []string
	Improvements []string
}

// Thresholds used by the rules
const (
	strongKeywords      = 70
	weakKeywords        = 40
	strongExperience    = 75
	weakExperience      = 50
	strongEducation     = 80
	weakEducation       = 60
	strongCertification = 70
	weakCertification   = 50
	strongCoherence     = 75
	weakCoherence       = 30
	strongSector        = 70
	weakSector          = 20

	richSkillProfile = 15
	thinSkillProfile = 8
	multilingual     = 2
	manyMissing      = 8

	namedMissing = 3
)

// Generate applies every rule in the fixed priority order: keywords, experience,
// education, certifications, coherence, sector, then document profile signals.
// Several rules may fire for the same dimension.
func Generate(in Input) Result {
	res := Result{Strengths: make([]string, 0), Improvements: make([]string, 0)}
	s := in.Scores

	// keywords
	if s.Keywords > strongKeywords {
		res.Strengths = append(res.Strengths,
			fmt.Sprintf("Excellente maîtrise des compétences requises (%d compétences identifiées)", in.MatchedCount))
	}
	if s.Keywords < weakKeywords {
		names := in.MissingRequired
		if len(names) == 0 {
			names = in.Missing
		}
		if len(names) > 0 {
			res.Improvements = append(res.Improvements,
				"Développer les compétences clés manquantes : "+strings.Join(scoring.Truncate(names, namedMissing), ", "))
		} else {
			res.Improvements = append(res.Improvements, "Développer les compétences techniques spécifiques au poste")
		}
	}

	// experience
	if s.Experience > strongExperience {
		res.Strengths = append(res.Strengths, "Expérience professionnelle très adaptée au poste")
	}
	if s.Experience < weakExperience {
		res.Improvements = append(res.Improvements, "Acquérir plus d'expérience dans le domaine ciblé")
	}

	// education
	if s.Education > strongEducation {
		res.Strengths = append(res.Strengths, "Formation parfaitement alignée avec les exigences")
	}
	if s.Education < weakEducation {
		res.Improvements = append(res.Improvements, "Envisager une formation complémentaire spécialisée")
	}

	// certifications
	if in.CertsRequired {
		if s.Certifications > strongCertification {
			res.Strengths = append(res.Strengths, "Certifications reconnues dans le domaine")
		}
		if s.Certifications < weakCertification && len(in.MissingCerts) > 0 {
			res.Improvements = append(res.Improvements,
				"Obtenir les certifications pertinentes : "+strings.Join(scoring.Truncate(in.MissingCerts, namedMissing), ", "))
		}
	}

	// coherence
	if s.Coherence > strongCoherence {
		res.Strengths = append(res.Strengths, "Profil cohérent avec le domaine du poste")
	}
	if s.Coherence < weakCoherence {
		res.Improvements = append(res.Improvements, "Recentrer le CV sur les compétences propres au domaine du poste")
	}

	// sector
	if s.Sector > strongSector {
		res.Strengths = append(res.Strengths, "Expérience confirmée dans le secteur d'activité visé")
	}
	if s.Sector < weakSector {
		res.Improvements = append(res.Improvements, "Mettre en avant une expérience dans le secteur visé")
	}

	if in.HasExtractedInfo {
		res = profileSignals(in, res)
	}
	if in.MissingCount > manyMissing {
		res.Improvements = append(res.Improvements, "Se former sur les technologies et méthodes spécifiques au poste")
	}

	return res
}

// profileSignals adds the statements driven by extracted document metadata
func profileSignals(in Input, res Result) Result {
	if in.SkillCount > richSkillProfile {
		res.Strengths = append(res.Strengths, "Profil technique très riche avec de nombreuses compétences")
	}
	if in.LanguageCount > multilingual {
		res.Strengths = append(res.Strengths, fmt.Sprintf("Profil multilingue (%d langues détectées)", in.LanguageCount))
	}
	if in.CertificationHeld > 0 {
		res.Strengths = append(res.Strengths,
			fmt.Sprintf("Certifications professionnelles valorisantes (%d)", in.CertificationHeld))
	}
	if in.SkillCount < thinSkillProfile {
		res.Improvements = append(res.Improvements, "Enrichir le profil avec plus de compétences techniques")
	}
	return res
}
