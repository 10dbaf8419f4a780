package feedback

import (
	"testing"

	"github.com/jonathan/cv-matcher/internal/scoring"
	"github.com/stretchr/testify/assert"
)

func TestGenerate_StrongProfile(t *testing.T) {
	res := Generate(Input{
		Scores: scoring.SubScores{
			Keywords: 85, Experience: 90, Education: 90, Certifications: 100, Coherence: 80, Sector: 75,
		},
		MatchedCount:  12,
		CertsRequired: true,
	})

	assert.Equal(t, []string{
		"Excellente maîtrise des compétences requises (12 compétences identifiées)",
		"Expérience professionnelle très adaptée au poste",
		"Formation parfaitement alignée avec les exigences",
		"Certifications reconnues dans le domaine",
		"Profil cohérent avec le domaine du poste",
		"Expérience confirmée dans le secteur d'activité visé",
	}, res.Strengths)
	assert.Empty(t, res.Improvements)
}

func TestGenerate_WeakProfile(t *testing.T) {
	res := Generate(Input{
		Scores: scoring.SubScores{
			Keywords: 10, Experience: 20, Education: 25, Certifications: 30, Coherence: 0, Sector: 10,
		},
		MissingRequired: []string{"Soins infirmiers", "Diplôme d'État", "Hygiène", "Urgences"},
		MissingCount:    12,
		CertsRequired:   true,
		MissingCerts:    []string{"Spécialisations infirmières"},
	})

	assert.Empty(t, res.Strengths)
	assert.Equal(t, []string{
		"Développer les compétences clés manquantes : Soins infirmiers, Diplôme d'État, Hygiène",
		"Acquérir plus d'expérience dans le domaine ciblé",
		"Envisager une formation complémentaire spécialisée",
		"Obtenir les certifications pertinentes : Spécialisations infirmières",
		"Recentrer le CV sur les compétences propres au domaine du poste",
		"Mettre en avant une expérience dans le secteur visé",
		"Se former sur les technologies et méthodes spécifiques au poste",
	}, res.Improvements)
}

func TestGenerate_MissingFallsBackToAnyKeyword(t *testing.T) {
	res := Generate(Input{
		Scores:  scoring.SubScores{Keywords: 20, Experience: 60, Education: 70, Coherence: 50, Sector: 50},
		Missing: []string{"Figma", "Sketch"},
	})
	assert.Equal(t, []string{"Développer les compétences clés manquantes : Figma, Sketch"}, res.Improvements)

	res = Generate(Input{
		Scores: scoring.SubScores{Keywords: 20, Experience: 60, Education: 70, Coherence: 50, Sector: 50},
	})
	assert.Equal(t, []string{"Développer les compétences techniques spécifiques au poste"}, res.Improvements)
}

func TestGenerate_CertificationRulesNeedRequiredCerts(t *testing.T) {
	res := Generate(Input{
		Scores: scoring.SubScores{Keywords: 50, Experience: 60, Education: 70, Certifications: 60, Coherence: 50, Sector: 50},
	})
	assert.Empty(t, res.Strengths)
	assert.Empty(t, res.Improvements)
}

func TestGenerate_ProfileSignals(t *testing.T) {
	neutral := scoring.SubScores{Keywords: 50, Experience: 60, Education: 70, Coherence: 50, Sector: 50}

	rich := Generate(Input{
		Scores:            neutral,
		HasExtractedInfo:  true,
		SkillCount:        18,
		LanguageCount:     3,
		CertificationHeld: 2,
	})
	assert.Equal(t, []string{
		"Profil technique très riche avec de nombreuses compétences",
		"Profil multilingue (3 langues détectées)",
		"Certifications professionnelles valorisantes (2)",
	}, rich.Strengths)
	assert.Empty(t, rich.Improvements)

	thin := Generate(Input{Scores: neutral, HasExtractedInfo: true, SkillCount: 3})
	assert.Equal(t, []string{"Enrichir le profil avec plus de compétences techniques"}, thin.Improvements)

	plain := Generate(Input{Scores: neutral, SkillCount: 3})
	assert.Empty(t, plain.Improvements, "profile signals need extracted document info")
}

func TestGenerate_Deterministic(t *testing.T) {
	in := Input{
		Scores:          scoring.SubScores{Keywords: 10, Experience: 90, Education: 50, Coherence: 90, Sector: 5},
		MissingRequired: []string{"A", "B"},
	}
	assert.Equal(t, Generate(in), Generate(in))
}
