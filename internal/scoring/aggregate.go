package scoring

import (
	"math"

	"github.com/jonathan/cv-matcher/internal/types"
)

// Warning messages, in the order they are raised
const (
	WarningProfileMismatch        = "Profil inadapté au domaine du poste"
	WarningNoSectorExperience     = "Aucune expérience identifiée dans le secteur du poste"
	WarningEducationMisaligned    = "Formation non alignée avec les exigences"
	WarningInsufficientSkills     = "Compétences techniques insuffisantes pour le poste"
	WarningMissingRequired        = "Majorité des compétences requises manquantes"
	WarningInsufficientExperience = "Expérience professionnelle insuffisante"
)

// SubScores holds the six unrounded sub-scores plus the required-keyword coverage
type SubScores struct {
	Keywords       float64
	Experience     float64
	Education      float64
	Certifications float64
	Coherence      float64
	Sector         float64

	RequiredRatio float64
	HasRequired   bool // false when the position declares no required keyword
}

// Breakdown rounds the sub-scores into the reported breakdown
func (s SubScores) Breakdown() types.Breakdown {
	return types.Breakdown{
		KeywordScore:       Round(s.Keywords),
		ExperienceScore:    Round(s.Experience),
		EducationScore:     Round(s.Education),
		CertificationScore: Round(s.Certifications),
		CoherenceScore:     Round(s.Coherence),
		SectorScore:        Round(s.Sector),
	}
}

// Round clamps to [0,100] and rounds half away from zero
func Round(v float64) int {
	return int(math.Round(clamp(v)))
}

// Warnings raises an alert for every sub-score below its threshold
func Warnings(s SubScores, cal WarningCalibration) []string {
	warnings := make([]string, 0)
	if s.Coherence < cal.Coherence {
		warnings = append(warnings, WarningProfileMismatch)
	}
	if s.Sector < cal.Sector {
		warnings = append(warnings, WarningNoSectorExperience)
	}
	if s.Education < cal.Education {
		warnings = append(warnings, WarningEducationMisaligned)
	}
	if s.Keywords < cal.Keywords {
		warnings = append(warnings, WarningInsufficientSkills)
	}
	if s.HasRequired && s.RequiredRatio < cal.RequiredRatio {
		warnings = append(warnings, WarningMissingRequired)
	}
	if s.Experience < cal.Experience {
		warnings = append(warnings, WarningInsufficientExperience)
	}
	return warnings
}

// WeightedScore combines the four declared dimensions with the position's weights.
// Coherence and sector are not weighted; they only adjust the result in Aggregate.
func WeightedScore(s SubScores, w types.ScoreWeights) float64 {
	return s.Keywords*w.Keywords +
		s.Experience*w.Experience +
		s.Education*w.Education +
		s.Certifications*w.Certifications
}

// Aggregate applies the coherence, sector and warning-count adjustments to the
// weighted score and clamps the result to [0,100]
func Aggregate(s SubScores, w types.ScoreWeights, warnings int, cal AggregateCalibration) float64 {
	score := WeightedScore(s, w)

	switch {
	case s.Coherence > cal.CoherenceHigh:
		score += cal.CoherenceHighBonus
	case s.Coherence < cal.CoherenceLow:
		score -= cal.CoherenceLowPenalty
	}

	switch {
	case s.Sector > cal.SectorHigh:
		score += cal.SectorHighBonus
	case s.Sector < cal.SectorLow:
		score -= cal.SectorLowPenalty
	}

	if cal.WarningCountPenalty > 0 && warnings >= cal.WarningCountPenalty {
		score -= cal.WarningPenalty
	}

	return clamp(score)
}

// Confidence derives the reliability label from the warning count and the average
// of the keyword, experience and education sub-scores
func Confidence(s SubScores, warnings int, cal ConfidenceCalibration) types.ConfidenceLevel {
	avg := (s.Keywords + s.Experience + s.Education) / 3
	switch {
	case warnings >= cal.LowWarnings || avg < cal.LowAverage:
		return types.ConfidenceLow
	case warnings >= cal.MediumWarnings || avg < cal.MediumAverage:
		return types.ConfidenceMedium
	default:
		return types.ConfidenceHigh
	}
}
