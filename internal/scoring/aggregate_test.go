package scoring

import (
	"testing"

	"github.com/jonathan/cv-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

var defaultWeights = types.ScoreWeights{Keywords: 0.4, Experience: 0.3, Education: 0.2, Certifications: 0.1}

func TestWeightedScore(t *testing.T) {
	s := SubScores{Keywords: 80, Experience: 90, Education: 70, Certifications: 60, Coherence: 5, Sector: 5}
	assert.InDelta(t, 79, WeightedScore(s, defaultWeights), 0.001)
}

func TestAggregate(t *testing.T) {
	cal := DefaultCalibration().Aggregate
	base := SubScores{Keywords: 80, Experience: 90, Education: 70, Certifications: 60}

	tests := []struct {
		name      string
		coherence float64
		sector    float64
		warnings  int
		expected  float64
	}{
		{"Neutral coherence and sector", 50, 50, 0, 79},
		{"Bonuses", 90, 80, 0, 79 + 6 + 4},
		{"Penalties", 10, 10, 0, 79 - 18 - 12},
		{"Warning count penalty", 50, 50, 3, 79 - 15},
		{"Two warnings do not trigger the penalty", 50, 50, 2, 79},
		{"Thresholds are strict", 78, 70, 0, 79},
		{"Low thresholds are strict", 28, 22, 0, 79},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			s.Coherence = tt.coherence
			s.Sector = tt.sector
			assert.InDelta(t, tt.expected, Aggregate(s, defaultWeights, tt.warnings, cal), 0.001)
		})
	}
}

func TestAggregate_Clamped(t *testing.T) {
	cal := DefaultCalibration().Aggregate

	low := SubScores{Coherence: 0, Sector: 0}
	assert.Equal(t, 0.0, Aggregate(low, defaultWeights, 6, cal))

	high := SubScores{Keywords: 100, Experience: 100, Education: 100, Certifications: 100, Coherence: 100, Sector: 100}
	assert.Equal(t, 100.0, Aggregate(high, defaultWeights, 0, cal))
}

func TestWarnings(t *testing.T) {
	cal := DefaultCalibration().Warnings

	all := Warnings(SubScores{HasRequired: true}, cal)
	assert.Equal(t, []string{
		WarningProfileMismatch,
		WarningNoSectorExperience,
		WarningEducationMisaligned,
		WarningInsufficientSkills,
		WarningMissingRequired,
		WarningInsufficientExperience,
	}, all)

	none := Warnings(SubScores{
		Keywords: 100, Experience: 100, Education: 100, Certifications: 100,
		Coherence: 100, Sector: 100, RequiredRatio: 1, HasRequired: true,
	}, cal)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	noRequired := Warnings(SubScores{
		Keywords: 100, Experience: 100, Education: 100,
		Coherence: 100, Sector: 100, HasRequired: false,
	}, cal)
	assert.Empty(t, noRequired, "positions without required keywords never raise the required warning")
}

func TestConfidence(t *testing.T) {
	cal := DefaultCalibration().Confidence

	tests := []struct {
		name     string
		scores   SubScores
		warnings int
		expected types.ConfidenceLevel
	}{
		{"Many warnings", SubScores{Keywords: 90, Experience: 90, Education: 90}, 3, types.ConfidenceLow},
		{"Low average", SubScores{Keywords: 30, Experience: 30, Education: 30}, 0, types.ConfidenceLow},
		{"One warning", SubScores{Keywords: 90, Experience: 90, Education: 90}, 1, types.ConfidenceMedium},
		{"Middling average", SubScores{Keywords: 61, Experience: 61, Education: 61}, 0, types.ConfidenceMedium},
		{"Strong profile", SubScores{Keywords: 70, Experience: 70, Education: 70}, 0, types.ConfidenceHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Confidence(tt.scores, tt.warnings, cal))
		})
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 83, Round(82.5))
	assert.Equal(t, 82, Round(82.4))
	assert.Equal(t, 0, Round(-3))
	assert.Equal(t, 100, Round(101))
}

func TestBreakdown(t *testing.T) {
	s := SubScores{Keywords: 82.5, Experience: 97, Education: 90, Certifications: 60, Coherence: 47.4, Sector: 10}
	assert.Equal(t, types.Breakdown{
		KeywordScore:       83,
		ExperienceScore:    97,
		EducationScore:     90,
		CertificationScore: 60,
		CoherenceScore:     47,
		SectorScore:        10,
	}, s.Breakdown())
}
