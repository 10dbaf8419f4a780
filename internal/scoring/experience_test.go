package scoring

import (
	"testing"
	"time"

	"github.com/jonathan/cv-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

func TestEstimateYears(t *testing.T) {
	tests := []struct {
		name   string
		cv     types.CVInput
		years  int
		source YearsSource
	}{
		{"Structured field", types.CVInput{Experience: "5 ans"}, 5, YearsFromField},
		{"Structured field wins over text", types.CVInput{Experience: "2 ans", Text: "10 ans d'expérience"}, 2, YearsFromField},
		{"Field without digits falls back to text", types.CVInput{Experience: "senior", Text: "6 ans d'expérience"}, 6, YearsFromText},
		{"Largest text mention", types.CVInput{Text: "7 ans d'expérience en dev, dont 3 années d'expérience en management"}, 7, YearsFromText},
		{"Typographic apostrophe", types.CVInput{Text: "4 ans d’expérience"}, 4, YearsFromText},
		{"Colon form", types.CVInput{Text: "Expérience : 4 ans"}, 4, YearsFromText},
		{"English form", types.CVInput{Text: "10+ years experience in Go"}, 10, YearsFromText},
		{"Role form", types.CVInput{Text: "8 ans en tant que chef de projet"}, 8, YearsFromText},
		{
			"Entries fallback",
			types.CVInput{ExperienceEntries: []string{"2019 - 2023 Lead dev", "2016 - 2019 Développeur chez X"}},
			9, YearsFromEntries,
		},
		{"Nothing", types.CVInput{Text: "Passionné de cuisine"}, 0, YearsUnknown},
		{"Empty", types.CVInput{}, 0, YearsUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years, source := EstimateYears(tt.cv, fixedNow)
			assert.Equal(t, tt.years, years)
			assert.Equal(t, tt.source, source)
		})
	}
}

func TestExperienceScore(t *testing.T) {
	cal := DefaultCalibration().Experience

	tests := []struct {
		name     string
		years    int
		band     types.ExperienceRange
		expected float64
	}{
		{"Unknown", 0, types.ExperienceRange{Min: 1, Preferred: 3}, 20},
		{"At preferred", 3, types.ExperienceRange{Min: 1, Preferred: 3}, 88},
		{"Overshoot", 5, types.ExperienceRange{Min: 1, Preferred: 3}, 92},
		{"Overshoot capped", 20, types.ExperienceRange{Min: 1, Preferred: 3}, 100},
		{"At min", 1, types.ExperienceRange{Min: 1, Preferred: 3}, 65},
		{"Between min and preferred", 2, types.ExperienceRange{Min: 1, Preferred: 3}, 76.5},
		{"Below min", 2, types.ExperienceRange{Min: 4, Preferred: 6}, 43.5},
		{"Zero minimum", 1, types.ExperienceRange{Min: 0, Preferred: 3}, 65 + 23.0/3},
		{"Degenerate band", 2, types.ExperienceRange{Min: 2, Preferred: 2}, 88},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ExperienceScore(tt.years, tt.band, cal), 0.001)
		})
	}
}

func TestExperienceScore_NonDecreasingInYears(t *testing.T) {
	cal := DefaultCalibration().Experience
	band := types.ExperienceRange{Min: 3, Preferred: 6}
	prev := 0.0
	for y := 0; y <= 15; y++ {
		score := ExperienceScore(y, band, cal)
		assert.GreaterOrEqual(t, score, prev, "years=%d", y)
		prev = score
	}
}

func TestExperienceContextHits(t *testing.T) {
	position := types.JobPosition{
		Category: types.CategoryTech,
		Keywords: types.KeywordGroups{Required: []string{"HTML", "CSS", "JavaScript", "Accessibilité"}},
	}

	tests := []struct {
		name     string
		cv       types.CVInput
		expected int
	}{
		{"Required keywords in text", types.CVInput{Text: "html css javascript react"}, 3},
		{"Only leading required keywords count", types.CVInput{Text: "accessibilité"}, 0},
		{"Category label and seniority", types.CVInput{Text: "Senior, secteur Technologie"}, 2},
		{"Entries are searched", types.CVInput{ExperienceEntries: []string{"2020 - 2024 Lead front HTML"}}, 2},
		{"Empty", types.CVInput{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExperienceContextHits(tt.cv, position, 3))
		})
	}
}

func TestExperienceContextBonus(t *testing.T) {
	cal := DefaultCalibration().Experience
	assert.InDelta(t, 9, ExperienceContextBonus(3, 3, cal), 0.001)
	assert.InDelta(t, 10, ExperienceContextBonus(3, 5, cal), 0.001)
	assert.InDelta(t, 0, ExperienceContextBonus(0, 5, cal), 0.001)
}
