// Package types provides type definitions for structured data used throughout the cv-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCVInput_Validate(t *testing.T) {
	empty := CVInput{}
	assert.NoError(t, empty.Validate(), "every field is optional")

	cv := CVInput{Text: "html css", Skills: []string{"HTML"}, Certifications: []string{"CISSP"}}
	assert.NoError(t, cv.Validate())

	tooLong := CVInput{Skills: []string{strings.Repeat("x", 201)}}
	assert.Error(t, tooLong.Validate())
}

func TestCVDocument_ToCVInput(t *testing.T) {
	doc := CVDocument{
		Text: "Jean Dupont\nDéveloppeur",
		ExtractedInfo: ExtractedInfo{
			Email:          "jean@example.fr",
			Skills:         []string{"JavaScript", "React"},
			Experience:     []string{"2019 - 2023 Développeur chez Acme"},
			Education:      []string{"Master Informatique", "Licence"},
			Certifications: []string{"AWS"},
			Languages:      []string{"Français", "Anglais"},
		},
	}

	cv := doc.ToCVInput()

	assert.Equal(t, doc.Text, cv.Text)
	assert.Empty(t, cv.Experience)
	assert.Equal(t, "Master Informatique Licence", cv.Education)
	assert.Equal(t, []string{"JavaScript", "React"}, cv.Skills)
	assert.Equal(t, []string{"2019 - 2023 Développeur chez Acme"}, cv.ExperienceEntries)
	assert.Equal(t, []string{"AWS"}, cv.Certifications)
	assert.Equal(t, []string{"Français", "Anglais"}, cv.Languages)
}

func TestCVDocument_JSONUnmarshaling(t *testing.T) {
	jsonInput := `{
		"text": "Infirmière diplômée",
		"extracted_info": {
			"name": "Marie Martin",
			"skills": ["Soins infirmiers"],
			"experience": [],
			"education": ["Diplôme d'État infirmier"],
			"certifications": [],
			"languages": ["Français"]
		}
	}`

	var doc CVDocument
	require.NoError(t, json.Unmarshal([]byte(jsonInput), &doc))
	assert.Equal(t, "Infirmière diplômée", doc.Text)
	assert.Equal(t, "Marie Martin", doc.ExtractedInfo.Name)
	assert.Equal(t, []string{"Soins infirmiers"}, doc.ExtractedInfo.Skills)
	assert.Empty(t, doc.ExtractedInfo.Email)
}

func TestAnalysisResult_JSONMarshaling(t *testing.T) {
	res := AnalysisResult{
		PositionID:      "infirmier",
		Score:           12,
		MatchedKeywords: []string{},
		MissingKeywords: []string{"Soins infirmiers"},
		WarningFlags:    []string{"Profil inadapté au domaine du poste"},
		ConfidenceLevel: ConfidenceLow,
		Breakdown:       Breakdown{KeywordScore: 5, SectorScore: 10},
	}

	jsonBytes, err := json.Marshal(res)
	require.NoError(t, err)
	s := string(jsonBytes)
	assert.Contains(t, s, `"score":12`)
	assert.Contains(t, s, `"confidence_level":"low"`)
	assert.Contains(t, s, `"keyword_score":5`)
	assert.Contains(t, s, `"matched_keywords":[]`)
	assert.NotContains(t, s, `"extracted_info"`)
}
