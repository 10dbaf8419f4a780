// Package types provides type definitions for structured data used throughout the cv-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// CVInput is the per-analysis view of a résumé consumed by the scoring engine.
// Every field is optional; missing data degrades to low default scores.
type CVInput struct {
	Text              string   `json:"text"`
	Experience        string   `json:"experience,omitempty"` // e.g. "5 ans"
	Education         string   `json:"education,omitempty"`  // e.g. "Master informatique"
	Certifications    []string `json:"certifications,omitempty" validate:"dive,max=200"`
	Skills            []string `json:"skills,omitempty" validate:"dive,max=200"`
	ExperienceEntries []string `json:"experience_entries,omitempty"` // e.g. "2019 - 2023 Développeur chez X"
	Languages         []string `json:"languages,omitempty"`
}

// Validate validates the CVInput using the validator.
func (c *CVInput) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// ExtractedInfo is the structured metadata an upstream extractor pulls out of a CV document
type ExtractedInfo struct {
	Email          string   `json:"email,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	Name           string   `json:"name,omitempty"`
	Skills         []string `json:"skills"`
	Experience     []string `json:"experience"`
	Education      []string `json:"education"`
	Certifications []string `json:"certifications"`
	Languages      []string `json:"languages"`
}

// CVDocument is the shape handed over by the document text extractor
type CVDocument struct {
	Text          string        `json:"text"`
	ExtractedInfo ExtractedInfo `json:"extracted_info"`
}

// ToCVInput maps an extracted document onto the engine's input shape.
// Education entries are joined into a single education label.
func (d CVDocument) ToCVInput() CVInput {
	return CVInput{
		Text:              d.Text,
		Education:         strings.Join(d.ExtractedInfo.Education, " "),
		Certifications:    d.ExtractedInfo.Certifications,
		Skills:            d.ExtractedInfo.Skills,
		ExperienceEntries: d.ExtractedInfo.Experience,
		Languages:         d.ExtractedInfo.Languages,
	}
}
