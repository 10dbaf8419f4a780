// Package types provides type definitions for structured data used throughout the cv-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ConfidenceLevel is the qualitative reliability label attached to a score
type ConfidenceLevel string

// Confidence levels
const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// Breakdown holds the six sub-scores, each in [0,100]
type Breakdown struct {
	KeywordScore       int `json:"keyword_score"`
	ExperienceScore    int `json:"experience_score"`
	EducationScore     int `json:"education_score"`
	CertificationScore int `json:"certification_score"`
	CoherenceScore     int `json:"coherence_score"`
	SectorScore        int `json:"sector_score"`
}

// AnalysisResult is the structured, explainable compatibility assessment of a CV
type AnalysisResult struct {
	PositionID       string          `json:"position_id"`
	Score            int             `json:"score"`
	MatchedKeywords  []string        `json:"matched_keywords"`
	MissingKeywords  []string        `json:"missing_keywords"`
	Strengths        []string        `json:"strengths"`
	Improvements     []string        `json:"improvements"`
	ExperienceMatch  int             `json:"experience_match"`
	EducationMatch   int             `json:"education_match"`
	ProfileCoherence int             `json:"profile_coherence"`
	SectorRelevance  int             `json:"sector_relevance"`
	Breakdown        Breakdown       `json:"breakdown"`
	WarningFlags     []string        `json:"warning_flags"`
	ConfidenceLevel  ConfidenceLevel `json:"confidence_level"`
	ExtractedInfo    *ExtractedInfo  `json:"extracted_info,omitempty"`
}
