// Package types provides type definitions for structured data used throughout the cv-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// Category identifies the professional field a job position belongs to
type Category string

// Job categories known to the catalog
const (
	CategoryTech       Category = "tech"
	CategoryMarketing  Category = "marketing"
	CategoryFinance    Category = "finance"
	CategoryHR         Category = "hr"
	CategorySales      Category = "sales"
	CategoryDesign     Category = "design"
	CategoryManagement Category = "management"
	CategoryHealthcare Category = "healthcare"
	CategoryEducation  Category = "education"
	CategoryLegal      Category = "legal"
	CategoryOperations Category = "operations"
	CategoryConsulting Category = "consulting"
)

// AllCategories lists every category in display order
var AllCategories = []Category{
	CategoryTech,
	CategoryMarketing,
	CategoryFinance,
	CategoryHR,
	CategorySales,
	CategoryDesign,
	CategoryManagement,
	CategoryHealthcare,
	CategoryEducation,
	CategoryLegal,
	CategoryOperations,
	CategoryConsulting,
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// JobPosition is an immutable catalog entry describing a target role
type JobPosition struct {
	ID             string          `json:"id" validate:"required"`
	Title          string          `json:"title" validate:"required"`
	Category       Category        `json:"category" validate:"required"`
	Keywords       KeywordGroups   `json:"keywords"`
	Experience     ExperienceRange `json:"experience"`
	Education      []string        `json:"education"`
	Certifications []string        `json:"certifications,omitempty"`
	ScoreWeights   ScoreWeights    `json:"score_weights"`
}

// KeywordGroups holds the four ordered keyword groups of a position
type KeywordGroups struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// All returns every keyword in declaration order: required, preferred, technical, soft.
// Duplicates are kept; callers that need a set should dedupe.
func (k KeywordGroups) All() []string {
	all := make([]string, 0, len(k.Required)+len(k.Preferred)+len(k.Technical)+len(k.Soft))
	all = append(all, k.Required...)
	all = append(all, k.Preferred...)
	all = append(all, k.Technical...)
	all = append(all, k.Soft...)
	return all
}

// ExperienceRange is the experience band expected for a position, in years
type ExperienceRange struct {
	Min       int `json:"min" validate:"gte=0"`
	Preferred int `json:"preferred" validate:"gtefield=Min"`
}

// ScoreWeights are the per-dimension weights of the final score.
// They conventionally sum to 1 but this is not enforced.
type ScoreWeights struct {
	Keywords       float64 `json:"keywords" validate:"gte=0,lte=1"`
	Experience     float64 `json:"experience" validate:"gte=0,lte=1"`
	Education      float64 `json:"education" validate:"gte=0,lte=1"`
	Certifications float64 `json:"certifications" validate:"gte=0,lte=1"`
}

// Validate validates the JobPosition using the validator.
func (p *JobPosition) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}
	if !p.Category.Valid() {
		return &InvalidCategoryError{Category: p.Category}
	}
	return nil
}

// InvalidCategoryError is returned when a position declares an unknown category
type InvalidCategoryError struct {
	Category Category
}

func (e *InvalidCategoryError) Error() string {
	return "unknown job category: " + string(e.Category)
}
