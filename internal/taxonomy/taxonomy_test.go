package taxonomy

import (
	"testing"

	"github.com/jonathan/cv-matcher/internal/parsing"
	"github.com/jonathan/cv-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainsFor_EveryCategoryMapped(t *testing.T) {
	for _, c := range types.AllCategories {
		t.Run(string(c), func(t *testing.T) {
			domains := DomainsFor(c)
			require.NotEmpty(t, domains, "category must map to at least one domain")
			assert.LessOrEqual(t, len(domains), 2)
			for _, d := range domains {
				assert.Contains(t, AllDomains, d)
			}
		})
	}
}

func TestDomainsFor_UnknownCategory(t *testing.T) {
	assert.Nil(t, DomainsFor(types.Category("astronaut")))
}

func TestPerCategoryVocabularies_Exhaustive(t *testing.T) {
	for _, c := range types.AllCategories {
		t.Run(string(c), func(t *testing.T) {
			assert.NotEmpty(t, EducationFields(c))
			assert.NotEmpty(t, IncompatibleStudies(c))
			assert.NotEmpty(t, SectorTerms(c))
		})
	}
}

func TestVocabularies_Complete(t *testing.T) {
	for _, d := range AllDomains {
		t.Run(string(d), func(t *testing.T) {
			assert.NotEmpty(t, Keywords(d))
			assert.NotEmpty(t, Core(d))
			assert.NotEmpty(t, Incompatible(d))
			assert.NotContains(t, Incompatible(d), d, "a domain cannot be incompatible with itself")
			for _, core := range Core(d) {
				assert.Contains(t, Keywords(d), core, "core keywords must be part of the full vocabulary")
			}
		})
	}
}

func TestVocabularies_StoredNormalized(t *testing.T) {
	check := func(t *testing.T, terms []string) {
		for _, term := range terms {
			assert.Equal(t, parsing.Normalize(term), term)
		}
	}
	for _, d := range AllDomains {
		check(t, Keywords(d))
	}
	for _, c := range types.AllCategories {
		check(t, EducationFields(c))
		check(t, IncompatibleStudies(c))
		check(t, SectorTerms(c))
	}
	for _, level := range EducationLevels {
		check(t, level.Terms)
	}
}

func TestTechAndHealthcareAreMutuallyIncompatible(t *testing.T) {
	assert.Contains(t, Incompatible(DomainTech), DomainHealthcare)
	assert.Contains(t, Incompatible(DomainHealthcare), DomainTech)
}

func TestEducationLevels_RankedHighestFirst(t *testing.T) {
	for i := 1; i < len(EducationLevels); i++ {
		assert.Greater(t, EducationLevels[i-1].Score, EducationLevels[i].Score)
	}
}
