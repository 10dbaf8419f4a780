package catalog

import (
	"errors"
	"testing"

	"github.com/jonathan/cv-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_PositionsAreValid(t *testing.T) {
	all := All()
	require.Len(t, all, 23)

	seen := make(map[string]bool)
	for _, p := range all {
		t.Run(p.ID, func(t *testing.T) {
			assert.NoError(t, p.Validate())
			assert.False(t, seen[p.ID], "duplicate id")
			seen[p.ID] = true
			assert.NotEmpty(t, p.Keywords.Required)
			assert.NotEmpty(t, p.Keywords.Preferred)
			assert.NotEmpty(t, p.Keywords.Technical)
			assert.NotEmpty(t, p.Education)

			w := p.ScoreWeights
			assert.InDelta(t, 1.0, w.Keywords+w.Experience+w.Education+w.Certifications, 0.001)
		})
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	first := All()
	first[0].ID = "mutated"
	assert.Equal(t, "dev-frontend", All()[0].ID)
}

func TestGet(t *testing.T) {
	p, err := Get("dev-frontend")
	require.NoError(t, err)
	assert.Equal(t, "Développeur Frontend", p.Title)
	assert.Equal(t, []string{"HTML", "CSS", "JavaScript"}, p.Keywords.Required)
	assert.Equal(t, types.ExperienceRange{Min: 1, Preferred: 3}, p.Experience)

	nurse, err := Get("infirmier")
	require.NoError(t, err)
	assert.Equal(t, types.CategoryHealthcare, nurse.Category)
	assert.Equal(t, types.ScoreWeights{Keywords: 0.3, Experience: 0.3, Education: 0.3, Certifications: 0.1}, nurse.ScoreWeights)
}

func TestGet_NotFound(t *testing.T) {
	p, err := Get("astronaut")
	assert.Nil(t, p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "astronaut", nf.ID)
	assert.Equal(t, "job position not found: astronaut", err.Error())
}

func TestByCategory(t *testing.T) {
	tech := ByCategory(types.CategoryTech)
	require.Len(t, tech, 6)
	assert.Equal(t, "dev-frontend", tech[0].ID)
	for _, p := range tech {
		assert.Equal(t, types.CategoryTech, p.Category)
	}

	assert.NotNil(t, ByCategory("astrology"))
	assert.Empty(t, ByCategory("astrology"))
}

func TestCategories(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, len(types.AllCategories))

	total := 0
	for _, c := range cats {
		assert.NotEqual(t, string(c.Category), c.Label, "every category has a label")
		assert.Positive(t, c.Positions, c.Category)
		total += c.Positions
	}
	assert.Equal(t, len(All()), total)
	assert.Equal(t, "Santé & Médical", CategoryLabel(types.CategoryHealthcare))
	assert.Equal(t, "astrology", CategoryLabel("astrology"))
}

func TestIDs(t *testing.T) {
	ids := IDs()
	assert.Len(t, ids, len(All()))
	assert.IsIncreasing(t, ids)
	assert.Contains(t, ids, "consultant")
}
