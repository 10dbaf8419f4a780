package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-matcher/internal/catalog"
	"github.com/jonathan/cv-matcher/internal/ranking"
	"github.com/jonathan/cv-matcher/internal/types"
)

func frontend(t *testing.T) types.JobPosition {
	t.Helper()
	p, err := catalog.Get("dev-frontend")
	require.NoError(t, err)
	return *p
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	res := &types.AnalysisResult{
		PositionID:      "dev-frontend",
		Score:           87,
		MatchedKeywords: []string{"HTML", "CSS", "JavaScript", "React", "TypeScript", "Git", "Webpack"},
		MissingKeywords: []string{"Vue.js"},
		Strengths:       []string{"Expérience professionnelle très adaptée au poste"},
		WarningFlags:    []string{},
		Breakdown:       types.Breakdown{KeywordScore: 82, ExperienceScore: 88},
		ConfidenceLevel: types.ConfidenceHigh,
	}

	p.PrintAnalysis(frontend(t), res)
	output := buf.String()

	assert.Contains(t, output, "ANALYSE DE COMPATIBILITÉ")
	assert.Contains(t, output, "87/100")
	assert.Contains(t, output, "Profil excellent")
	assert.Contains(t, output, "high")
	assert.Contains(t, output, "Vue.js")
	assert.Contains(t, output, "... et 2 de plus")
	assert.NotContains(t, output, "Alertes:")
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysis(types.JobPosition{}, nil)

	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesByRunes(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITRE", strings.Repeat("é", 200))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)))
	}
	assert.Contains(t, buf.String(), "...")
}

func TestPrintRanking(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	ranked := []ranking.RankedCandidate{
		{Rank: 1, FileName: "alice.txt", Band: ranking.BandExcellent, Notes: "6 compétences identifiées", Result: types.AnalysisResult{Score: 90}},
		{Rank: 2, FileName: "bob.txt", Band: ranking.BandWeak, Result: types.AnalysisResult{Score: 40}},
	}

	p.PrintRanking(frontend(t), ranked)
	output := buf.String()

	assert.Contains(t, output, "CLASSEMENT DES CANDIDATS")
	assert.Contains(t, output, "2 CV analysés, 1 excellents, moyenne 65, meilleur 90")
	assert.Contains(t, output, "alice.txt")
	assert.Contains(t, output, "Profil peu adapté")
	assert.Less(t, strings.Index(output, "alice.txt"), strings.Index(output, "bob.txt"))
}

func TestPrintRanking_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRanking(types.JobPosition{}, nil)

	assert.Empty(t, buf.String())
}

func TestPrintPositions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPositions(catalog.ByCategory(types.CategoryHealthcare))
	output := buf.String()

	assert.Contains(t, output, "Santé & Médical")
	assert.Contains(t, output, "infirmier")
	assert.NotContains(t, output, "dev-frontend")
}

func TestPrintPositions_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintPositions(nil)

	assert.Equal(t, "Aucun poste trouvé\n", buf.String())
}
