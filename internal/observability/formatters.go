// Package observability provides the zap logger, the analysis stage observer and
// the formatted terminal output of the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-matcher/internal/catalog"
	"github.com/jonathan/cv-matcher/internal/ranking"
	"github.com/jonathan/cv-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 64
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to n runes
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList appends a bulleted list capped at limit items
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + "\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... et %d de plus\n", len(items)-limit))
	}
	sb.WriteString("\n")
}

// PrintAnalysis outputs a human-readable report of one analysis.
func (p *Printer) PrintAnalysis(position types.JobPosition, res *types.AnalysisResult) {
	if res == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Poste:      %s (%s)\n", position.Title, position.ID))
	sb.WriteString(fmt.Sprintf("Score:      %d/100  %s\n", res.Score, ranking.BandFor(res.Score).Label()))
	sb.WriteString(fmt.Sprintf("Confiance:  %s\n", res.ConfidenceLevel))
	sb.WriteString("\n")

	b := res.Breakdown
	sb.WriteString(fmt.Sprintf("Compétences     %3d   Expérience   %3d\n", b.KeywordScore, b.ExperienceScore))
	sb.WriteString(fmt.Sprintf("Formation       %3d   Certif.      %3d\n", b.EducationScore, b.CertificationScore))
	sb.WriteString(fmt.Sprintf("Cohérence       %3d   Secteur      %3d\n", b.CoherenceScore, b.SectorScore))
	sb.WriteString("\n")

	writeList(&sb, "Compétences trouvées:", res.MatchedKeywords, maxItemsToShow)
	writeList(&sb, "Compétences manquantes:", res.MissingKeywords, maxItemsToShow)
	writeList(&sb, "Points forts:", res.Strengths, maxItemsToShow)
	writeList(&sb, "Axes d'amélioration:", res.Improvements, maxItemsToShow)
	writeList(&sb, "Alertes:", res.WarningFlags, maxItemsToShow)

	p.printBox("ANALYSE DE COMPATIBILITÉ", strings.TrimSuffix(sb.String(), "\n\n"))
}

// PrintRanking outputs a ranked batch with its summary.
func (p *Printer) PrintRanking(position types.JobPosition, ranked []ranking.RankedCandidate) {
	if len(ranked) == 0 {
		return
	}

	summary := ranking.Summarize(ranked)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Poste: %s\n", position.Title))
	sb.WriteString(fmt.Sprintf("%d CV analysés, %d excellents, moyenne %d, meilleur %d\n\n",
		summary.Total, summary.Excellent, summary.AverageScore, summary.TopScore))

	for i, r := range ranked {
		sb.WriteString(fmt.Sprintf("#%-3d %3d  %s\n", r.Rank, r.Result.Score, r.FileName))
		sb.WriteString(fmt.Sprintf("          %s\n", r.Band.Label()))
		if r.Notes != "" {
			sb.WriteString(fmt.Sprintf("          %s\n", r.Notes))
		}
		if i < len(ranked)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CLASSEMENT DES CANDIDATS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPositions lists positions grouped by category, in catalog category order.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintPositions(positions []types.JobPosition) {
	if len(positions) == 0 {
		fmt.Fprintln(p.out, "Aucun poste trouvé")
		return
	}

	byCategory := make(map[types.Category][]types.JobPosition)
	for _, pos := range positions {
		byCategory[pos.Category] = append(byCategory[pos.Category], pos)
	}

	var sb strings.Builder
	first := true
	for _, category := range types.AllCategories {
		list := byCategory[category]
		if len(list) == 0 {
			continue
		}
		if !first {
			sb.WriteString("\n")
		}
		first = false
		sb.WriteString(catalog.CategoryLabel(category) + "\n")
		for _, pos := range list {
			sb.WriteString(fmt.Sprintf("  %-24s %s\n", pos.ID, pos.Title))
		}
	}

	p.printBox(fmt.Sprintf("POSTES (%d)", len(positions)), strings.TrimSuffix(sb.String(), "\n"))
}
