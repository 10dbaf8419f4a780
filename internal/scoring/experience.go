package scoring

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/cv-matcher/internal/catalog"
	"github.com/jonathan/cv-matcher/internal/parsing"
	"github.com/jonathan/cv-matcher/internal/taxonomy"
	"github.com/jonathan/cv-matcher/internal/types"
)

// YearsSource records where an experience estimate came from
type YearsSource string

// Experience estimate sources
const (
	YearsFromField   YearsSource = "field"
	YearsFromText    YearsSource = "text"
	YearsFromEntries YearsSource = "entries"
	YearsUnknown     YearsSource = "unknown"
)

var (
	digitsPattern = regexp.MustCompile(`\d+`)
	yearPattern   = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

	// experiencePatterns run on normalized (lowercase) text
	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*\+?\s*ans?\s+d['’]\s*expérience`),
		regexp.MustCompile(`(\d+)\s*\+?\s*années?\s+d['’]\s*expérience`),
		regexp.MustCompile(`expérience\s*:\s*(\d+)\s*(?:ans?|années?)`),
		regexp.MustCompile(`(\d+)\s*\+?\s*years?\s+(?:of\s+)?experience`),
		regexp.MustCompile(`(\d+)\s*ans?\s+en\s+tant\s+que`),
	}
)

// EstimateYears extracts the years of professional experience of a CV.
// Order: the structured experience string, then the largest "N ans d'expérience"
// style mention in the text, then the span between now and the earliest year in the
// experience entries. Zero means unknown.
func EstimateYears(cv types.CVInput, now time.Time) (int, YearsSource) {
	if field := strings.TrimSpace(cv.Experience); field != "" {
		if m := digitsPattern.FindString(field); m != "" {
			if n, err := strconv.Atoi(m); err == nil && n > 0 {
				return n, YearsFromField
			}
		}
	}

	text := parsing.Normalize(cv.Text)
	best := 0
	for _, pattern := range experiencePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > best {
				best = n
			}
		}
	}
	if best > 0 {
		return best, YearsFromText
	}

	earliest := 0
	for _, entry := range cv.ExperienceEntries {
		for _, y := range yearPattern.FindAllString(entry, -1) {
			year, err := strconv.Atoi(y)
			if err != nil {
				continue
			}
			if earliest == 0 || year < earliest {
				earliest = year
			}
		}
	}
	if earliest > 0 {
		if years := now.Year() - earliest; years > 0 {
			return years, YearsFromEntries
		}
	}

	return 0, YearsUnknown
}

// ExperienceScore scores years of experience against the position's band.
// Unknown experience (zero years) always yields the flat Unknown score.
func ExperienceScore(years int, band types.ExperienceRange, cal ExperienceCalibration) float64 {
	if years <= 0 {
		return cal.Unknown
	}

	y := float64(years)
	minYears := float64(band.Min)
	preferred := float64(band.Preferred)
	if preferred < minYears {
		preferred = minYears
	}

	var score float64
	switch {
	case y >= preferred:
		overshoot := cal.OvershootPerYear * (y - preferred)
		if overshoot > cal.OvershootCap {
			overshoot = cal.OvershootCap
		}
		score = cal.AtPreferred + overshoot
	case y >= minYears:
		// preferred > minYears here, otherwise the first case would have matched
		ratio := (y - minYears) / (preferred - minYears)
		score = cal.AtMin + ratio*(cal.AtPreferred-cal.AtMin)
	default:
		score = cal.BelowMinFloor + (cal.AtMin-cal.BelowMinFloor)*(y/minYears)
	}

	return clamp(score)
}

// ExperienceContextHits counts the contextual signals found in the CV text and
// experience entries: the job category, each of the leading required keywords,
// and any seniority word.
func ExperienceContextHits(cv types.CVInput, position types.JobPosition, leading int) int {
	haystack := parsing.Normalize(cv.Text + "\n" + strings.Join(cv.ExperienceEntries, "\n"))
	if haystack == "" {
		return 0
	}

	hits := 0
	if parsing.ContainsTerm(haystack, parsing.Normalize(string(position.Category))) ||
		parsing.ContainsTerm(haystack, parsing.Normalize(catalog.CategoryLabel(position.Category))) {
		hits++
	}

	required := position.Keywords.Required
	if leading >= 0 && len(required) > leading {
		required = required[:leading]
	}
	for _, keyword := range required {
		if parsing.ContainsTerm(haystack, parsing.Normalize(keyword)) {
			hits++
		}
	}

	if parsing.ContainsAny(haystack, taxonomy.SeniorityTerms) {
		hits++
	}
	return hits
}

// ExperienceContextBonus converts context hits into bonus points.
// No bonus is granted when experience is unknown.
func ExperienceContextBonus(years, hits int, cal ExperienceCalibration) float64 {
	if years <= 0 {
		return 0
	}
	bonus := float64(hits) * cal.ContextBonus
	if bonus > cal.ContextBonusCap {
		bonus = cal.ContextBonusCap
	}
	return bonus
}
