package scoring

import (
	"github.com/jonathan/cv-matcher/internal/matching"
)

// MatchOptions converts the keyword calibration into matcher options
func (c KeywordCalibration) MatchOptions() matching.Options {
	return matching.Options{
		FuzzyMinLength:     c.FuzzyMinLength,
		FuzzyMinSimilarity: c.FuzzyMinSimilarity,
	}
}

// KeywordScore computes the 0-100 keyword sub-score from the per-group tallies.
// Empty groups contribute nothing and their weight is not redistributed.
// When fewer than PenaltyRatio of the required keywords matched, the whole score is
// multiplied by PenaltyFactor.
func KeywordScore(res matching.Result, cal KeywordCalibration) float64 {
	score := 100 * (res.Required.Ratio()*cal.RequiredWeight +
		res.Preferred.Ratio()*cal.PreferredWeight +
		res.Technical.Ratio()*cal.TechnicalWeight +
		res.Soft.Ratio()*cal.SoftWeight)

	if res.Required.Total > 0 {
		ratio := res.Required.Ratio()
		score += cal.RequiredCoverageBonus * ratio
		if ratio < cal.PenaltyRatio {
			score *= cal.PenaltyFactor
		}
	}

	return clamp(score)
}

// Truncate returns at most limit items; a non-positive limit keeps everything
func Truncate(items []string, limit int) []string {
	if limit <= 0 || len(items) <= limit {
		return append([]string{}, items...)
	}
	return append([]string{}, items[:limit]...)
}
