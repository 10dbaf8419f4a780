// Package scoring provides the dimension scorers, the aggregator and the
// warning/confidence rules of the CV compatibility engine.
//
// Every tunable constant lives in Calibration so behavior can be recalibrated
// without touching the algorithms.
package scoring

// Calibration groups every tunable constant of the engine
type Calibration struct {
	Keywords       KeywordCalibration       `json:"keywords" mapstructure:"keywords"`
	Experience     ExperienceCalibration    `json:"experience" mapstructure:"experience"`
	Education      EducationCalibration     `json:"education" mapstructure:"education"`
	Certifications CertificationCalibration `json:"certifications" mapstructure:"certifications"`
	Coherence      CoherenceCalibration     `json:"coherence" mapstructure:"coherence"`
	Sector         SectorCalibration        `json:"sector" mapstructure:"sector"`
	Aggregate      AggregateCalibration     `json:"aggregate" mapstructure:"aggregate"`
	Warnings       WarningCalibration       `json:"warnings" mapstructure:"warnings"`
	Confidence     ConfidenceCalibration    `json:"confidence" mapstructure:"confidence"`
}

// KeywordCalibration tunes the keyword sub-score
type KeywordCalibration struct {
	RequiredWeight        float64 `json:"required_weight" mapstructure:"required_weight"`
	PreferredWeight       float64 `json:"preferred_weight" mapstructure:"preferred_weight"`
	TechnicalWeight       float64 `json:"technical_weight" mapstructure:"technical_weight"`
	SoftWeight            float64 `json:"soft_weight" mapstructure:"soft_weight"`
	RequiredCoverageBonus float64 `json:"required_coverage_bonus" mapstructure:"required_coverage_bonus"` // points × required ratio
	PenaltyRatio          float64 `json:"penalty_ratio" mapstructure:"penalty_ratio"`                     // required ratio below which the penalty applies
	PenaltyFactor         float64 `json:"penalty_factor" mapstructure:"penalty_factor"`
	FuzzyMinLength        int     `json:"fuzzy_min_length" mapstructure:"fuzzy_min_length"`
	FuzzyMinSimilarity    float64 `json:"fuzzy_min_similarity" mapstructure:"fuzzy_min_similarity"`
	MaxMatchedDisplay     int     `json:"max_matched_display" mapstructure:"max_matched_display"`
	MaxMissingDisplay     int     `json:"max_missing_display" mapstructure:"max_missing_display"`
}

// ExperienceCalibration tunes the experience curve
type ExperienceCalibration struct {
	Unknown          float64 `json:"unknown" mapstructure:"unknown"`
	BelowMinFloor    float64 `json:"below_min_floor" mapstructure:"below_min_floor"`
	AtMin            float64 `json:"at_min" mapstructure:"at_min"`
	AtPreferred      float64 `json:"at_preferred" mapstructure:"at_preferred"`
	OvershootPerYear float64 `json:"overshoot_per_year" mapstructure:"overshoot_per_year"`
	OvershootCap     float64 `json:"overshoot_cap" mapstructure:"overshoot_cap"`
	ContextBonus     float64 `json:"context_bonus" mapstructure:"context_bonus"`
	ContextBonusCap  float64 `json:"context_bonus_cap" mapstructure:"context_bonus_cap"`
	ContextKeywords  int     `json:"context_keywords" mapstructure:"context_keywords"` // leading required keywords checked for context
}

// EducationCalibration tunes the education scorer
type EducationCalibration struct {
	Missing            float64 `json:"missing" mapstructure:"missing"`
	ExactMatch         float64 `json:"exact_match" mapstructure:"exact_match"`
	ExtraMatchBonus    float64 `json:"extra_match_bonus" mapstructure:"extra_match_bonus"`
	ExactMatchCap      float64 `json:"exact_match_cap" mapstructure:"exact_match_cap"`
	LevelWeight        float64 `json:"level_weight" mapstructure:"level_weight"`
	DomainWeight       float64 `json:"domain_weight" mapstructure:"domain_weight"`
	LevelDefault       float64 `json:"level_default" mapstructure:"level_default"`
	DomainNeutral      float64 `json:"domain_neutral" mapstructure:"domain_neutral"`
	DomainIncompatible float64 `json:"domain_incompatible" mapstructure:"domain_incompatible"`
	DomainRelevantBase float64 `json:"domain_relevant_base" mapstructure:"domain_relevant_base"`
	DomainRelevantSpan float64 `json:"domain_relevant_span" mapstructure:"domain_relevant_span"`
}

// CertificationCalibration tunes the certification scorer
type CertificationCalibration struct {
	NoneRequired float64 `json:"none_required" mapstructure:"none_required"`
	Unmatched    float64 `json:"unmatched" mapstructure:"unmatched"`
	MatchedBase  float64 `json:"matched_base" mapstructure:"matched_base"`
	MatchedSpan  float64 `json:"matched_span" mapstructure:"matched_span"`
	MatchBonus   float64 `json:"match_bonus" mapstructure:"match_bonus"`
}

// CoherenceCalibration tunes the domain coherence analyzer
type CoherenceCalibration struct {
	BaseScale        float64 `json:"base_scale" mapstructure:"base_scale"`
	CoreBonus        float64 `json:"core_bonus" mapstructure:"core_bonus"`
	ForeignThreshold int     `json:"foreign_threshold" mapstructure:"foreign_threshold"`
	ForeignPenalty   float64 `json:"foreign_penalty" mapstructure:"foreign_penalty"` // factor lost per foreign keyword
	PenaltyFloor     float64 `json:"penalty_floor" mapstructure:"penalty_floor"`
}

// SectorCalibration tunes the sector relevance analyzer
type SectorCalibration struct {
	Floor        float64 `json:"floor" mapstructure:"floor"`
	PerTerm      float64 `json:"per_term" mapstructure:"per_term"`
	ContextBonus float64 `json:"context_bonus" mapstructure:"context_bonus"`
}

// AggregateCalibration tunes the final adjustments
type AggregateCalibration struct {
	CoherenceHigh       float64 `json:"coherence_high" mapstructure:"coherence_high"`
	CoherenceHighBonus  float64 `json:"coherence_high_bonus" mapstructure:"coherence_high_bonus"`
	CoherenceLow        float64 `json:"coherence_low" mapstructure:"coherence_low"`
	CoherenceLowPenalty float64 `json:"coherence_low_penalty" mapstructure:"coherence_low_penalty"`
	SectorHigh          float64 `json:"sector_high" mapstructure:"sector_high"`
	SectorHighBonus     float64 `json:"sector_high_bonus" mapstructure:"sector_high_bonus"`
	SectorLow           float64 `json:"sector_low" mapstructure:"sector_low"`
	SectorLowPenalty    float64 `json:"sector_low_penalty" mapstructure:"sector_low_penalty"`
	WarningCountPenalty int     `json:"warning_count_penalty" mapstructure:"warning_count_penalty"` // warnings needed to trigger the penalty
	WarningPenalty      float64 `json:"warning_penalty" mapstructure:"warning_penalty"`
}

// WarningCalibration holds the sub-score thresholds that raise warnings
type WarningCalibration struct {
	Coherence     float64 `json:"coherence" mapstructure:"coherence"`
	Sector        float64 `json:"sector" mapstructure:"sector"`
	Education     float64 `json:"education" mapstructure:"education"`
	Keywords      float64 `json:"keywords" mapstructure:"keywords"`
	RequiredRatio float64 `json:"required_ratio" mapstructure:"required_ratio"`
	Experience    float64 `json:"experience" mapstructure:"experience"`
}

// ConfidenceCalibration holds the confidence level boundaries
type ConfidenceCalibration struct {
	LowWarnings    int     `json:"low_warnings" mapstructure:"low_warnings"`
	LowAverage     float64 `json:"low_average" mapstructure:"low_average"`
	MediumWarnings int     `json:"medium_warnings" mapstructure:"medium_warnings"`
	MediumAverage  float64 `json:"medium_average" mapstructure:"medium_average"`
}

// DefaultCalibration returns the calibrated defaults
func DefaultCalibration() Calibration {
	return Calibration{
		Keywords: KeywordCalibration{
			RequiredWeight:        0.60,
			PreferredWeight:       0.20,
			TechnicalWeight:       0.15,
			SoftWeight:            0.05,
			RequiredCoverageBonus: 10,
			PenaltyRatio:          0.5,
			PenaltyFactor:         0.6,
			FuzzyMinLength:        4,
			FuzzyMinSimilarity:    0.8,
			MaxMatchedDisplay:     15,
			MaxMissingDisplay:     10,
		},
		Experience: ExperienceCalibration{
			Unknown:          20,
			BelowMinFloor:    22,
			AtMin:            65,
			AtPreferred:      88,
			OvershootPerYear: 2,
			OvershootCap:     12,
			ContextBonus:     3,
			ContextBonusCap:  10,
			ContextKeywords:  3,
		},
		Education: EducationCalibration{
			Missing:            25,
			ExactMatch:         90,
			ExtraMatchBonus:    2.5,
			ExactMatchCap:      95,
			LevelWeight:        0.65,
			DomainWeight:       0.35,
			LevelDefault:       40,
			DomainNeutral:      45,
			DomainIncompatible: 12,
			DomainRelevantBase: 20,
			DomainRelevantSpan: 80,
		},
		Certifications: CertificationCalibration{
			NoneRequired: 60,
			Unmatched:    30,
			MatchedBase:  30,
			MatchedSpan:  60,
			MatchBonus:   10,
		},
		Coherence: CoherenceCalibration{
			BaseScale:        1.5,
			CoreBonus:        45,
			ForeignThreshold: 3,
			ForeignPenalty:   0.1,
			PenaltyFloor:     0.3,
		},
		Sector: SectorCalibration{
			Floor:        10,
			PerTerm:      18,
			ContextBonus: 8,
		},
		Aggregate: AggregateCalibration{
			CoherenceHigh:       78,
			CoherenceHighBonus:  6,
			CoherenceLow:        28,
			CoherenceLowPenalty: 18,
			SectorHigh:          70,
			SectorHighBonus:     4,
			SectorLow:           22,
			SectorLowPenalty:    12,
			WarningCountPenalty: 3,
			WarningPenalty:      15,
		},
		Warnings: WarningCalibration{
			Coherence:     30,
			Sector:        20,
			Education:     35,
			Keywords:      25,
			RequiredRatio: 0.3,
			Experience:    30,
		},
		Confidence: ConfidenceCalibration{
			LowWarnings:    3,
			LowAverage:     33,
			MediumWarnings: 1,
			MediumAverage:  62,
		},
	}
}

// clamp bounds v to [0,100]
func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
