package ranking

// Band is the qualitative tier of a final score
type Band string

// Score bands, from best to worst
const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandFair      Band = "fair"
	BandWeak      Band = "weak"
)

// BandFor maps a score to its band
func BandFor(score int) Band {
	switch {
	case score >= 85:
		return BandExcellent
	case score >= 70:
		return BandGood
	case score >= 60:
		return BandFair
	default:
		return BandWeak
	}
}

// Label returns the French display label of the band
func (b Band) Label() string {
	switch b {
	case BandExcellent:
		return "Profil excellent"
	case BandGood:
		return "Bon profil"
	case BandFair:
		return "Profil à considérer"
	default:
		return "Profil peu adapté"
	}
}
