package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/cv-matcher/internal/types"
)

const (
	// DefaultListLimit applies when no limit is given
	DefaultListLimit = 50
	// MaxListLimit caps page sizes
	MaxListLimit = 100
)

// Analysis is a stored analysis result
type Analysis struct {
	ID          uuid.UUID            `json:"id"`
	PositionID  string               `json:"position_id"`
	FileName    string               `json:"file_name,omitempty"`
	Score       int                  `json:"score"`
	Confidence  string               `json:"confidence_level"`
	ContentHash *string              `json:"content_hash,omitempty"` // hash of the analyzed text, when known
	Result      types.AnalysisResult `json:"result"`
	CreatedAt   time.Time            `json:"created_at"`
}

// AnalysisInput contains the data needed to store an analysis
type AnalysisInput struct {
	FileName    string
	ContentHash string
	Result      types.AnalysisResult
}

// ListAnalysesOptions contains filters for listing analyses of a position
type ListAnalysesOptions struct {
	MinScore int // only analyses scoring at least this much
	Limit    int
	Offset   int
}

// normalize clamps pagination values
func (o ListAnalysesOptions) normalize() ListAnalysesOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultListLimit
	}
	if o.Limit > MaxListLimit {
		o.Limit = MaxListLimit
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	if o.MinScore < 0 {
		o.MinScore = 0
	}
	return o
}
