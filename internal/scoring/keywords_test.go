package scoring

import (
	"testing"

	"github.com/jonathan/cv-matcher/internal/matching"
	"github.com/stretchr/testify/assert"
)

func TestKeywordScore(t *testing.T) {
	cal := DefaultCalibration().Keywords

	tests := []struct {
		name     string
		result   matching.Result
		expected float64
	}{
		{
			name: "All required and half preferred",
			result: matching.Result{
				Required:  matching.GroupCount{Matched: 3, Total: 3},
				Preferred: matching.GroupCount{Matched: 2, Total: 4},
				Technical: matching.GroupCount{Matched: 1, Total: 6},
				Soft:      matching.GroupCount{Matched: 0, Total: 3},
			},
			expected: 82.5,
		},
		{
			name: "Penalty below half required",
			result: matching.Result{
				Required:  matching.GroupCount{Matched: 1, Total: 3},
				Preferred: matching.GroupCount{Matched: 0, Total: 4},
			},
			expected: (20 + 10.0/3) * 0.6,
		},
		{
			name: "Exactly half required is not penalized",
			result: matching.Result{
				Required: matching.GroupCount{Matched: 1, Total: 2},
			},
			expected: 35,
		},
		{
			name: "Everything matched is capped",
			result: matching.Result{
				Required:  matching.GroupCount{Matched: 3, Total: 3},
				Preferred: matching.GroupCount{Matched: 4, Total: 4},
				Technical: matching.GroupCount{Matched: 6, Total: 6},
				Soft:      matching.GroupCount{Matched: 3, Total: 3},
			},
			expected: 100,
		},
		{
			name: "Empty groups do not redistribute weight",
			result: matching.Result{
				Preferred: matching.GroupCount{Matched: 2, Total: 2},
			},
			expected: 20,
		},
		{
			name:     "No keywords at all",
			result:   matching.Result{},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, KeywordScore(tt.result, cal), 0.001)
		})
	}
}

func TestKeywordScore_MonotoneInRequired(t *testing.T) {
	cal := DefaultCalibration().Keywords
	prev := -1.0
	for matched := 0; matched <= 4; matched++ {
		score := KeywordScore(matching.Result{
			Required:  matching.GroupCount{Matched: matched, Total: 4},
			Preferred: matching.GroupCount{Matched: 3, Total: 4},
			Technical: matching.GroupCount{Matched: 5, Total: 6},
		}, cal)
		assert.GreaterOrEqual(t, score, prev, "matched=%d", matched)
		prev = score
	}
}

func TestTruncate(t *testing.T) {
	items := []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "b"}, Truncate(items, 2))
	assert.Equal(t, items, Truncate(items, 5))
	assert.Equal(t, items, Truncate(items, 0))
	assert.Equal(t, []string{}, Truncate(nil, 3))
}

func TestMatchOptions(t *testing.T) {
	opts := DefaultCalibration().Keywords.MatchOptions()
	assert.Equal(t, matching.DefaultOptions(), opts)
}
