package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListAnalysesOptions_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   ListAnalysesOptions
		want ListAnalysesOptions
	}{
		{name: "zero uses defaults", in: ListAnalysesOptions{}, want: ListAnalysesOptions{Limit: DefaultListLimit}},
		{name: "limit capped", in: ListAnalysesOptions{Limit: 500}, want: ListAnalysesOptions{Limit: MaxListLimit}},
		{name: "negatives clamped", in: ListAnalysesOptions{Limit: 10, Offset: -3, MinScore: -1}, want: ListAnalysesOptions{Limit: 10}},
		{name: "valid values kept", in: ListAnalysesOptions{Limit: 20, Offset: 40, MinScore: 70}, want: ListAnalysesOptions{Limit: 20, Offset: 40, MinScore: 70}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.normalize())
		})
	}
}

func TestSchemaSQL(t *testing.T) {
	assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS analyses")
	assert.Contains(t, schemaSQL, "result           JSONB")
	assert.True(t, strings.Contains(schemaSQL, "CHECK (score BETWEEN 0 AND 100)"))
}
