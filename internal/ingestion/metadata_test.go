package ingestion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHash(t *testing.T) {
	hash1 := computeHash("test content")
	hash2 := computeHash("different content")

	assert.Len(t, hash1, 64)
	assert.NotEqual(t, hash1, hash2)
	assert.Equal(t, hash1, computeHash("test content"))
}

func TestNewMetadata(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)
	metadata := NewMetadata("Développeuse", "cv.html", FormatHTML)

	assert.Equal(t, "cv.html", metadata.FileName)
	assert.Equal(t, FormatHTML, metadata.Format)
	assert.Equal(t, 12, metadata.Characters, "characters are runes, not bytes")

	ts, err := time.Parse(time.RFC3339, metadata.Timestamp)
	require.NoError(t, err)
	assert.True(t, ts.After(before))
}
