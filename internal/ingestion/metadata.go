package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
	"unicode/utf8"
)

// Metadata describes an ingested CV file
type Metadata struct {
	FileName   string `json:"file_name"`
	Format     string `json:"format"`     // text or html
	Timestamp  string `json:"timestamp"`  // RFC3339 format
	Hash       string `json:"hash"`       // SHA256 hex digest of the cleaned text
	Characters int    `json:"characters"` // rune count of the cleaned text
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content, fileName, format string) *Metadata {
	return &Metadata{
		FileName:   fileName,
		Format:     format,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Hash:       computeHash(content),
		Characters: utf8.RuneCountInString(content),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

