// Package ingestion turns CV files into cleaned text and the structured
// document shape consumed by the analyzer.
package ingestion

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jonathan/cv-matcher/internal/types"
)

var (
	spaceRun       = regexp.MustCompile(`[ \t\x{00A0}]+`)
	excessiveBlank = regexp.MustCompile(`\n\n\n+`)
)

// bulletPrefixes are the list markers PDF and word-processor exports leave behind
var bulletPrefixes = []string{"• ", "· ", "▪ ", "◦ ", "– ", "- ", "* "}

// CleanText cleans and normalizes CV text while preserving its line structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Clean each line
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	// 3. Collapse blank runs and trim
	result := excessiveBlank.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims a line, collapses inner whitespace and rewrites bullet markers to "- "
func cleanLine(line string) string {
	line = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
	if line == "" {
		return ""
	}
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return "- " + strings.TrimSpace(strings.TrimPrefix(line, prefix))
		}
	}
	return line
}

// Supported CV file formats
const (
	FormatText = "text"
	FormatHTML = "html"
)

// formatFor maps a file extension to a CV format
func formatFor(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", "":
		return FormatText, true
	case ".html", ".htm":
		return FormatHTML, true
	default:
		return "", false
	}
}

// LoadFile reads a text or HTML CV, cleans it and returns the text with its metadata.
// PDF files are not read here; their text must be extracted upstream.
func LoadFile(path string) (string, *Metadata, error) {
	format, ok := formatFor(path)
	if !ok {
		return "", nil, &LoadError{Path: path, Message: "unsupported file format " + filepath.Ext(path)}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, &LoadError{Path: path, Message: "file not found", Cause: err}
		}
		return "", nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	text := string(content)
	if format == FormatHTML {
		text, err = HTMLToText(text)
		if err != nil {
			return "", nil, &LoadError{Path: path, Message: "failed to convert HTML", Cause: err}
		}
	}

	cleaned := CleanText(text)
	return cleaned, NewMetadata(cleaned, filepath.Base(path), format), nil
}

// LoadDocument reads a CV file and runs the structured extraction over it
func LoadDocument(path string) (types.CVDocument, *Metadata, error) {
	text, meta, err := LoadFile(path)
	if err != nil {
		return types.CVDocument{}, nil, err
	}
	return NewDocument(text), meta, nil
}

// NewDocument builds the analyzer's document shape from cleaned CV text
func NewDocument(text string) types.CVDocument {
	return types.CVDocument{Text: text, ExtractedInfo: ExtractInfo(text)}
}
