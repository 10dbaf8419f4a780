// Package parsing provides text normalization and term matching for French CV content.
package parsing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// ShortTermMaxRunes is the length at or below which a term must match on word boundaries
const ShortTermMaxRunes = 3

// Normalize composes accents (NFC), lowercases with French rules and collapses whitespace.
// Accents are kept: "Sécurité" becomes "sécurité", never "securite".
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	// cases.Caser is stateful, so one is built per call
	lower := cases.Lower(language.French).String(norm.NFC.String(s))
	return strings.Join(strings.Fields(lower), " ")
}

// NormalizeAll normalizes every entry and drops the ones that end up empty
func NormalizeAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if n := Normalize(item); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// isWordRune reports whether r belongs to a word for boundary checks
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Tokenize splits normalized text into tokens on whitespace and punctuation.
// '+', '#' and inner dots are kept so that "c++", "c#" and "node.js" survive as tokens.
func Tokenize(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return !(isWordRune(r) || r == '+' || r == '#' || r == '.')
	})
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = strings.Trim(tok, ".")
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// ContainsTerm reports whether normalized text contains the normalized term.
// Terms of ShortTermMaxRunes runes or fewer must sit on word boundaries so that
// "r" or "ui" are not found inside unrelated words; longer terms use plain substring search.
func ContainsTerm(text, term string) bool {
	if term == "" || text == "" {
		return false
	}
	if utf8.RuneCountInString(term) > ShortTermMaxRunes {
		return strings.Contains(text, term)
	}
	return containsWord(text, term)
}

// ContainsWord reports whether term occurs in text on word boundaries, whatever its length
func ContainsWord(text, term string) bool {
	if term == "" || text == "" {
		return false
	}
	return containsWord(text, term)
}

func containsWord(text, term string) bool {
	offset := 0
	for {
		idx := strings.Index(text[offset:], term)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(term)

		before, _ := utf8.DecodeLastRuneInString(text[:start])
		after, _ := utf8.DecodeRuneInString(text[end:])
		leftOK := start == 0 || !isWordRune(before)
		rightOK := end == len(text) || !isWordRune(after)
		if leftOK && rightOK {
			return true
		}

		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
}

// CountTerms returns how many of the terms occur in text
func CountTerms(text string, terms []string) int {
	n := 0
	for _, term := range terms {
		if ContainsTerm(text, term) {
			n++
		}
	}
	return n
}

// ContainsAny reports whether any of the terms occurs in text
func ContainsAny(text string, terms []string) bool {
	for _, term := range terms {
		if ContainsTerm(text, term) {
			return true
		}
	}
	return false
}
