// Package matching provides keyword matching of job keywords against CV content.
//
// Each keyword goes through four checks in order: direct text match, extracted-skill
// match, synonym/variant match and fuzzy (edit-distance) match. The first check that
// succeeds decides the match method.
package matching

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/jonathan/cv-matcher/internal/parsing"
	"github.com/jonathan/cv-matcher/internal/types"
)

// Method records which check matched a keyword
type Method string

// Match methods, in evaluation order
const (
	MethodExact   Method = "exact"
	MethodSkill   Method = "skill"
	MethodVariant Method = "variant"
	MethodFuzzy   Method = "fuzzy"
)

// Options tunes the fuzzy refinement
type Options struct {
	FuzzyMinLength     int     // keywords shorter than this (in runes) are never fuzzy matched
	FuzzyMinSimilarity float64 // 1 - distance/maxLen threshold, in [0,1]
}

// DefaultOptions returns the standard fuzzy settings
func DefaultOptions() Options {
	return Options{FuzzyMinLength: 4, FuzzyMinSimilarity: 0.8}
}

// GroupCount is the matched/total tally of one keyword group
type GroupCount struct {
	Matched int `json:"matched"`
	Total   int `json:"total"`
}

// Ratio returns matched/total, or 0 for an empty group
func (g GroupCount) Ratio() float64 {
	if g.Total == 0 {
		return 0
	}
	return float64(g.Matched) / float64(g.Total)
}

// Result is the full classification of a position's keywords.
// Matched and Missing are disjoint, keep declaration order and together cover the
// deduplicated keyword set.
type Result struct {
	Matched   []string
	Missing   []string
	Methods   map[string]Method // keyed by the keyword as declared
	Required  GroupCount
	Preferred GroupCount
	Technical GroupCount
	Soft      GroupCount

	// MissingRequired lists unmatched required keywords in declaration order
	MissingRequired []string
}

// Matcher classifies keywords against one CV.
// A Matcher holds only the normalized CV content and is safe for concurrent use.
type Matcher struct {
	opts   Options
	text   string
	skills []string
	tokens []string
}

// New prepares a matcher for the given CV text and pre-extracted skills
func New(text string, skills []string, opts Options) *Matcher {
	normalized := parsing.Normalize(text)
	return &Matcher{
		opts:   opts,
		text:   normalized,
		skills: parsing.NormalizeAll(skills),
		tokens: parsing.Tokenize(normalized),
	}
}

// Match classifies every keyword of the groups. Keywords repeated across groups
// (case-insensitively) are classified once, at their first declaration.
func (m *Matcher) Match(groups types.KeywordGroups) Result {
	res := Result{Methods: make(map[string]Method)}
	status := make(map[string]bool)

	for _, keyword := range groups.All() {
		key := parsing.Normalize(keyword)
		if key == "" {
			continue
		}
		if _, seen := status[key]; seen {
			continue
		}
		method, ok := m.matchOne(key)
		status[key] = ok
		if ok {
			res.Matched = append(res.Matched, keyword)
			res.Methods[keyword] = method
		} else {
			res.Missing = append(res.Missing, keyword)
		}
	}

	count := func(group []string) GroupCount {
		var gc GroupCount
		for _, keyword := range group {
			key := parsing.Normalize(keyword)
			if key == "" {
				continue
			}
			gc.Total++
			if status[key] {
				gc.Matched++
			}
		}
		return gc
	}
	res.Required = count(groups.Required)
	res.Preferred = count(groups.Preferred)
	res.Technical = count(groups.Technical)
	res.Soft = count(groups.Soft)

	for _, keyword := range groups.Required {
		if key := parsing.Normalize(keyword); key != "" && !status[key] {
			res.MissingRequired = append(res.MissingRequired, keyword)
		}
	}

	return res
}

// Contains reports whether a normalized keyword matches through any of the four checks
func (m *Matcher) Contains(keyword string) bool {
	_, ok := m.matchOne(parsing.Normalize(keyword))
	return ok
}

func (m *Matcher) matchOne(key string) (Method, bool) {
	if parsing.ContainsTerm(m.text, key) {
		return MethodExact, true
	}
	if m.inSkills(key) {
		return MethodSkill, true
	}
	for _, variant := range parsing.Variants(key) {
		if parsing.ContainsTerm(m.text, variant) || m.skillContains(variant) {
			return MethodVariant, true
		}
	}
	if m.fuzzy(key) {
		return MethodFuzzy, true
	}
	return "", false
}

// inSkills checks substring containment in either direction against extracted skills
func (m *Matcher) inSkills(key string) bool {
	for _, skill := range m.skills {
		if parsing.ContainsTerm(skill, key) || parsing.ContainsTerm(key, skill) {
			return true
		}
	}
	return false
}

func (m *Matcher) skillContains(term string) bool {
	for _, skill := range m.skills {
		if parsing.ContainsTerm(skill, term) {
			return true
		}
	}
	return false
}

// fuzzy compares the keyword with every window of CV tokens of the same token count
func (m *Matcher) fuzzy(key string) bool {
	if utf8.RuneCountInString(key) < m.opts.FuzzyMinLength {
		return false
	}
	width := len(parsing.Tokenize(key))
	if width == 0 || width > len(m.tokens) {
		return false
	}
	for i := 0; i+width <= len(m.tokens); i++ {
		candidate := strings.Join(m.tokens[i:i+width], " ")
		if Similarity(key, candidate) >= m.opts.FuzzyMinSimilarity {
			return true
		}
	}
	return false
}

// Similarity returns 1 - levenshtein(a,b)/max(len(a),len(b)) measured in runes
func Similarity(a, b string) float64 {
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
