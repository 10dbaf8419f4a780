package ingestion

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-matcher/internal/parsing"
	"github.com/jonathan/cv-matcher/internal/types"
)

const (
	minExperienceLine = 10
	minEducationLine  = 5
	minListItem       = 2
	maxHeading        = 40
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(?:\+33\s?|0)[1-9](?:[.\-\s]?\d{2}){4}`)
	yearPattern  = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	listSplit    = regexp.MustCompile(`[,;/|]`)

	// "Compétences : Go, SQL" style lines; the heading word is captured separately
	skillListPattern = regexp.MustCompile(`(?im)^\s*(?:compétences?|technologies?|outils?|langages?|frameworks?)(?:\s+techniques?)?\s*:\s*(.+)$`)
	certListPattern  = regexp.MustCompile(`(?im)^\s*(?:-\s*)?(?:certifications?|certifiée?)\s*:\s*(.+)$`)
	langListPattern  = regexp.MustCompile(`(?im)^\s*(?:langues?|languages?)\s*:\s*(.+)$`)
)

// skillVocabulary is matched on word boundaries against the normalized text
var skillVocabulary = []string{
	"javascript", "typescript", "python", "java", "c#", "c++", "php", "ruby", "go", "rust", "scala", "kotlin", "swift",
	"react", "angular", "vue", "node.js", "express", "django", "flask", "spring", "laravel", "next.js", "nuxt", "svelte",
	"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "oracle", "sqlite", "cassandra", "sql",
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "gitlab", "github", "terraform",
	"git", "jira", "confluence", "postman", "webpack", "babel", "npm", "yarn",
	"html", "css", "sass", "scss", "less", "bootstrap", "tailwind",
	"pandas", "numpy", "matplotlib", "scikit-learn", "tensorflow", "pytorch", "jupyter", "matlab",
	"react native", "flutter", "ionic", "xamarin",
	"linux", "windows", "macos", "api", "rest", "graphql", "microservices", "agile", "scrum",
	"excel", "sap", "figma", "photoshop", "illustrator", "salesforce", "power bi", "tableau",
}

var certificationVocabulary = []string{
	"aws certified", "azure certified", "gcp certified", "google cloud",
	"scrum master", "product owner", "pmp", "itil", "prince2",
	"cisco", "microsoft certified", "oracle certified",
	"comptia", "cissp", "ceh", "cisa", "cism",
	"toeic", "toefl", "ielts", "bulats",
}

// languageAliases maps every recognized spelling to its display name
var languageAliases = []struct {
	name    string
	aliases []string
}{
	{"Français", []string{"français", "francais", "french"}},
	{"Anglais", []string{"anglais", "english"}},
	{"Espagnol", []string{"espagnol", "spanish", "español"}},
	{"Allemand", []string{"allemand", "german", "deutsch"}},
	{"Italien", []string{"italien", "italian", "italiano"}},
	{"Portugais", []string{"portugais", "portuguese"}},
	{"Chinois", []string{"chinois", "chinese", "mandarin"}},
	{"Japonais", []string{"japonais", "japanese"}},
	{"Arabe", []string{"arabe", "arabic"}},
	{"Russe", []string{"russe", "russian"}},
}

// Section headings, matched on the normalized line
var (
	experienceHeadings = []string{"expérience", "experience", "parcours professionnel", "emplois", "postes occupés"}
	educationHeadings  = []string{"formation", "éducation", "education", "diplômes", "études"}
	otherHeadings      = []string{"compétence", "certification", "langue", "centres d'intérêt", "loisirs", "projets"}
	educationMarkers   = []string{"université", "école", "master", "licence", "bts", "dut", "doctorat", "baccalauréat"}
)

// ExtractInfo pulls contact details, skills, dated experience lines, education lines,
// certifications and languages out of plain CV text. Missing data yields empty
// lists, never nil.
func ExtractInfo(text string) types.ExtractedInfo {
	normalized := parsing.Normalize(text)
	info := types.ExtractedInfo{
		Email:          emailPattern.FindString(text),
		Phone:          phonePattern.FindString(text),
		Name:           firstLine(text),
		Skills:         extractSkills(text, normalized),
		Experience:     make([]string, 0),
		Education:      make([]string, 0),
		Certifications: extractCertifications(text, normalized),
		Languages:      extractLanguages(text, normalized),
	}
	info.Experience, info.Education = extractSections(text)
	return info
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

func extractSkills(text, normalized string) []string {
	var skills []string
	for _, skill := range skillVocabulary {
		if parsing.ContainsWord(normalized, skill) {
			skills = append(skills, skill)
		}
	}
	skills = append(skills, listItems(skillListPattern, text)...)
	return dedupe(skills)
}

func extractCertifications(text, normalized string) []string {
	var certs []string
	for _, cert := range certificationVocabulary {
		if parsing.ContainsTerm(normalized, cert) {
			certs = append(certs, cert)
		}
	}
	for _, m := range certListPattern.FindAllStringSubmatch(text, -1) {
		if v := strings.TrimSpace(m[1]); v != "" {
			certs = append(certs, v)
		}
	}
	return dedupe(certs)
}

func extractLanguages(text, normalized string) []string {
	var langs []string
	for _, lang := range languageAliases {
		if parsing.ContainsAny(normalized, lang.aliases) {
			langs = append(langs, lang.name)
		}
	}
	for _, item := range listItems(langListPattern, text) {
		langs = append(langs, canonicalLanguage(item))
	}
	return dedupe(langs)
}

// canonicalLanguage maps "Anglais (courant)" to "Anglais"; unknown languages are kept verbatim
func canonicalLanguage(item string) string {
	key := parsing.Normalize(item)
	for _, lang := range languageAliases {
		if parsing.ContainsAny(key, lang.aliases) {
			return lang.name
		}
	}
	return item
}

// listItems splits the captured list of every match on , ; / |
func listItems(pattern *regexp.Regexp, text string) []string {
	var items []string
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		for _, item := range listSplit.Split(m[1], -1) {
			item = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(item), "."))
			if len([]rune(item)) >= minListItem {
				items = append(items, item)
			}
		}
	}
	return items
}

type section int

const (
	sectionNone section = iota
	sectionExperience
	sectionEducation
)

// extractSections walks the lines once, tracking the current heading. Experience
// lines are kept when they or the following line carry a year; education lines
// are kept when long enough. Education markers outside any section also count.
func extractSections(text string) (experience, education []string) {
	experience = make([]string, 0)
	education = make([]string, 0)

	lines := strings.Split(text, "\n")
	current := sectionNone
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		key := parsing.Normalize(line)

		if heading, ok := headingOf(key); ok {
			current = heading
			continue
		}

		switch current {
		case sectionExperience:
			if len([]rune(line)) > minExperienceLine && (yearPattern.MatchString(line) || nextLineHasYear(lines, i)) {
				experience = append(experience, line)
			}
		case sectionEducation:
			if len([]rune(line)) > minEducationLine {
				education = append(education, line)
			}
		default:
			if parsing.ContainsAny(key, educationMarkers) && len([]rune(line)) > minExperienceLine {
				education = append(education, line)
			}
		}
	}
	return experience, dedupe(education)
}

// headingOf reports whether a line is a section heading and which section it opens.
// Skills, certifications and languages lines close the current section at any length;
// experience and education headings must be short.
func headingOf(key string) (section, bool) {
	key = strings.TrimSpace(strings.Trim(key, ":-# "))
	if startsWithAny(key, otherHeadings) {
		return sectionNone, true
	}
	if len([]rune(key)) > maxHeading {
		return sectionNone, false
	}
	switch {
	case startsWithAny(key, experienceHeadings):
		return sectionExperience, true
	case startsWithAny(key, educationHeadings):
		return sectionEducation, true
	}
	return sectionNone, false
}

func startsWithAny(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func nextLineHasYear(lines []string, i int) bool {
	return i+1 < len(lines) && yearPattern.MatchString(lines[i+1])
}

// dedupe removes case-insensitive duplicates, keeping the first spelling; never returns nil
func dedupe(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		key := parsing.Normalize(item)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}
