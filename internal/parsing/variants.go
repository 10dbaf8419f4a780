package parsing

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// synonyms maps a normalized term to the alternative spellings that count as the same skill.
// The relation is made symmetric at init, so "js" also expands to "javascript".
var synonyms = map[string][]string{
	"javascript":                {"js", "node.js", "nodejs", "ecmascript"},
	"typescript":                {"ts"},
	"python":                    {"py", "python3"},
	"react":                     {"reactjs", "react.js"},
	"angular":                   {"angularjs", "angular.js"},
	"vue":                       {"vuejs", "vue.js"},
	"node.js":                   {"nodejs", "node"},
	"kubernetes":                {"k8s"},
	"postgresql":                {"postgres"},
	"développement":             {"dev", "développeur", "développeuse", "développer", "programmeur", "programmer", "coder"},
	"base de données":           {"bdd", "database", "databases", "db", "sql"},
	"intelligence artificielle": {"ia", "ai", "machine learning", "ml"},
	"machine learning":          {"apprentissage automatique", "ml"},
	"gestion de projet":         {"chef de projet", "project manager", "project management", "scrum master"},
	"communication":             {"relationnel", "présentation"},
	"leadership":                {"management", "encadrement", "direction"},
	"analyse":                   {"analytique", "business analyst", "analyser"},
	"conception":                {"design", "architecture", "modélisation"},
	"ci/cd":                     {"intégration continue", "déploiement continu", "continuous integration"},
	"api rest":                  {"rest api", "restful", "api restful"},
	"recrutement":               {"recruteur", "recruteuse", "recruter", "recruiting"},
	"comptabilité":              {"comptable", "accounting"},
	"vente":                     {"ventes", "vendeur", "commercial", "sales"},
	"formation":                 {"formateur", "formatrice", "former", "training"},
	"rédaction":                 {"rédacteur", "rédactrice", "rédiger", "copywriting"},
	"travail en équipe":         {"esprit d'équipe", "teamwork", "team player"},
	"résolution de problèmes":   {"problem solving", "résoudre des problèmes"},
	"adaptabilité":              {"adaptable", "flexibilité"},
	"créativité":                {"créatif", "créative", "creative"},
	"rigueur":                   {"rigoureux", "rigoureuse"},
	"organisation":              {"organisé", "organisée"},
	"négociation":               {"négocier", "négociateur", "négociatrice"},
	"prospection":               {"prospecter", "prospects"},
	"soins infirmiers":          {"infirmier", "infirmière", "ide"},
	"diplôme d'état":            {"de infirmier", "diplôme d’état"},
}

var expansions = buildExpansions(synonyms)

// compounds maps a short term to product names that embed it. The relation is one-way:
// "mysql" proves "sql", but "sql" does not prove "mysql".
var compounds = map[string][]string{
	"sql": {"mysql", "postgresql", "nosql", "mssql", "sqlite", "t-sql", "pl/sql", "sql server"},
	"css": {"scss", "tailwindcss", "css3", "postcss"},
	"api": {"apis", "graphql"},
	"kpi": {"kpis"},
}

func buildExpansions(src map[string][]string) map[string][]string {
	sets := make(map[string]map[string]struct{})
	add := func(from, to string) {
		if from == to {
			return
		}
		if sets[from] == nil {
			sets[from] = make(map[string]struct{})
		}
		sets[from][to] = struct{}{}
	}
	for term, alts := range src {
		for _, alt := range alts {
			add(term, alt)
			add(alt, term)
		}
	}

	out := make(map[string][]string, len(sets))
	for term, set := range sets {
		list := make([]string, 0, len(set))
		for alt := range set {
			list = append(list, alt)
		}
		sort.Strings(list)
		out[term] = list
	}
	return out
}

// Variants returns the alternative forms of a normalized term: dictionary synonyms,
// product names embedding it, then plural/singular forms. The term itself is not included.
func Variants(term string) []string {
	if term == "" {
		return nil
	}
	variants := append([]string(nil), expansions[term]...)
	variants = append(variants, compounds[term]...)
	variants = append(variants, inflections(term)...)
	return variants
}

// inflections produces plural/singular forms for single-word terms long enough to be safe
func inflections(term string) []string {
	if strings.ContainsAny(term, " /.#+") || utf8.RuneCountInString(term) < 5 {
		return nil
	}
	switch {
	case strings.HasSuffix(term, "aux"):
		return []string{strings.TrimSuffix(term, "aux") + "al"}
	case strings.HasSuffix(term, "al"):
		return []string{strings.TrimSuffix(term, "al") + "aux"}
	case strings.HasSuffix(term, "s"), strings.HasSuffix(term, "x"):
		return []string{term[:len(term)-1]}
	default:
		return []string{term + "s"}
	}
}
