package taxonomy

import "github.com/jonathan/cv-matcher/internal/types"

// EducationLevel is a recognized diploma level and its score
type EducationLevel struct {
	Terms []string
	Score float64
}

// EducationLevels is the ranked diploma vocabulary, highest first.
// Terms are matched as whole tokens of the education text; "bac+N" tokens are
// expected in their compact form.
var EducationLevels = []EducationLevel{
	{Terms: []string{"doctorat", "doctorats", "phd", "doctorate", "bac+8"}, Score: 100},
	{Terms: []string{"master", "masters", "m1", "m2", "mba", "ingénieur", "ingénieure", "ingénieurs", "bac+5", "bac+4"}, Score: 85},
	{Terms: []string{"licence", "licences", "bachelor", "bachelors", "l3", "bac+3"}, Score: 70},
	{Terms: []string{"bts", "dut", "but", "bac+2"}, Score: 60},
	{Terms: []string{"bac", "baccalauréat"}, Score: 45},
}

// EducationFields returns the study fields relevant to a job category
func EducationFields(category types.Category) []string {
	switch category {
	case types.CategoryTech:
		return []string{"informatique", "computer science", "ingénieur logiciel", "génie logiciel", "développement", "numérique", "miage", "mathématiques appliquées"}
	case types.CategoryHealthcare:
		return []string{"médecine", "santé", "infirmier", "infirmière", "médical", "pharmacie", "ifsi", "soins"}
	case types.CategoryFinance:
		return []string{"finance", "comptabilité", "gestion", "économie", "banque", "dcg", "dscg", "audit"}
	case types.CategoryMarketing:
		return []string{"marketing", "communication", "commerce", "publicité", "digital", "journalisme"}
	case types.CategoryDesign:
		return []string{"design", "art", "arts appliqués", "créatif", "graphisme", "architecture", "beaux-arts"}
	case types.CategorySales:
		return []string{"commerce", "vente", "business", "négociation", "commercial"}
	case types.CategoryHR:
		return []string{"ressources humaines", "psychologie", "gestion", "droit social", "rh"}
	case types.CategoryManagement:
		return []string{"gestion", "management", "business", "administration", "mba"}
	case types.CategoryEducation:
		return []string{"sciences de l'éducation", "pédagogie", "formation", "enseignement", "ingénierie pédagogique"}
	case types.CategoryLegal:
		return []string{"droit", "juridique", "droit des affaires", "djce", "sciences politiques"}
	case types.CategoryOperations:
		return []string{"logistique", "supply chain", "génie industriel", "ingénieur", "transport", "achats"}
	case types.CategoryConsulting:
		return []string{"stratégie", "management", "business", "gestion", "économie", "école de commerce"}
	}
	return nil
}

// IncompatibleStudies returns study fields that signal a strong mismatch with a job category
func IncompatibleStudies(category types.Category) []string {
	switch category {
	case types.CategoryTech:
		return []string{"médecine", "pharmacie", "infirmier", "soins infirmiers", "droit", "lettres", "histoire de l'art"}
	case types.CategoryHealthcare:
		return []string{"informatique", "computer science", "génie logiciel", "finance", "comptabilité", "marketing"}
	case types.CategoryFinance:
		return []string{"médecine", "infirmier", "arts appliqués", "beaux-arts"}
	case types.CategoryMarketing:
		return []string{"médecine", "pharmacie", "infirmier"}
	case types.CategoryDesign:
		return []string{"médecine", "pharmacie", "comptabilité"}
	case types.CategorySales:
		return []string{"médecine", "pharmacie"}
	case types.CategoryHR:
		return []string{"génie mécanique", "médecine"}
	case types.CategoryManagement:
		return []string{"médecine", "infirmier"}
	case types.CategoryEducation:
		return []string{"pharmacie"}
	case types.CategoryLegal:
		return []string{"informatique", "médecine", "génie mécanique"}
	case types.CategoryOperations:
		return []string{"médecine", "beaux-arts"}
	case types.CategoryConsulting:
		return []string{"médecine", "infirmier"}
	}
	return nil
}
