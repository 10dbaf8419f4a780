package taxonomy

import "github.com/jonathan/cv-matcher/internal/types"

// SectorTerms returns the employer-type and role-title nouns of a job category.
// They describe the kind of organization or role, not skills.
func SectorTerms(category types.Category) []string {
	switch category {
	case types.CategoryTech:
		return []string{"startup", "scale-up", "éditeur logiciel", "esn", "ssii", "saas", "agence web", "développeur", "ingénieur logiciel", "tech lead", "cto", "digital"}
	case types.CategoryHealthcare:
		return []string{"hôpital", "clinique", "chu", "ehpad", "centre de soins", "cabinet médical", "infirmier", "infirmière", "aide-soignant", "service de soins"}
	case types.CategoryFinance:
		return []string{"banque", "assurance", "cabinet comptable", "cabinet d'audit", "big four", "expert-comptable", "comptable", "analyste financier", "contrôleur de gestion", "trésorier", "fonds d'investissement"}
	case types.CategoryMarketing:
		return []string{"agence", "média", "publicité", "annonceur", "agence de communication", "chargé de marketing", "chef de produit", "community manager", "responsable marketing"}
	case types.CategoryDesign:
		return []string{"studio", "agence créative", "agence de design", "directeur artistique", "designer", "graphiste", "freelance"}
	case types.CategorySales:
		return []string{"distribution", "retail", "grande distribution", "commercial", "business developer", "ingénieur commercial", "account manager", "responsable commercial", "key account"}
	case types.CategoryHR:
		return []string{"cabinet rh", "cabinet de recrutement", "conseil rh", "chargé de recrutement", "responsable rh", "drh", "talent acquisition", "chargé rh"}
	case types.CategoryManagement:
		return []string{"direction", "comité de direction", "chef de projet", "product manager", "manager", "directeur", "pmo"}
	case types.CategoryEducation:
		return []string{"organisme de formation", "centre de formation", "université", "école", "formateur", "formatrice", "enseignant", "professeur", "responsable pédagogique"}
	case types.CategoryLegal:
		return []string{"cabinet d'avocats", "direction juridique", "service juridique", "juriste", "avocat", "notaire", "conseil juridique"}
	case types.CategoryOperations:
		return []string{"entrepôt", "plateforme logistique", "usine", "site de production", "transport", "responsable logistique", "supply chain manager", "acheteur", "approvisionneur"}
	case types.CategoryConsulting:
		return []string{"cabinet de conseil", "conseil en stratégie", "big four", "consultant", "manager", "associé", "transformation"}
	}
	return nil
}

// ExperienceContextPrefixes introduce an employer or role inside an experience statement
var ExperienceContextPrefixes = []string{"chez ", "en ", "dans un ", "dans une ", "au sein d'un ", "au sein d'une ", "ans en "}

// ExperienceContextSuffixes follow an employer or role inside an experience statement
var ExperienceContextSuffixes = []string{" depuis"}

// SeniorityTerms signal an experienced profile
var SeniorityTerms = []string{"senior", "lead", "expert", "confirmé", "principal"}
