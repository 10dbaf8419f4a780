// Package taxonomy provides the static professional-domain vocabularies used for
// coherence, education relevance and sector analysis.
//
// All vocabularies are stored already normalized (lowercase, NFC) and are read-only.
package taxonomy

import "github.com/jonathan/cv-matcher/internal/types"

// Domain is a broad professional field with its own characteristic vocabulary
type Domain string

// Known domains
const (
	DomainTech        Domain = "tech"
	DomainHealthcare  Domain = "healthcare"
	DomainEngineering Domain = "engineering"
	DomainFinance     Domain = "finance"
	DomainMarketing   Domain = "marketing"
	DomainDesign      Domain = "design"
	DomainSales       Domain = "sales"
	DomainHR          Domain = "hr"
	DomainManagement  Domain = "management"
)

// AllDomains lists every domain
var AllDomains = []Domain{
	DomainTech,
	DomainHealthcare,
	DomainEngineering,
	DomainFinance,
	DomainMarketing,
	DomainDesign,
	DomainSales,
	DomainHR,
	DomainManagement,
}

// DomainsFor maps a job category to its one or two primary domains.
// Every category in types.AllCategories has a case; an unknown category yields nil.
func DomainsFor(category types.Category) []Domain {
	switch category {
	case types.CategoryTech:
		return []Domain{DomainTech}
	case types.CategoryMarketing:
		return []Domain{DomainMarketing}
	case types.CategoryFinance:
		return []Domain{DomainFinance}
	case types.CategoryHR:
		return []Domain{DomainHR}
	case types.CategorySales:
		return []Domain{DomainSales}
	case types.CategoryDesign:
		return []Domain{DomainDesign}
	case types.CategoryManagement:
		return []Domain{DomainManagement}
	case types.CategoryHealthcare:
		return []Domain{DomainHealthcare}
	case types.CategoryEducation:
		return []Domain{DomainHR, DomainManagement}
	case types.CategoryLegal:
		return []Domain{DomainHR, DomainManagement}
	case types.CategoryOperations:
		return []Domain{DomainEngineering, DomainManagement}
	case types.CategoryConsulting:
		return []Domain{DomainManagement, DomainFinance}
	}
	return nil
}

type vocabulary struct {
	keywords     []string
	core         []string
	incompatible []Domain
}

var vocabularies = map[Domain]vocabulary{
	DomainTech: {
		keywords: []string{
			"développement", "développeur", "programmation", "logiciel", "informatique",
			"javascript", "typescript", "python", "java", "php", "c#", "html", "css",
			"react", "angular", "vue", "node.js", "api", "sql", "base de données",
			"docker", "kubernetes", "aws", "azure", "git", "linux", "devops", "cloud",
			"microservices", "backend", "frontend", "machine learning", "cybersécurité",
		},
		core:         []string{"développement", "programmation", "logiciel", "informatique", "javascript", "python", "java", "sql", "api", "git"},
		incompatible: []Domain{DomainHealthcare},
	},
	DomainHealthcare: {
		keywords: []string{
			"soins", "soins infirmiers", "infirmier", "infirmière", "patient", "patients",
			"hôpital", "clinique", "médecin", "médical", "médicale", "santé", "hygiène",
			"pharmacologie", "urgences", "réanimation", "bloc opératoire", "gériatrie",
			"aide-soignant", "diplôme d'état", "protocoles de soins", "pansement",
			"prise en charge", "ehpad", "chu",
		},
		core:         []string{"soins", "infirmier", "patient", "santé", "hôpital", "médical", "hygiène"},
		incompatible: []Domain{DomainTech, DomainEngineering, DomainFinance, DomainMarketing, DomainSales},
	},
	DomainEngineering: {
		keywords: []string{
			"ingénierie", "mécanique", "électrique", "électronique", "industriel", "industrialisation",
			"génie", "production", "maintenance", "automatisme", "cao", "solidworks", "autocad",
			"lean", "six sigma", "qualité", "bureau d'études", "supply chain", "logistique",
			"approvisionnement", "usine", "méthodes", "erp",
		},
		core:         []string{"ingénierie", "industriel", "production", "maintenance", "génie", "logistique"},
		incompatible: []Domain{DomainHealthcare},
	},
	DomainFinance: {
		keywords: []string{
			"comptabilité", "comptable", "finance", "financier", "financière", "bilan",
			"compte de résultat", "fiscalité", "tva", "audit", "trésorerie", "budget",
			"contrôle de gestion", "consolidation", "reporting", "excel", "sap",
			"analyse financière", "modélisation", "banque", "assurance", "ifrs", "dcf", "m&a",
		},
		core:         []string{"comptabilité", "finance", "bilan", "fiscalité", "audit", "trésorerie", "analyse financière"},
		incompatible: []Domain{DomainHealthcare, DomainDesign},
	},
	DomainMarketing: {
		keywords: []string{
			"marketing", "seo", "sem", "réseaux sociaux", "communication", "content", "contenu",
			"google ads", "analytics", "campagne", "campagnes", "branding", "marque",
			"email marketing", "emailing", "growth", "crm", "community manager", "social media",
			"publicité", "storytelling", "rédaction", "wordpress",
		},
		core:         []string{"marketing", "seo", "communication", "campagne", "réseaux sociaux", "publicité"},
		incompatible: []Domain{DomainHealthcare},
	},
	DomainDesign: {
		keywords: []string{
			"design", "ux", "ui", "figma", "sketch", "adobe", "photoshop", "illustrator",
			"indesign", "maquette", "maquettes", "wireframe", "wireframing", "prototypage",
			"prototype", "typographie", "identité visuelle", "graphisme", "graphique",
			"créatif", "direction artistique", "ergonomie", "user research",
		},
		core:         []string{"design", "ux", "ui", "figma", "graphisme", "maquette", "adobe"},
		incompatible: []Domain{DomainHealthcare, DomainFinance},
	},
	DomainSales: {
		keywords: []string{
			"vente", "ventes", "commercial", "commerciale", "prospection", "négociation",
			"client", "clients", "chiffre d'affaires", "crm", "salesforce", "business development",
			"account manager", "lead", "pipeline", "closing", "portefeuille",
			"objectifs commerciaux", "b2b", "btob", "partenariats",
		},
		core:         []string{"vente", "commercial", "prospection", "négociation", "chiffre d'affaires", "portefeuille"},
		incompatible: []Domain{DomainHealthcare},
	},
	DomainHR: {
		keywords: []string{
			"recrutement", "ressources humaines", "rh", "sirh", "paie", "formation",
			"droit du travail", "relations sociales", "entretiens", "sourcing", "talent",
			"onboarding", "gpec", "marque employeur", "employer branding",
			"administration du personnel", "gestion des talents", "pédagogie", "contrats",
			"juridique", "droit",
		},
		core:         []string{"recrutement", "ressources humaines", "rh", "paie", "sirh", "droit du travail", "formation"},
		incompatible: []Domain{DomainEngineering, DomainHealthcare},
	},
	DomainManagement: {
		keywords: []string{
			"management", "manager", "gestion de projet", "chef de projet", "équipe", "leadership",
			"stratégie", "pilotage", "roadmap", "budget", "agile", "scrum", "kpi", "planning",
			"direction", "coordination", "conduite du changement", "transformation",
			"product management", "encadrement", "reporting", "parties prenantes", "conseil",
		},
		core:         []string{"management", "gestion de projet", "leadership", "stratégie", "pilotage", "encadrement"},
		incompatible: []Domain{DomainHealthcare},
	},
}

// Keywords returns the full characteristic vocabulary of a domain
func Keywords(d Domain) []string {
	return vocabularies[d].keywords
}

// Core returns the smaller high-signal subset of a domain's vocabulary
func Core(d Domain) []string {
	return vocabularies[d].core
}

// Incompatible returns the domains considered strongly incompatible with d
func Incompatible(d Domain) []Domain {
	return vocabularies[d].incompatible
}
