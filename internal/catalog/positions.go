package catalog

import "github.com/jonathan/cv-matcher/internal/types"

var defaultWeights = types.ScoreWeights{Keywords: 0.4, Experience: 0.3, Education: 0.2, Certifications: 0.1}

// positions is the static registry. Entries are never mutated after init.
var positions = []types.JobPosition{
	// Technologie
	{
		ID:       "dev-frontend",
		Title:    "Développeur Frontend",
		Category: types.CategoryTech,
		Keywords: types.KeywordGroups{
			Required:  []string{"HTML", "CSS", "JavaScript"},
			Preferred: []string{"React", "Vue", "Angular", "TypeScript"},
			Technical: []string{"Webpack", "Sass", "Git", "npm", "API REST", "Responsive Design"},
			Soft:      []string{"Créativité", "Attention aux détails", "Travail en équipe"},
		},
		Experience:     types.ExperienceRange{Min: 1, Preferred: 3},
		Education:      []string{"Licence", "Master", "BTS", "Autodidacte"},
		Certifications: []string{"AWS Frontend", "Google Developer", "Microsoft Frontend"},
		ScoreWeights:   defaultWeights,
	},
	{
		ID:       "dev-backend",
		Title:    "Développeur Backend",
		Category: types.CategoryTech,
		Keywords: types.KeywordGroups{
			Required:  []string{"Base de données", "API", "Serveur"},
			Preferred: []string{"Node.js", "Python", "Java", "C#", "PHP"},
			Technical: []string{"Docker", "AWS", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Microservices"},
			Soft:      []string{"Logique", "Résolution de problèmes", "Rigueur"},
		},
		Experience:     types.ExperienceRange{Min: 2, Preferred: 4},
		Education:      []string{"Licence", "Master", "École d'ingénieur"},
		Certifications: []string{"AWS Solutions Architect", "Google Cloud", "Microsoft Azure"},
		ScoreWeights:   defaultWeights,
	},
	{
		ID:       "dev-fullstack",
		Title:    "Développeur Full Stack",
		Category: types.CategoryTech,
		Keywords: types.KeywordGroups{
			Required:  []string{"Frontend", "Backend", "Base de données"},
			Preferred: []string{"MERN", "MEAN", "Django", "Laravel", "Spring"},
			Technical: []string{"Git", "CI/CD", "Testing", "Agile", "Scrum", "Docker"},
			Soft:      []string{"Polyvalence", "Adaptabilité", "Communication"},
		},
		Experience:   types.ExperienceRange{Min: 3, Preferred: 5},
		Education:    []string{"Licence", "Master", "École d'ingénieur"},
		ScoreWeights: defaultWeights,
	},
	{
		ID:       "devops",
		Title:    "Ingénieur DevOps",
		Category: types.CategoryTech,
		Keywords: types.KeywordGroups{
			Required:  []string{"CI/CD", "Docker", "Kubernetes"},
			Preferred: []string{"AWS", "Azure", "GCP", "Terraform", "Ansible"},
			Technical: []string{"Jenkins", "GitLab CI", "Monitoring", "Prometheus", "Grafana", "Linux"},
			Soft:      []string{"Automatisation", "Fiabilité", "Collaboration"},
		},
		Experience:     types.ExperienceRange{Min: 3, Preferred: 5},
		Education:      []string{"Master", "École d'ingénieur"},
		Certifications: []string{"AWS DevOps", "Kubernetes", "Docker Certified"},
		ScoreWeights:   types.ScoreWeights{Keywords: 0.5, Experience: 0.3, Education: 0.1, Certifications: 0.1},
	},
	{
		ID:       "data-scientist",
		Title:    "Data Scientist",
		Category: types.CategoryTech,
		Keywords: types.KeywordGroups{
			Required:  []string{"Python", "Machine Learning", "Statistiques"},
			Preferred: []string{"TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy"},
			Technical: []string{"SQL", "R", "Jupyter", "Big Data", "Spark", "Hadoop"},
			Soft:      []string{"Analyse critique", "Curiosité", "Communication des résultats"},
		},
		Experience:     types.ExperienceRange{Min: 2, Preferred: 4},
		Education:      []string{"Master", "Doctorat", "École d'ingénieur"},
		Certifications: []string{"Google Cloud ML", "AWS ML", "Microsoft AI"},
		ScoreWeights:   types.ScoreWeights{Keywords: 0.4, Experience: 0.2, Education: 0.3, Certifications: 0.1},
	},
	{
		ID:       "cybersecurity",
		Title:    "Expert Cybersécurité",
		Category: types.CategoryTech,
		Keywords: types.KeywordGroups{
			Required:  []string{"Sécurité", "Firewall", "Pentesting"},
			Preferred: []string{"CISSP", "CEH", "CISM", "ISO 27001"},
			Technical: []string{"Nmap", "Wireshark", "Metasploit", "SIEM", "IDS/IPS", "Cryptographie"},
			Soft:      []string{"Vigilance", "Éthique", "Discrétion"},
		},
		Experience:     types.ExperienceRange{Min: 3, Preferred: 6},
		Education:      []string{"Master", "École d'ingénieur"},
		Certifications: []string{"CISSP", "CEH", "CISM", "GSEC"},
		ScoreWeights:   types.ScoreWeights{Keywords: 0.3, Experience: 0.3, Education: 0.2, Certifications: 0.2},
	},

	// Marketing & Communication
	{
		ID:       "marketing-digital",
		Title:    "Responsable Marketing Digital",
		Category: types.CategoryMarketing,
		Keywords: types.KeywordGroups{
			Required:  []string{"SEO", "SEM", "Réseaux sociaux"},
			Preferred: []string{"Google Ads", "Facebook Ads", "Analytics", "Growth Hacking"},
			Technical: []string{"Google Analytics", "Tag Manager", "CRM", "Email Marketing", "A/B Testing"},
			Soft:      []string{"Créativité", "Analyse", "Stratégie"},
		},
		Experience:     types.ExperienceRange{Min: 3, Preferred: 5},
		Education:      []string{"Licence", "Master", "École de commerce"},
		Certifications: []string{"Google Ads", "Google Analytics", "Facebook Blueprint"},
		ScoreWeights:   defaultWeights,
	},
	{
		ID:       "content-manager",
		Title:    "Content Manager",
		Category: types.CategoryMarketing,
		Keywords: types.KeywordGroups{
			Required:  []string{"Rédaction", "Content Marketing", "SEO"},
			Preferred: []string{"WordPress", "CMS", "Storytelling", "Brand Content"},
			Technical: []string{"Canva", "Adobe Creative", "Analytics", "Social Media Management"},
			Soft:      []string{"Créativité", "Rigueur", "Polyvalence"},
		},
		Experience:   types.ExperienceRange{Min: 2, Preferred: 4},
		Education:    []string{"Licence", "Master", "École de journalisme"},
		ScoreWeights: defaultWeights,
	},

	// Design & Créatif
	{
		ID:       "ux-designer",
		Title:    "UX/UI Designer",
		Category: types.CategoryDesign,
		Keywords: types.KeywordGroups{
			Required:  []string{"UX", "UI", "Design thinking"},
			Preferred: []string{"Figma", "Sketch", "Adobe XD", "Prototypage"},
			Technical: []string{"Wireframing", "User Research", "Personas", "A/B Testing", "Accessibilité"},
			Soft:      []string{"Empathie", "Créativité", "Communication"},
		},
		Experience:   types.ExperienceRange{Min: 2, Preferred: 4},
		Education:    []string{"Licence Design", "Master", "École d'art"},
		ScoreWeights: defaultWeights,
	},
	{
		ID:       "graphic-designer",
		Title:    "Designer Graphique",
		Category: types.CategoryDesign,
		Keywords: types.KeywordGroups{
			Required:  []string{"Adobe Creative Suite", "Design graphique", "Identité visuelle"},
			Preferred: []string{"Photoshop", "Illustrator", "InDesign", "Branding"},
			Technical: []string{"Print", "Web", "Typography", "Couleurs", "Layout"},
			Soft:      []string{"Créativité", "Sens esthétique", "Attention aux détails"},
		},
		Experience:   types.ExperienceRange{Min: 2, Preferred: 4},
		Education:    []string{"Licence Design", "École d'art", "BTS Design"},
		ScoreWeights: defaultWeights,
	},

	// Finance & Comptabilité
	{
		ID:       "comptable",
		Title:    "Comptable",
		Category: types.CategoryFinance,
		Keywords: types.KeywordGroups{
			Required:  []string{"Comptabilité", "Bilan", "Compte de résultat"},
			Preferred: []string{"SAP", "Sage", "Cegid", "Excel avancé"},
			Technical: []string{"TVA", "Fiscalité", "Audit", "Consolidation", "Reporting"},
			Soft:      []string{"Rigueur", "Précision", "Organisation"},
		},
		Experience:     types.ExperienceRange{Min: 2, Preferred: 5},
		Education:      []string{"BTS Comptabilité", "DCG", "DSCG", "Master Finance"},
		Certifications: []string{"DCG", "DSCG", "Expert-comptable"},
		ScoreWeights:   types.ScoreWeights{Keywords: 0.3, Experience: 0.3, Education: 0.3, Certifications: 0.1},
	},
	{
		ID:       "analyste-financier",
		Title:    "Analyste Financier",
		Category: types.CategoryFinance,
		Keywords: types.KeywordGroups{
			Required:  []string{"Analyse financière", "Modélisation", "Excel"},
			Preferred: []string{"Bloomberg", "Reuters", "VBA", "Python"},
			Technical: []string{"DCF", "LBO", "M&A", "Risk Management", "Derivatives"},
			Soft:      []string{"Analyse critique", "Synthèse", "Communication"},
		},
		Experience:     types.ExperienceRange{Min: 2, Preferred: 4},
		Education:      []string{"Master Finance", "École de commerce", "École d'ingénieur"},
		Certifications: []string{"CFA", "FRM", "CAIA"},
		ScoreWeights:   defaultWeights,
	},

	// Ressources Humaines
	{
		ID:       "rh-generaliste",
		Title:    "Responsable RH",
		Category: types.CategoryHR,
		Keywords: types.KeywordGroups{
			Required:  []string{"Recrutement", "Gestion RH", "Droit du travail"},
			Preferred: []string{"SIRH", "Formation", "Paie", "Relations sociales"},
			Technical: []string{"Entretiens", "Assessment", "HR Analytics", "Talent Management"},
			Soft:      []string{"Écoute", "Diplomatie", "Confidentialité"},
		},
		Experience:   types.ExperienceRange{Min: 3, Preferred: 6},
		Education:    []string{"Master RH", "École de commerce", "Droit social"},
		ScoreWeights: defaultWeights,
	},
	{
		ID:       "talent-acquisition",
		Title:    "Talent Acquisition Specialist",
		Category: types.CategoryHR,
		Keywords: types.KeywordGroups{
			Required:  []string{"Recrutement", "Sourcing", "Entretiens"},
			Preferred: []string{"LinkedIn Recruiter", "Boolean search", "Employer branding"},
			Technical: []string{"ATS", "HR Tech", "Candidate Experience", "Diversity & Inclusion"},
			Soft:      []string{"Communication", "Persuasion", "Empathie"},
		},
		Experience:   types.ExperienceRange{Min: 2, Preferred: 4},
		Education:    []string{"Licence RH", "Master", "École de commerce"},
		ScoreWeights: defaultWeights,
	},

	// Commercial & Ventes
	{
		ID:       "commercial-btob",
		Title:    "Commercial BtoB",
		Category: types.CategorySales,
		Keywords: types.KeywordGroups{
			Required:  []string{"Vente", "Prospection", "Négociation"},
			Preferred: []string{"CRM", "Salesforce", "Lead Generation", "Account Management"},
			Technical: []string{"Pipeline Management", "Sales Process", "KPI Vente", "Territory Management"},
			Soft:      []string{"Persuasion", "Persévérance", "Relationnel"},
		},
		Experience:   types.ExperienceRange{Min: 2, Preferred: 5},
		Education:    []string{"Licence", "École de commerce", "BTS Commercial"},
		ScoreWeights: types.ScoreWeights{Keywords: 0.4, Experience: 0.4, Education: 0.1, Certifications: 0.1},
	},
	{
		ID:       "business-developer",
		Title:    "Business Developer",
		Category: types.CategorySales,
		Keywords: types.KeywordGroups{
			Required:  []string{"Business Development", "Stratégie commerciale", "Partenariats"},
			Preferred: []string{"Startup", "Scale-up", "Growth", "Market Research"},
			Technical: []string{"Business Model", "Go-to-Market", "Partnership Management"},
			Soft:      []string{"Vision stratégique", "Initiative", "Adaptabilité"},
		},
		Experience:   types.ExperienceRange{Min: 3, Preferred: 6},
		Education:    []string{"Master", "École de commerce", "MBA"},
		ScoreWeights: defaultWeights,
	},

	// Management & Direction
	{
		ID:       "product-manager",
		Title:    "Product Manager",
		Category: types.CategoryManagement,
		Keywords: types.KeywordGroups{
			Required:  []string{"Product Management", "Roadmap", "User Stories"},
			Preferred: []string{"Agile", "Scrum", "Product-Market Fit", "Analytics"},
			Technical: []string{"Jira", "Confluence", "A/B Testing", "Data Analysis", "UX Research"},
			Soft:      []string{"Leadership", "Vision produit", "Communication"},
		},
		Experience:   types.ExperienceRange{Min: 3, Preferred: 6},
		Education:    []string{"Master", "École de commerce", "École d'ingénieur"},
		ScoreWeights: defaultWeights,
	},
	{
		ID:       "project-manager",
		Title:    "Chef de Projet",
		Category: types.CategoryManagement,
		Keywords: types.KeywordGroups{
			Required:  []string{"Gestion de projet", "Planning", "Budget"},
			Preferred: []string{"PMP", "Agile", "Scrum Master", "Kanban"},
			Technical: []string{"MS Project", "Gantt", "Risk Management", "Stakeholder Management"},
			Soft:      []string{"Organisation", "Leadership", "Communication"},
		},
		Experience:     types.ExperienceRange{Min: 3, Preferred: 6},
		Education:      []string{"Master", "École d'ingénieur", "École de commerce"},
		Certifications: []string{"PMP", "Scrum Master", "Prince2"},
		ScoreWeights:   types.ScoreWeights{Keywords: 0.3, Experience: 0.3, Education: 0.2, Certifications: 0.2},
	},

	// Santé & Médical
	{
		ID:       "infirmier",
		Title:    "Infirmier(ère)",
		Category: types.CategoryHealthcare,
		Keywords: types.KeywordGroups{
			Required:  []string{"Soins infirmiers", "Diplôme d'État", "Hygiène"},
			Preferred: []string{"Urgences", "Réanimation", "Bloc opératoire", "Gériatrie"},
			Technical: []string{"Protocoles de soins", "Pharmacologie", "Matériel médical"},
			Soft:      []string{"Empathie", "Résistance au stress", "Travail en équipe"},
		},
		Experience:     types.ExperienceRange{Min: 0, Preferred: 3},
		Education:      []string{"Diplôme d'État Infirmier"},
		Certifications: []string{"Spécialisations infirmières"},
		ScoreWeights:   types.ScoreWeights{Keywords: 0.3, Experience: 0.3, Education: 0.3, Certifications: 0.1},
	},

	// Éducation & Formation
	{
		ID:       "formateur",
		Title:    "Formateur",
		Category: types.CategoryEducation,
		Keywords: types.KeywordGroups{
			Required:  []string{"Formation", "Pédagogie", "Animation"},
			Preferred: []string{"E-learning", "LMS", "Ingénierie pédagogique", "Digital Learning"},
			Technical: []string{"SCORM", "Moodle", "Articulate", "Captivate", "Evaluation"},
			Soft:      []string{"Patience", "Communication", "Adaptabilité"},
		},
		Experience:   types.ExperienceRange{Min: 2, Preferred: 5},
		Education:    []string{"Master", "Licence", "Certification formateur"},
		ScoreWeights: defaultWeights,
	},

	// Juridique
	{
		ID:       "juriste",
		Title:    "Juriste d'Entreprise",
		Category: types.CategoryLegal,
		Keywords: types.KeywordGroups{
			Required:  []string{"Droit", "Contrats", "Juridique"},
			Preferred: []string{"Droit des affaires", "RGPD", "Propriété intellectuelle"},
			Technical: []string{"Rédaction juridique", "Veille juridique", "Compliance", "Litigation"},
			Soft:      []string{"Rigueur", "Analyse", "Négociation"},
		},
		Experience:     types.ExperienceRange{Min: 2, Preferred: 5},
		Education:      []string{"Master Droit", "École de droit", "DJCE"},
		Certifications: []string{"Barreau", "Spécialisations juridiques"},
		ScoreWeights:   defaultWeights,
	},

	// Opérations & Logistique
	{
		ID:       "supply-chain",
		Title:    "Responsable Supply Chain",
		Category: types.CategoryOperations,
		Keywords: types.KeywordGroups{
			Required:  []string{"Supply Chain", "Logistique", "Approvisionnement"},
			Preferred: []string{"SAP", "ERP", "Lean", "Six Sigma"},
			Technical: []string{"Forecasting", "Inventory Management", "Procurement", "Distribution"},
			Soft:      []string{"Organisation", "Analyse", "Négociation"},
		},
		Experience:     types.ExperienceRange{Min: 3, Preferred: 6},
		Education:      []string{"Master", "École d'ingénieur", "École de commerce"},
		Certifications: []string{"APICS", "CPIM", "Six Sigma"},
		ScoreWeights:   defaultWeights,
	},

	// Conseil & Stratégie
	{
		ID:       "consultant",
		Title:    "Consultant",
		Category: types.CategoryConsulting,
		Keywords: types.KeywordGroups{
			Required:  []string{"Conseil", "Analyse", "Stratégie"},
			Preferred: []string{"Management", "Transformation", "Change Management"},
			Technical: []string{"Framework", "Méthodologie", "Benchmarking", "Due Diligence"},
			Soft:      []string{"Communication", "Adaptabilité", "Synthèse"},
		},
		Experience:   types.ExperienceRange{Min: 2, Preferred: 5},
		Education:    []string{"Master", "École de commerce", "École d'ingénieur"},
		ScoreWeights: defaultWeights,
	},
}
