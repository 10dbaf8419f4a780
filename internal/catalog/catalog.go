// Package catalog provides the static registry of job positions.
//
// The registry is built once at package init and never mutated, so it is safe
// for unsynchronized concurrent reads.
package catalog

import (
	"sort"

	"github.com/jonathan/cv-matcher/internal/types"
)

// categoryLabels maps categories to their French display labels
var categoryLabels = map[types.Category]string{
	types.CategoryTech:       "Technologie",
	types.CategoryMarketing:  "Marketing & Communication",
	types.CategoryFinance:    "Finance & Comptabilité",
	types.CategoryHR:         "Ressources Humaines",
	types.CategorySales:      "Commercial & Ventes",
	types.CategoryDesign:     "Design & Créatif",
	types.CategoryManagement: "Management & Direction",
	types.CategoryHealthcare: "Santé & Médical",
	types.CategoryEducation:  "Éducation & Formation",
	types.CategoryLegal:      "Juridique",
	types.CategoryOperations: "Opérations & Logistique",
	types.CategoryConsulting: "Conseil & Stratégie",
}

var byID = indexPositions(positions)

func indexPositions(list []types.JobPosition) map[string]*types.JobPosition {
	index := make(map[string]*types.JobPosition, len(list))
	for i := range list {
		index[list[i].ID] = &list[i]
	}
	return index
}

// Get returns the position with the given id.
// Returns a *NotFoundError if the id is unknown; it never substitutes a default.
func Get(id string) (*types.JobPosition, error) {
	position, ok := byID[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return position, nil
}

// All returns every position in catalog order.
// The returned slice is a copy; the positions themselves share keyword slices with the registry
// and must be treated as read-only.
func All() []types.JobPosition {
	out := make([]types.JobPosition, len(positions))
	copy(out, positions)
	return out
}

// ByCategory returns the positions of a category in catalog order
func ByCategory(category types.Category) []types.JobPosition {
	out := make([]types.JobPosition, 0)
	for _, p := range positions {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// CategoryLabel returns the display label of a category, or the raw value if unknown
func CategoryLabel(category types.Category) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return string(category)
}

// CategoryInfo pairs a category with its label and position count
type CategoryInfo struct {
	Category  types.Category `json:"category"`
	Label     string         `json:"label"`
	Positions int            `json:"positions"`
}

// Categories lists all categories with their labels, in display order
func Categories() []CategoryInfo {
	counts := make(map[types.Category]int)
	for _, p := range positions {
		counts[p.Category]++
	}

	out := make([]CategoryInfo, 0, len(types.AllCategories))
	for _, c := range types.AllCategories {
		out = append(out, CategoryInfo{Category: c, Label: CategoryLabel(c), Positions: counts[c]})
	}
	return out
}

// IDs returns every position id sorted alphabetically
func IDs() []string {
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
