// Package shopping turns a slice of planned meals into a consolidated,
// categorized shopping list. Aggregation is pure and order-independent:
// quantities merge by normalized ingredient name AND unit, so recomputing
// from the same plan always yields the same list. Same name with a different
// unit stays a separate line; no unit conversion is attempted.
package shopping

import (
	"sort"

	"github.com/google/uuid"

	"github.com/miambidi/miambidi-backend/internal/apps/mealplan"
	"github.com/miambidi/miambidi-backend/internal/apps/recipes"
	"github.com/miambidi/miambidi-backend/internal/textutil"
)

// FallbackCategory buckets ingredients whose name resolves to no catalog
// category.
const FallbackCategory = "Autres"

// categoryOrder is the fixed display order: fresh produce and tubers first,
// pantry and spices last. Unrecognized categories are appended after these,
// alphabetically, with Autres always last.
var categoryOrder = []string{
	"Légumes",
	"Fruits",
	"Tubercules & Plantains",
	"Viandes & Poissons",
	"Produits laitiers",
	"Céréales & Féculents",
	"Boulangerie",
	"Boissons",
	"Épicerie",
	"Épices & Condiments",
}

// Occurrence is a recipe plus the number of plan cells it fills within the
// selected range. A recipe planned for Monday lunch and Wednesday dinner has
// multiplicity 2.
type Occurrence struct {
	Recipe       recipes.Recipe
	Multiplicity int
}

// Item is one merged shopping-list line.
type Item struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	TotalQuantity float64 `json:"total_quantity"`
	Unit          string  `json:"unit"`
	Purchased     bool    `json:"purchased"`
}

// CategoryGroup is the display grouping of items under one category.
type CategoryGroup struct {
	Category string `json:"category"`
	Items    []Item `json:"items"`
}

// CollectOccurrences counts, per recipe id, how many cells of the plan slice
// reference it.
func CollectOccurrences(meals map[mealplan.Key]mealplan.Entry) []Occurrence {
	counts := make(map[uuid.UUID]*Occurrence)
	for _, e := range meals {
		if occ, ok := counts[e.Recipe.ID]; ok {
			occ.Multiplicity++
			continue
		}
		counts[e.Recipe.ID] = &Occurrence{Recipe: e.Recipe, Multiplicity: 1}
	}

	out := make([]Occurrence, 0, len(counts))
	for _, occ := range counts {
		out = append(out, *occ)
	}
	// Deterministic order for callers that log or snapshot the occurrences;
	// Aggregate itself is insensitive to it.
	sort.Slice(out, func(i, j int) bool {
		return out[i].Recipe.ID.String() < out[j].Recipe.ID.String()
	})
	return out
}

type mergeKey struct {
	name string
	unit string
}

// Aggregate merges the ingredient lines of every occurrence into categorized
// line items. categories maps normalized ingredient names to catalog
// categories; unresolved names fall back to Autres. An empty plan yields an
// empty list.
func Aggregate(occurrences []Occurrence, categories map[string]string) []CategoryGroup {
	type merged struct {
		displayName string
		quantity    float64
		unit        string
	}
	lines := make(map[mergeKey]*merged)

	for _, occ := range occurrences {
		for _, line := range occ.Recipe.Lines() {
			key := mergeKey{name: textutil.Normalize(line.Name), unit: line.Unit}
			m, ok := lines[key]
			if !ok {
				m = &merged{displayName: line.Name, unit: line.Unit}
				lines[key] = m
			}
			m.quantity += line.Quantity * float64(occ.Multiplicity)
			// Keep the lexicographically smallest spelling so the display
			// name does not depend on iteration order.
			if line.Name < m.displayName {
				m.displayName = line.Name
			}
		}
	}

	grouped := make(map[string][]Item)
	for key, m := range lines {
		category, ok := categories[key.name]
		if !ok || category == "" {
			category = FallbackCategory
		}
		grouped[category] = append(grouped[category], Item{
			Name:          m.displayName,
			Category:      category,
			TotalQuantity: m.quantity,
			Unit:          m.unit,
		})
	}

	out := make([]CategoryGroup, 0, len(grouped))
	for _, category := range orderedCategories(grouped) {
		items := grouped[category]
		sort.Slice(items, func(i, j int) bool {
			if items[i].Name != items[j].Name {
				return items[i].Name < items[j].Name
			}
			return items[i].Unit < items[j].Unit
		})
		out = append(out, CategoryGroup{Category: category, Items: items})
	}
	return out
}

// orderedCategories returns the categories present in grouped, preferred
// order first, then unknown ones alphabetically, Autres always last.
func orderedCategories(grouped map[string][]Item) []string {
	var out []string
	seen := make(map[string]bool)

	for _, category := range categoryOrder {
		if _, ok := grouped[category]; ok {
			out = append(out, category)
			seen[category] = true
		}
	}

	var rest []string
	for category := range grouped {
		if !seen[category] && category != FallbackCategory {
			rest = append(rest, category)
		}
	}
	sort.Strings(rest)
	out = append(out, rest...)

	if _, ok := grouped[FallbackCategory]; ok {
		out = append(out, FallbackCategory)
	}
	return out
}
