package shopping

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miambidi/miambidi-backend/internal/apps/mealplan"
	"github.com/miambidi/miambidi-backend/internal/apps/recipes"
)

func recipeWithLines(name string, lines []recipes.IngredientLine) recipes.Recipe {
	payload, _ := json.Marshal(lines)
	return recipes.Recipe{ID: uuid.New(), Name: name, Ingredients: payload}
}

func findItem(groups []CategoryGroup, name, unit string) (Item, bool) {
	for _, g := range groups {
		for _, it := range g.Items {
			if it.Name == name && it.Unit == unit {
				return it, true
			}
		}
	}
	return Item{}, false
}

func TestCollectOccurrencesCountsCells(t *testing.T) {
	ndole := recipeWithLines("Ndolé", nil)
	eru := recipeWithLines("Eru", nil)

	meals := map[mealplan.Key]mealplan.Entry{
		{DateKey: "2026-08-24", Slot: mealplan.SlotLunch}:  {Recipe: ndole},
		{DateKey: "2026-08-26", Slot: mealplan.SlotDinner}: {Recipe: ndole},
		{DateKey: "2026-08-25", Slot: mealplan.SlotLunch}:  {Recipe: eru},
	}

	occ := CollectOccurrences(meals)
	require.Len(t, occ, 2)

	byID := map[uuid.UUID]int{}
	for _, o := range occ {
		byID[o.Recipe.ID] = o.Multiplicity
	}
	assert.Equal(t, 2, byID[ndole.ID])
	assert.Equal(t, 1, byID[eru.ID])
}

func TestAggregateScalesByMultiplicity(t *testing.T) {
	rec := recipeWithLines("Ndolé", []recipes.IngredientLine{
		{Name: "Arachides", Quantity: 250, Unit: "g"},
		{Name: "Crevettes", Quantity: 200, Unit: "g"},
	})

	groups := Aggregate([]Occurrence{{Recipe: rec, Multiplicity: 3}}, nil)

	arachides, ok := findItem(groups, "Arachides", "g")
	require.True(t, ok)
	assert.Equal(t, 750.0, arachides.TotalQuantity)

	crevettes, ok := findItem(groups, "Crevettes", "g")
	require.True(t, ok)
	assert.Equal(t, 600.0, crevettes.TotalQuantity)
}

func TestAggregateMergesAccentAndCaseVariants(t *testing.T) {
	a := recipeWithLines("Sauce tomate", []recipes.IngredientLine{
		{Name: "Tomate", Quantity: 3, Unit: "pièce"},
	})
	b := recipeWithLines("Poulet rôti", []recipes.IngredientLine{
		{Name: "TOMATE", Quantity: 2, Unit: "pièce"},
	})

	groups := Aggregate([]Occurrence{
		{Recipe: a, Multiplicity: 1},
		{Recipe: b, Multiplicity: 1},
	}, nil)

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Items, 1)
	assert.Equal(t, 5.0, groups[0].Items[0].TotalQuantity)
	// Display name is the lexicographically smallest spelling seen.
	assert.Equal(t, "TOMATE", groups[0].Items[0].Name)
}

func TestAggregateKeepsDifferentUnitsSeparate(t *testing.T) {
	rec := recipeWithLines("Gâteau", []recipes.IngredientLine{
		{Name: "Farine", Quantity: 500, Unit: "g"},
		{Name: "Farine", Quantity: 2, Unit: "tasse"},
	})

	groups := Aggregate([]Occurrence{{Recipe: rec, Multiplicity: 1}}, nil)

	grams, ok := findItem(groups, "Farine", "g")
	require.True(t, ok)
	assert.Equal(t, 500.0, grams.TotalQuantity)

	cups, ok := findItem(groups, "Farine", "tasse")
	require.True(t, ok)
	assert.Equal(t, 2.0, cups.TotalQuantity)
}

func TestAggregateCategoriesAndOrder(t *testing.T) {
	rec := recipeWithLines("Eru", []recipes.IngredientLine{
		{Name: "Piment", Quantity: 2, Unit: "pièce"},
		{Name: "Macabo", Quantity: 1, Unit: "kg"},
		{Name: "Feuilles d'eru", Quantity: 500, Unit: "g"},
		{Name: "Mystère", Quantity: 1, Unit: "pièce"},
	})
	categories := map[string]string{
		"piment":         "Épices & Condiments",
		"macabo":         "Tubercules & Plantains",
		"feuilles d'eru": "Légumes",
	}

	groups := Aggregate([]Occurrence{{Recipe: rec, Multiplicity: 1}}, categories)

	var order []string
	for _, g := range groups {
		order = append(order, g.Category)
	}
	// Produce and tubers first, spices last among known, Autres at the end.
	assert.Equal(t, []string{
		"Légumes",
		"Tubercules & Plantains",
		"Épices & Condiments",
		FallbackCategory,
	}, order)

	mystere, ok := findItem(groups, "Mystère", "pièce")
	require.True(t, ok)
	assert.Equal(t, FallbackCategory, mystere.Category)
}

func TestAggregateEmptyPlan(t *testing.T) {
	assert.Empty(t, Aggregate(nil, nil))
	assert.Empty(t, Aggregate(CollectOccurrences(nil), map[string]string{"sel": "Épicerie"}))
}

func TestAggregateOrderIndependent(t *testing.T) {
	a := recipeWithLines("Ndolé", []recipes.IngredientLine{
		{Name: "Arachides", Quantity: 250, Unit: "g"},
		{Name: "Tomate", Quantity: 2, Unit: "pièce"},
	})
	b := recipeWithLines("Sauce", []recipes.IngredientLine{
		{Name: "tomate", Quantity: 4, Unit: "pièce"},
		{Name: "Sel", Quantity: 1, Unit: "c. à café"},
	})
	categories := map[string]string{"tomate": "Légumes", "sel": "Épicerie"}

	forward := Aggregate([]Occurrence{
		{Recipe: a, Multiplicity: 2},
		{Recipe: b, Multiplicity: 1},
	}, categories)
	reversed := Aggregate([]Occurrence{
		{Recipe: b, Multiplicity: 1},
		{Recipe: a, Multiplicity: 2},
	}, categories)

	assert.Equal(t, forward, reversed)
}
