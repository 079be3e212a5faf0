package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Domain counters exposed on /metrics alongside the default Go and process
// collectors.
var (
	MealsPlanned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "miambidi_meals_planned_total",
		Help: "Number of meals assigned to calendar slots.",
	})

	ShoppingListsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "miambidi_shopping_lists_generated_total",
		Help: "Number of shopping lists generated from meal plans.",
	})

	RecipesImported = promauto.NewCounter(prometheus.CounterOpts{
		Name: "miambidi_recipes_imported_total",
		Help: "Number of recipes imported across families.",
	})
)
