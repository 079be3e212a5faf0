package mealplan

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/miambidi/miambidi-backend/internal/config"
	"github.com/miambidi/miambidi-backend/internal/locale"
)

type MealPlanPlugin struct {
	msgs *locale.Catalog
}

func New(msgs *locale.Catalog) *MealPlanPlugin {
	return &MealPlanPlugin{msgs: msgs}
}

func (p *MealPlanPlugin) ID() string { return "mealplan" }

func (p *MealPlanPlugin) Models() []interface{} {
	return []interface{}{
		&MealPlanEntry{},
	}
}

func (p *MealPlanPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, _ *config.Config) {
	svc := NewPlanService(db)
	h := NewPlanHandler(svc, p.msgs)

	router.Get("/mealplan/week", h.Week)
	router.Get("/mealplan/range", h.Range)
	router.Post("/mealplan/meals", h.PlanMeal)
	router.Delete("/mealplan/meals", h.RemoveMeal)
	router.Delete("/mealplan", h.ClearAll)
}
