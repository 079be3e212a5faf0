package ingredients

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/miambidi/miambidi-backend/internal/config"
	"github.com/miambidi/miambidi-backend/internal/locale"
)

type IngredientsPlugin struct {
	msgs *locale.Catalog
}

func New(msgs *locale.Catalog) *IngredientsPlugin {
	return &IngredientsPlugin{msgs: msgs}
}

func (p *IngredientsPlugin) ID() string { return "ingredients" }

func (p *IngredientsPlugin) Models() []interface{} {
	return []interface{}{
		&Ingredient{},
	}
}

func (p *IngredientsPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, _ *config.Config) {
	svc := NewIngredientService(db)
	h := NewIngredientHandler(svc, p.msgs)

	router.Get("/ingredients", h.List)
	router.Get("/ingredients/:id", h.Get)
	router.Post("/ingredients", h.Create)
	router.Put("/ingredients/:id", h.Update)
	router.Delete("/ingredients/:id", h.Delete)
}
