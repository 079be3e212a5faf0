package recipes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/miambidi/miambidi-backend/internal/config"
	"github.com/miambidi/miambidi-backend/internal/locale"
)

type RecipesPlugin struct {
	msgs *locale.Catalog
}

func New(msgs *locale.Catalog) *RecipesPlugin {
	return &RecipesPlugin{msgs: msgs}
}

func (p *RecipesPlugin) ID() string { return "recipes" }

func (p *RecipesPlugin) Models() []interface{} {
	return []interface{}{
		&Recipe{},
	}
}

func (p *RecipesPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, _ *config.Config) {
	svc := NewRecipeService(db)
	h := NewRecipeHandler(svc, p.msgs)

	router.Get("/recipes", h.List)
	router.Get("/recipes/:id", h.Get)
	router.Post("/recipes", h.Create)
	router.Put("/recipes/:id", h.Update)
	router.Delete("/recipes/:id", h.Delete)
	router.Post("/recipes/:id/import", h.Import)
}
