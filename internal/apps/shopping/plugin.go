package shopping

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/miambidi/miambidi-backend/internal/config"
	"github.com/miambidi/miambidi-backend/internal/locale"
)

type ShoppingPlugin struct {
	msgs *locale.Catalog
}

func New(msgs *locale.Catalog) *ShoppingPlugin {
	return &ShoppingPlugin{msgs: msgs}
}

func (p *ShoppingPlugin) ID() string { return "shopping" }

func (p *ShoppingPlugin) Models() []interface{} {
	return []interface{}{
		&ShoppingList{},
	}
}

func (p *ShoppingPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, _ *config.Config) {
	svc := NewShoppingService(db)
	h := NewShoppingHandler(svc, p.msgs)

	router.Post("/shopping-lists", h.Generate)
	router.Get("/shopping-lists", h.List)
	router.Get("/shopping-lists/:id", h.Get)
	router.Put("/shopping-lists/:id/items/toggle", h.ToggleItem)
	router.Delete("/shopping-lists/:id", h.Delete)
}
