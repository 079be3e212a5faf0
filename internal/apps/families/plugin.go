package families

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/miambidi/miambidi-backend/internal/config"
	"github.com/miambidi/miambidi-backend/internal/locale"
)

type FamiliesPlugin struct {
	msgs *locale.Catalog
}

func New(msgs *locale.Catalog) *FamiliesPlugin {
	return &FamiliesPlugin{msgs: msgs}
}

func (p *FamiliesPlugin) ID() string { return "families" }

func (p *FamiliesPlugin) Models() []interface{} {
	return []interface{}{
		&Family{},
		&FamilyMember{},
	}
}

func (p *FamiliesPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, _ *config.Config) {
	svc := NewFamilyService(db)
	h := NewFamilyHandler(svc, p.msgs)

	router.Post("/families", h.Create)
	router.Get("/families/mine", h.GetMine)
	router.Put("/families/mine", h.Rename)
	router.Post("/families/mine/members", h.AddMember)
	router.Delete("/families/mine/members/:id", h.RemoveMember)
	router.Put("/families/mine/members/:id/role", h.ChangeRole)
	router.Put("/families/mine/members/:id", h.UpdateMember)
}
