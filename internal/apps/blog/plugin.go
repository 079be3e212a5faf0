package blog

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/miambidi/miambidi-backend/internal/config"
	"github.com/miambidi/miambidi-backend/internal/locale"
)

type BlogPlugin struct {
	msgs   *locale.Catalog
	filter ContentFilter
}

func New(msgs *locale.Catalog, filter ContentFilter) *BlogPlugin {
	return &BlogPlugin{msgs: msgs, filter: filter}
}

func (p *BlogPlugin) ID() string { return "blog" }

func (p *BlogPlugin) Models() []interface{} {
	return []interface{}{
		&BlogPost{},
		&BlogLike{},
		&BlogComment{},
	}
}

func (p *BlogPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, _ *config.Config) {
	svc := NewBlogService(db, p.filter)
	h := NewBlogHandler(svc, p.msgs)

	router.Get("/blog/posts", h.Feed)
	router.Get("/blog/posts/mine", h.Mine)
	router.Post("/blog/posts", h.Create)
	router.Get("/blog/posts/:id", h.Get)
	router.Put("/blog/posts/:id", h.Update)
	router.Delete("/blog/posts/:id", h.Delete)
	router.Post("/blog/posts/:id/like", h.ToggleLike)
	router.Get("/blog/posts/:id/comments", h.Comments)
	router.Post("/blog/posts/:id/comments", h.AddComment)
	router.Delete("/blog/comments/:commentId", h.DeleteComment)
}
