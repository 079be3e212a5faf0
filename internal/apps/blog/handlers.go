package blog

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/miambidi/miambidi-backend/internal/apperr"
	"github.com/miambidi/miambidi-backend/internal/family"
	"github.com/miambidi/miambidi-backend/internal/locale"
)

type BlogHandler struct {
	service *BlogService
	msgs    *locale.Catalog
}

func NewBlogHandler(service *BlogService, msgs *locale.Catalog) *BlogHandler {
	return &BlogHandler{service: service, msgs: msgs}
}

// --- Request DTOs ---

type CommentRequest struct {
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
}

func (h *BlogHandler) fail(c *fiber.Ctx, err error) error {
	code := apperr.CodeOf(err)
	if code == "" {
		code = "internal"
	}
	return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{
		"error":   true,
		"code":    code,
		"message": h.msgs.Message(code),
	})
}

func (h *BlogHandler) Create(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	var in PostInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	post, err := h.service.Create(actor, in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *BlogHandler) Feed(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	posts, total, err := h.service.Feed(actor, c.Query("tag"), page, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts, "total": total, "page": page, "limit": limit})
}

func (h *BlogHandler) Mine(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	posts, total, err := h.service.Mine(actor, page, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts, "total": total, "page": page, "limit": limit})
}

func (h *BlogHandler) Get(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	post, err := h.service.Get(actor, id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(post)
}

func (h *BlogHandler) Update(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	var in PostInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	post, err := h.service.Update(actor, id, in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(post)
}

func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	if err := h.service.Delete(actor, id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Article supprimé"})
}

func (h *BlogHandler) ToggleLike(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	liked, err := h.service.ToggleLike(actor, id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"liked": liked})
}

func (h *BlogHandler) AddComment(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	comment, err := h.service.AddComment(actor, id, req.AuthorName, req.Content)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *BlogHandler) Comments(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 50)
	comments, err := h.service.Comments(actor, id, page, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"comments": comments, "count": len(comments)})
}

func (h *BlogHandler) DeleteComment(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	id, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	if err := h.service.DeleteComment(actor, id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Commentaire supprimé"})
}
