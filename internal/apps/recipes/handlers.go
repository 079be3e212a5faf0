package recipes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/miambidi/miambidi-backend/internal/apperr"
	"github.com/miambidi/miambidi-backend/internal/family"
	"github.com/miambidi/miambidi-backend/internal/locale"
	"github.com/miambidi/miambidi-backend/internal/metrics"
)

type RecipeHandler struct {
	service *RecipeService
	msgs    *locale.Catalog
}

func NewRecipeHandler(service *RecipeService, msgs *locale.Catalog) *RecipeHandler {
	return &RecipeHandler{service: service, msgs: msgs}
}

// --- Request DTOs ---

type RecipeRequest struct {
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Instructions string           `json:"instructions"`
	Servings     int              `json:"servings"`
	PrepTimeMin  int              `json:"prep_time_min"`
	Ingredients  []IngredientLine `json:"ingredients"`
	Visibility   string           `json:"visibility"`
}

func (r RecipeRequest) input() RecipeInput {
	vis := r.Visibility
	if vis == "" {
		vis = "family"
	}
	return RecipeInput{
		Name:         r.Name,
		Description:  r.Description,
		Instructions: r.Instructions,
		Servings:     r.Servings,
		PrepTimeMin:  r.PrepTimeMin,
		Ingredients:  r.Ingredients,
		Visibility:   vis,
	}
}

func (h *RecipeHandler) fail(c *fiber.Ctx, err error) error {
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

func (h *RecipeHandler) Create(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	var req RecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	rec, err := h.service.Create(actor, req.input())
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

func (h *RecipeHandler) Get(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	rec, err := h.service.Get(actor, id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(rec)
}

func (h *RecipeHandler) List(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	list, total, err := h.service.List(actor, c.Query("search"), page, limit)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"recipes": list,
			"pagination": fiber.Map{
				"page":        page,
				"limit":       limit,
				"total":       total,
				"total_pages": (total + int64(limit) - 1) / int64(limit),
			},
		},
	})
}

func (h *RecipeHandler) Update(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	var req RecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	rec, err := h.service.Update(actor, id, req.input())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(rec)
}

func (h *RecipeHandler) Delete(c *fiber.Ctx) error {
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
	return c.JSON(fiber.Map{"message": "Recette supprimée"})
}

func (h *RecipeHandler) Import(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	rec, err := h.service.Import(actor, id)
	if err != nil {
		return h.fail(c, err)
	}

	metrics.RecipesImported.Inc()
	return c.Status(fiber.StatusCreated).JSON(rec)
}
