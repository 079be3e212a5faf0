package ingredients

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/miambidi/miambidi-backend/internal/apperr"
	"github.com/miambidi/miambidi-backend/internal/family"
	"github.com/miambidi/miambidi-backend/internal/locale"
)

type IngredientHandler struct {
	service *IngredientService
	msgs    *locale.Catalog
}

func NewIngredientHandler(service *IngredientService, msgs *locale.Catalog) *IngredientHandler {
	return &IngredientHandler{service: service, msgs: msgs}
}

// --- Request DTOs ---

type IngredientRequest struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Unit       string  `json:"unit"`
	Price      float64 `json:"price"`
	Visibility string  `json:"visibility"`
}

func (r IngredientRequest) input() IngredientInput {
	vis := r.Visibility
	if vis == "" {
		vis = "family"
	}
	return IngredientInput{
		Name:       r.Name,
		Category:   r.Category,
		Unit:       r.Unit,
		Price:      r.Price,
		Visibility: vis,
	}
}

func (h *IngredientHandler) fail(c *fiber.Ctx, err error) error {
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

func (h *IngredientHandler) Create(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	var req IngredientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	ing, err := h.service.Create(actor, req.input())
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ing)
}

func (h *IngredientHandler) Get(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	ing, err := h.service.Get(actor, id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(ing)
}

func (h *IngredientHandler) List(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	list, err := h.service.List(actor, c.Query("category"), c.Query("search"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"ingredients": list, "count": len(list)})
}

func (h *IngredientHandler) Update(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	var req IngredientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	ing, err := h.service.Update(actor, id, req.input())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(ing)
}

func (h *IngredientHandler) Delete(c *fiber.Ctx) error {
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
	return c.JSON(fiber.Map{"message": "Ingrédient supprimé"})
}
