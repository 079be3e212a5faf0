package shopping

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/miambidi/miambidi-backend/internal/apperr"
	"github.com/miambidi/miambidi-backend/internal/apps/mealplan"
	"github.com/miambidi/miambidi-backend/internal/family"
	"github.com/miambidi/miambidi-backend/internal/locale"
	"github.com/miambidi/miambidi-backend/internal/metrics"
)

type ShoppingHandler struct {
	service *ShoppingService
	msgs    *locale.Catalog
}

func NewShoppingHandler(service *ShoppingService, msgs *locale.Catalog) *ShoppingHandler {
	return &ShoppingHandler{service: service, msgs: msgs}
}

// --- Request DTOs ---

type GenerateRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type ToggleItemRequest struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

func (h *ShoppingHandler) fail(c *fiber.Ctx, err error) error {
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

func (h *ShoppingHandler) Generate(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	start, err1 := time.Parse(mealplan.DateKeyLayout, req.StartDate)
	end, err2 := time.Parse(mealplan.DateKeyLayout, req.EndDate)
	if err1 != nil || err2 != nil || end.Before(start) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	list, err := h.service.Generate(actor, req.Name, start, end)
	if err != nil {
		return h.fail(c, err)
	}

	metrics.ShoppingListsGenerated.Inc()
	return c.Status(fiber.StatusCreated).JSON(list)
}

func (h *ShoppingHandler) List(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	lists, err := h.service.List(actor)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"lists": lists, "count": len(lists)})
}

func (h *ShoppingHandler) Get(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	list, err := h.service.Get(actor, id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(list)
}

func (h *ShoppingHandler) ToggleItem(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	var req ToggleItemRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	list, err := h.service.ToggleItem(actor, id, req.Name, req.Unit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(list)
}

func (h *ShoppingHandler) Delete(c *fiber.Ctx) error {
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
	return c.JSON(fiber.Map{"message": "Liste de courses supprimée"})
}
