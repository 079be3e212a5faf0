package mealplan

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/miambidi/miambidi-backend/internal/apperr"
	"github.com/miambidi/miambidi-backend/internal/family"
	"github.com/miambidi/miambidi-backend/internal/locale"
	"github.com/miambidi/miambidi-backend/internal/metrics"
)

type PlanHandler struct {
	service *PlanService
	msgs    *locale.Catalog
}

func NewPlanHandler(service *PlanService, msgs *locale.Catalog) *PlanHandler {
	return &PlanHandler{service: service, msgs: msgs}
}

// --- Request DTOs ---

type PlanMealRequest struct {
	DateKey  string    `json:"date_key"`
	Slot     string    `json:"slot"`
	RecipeID uuid.UUID `json:"recipe_id"`
}

type RemoveMealRequest struct {
	DateKey string `json:"date_key"`
	Slot    string `json:"slot"`
}

func (h *PlanHandler) fail(c *fiber.Ctx, err error) error {
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

func (h *PlanHandler) PlanMeal(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	var req PlanMealRequest
	if err := c.BodyParser(&req); err != nil || req.RecipeID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	entry, err := h.service.PlanMeal(actor, req.DateKey, req.Slot, req.RecipeID)
	if err != nil {
		return h.fail(c, err)
	}

	metrics.MealsPlanned.Inc()
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *PlanHandler) RemoveMeal(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	var req RemoveMealRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	if err := h.service.RemoveMeal(actor, req.DateKey, req.Slot); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Repas retiré du planning"})
}

func (h *PlanHandler) ClearAll(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	if err := h.service.ClearAll(actor); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Planning vidé"})
}

// Week serves the calendar view. ?date= anchors the week; ?offset= moves the
// cursor by whole weeks from that anchor, mirroring the SPA's previous/next
// navigation.
func (h *PlanHandler) Week(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	anchor := time.Now()
	if raw := c.Query("date"); raw != "" {
		anchor, err = time.Parse(DateKeyLayout, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
		}
	}
	anchor = anchor.AddDate(0, 0, 7*c.QueryInt("offset", 0))

	view, err := h.service.Week(actor, anchor)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(view)
}

// Range serves all entries between ?start= and ?end= (inclusive).
func (h *PlanHandler) Range(c *fiber.Ctx) error {
	actor, err := family.GetActor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	start, err1 := time.Parse(DateKeyLayout, c.Query("start"))
	end, err2 := time.Parse(DateKeyLayout, c.Query("end"))
	if err1 != nil || err2 != nil || end.Before(start) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	store, err := h.service.LoadRange(actor, start, end)
	if err != nil {
		return h.fail(c, err)
	}

	meals := []WeekViewMeal{}
	for k, e := range store.MealsForRange(start, end) {
		meals = append(meals, WeekViewMeal{
			DateKey:   k.DateKey,
			Slot:      k.Slot,
			RecipeID:  e.Recipe.ID,
			PlannedAt: e.PlannedAt,
		})
	}
	return c.JSON(fiber.Map{"meals": meals, "count": len(meals)})
}
