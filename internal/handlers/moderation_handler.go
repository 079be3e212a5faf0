package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/miambidi/miambidi-backend/internal/dto"
	"github.com/miambidi/miambidi-backend/internal/family"
	"github.com/miambidi/miambidi-backend/internal/locale"
	"github.com/miambidi/miambidi-backend/internal/services"
)

type ModerationHandler struct {
	moderationService *services.ModerationService
	msgs              *locale.Catalog
}

func NewModerationHandler(moderationService *services.ModerationService, msgs *locale.Catalog) *ModerationHandler {
	return &ModerationHandler{moderationService: moderationService, msgs: msgs}
}

func (h *ModerationHandler) CreateReport(c *fiber.Ctx) error {
	userID, err := family.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: h.msgs.Message("unauthorized"),
		})
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: h.msgs.Message("invalid"),
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: h.msgs.Message("invalid"),
		})
	}

	report, err := h.moderationService.CreateReport(userID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: h.msgs.Message("invalid"),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(report)
}

// CheckContent runs the content filter without storing anything, so the SPA
// can warn before submission.
func (h *ModerationHandler) CheckContent(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: h.msgs.Message("invalid"),
		})
	}

	ok, reason := h.moderationService.FilterContent(req.Text)
	resp := fiber.Map{"allowed": ok}
	if !ok {
		resp["reason"] = reason
		resp["message"] = h.moderationService.GetRejectionMessage(reason)
	}
	return c.JSON(resp)
}

func (h *ModerationHandler) ListReports(c *fiber.Ctx) error {
	status := c.Query("status", "")
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	if limit > 100 {
		limit = 100
	}

	reports, total, err := h.moderationService.ListReports(status, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: h.msgs.Message("internal"),
		})
	}

	return c.JSON(fiber.Map{
		"reports": reports,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

func (h *ModerationHandler) ActionReport(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: h.msgs.Message("invalid"),
		})
	}

	var req dto.ActionReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: h.msgs.Message("invalid"),
		})
	}

	if err := h.moderationService.ActionReport(reportID, &req); err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: h.msgs.Message("report_not_found"),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: h.msgs.Message("invalid"),
		})
	}

	return c.JSON(fiber.Map{"message": "Signalement mis à jour"})
}
