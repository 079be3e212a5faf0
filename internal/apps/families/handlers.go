package families

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/miambidi/miambidi-backend/internal/apperr"
	"github.com/miambidi/miambidi-backend/internal/family"
	"github.com/miambidi/miambidi-backend/internal/locale"
)

type FamilyHandler struct {
	service *FamilyService
	msgs    *locale.Catalog
}

func NewFamilyHandler(service *FamilyService, msgs *locale.Catalog) *FamilyHandler {
	return &FamilyHandler{service: service, msgs: msgs}
}

// --- Request DTOs ---

type CreateFamilyRequest struct {
	Name string `json:"name"`
}

type AddMemberRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

type ChangeRoleRequest struct {
	Role string `json:"role"`
}

type UpdateMemberRequest struct {
	DisplayName *string      `json:"display_name"`
	Age         *int         `json:"age"`
	Preferences *Preferences `json:"preferences"`
}

func (h *FamilyHandler) fail(c *fiber.Ctx, err error) error {
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

func (h *FamilyHandler) Create(c *fiber.Ctx) error {
	userID, err := family.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}

	var req CreateFamilyRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	fam, err := h.service.CreateFamily(userID, req.Name)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fam)
}

func (h *FamilyHandler) GetMine(c *fiber.Ctx) error {
	familyID := family.GetFamilyID(c)
	if familyID == uuid.Nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": h.msgs.Message("family_not_found")})
	}

	fam, members, err := h.service.GetFamily(familyID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"family": fam, "members": members})
}

func (h *FamilyHandler) Rename(c *fiber.Ctx) error {
	userID, err := family.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}
	familyID := family.GetFamilyID(c)

	var req CreateFamilyRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	fam, err := h.service.RenameFamily(userID, familyID, req.Name)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fam)
}

func (h *FamilyHandler) AddMember(c *fiber.Ctx) error {
	userID, err := family.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}
	familyID := family.GetFamilyID(c)

	var req AddMemberRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	member, err := h.service.AddMember(userID, familyID, req.Email, req.DisplayName)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

func (h *FamilyHandler) RemoveMember(c *fiber.Ctx) error {
	userID, err := family.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}
	familyID := family.GetFamilyID(c)

	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	if err := h.service.RemoveMember(userID, familyID, memberID); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Membre retiré de la famille"})
}

func (h *FamilyHandler) ChangeRole(c *fiber.Ctx) error {
	userID, err := family.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}
	familyID := family.GetFamilyID(c)

	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	var req ChangeRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	member, err := h.service.ChangeRole(userID, familyID, memberID, req.Role)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(member)
}

func (h *FamilyHandler) UpdateMember(c *fiber.Ctx) error {
	userID, err := family.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": h.msgs.Message("unauthorized")})
	}
	familyID := family.GetFamilyID(c)

	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	var req UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": h.msgs.Message("invalid")})
	}

	member, err := h.service.UpdateMember(userID, familyID, memberID, MemberUpdate{
		DisplayName: req.DisplayName,
		Age:         req.Age,
		Preferences: req.Preferences,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(member)
}
