package family

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/miambidi/miambidi-backend/internal/access"
)

// GetUserID extracts the user UUID from JWT claims in context.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}

// GetFamilyID extracts the family UUID resolved by the membership middleware.
// Returns uuid.Nil for users who belong to no family.
func GetFamilyID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals("family_id").(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// GetRole extracts the family role resolved by the membership middleware.
func GetRole(c *fiber.Ctx) string {
	if role, ok := c.Locals("family_role").(string); ok {
		return role
	}
	return ""
}

// GetActor assembles the access.Actor for the authenticated request.
func GetActor(c *fiber.Ctx) (access.Actor, error) {
	userID, err := GetUserID(c)
	if err != nil {
		return access.Actor{}, err
	}
	return access.Actor{
		UserID:   userID,
		FamilyID: GetFamilyID(c),
		Role:     GetRole(c),
	}, nil
}
