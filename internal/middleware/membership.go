package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/miambidi/miambidi-backend/internal/apps/families"
	"github.com/miambidi/miambidi-backend/internal/family"
)

// FamilyContext resolves the authenticated user's family membership and
// stores family_id and family_role in context locals. Users without a family
// pass through with no family context; handlers that require one respond 403
// themselves with a localized message.
func FamilyContext(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals("user").(*jwtv5.Token); !ok {
			return c.Next()
		}

		userID, err := family.GetUserID(c)
		if err != nil {
			return c.Next()
		}

		var member families.FamilyMember
		err = db.Where("user_id = ?", userID).First(&member).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusInternalServerError, "membership lookup failed")
			}
			return c.Next()
		}

		c.Locals("family_id", member.FamilyID)
		c.Locals("family_role", member.Role)
		return c.Next()
	}
}
