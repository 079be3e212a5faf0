package family

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ForFamily returns a GORM scope that filters by family_id.
func ForFamily(familyID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("family_id = ?", familyID)
	}
}

// VisibleTo returns a GORM scope selecting rows the given actor may read:
// their own rows, rows shared with their family, and public rows. Admins
// additionally see everything scoped to their own family. Mirrors
// access.Actor.CanView for list queries so visibility filtering happens in
// SQL instead of post-filtering whole tables.
func VisibleTo(userID, familyID uuid.UUID, role string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if familyID == uuid.Nil {
			return db.Where("visibility = ? OR created_by = ? OR imported_by = ?",
				"public", userID, userID)
		}
		if role == "admin" {
			return db.Where(
				"visibility = ? OR created_by = ? OR imported_by = ? OR family_id = ?",
				"public", userID, userID, familyID)
		}
		return db.Where(
			"visibility = ? OR created_by = ? OR imported_by = ? OR (visibility = ? AND family_id = ?)",
			"public", userID, userID, "family", familyID)
	}
}
