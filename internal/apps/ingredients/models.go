package ingredients

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/miambidi/miambidi-backend/internal/access"
)

// Ingredient is a catalog entry owned by a family. Recipes denormalize
// name/quantity/unit/price at time of use; the catalog stays authoritative
// for categories and current prices.
type Ingredient struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FamilyID       uuid.UUID      `gorm:"type:uuid;index" json:"family_id"`
	CreatedBy      uuid.UUID      `gorm:"type:uuid;index" json:"created_by"`
	ImportedBy     uuid.UUID      `gorm:"type:uuid" json:"imported_by,omitempty"`
	Name           string         `gorm:"size:150;not null" json:"name"`
	NormalizedName string         `gorm:"size:150;not null;index" json:"-"`
	Category       string         `gorm:"size:50" json:"category"`
	Unit           string         `gorm:"size:30" json:"unit"`
	Price          float64        `json:"price"`
	Visibility     string         `gorm:"size:20;not null;default:'family'" json:"visibility"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// AccessEntity adapts the ingredient for the permission resolver.
func (i *Ingredient) AccessEntity() access.Entity {
	canEdit := []uuid.UUID{i.CreatedBy}
	if i.ImportedBy != uuid.Nil {
		canEdit = append(canEdit, i.ImportedBy)
	}
	return access.Entity{
		Visibility: i.Visibility,
		CreatedBy:  i.CreatedBy,
		FamilyID:   i.FamilyID,
		CanEdit:    canEdit,
		ImportedBy: i.ImportedBy,
	}
}

// IsPublic mirrors the visibility tier as the flag the SPA expects.
func (i *Ingredient) IsPublic() bool {
	return i.Visibility == access.VisibilityPublic
}
