package shopping

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ShoppingList is a persisted snapshot of an aggregation run. Regenerating
// over the same range replaces nothing automatically; each run creates a new
// list the family can keep or delete.
type ShoppingList struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FamilyID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"family_id"`
	Name        string         `gorm:"not null" json:"name"`
	StartDate   string         `gorm:"not null" json:"start_date"`
	EndDate     string         `gorm:"not null" json:"end_date"`
	GeneratedBy uuid.UUID      `gorm:"type:uuid;not null" json:"generated_by"`
	Groups      datatypes.JSON `gorm:"type:jsonb" json:"groups"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (l *ShoppingList) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
