package mealplan

import (
	"time"

	"github.com/google/uuid"
)

// MealPlanEntry is the persisted form of one plan cell. The composite unique
// index gives the overwrite semantics: a family has at most one recipe per
// (date, slot) pair.
type MealPlanEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FamilyID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_mealplan_family_date_slot,priority:1" json:"family_id"`
	DateKey   string    `gorm:"size:10;not null;uniqueIndex:idx_mealplan_family_date_slot,priority:2" json:"date_key"`
	Slot      string    `gorm:"size:20;not null;uniqueIndex:idx_mealplan_family_date_slot,priority:3" json:"slot"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	PlannedBy uuid.UUID `gorm:"type:uuid;not null" json:"planned_by"`
	PlannedAt time.Time `gorm:"not null" json:"planned_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
