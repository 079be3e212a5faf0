package families

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Family is the sharing unit. Recipes, ingredients, meal plans and blog posts
// are scoped to zero or one family.
type Family struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	CreatedBy uuid.UUID      `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// FamilyMember is the per-family profile of a user. A user has at most one
// membership row; the unique index on user_id enforces it.
type FamilyMember struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FamilyID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"family_id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Role        string         `gorm:"size:20;not null;default:'member'" json:"role"`
	DisplayName string         `gorm:"size:100" json:"display_name"`
	Email       string         `gorm:"size:255" json:"email"`
	Age         *int           `json:"age,omitempty"`
	Preferences datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"preferences"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Preferences is the dietary profile bundle stored as JSON on a member.
type Preferences struct {
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergies           []string `json:"allergies"`
	FavoriteCategories  []string `json:"favorite_categories"`
	DislikedFoods       []string `json:"disliked_foods"`
}
