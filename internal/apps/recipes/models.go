package recipes

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/miambidi/miambidi-backend/internal/access"
)

// Recipe is a family-scoped recipe. Ingredient lines are denormalized from
// the catalog at edit time (name/quantity/unit/price as of that moment) and
// stored as JSON; the catalog only re-enters the picture when the shopping
// aggregator resolves categories.
type Recipe struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FamilyID       uuid.UUID      `gorm:"type:uuid;index" json:"family_id"`
	CreatedBy      uuid.UUID      `gorm:"type:uuid;not null;index" json:"created_by"`
	Name           string         `gorm:"size:200;not null" json:"name"`
	Description    string         `gorm:"type:text" json:"description"`
	Instructions   string         `gorm:"type:text" json:"instructions"`
	Servings       int            `gorm:"default:4" json:"servings"`
	PrepTimeMin    int            `json:"prep_time_min"`
	Ingredients    datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"ingredients"`
	Visibility     string         `gorm:"size:20;not null;default:'family'" json:"visibility"`
	ImportedBy     uuid.UUID      `gorm:"type:uuid" json:"imported_by,omitempty"`
	ImportedFromID uuid.UUID      `gorm:"type:uuid" json:"imported_from_id,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// IngredientLine is one denormalized ingredient entry inside a recipe.
type IngredientLine struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price,omitempty"`
}

// Lines decodes the stored ingredient JSON. Corrupt rows decode to an empty
// slice rather than failing a whole listing.
func (r *Recipe) Lines() []IngredientLine {
	var lines []IngredientLine
	if len(r.Ingredients) > 0 {
		_ = json.Unmarshal(r.Ingredients, &lines)
	}
	return lines
}

// EditorIDs is the explicit edit allow-list: the creator, plus the importer
// on imported copies.
func (r *Recipe) EditorIDs() []uuid.UUID {
	ids := []uuid.UUID{r.CreatedBy}
	if r.ImportedBy != uuid.Nil && r.ImportedBy != r.CreatedBy {
		ids = append(ids, r.ImportedBy)
	}
	return ids
}

// AccessEntity adapts the recipe for the permission resolver.
func (r *Recipe) AccessEntity() access.Entity {
	return access.Entity{
		Visibility: r.Visibility,
		CreatedBy:  r.CreatedBy,
		FamilyID:   r.FamilyID,
		CanEdit:    r.EditorIDs(),
		ImportedBy: r.ImportedBy,
	}
}
